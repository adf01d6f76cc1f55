// File: internal/common/response.go
package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Every response carries a top-level "message" string; successes add
// operation-specific keys next to it and failures add "error". This mirrors the
// contract the frontends already consume.

// RespondOK sends a 200 response of the form {message, ...extra}.
func RespondOK(c *gin.Context, message string, extra gin.H) {
	payload := gin.H{"message": message}
	for k, v := range extra {
		payload[k] = v
	}
	c.JSON(http.StatusOK, payload)
}

// RespondError sends a failure response of the form {message, error, ...extra}.
// The status code comes from the APIError; anything that is not an APIError is
// wrapped as a generic bad request so no handler ever emits a 5xx.
func RespondError(c *gin.Context, message string, err error, extra gin.H) {
	apiErr, ok := IsAPIError(err)
	if !ok {
		apiErr = ErrBadRequest.WithDetails(err.Error())
	}
	payload := gin.H{"message": message, "error": apiErr}
	for k, v := range extra {
		payload[k] = v
	}
	c.AbortWithStatusJSON(apiErr.StatusCode, payload)
}

// BindingError maps a ShouldBindJSON failure onto the error taxonomy:
// validator misses become MISSING_FIELD, everything else (malformed JSON,
// wrong types) becomes BAD_REQUEST.
func BindingError(err error) *APIError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ErrMissingField.WithDetails(FormatValidationErrors(ve))
	}
	return ErrBadRequest.WithDetails(err.Error())
}
