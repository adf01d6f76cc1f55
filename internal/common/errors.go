// File: internal/common/errors.go
package common

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// APIError represents a standard structure for API errors.
type APIError struct {
	StatusCode int         `json:"-"`
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError: StatusCode=%d, Code=%s, Message=%s", e.StatusCode, e.Code, e.Message)
}

func NewAPIError(statusCode int, code, message string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Message: message}
}

// WithDetails returns a copy of the error carrying the given details, so the
// package-level sentinels stay immutable.
func (e *APIError) WithDetails(details interface{}) *APIError {
	clone := *e
	clone.Details = details
	return &clone
}

// Every failure this layer produces is surfaced to the caller as a 400; the
// taxonomy below distinguishes the cause. 404/405/500 exist only for the
// routing fallbacks and the panic recovery path.
var (
	ErrBadRequest      = NewAPIError(http.StatusBadRequest, "BAD_REQUEST", "The request is invalid.")
	ErrMissingField    = NewAPIError(http.StatusBadRequest, "MISSING_FIELD", "A required request field is missing.")
	ErrInvalidArgument = NewAPIError(http.StatusBadRequest, "INVALID_ARGUMENT", "A request field has an invalid value.")
	ErrProviderLookup  = NewAPIError(http.StatusBadRequest, "PROVIDER_LOOKUP_FAILED", "The identity provider could not resolve the requested user.")
	ErrProviderUpdate  = NewAPIError(http.StatusBadRequest, "PROVIDER_UPDATE_FAILED", "The identity provider rejected the profile update.")
	ErrMailDispatch    = NewAPIError(http.StatusBadRequest, "MAIL_DISPATCH_FAILED", "The mail delivery provider rejected the message.")
	ErrNotFound        = NewAPIError(http.StatusNotFound, "NOT_FOUND", "The requested resource could not be found.")
	ErrInternalServer  = NewAPIError(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "An unexpected error occurred on the server.")
)

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// FormatValidationErrors converts validator.ValidationErrors into a map of
// field name to human-readable message.
func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMap := make(map[string]string)
	for _, e := range errs {
		field := e.Field()
		var message string
		switch e.Tag() {
		case "required":
			message = fmt.Sprintf("The %s field is required.", strings.ToLower(field))
		case "email":
			message = fmt.Sprintf("The %s field must be a valid email address.", strings.ToLower(field))
		case "min":
			message = fmt.Sprintf("The %s field must be at least %s characters long.", strings.ToLower(field), e.Param())
		default:
			message = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag.", field, e.Tag())
		}
		errorMap[field] = message
	}
	return errorMap
}
