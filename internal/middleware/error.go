// File: internal/middleware/error.go
package middleware

import (
	"net/http"

	"bookinesia_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler creates a Gin middleware for centralized error handling. The
// operation handlers respond on their own; this catches errors attached to the
// context plus the bare 404/405 fallbacks so every response is JSON.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			for _, ginErr := range c.Errors {
				if c.Writer.Written() {
					return
				}
				apiErr, isAPIErr := common.IsAPIError(ginErr.Err)
				if isAPIErr {
					c.AbortWithStatusJSON(apiErr.StatusCode, gin.H{"message": apiErr.Message, "error": apiErr})
				} else {
					logger.Error("Unhandled application error",
						zap.Error(ginErr.Err),
						zap.String("path", c.Request.URL.Path),
						zap.String("request_id", c.GetString(RequestIDContextKey)),
					)
					genericError := common.ErrInternalServer.WithDetails("An unexpected error occurred.")
					if gin.Mode() == gin.DebugMode && ginErr.Err != nil {
						genericError.Details = ginErr.Err.Error()
					}
					c.AbortWithStatusJSON(genericError.StatusCode, gin.H{"message": genericError.Message, "error": genericError})
				}
				return
			}
		}

		if c.Writer.Status() == http.StatusNotFound && !c.Writer.Written() {
			notFoundErr := common.ErrNotFound.WithDetails("The requested endpoint does not exist.")
			c.AbortWithStatusJSON(notFoundErr.StatusCode, gin.H{"message": notFoundErr.Message, "error": notFoundErr})
			return
		}
		if c.Writer.Status() == http.StatusMethodNotAllowed && !c.Writer.Written() {
			methodNotAllowedErr := common.NewAPIError(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "The method is not allowed for the requested URL.")
			c.AbortWithStatusJSON(methodNotAllowedErr.StatusCode, gin.H{"message": methodNotAllowedErr.Message, "error": methodNotAllowedErr})
			return
		}
	}
}
