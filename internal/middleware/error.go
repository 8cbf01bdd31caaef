package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "walletmate/internal/errors"
	"walletmate/internal/logger"
)

// ErrorHandler renders the error a handler reported with c.Error as the JSON
// error body {"error":{"code","message"}}. AppErrors keep their status, code
// and message; their internal cause is logged, never returned. Anything else
// is logged and answered with a generic internal error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			logger.Get().Errorw("unexpected error",
				"error", err.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"request_id", c.GetString(RequestIDKey),
			)
			appErr = apperrors.ErrInternalServer
		} else if appErr.Internal != nil {
			logger.Get().Errorw("request failed",
				"code", appErr.Code,
				"kind", appErr.Kind,
				"internal", appErr.Internal.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"request_id", c.GetString(RequestIDKey),
			)
		}

		c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
	}
}
