package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "walletmate/internal/errors"
)

// APIKeyHeader is the request header carrying the API key.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth creates a Gin middleware that validates the X-API-Key header
// against the configured key. An empty key disables the check so a local,
// single-user install works without credentials.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		key := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			err := apperrors.ErrInvalidAPIKey
			c.AbortWithStatusJSON(err.StatusCode,
				gin.H{"error": gin.H{"code": err.Code, "message": err.Message}})
			return
		}
		c.Next()
	}
}
