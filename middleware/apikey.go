package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ValidateAPIKey guards the admin routes. The key is read from the X-API-KEY
// header, or from the api_key query parameter for clients that cannot set
// headers, such as a browser WebSocket.
func ValidateAPIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader("X-API-KEY")
		if provided == "" {
			provided = c.Query("api_key")
		}
		if key == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
			c.Abort()
			return
		}
		c.Next()
	}
}
