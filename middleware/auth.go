package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/nursery-store/auth"
)

// SessionKey is where ValidateToken stores the shopper session id.
const SessionKey = "session_id"

// ValidateToken requires a shopper session token in the Authorization header,
// with or without the Bearer prefix.
func ValidateToken(sessions *auth.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimSpace(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		if len(tokenString) > 7 && strings.EqualFold(tokenString[:7], "bearer ") {
			tokenString = strings.TrimSpace(tokenString[7:])
		}

		sessionID, err := sessions.Parse(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(SessionKey, sessionID)
		c.Next()
	}
}
