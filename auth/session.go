// Package auth issues the opaque session tokens that identify a shopper's
// cart. There are no accounts: a token is the only identity a shopper has.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidToken = errors.New("invalid or expired token")

const shopperRole = "shopper"

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Sessions signs and verifies shopper session tokens.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessions(secret string, ttl time.Duration) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for sessionID.
func (s *Sessions) Issue(sessionID string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := sessionClaims{
		Role: shopperRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return token, expiresAt, nil
}

// Parse verifies a token and returns the session id it carries.
func (s *Sessions) Parse(tokenString string) (string, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Role != shopperRole || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// CreateSession handles POST /auth/session. It starts a new shopper session
// with an empty cart.
func CreateSession(sessions *Sessions, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := "sess_" + uuid.NewString()
		token, expiresAt, err := sessions.Issue(sessionID)
		if err != nil {
			logger.Error("❌ token generation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_at": expiresAt,
		})
	}
}
