package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessions_IssueAndParse(t *testing.T) {
	s := NewSessions("secret", time.Hour)
	token, expiresAt, err := s.Issue("sess_1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	id, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "sess_1", id)
}

func TestSessions_RejectsExpiredTokens(t *testing.T) {
	s := NewSessions("secret", time.Hour)
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return issued }
	token, _, err := s.Issue("sess_1")
	require.NoError(t, err)

	s.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = s.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessions_RejectsForeignTokens(t *testing.T) {
	s := NewSessions("secret", time.Hour)

	noRole := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "sess_1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := noRole.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = s.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCreateSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := NewSessions("secret", time.Hour)
	r := gin.New()
	r.POST("/auth/session", CreateSession(s, zap.NewNop()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/session", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		SessionID string `json:"session_id"`
		Token     string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.SessionID, "sess_")

	id, err := s.Parse(body.Token)
	require.NoError(t, err)
	assert.Equal(t, body.SessionID, id)
}
