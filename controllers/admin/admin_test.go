package adminController

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/nursery-store/controllers/respond"
	"github.com/junaidrashid-git/nursery-store/notify"
)

func postTestEmail(mailer *notify.MemoryMailer, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	respond.UseJSONFieldNames()
	r := gin.New()
	n := notify.NewNotifier(mailer, "shop@example.com", "owner@example.com", "Desert Nursery")
	r.POST("/admin/email/test", SendTestEmail(n, zap.NewNop()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/email/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSendTestEmail(t *testing.T) {
	mailer := &notify.MemoryMailer{}

	w := postTestEmail(mailer, `{"to":"rosa@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"message":"Test email sent","id":"mem_1"}`, w.Body.String())
	sent := mailer.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"rosa@example.com"}, sent[0].To)
}

func TestSendTestEmail_Errors(t *testing.T) {
	w := postTestEmail(&notify.MemoryMailer{}, `{"to":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"to"`)

	w = postTestEmail(&notify.MemoryMailer{Err: errors.New("resend down")}, `{"to":"rosa@example.com"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
