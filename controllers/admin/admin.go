package adminController

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/nursery-store/controllers/respond"
	"github.com/junaidrashid-git/nursery-store/notify"
)

type TestEmailRequest struct {
	To string `json:"to" binding:"required,email"`
}

// TestMailer sends the generic test email.
type TestMailer interface {
	Test(ctx context.Context, to string) (string, error)
}

// SendTestEmail checks the mail setup from the admin panel.
func SendTestEmail(mailer TestMailer, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TestEmailRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Invalid(c, err)
			return
		}

		id, err := mailer.Test(c.Request.Context(), req.To)
		if err != nil {
			if errors.Is(err, notify.ErrInvalidRecipient) {
				respond.Field(c, "to", err.Error())
				return
			}
			logger.Error("❌ test email failed", zap.String("to", req.To), zap.Error(err))
			respond.Error(c, http.StatusBadGateway, "Failed to send test email")
			return
		}
		logger.Info("📧 test email sent", zap.String("to", req.To), zap.String("email_id", id))
		c.JSON(http.StatusOK, gin.H{"message": "Test email sent", "id": id})
	}
}
