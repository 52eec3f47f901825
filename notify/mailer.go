// Package notify sends the storefront's transactional email.
package notify

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Message is one outgoing email.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Mailer delivers a message and returns the provider's message id.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}

var validate = validator.New()

// ValidAddress reports whether addr looks like a deliverable email address.
func ValidAddress(addr string) bool {
	addr = strings.TrimSpace(addr)
	return addr != "" && validate.Var(addr, "email") == nil
}
