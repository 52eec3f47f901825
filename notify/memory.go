package notify

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// MemoryMailer records messages instead of sending them.
type MemoryMailer struct {
	mu   sync.Mutex
	sent []Message
	// Err, when set, fails every Send.
	Err error
}

func (m *MemoryMailer) Send(_ context.Context, msg Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	m.sent = append(m.sent, msg)
	return fmt.Sprintf("mem_%d", len(m.sent)), nil
}

func (m *MemoryMailer) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.sent))
	copy(out, m.sent)
	return out
}

// LogMailer writes messages to the log. Used when no email API key is set.
type LogMailer struct {
	Logger *zap.Logger
}

func (m LogMailer) Send(_ context.Context, msg Message) (string, error) {
	m.Logger.Info("📧 email not sent, no provider configured",
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject))
	return "", nil
}
