package email

import (
	"sync"

	"neads_backend/internal/logger"
)

// MockProvider records messages instead of sending them. Used in tests
// and when no SMTP host is configured.
type MockProvider struct {
	mu   sync.Mutex
	Sent []Message
	// Tokens holds the temp login tokens handed to SendTempLoginLink,
	// keyed by recipient.
	Tokens map[string]string
}

func NewMockProvider() *MockProvider {
	return &MockProvider{Tokens: make(map[string]string)}
}

func (p *MockProvider) Send(msg *Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Sent = append(p.Sent, *msg)
	logger.Debug("mock email sent", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (p *MockProvider) SendTempLoginLink(to, token string) error {
	p.mu.Lock()
	p.Tokens[to] = token
	p.mu.Unlock()

	return p.Send(&Message{
		To:      []string{to},
		Subject: "Your sign-in link",
	})
}
