package email

// Message is an outgoing email.
type Message struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// Provider sends transactional email. The SMTP implementation is used in
// production; tests and local development use the mock.
type Provider interface {
	Send(msg *Message) error

	// SendTempLoginLink emails a one-shot login link built from the
	// token.
	SendTempLoginLink(to, token string) error
}

// Config carries the SMTP settings plus the public base URL used to
// build links inside messages.
type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	FromEmail  string
	FromName   string
	AppBaseURL string
}
