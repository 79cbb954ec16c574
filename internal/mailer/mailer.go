package mailer

import (
	"context"

	"github.com/wb-go/wbf/logger"
)

// Email is one rendered transactional message.
type Email struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers rendered emails to the provider.
type Sender interface {
	Send(ctx context.Context, email Email) error
}

// NewSender returns the provider client, or a logging stub when no API key
// is configured so local runs work without an account.
func NewSender(baseURL, apiKey, from string, log logger.Logger) Sender {
	if apiKey == "" {
		log.Warn("mail api key is empty, emails will be logged instead of sent")
		return &DisabledSender{logger: log}
	}
	return NewResendSender(baseURL, apiKey, from)
}

// DisabledSender logs the would-be email and reports success.
type DisabledSender struct {
	logger logger.Logger
}

func (s *DisabledSender) Send(_ context.Context, email Email) error {
	s.logger.Info("email not sent (mailer disabled)",
		logger.String("to", email.To),
		logger.String("subject", email.Subject),
		logger.String("html", email.HTML),
	)
	return nil
}
