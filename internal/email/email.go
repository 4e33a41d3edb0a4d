// Package email sends transactional mail (verification, password reset).
// Delivery is best effort: the storefront flows never fail because a mail
// could not go out.
package email

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Provider is a mail transport. Two implementations exist: SMTP and SendGrid.
type Provider interface {
	Send(ctx context.Context, to, subject, html string) error
}

type Config struct {
	Provider string // "smtp" or "sendgrid"

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	From     string

	SendGridAPIKey string
}

type Service struct {
	provider Provider
	log      *zap.Logger
}

func NewService(cfg Config, log *zap.Logger) (*Service, error) {
	s := &Service{log: log}
	switch cfg.Provider {
	case "sendgrid":
		if cfg.SendGridAPIKey == "" {
			return nil, fmt.Errorf("sendgrid api key is required")
		}
		s.provider = NewSendGridProvider(cfg.SendGridAPIKey, cfg.From)
	case "smtp":
		s.provider = NewSMTPProvider(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.From)
	default:
		return nil, fmt.Errorf("unknown email provider: %s", cfg.Provider)
	}
	return s, nil
}

// Send delivers one message synchronously.
func (s *Service) Send(ctx context.Context, to, subject, html string) error {
	s.log.Info("sending email", zap.String("to", to), zap.String("subject", subject))
	return s.provider.Send(ctx, to, subject, html)
}

// SendAsync delivers in the background. The returned channel carries the
// non-fatal result: nil on delivery, the error otherwise. Callers that do not
// care may drop the channel; the failure is still logged here.
func (s *Service) SendAsync(to, subject, html string) <-chan error {
	result := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := s.Send(ctx, to, subject, html)
		if err != nil {
			s.log.Warn("email delivery failed",
				zap.String("to", to),
				zap.String("subject", subject),
				zap.Error(err),
			)
		}
		result <- err
	}()
	return result
}
