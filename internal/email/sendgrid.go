package email

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridProvider delivers through the SendGrid API.
type SendGridProvider struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

func NewSendGridProvider(apiKey, from string) *SendGridProvider {
	name, address := "", from
	if parsed, err := mail.ParseAddress(from); err == nil {
		name, address = parsed.Name, parsed.Address
	}
	return &SendGridProvider{
		client: sendgrid.NewSendClient(apiKey),
		from:   sgmail.NewEmail(name, address),
	}
}

func (p *SendGridProvider) Send(ctx context.Context, to, subject, html string) error {
	message := sgmail.NewSingleEmail(p.from, subject, sgmail.NewEmail("", to), "", html)
	response, err := p.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}
