package email

import (
	"context"
	"fmt"
	"net/mail"
	"net/smtp"
	"strings"
)

// SMTPProvider delivers through a plain SMTP relay. Useful in development
// with Mailhog and in deployments that only have SMTP credentials.
type SMTPProvider struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewSMTPProvider(host string, port int, user, pass, from string) *SMTPProvider {
	return &SMTPProvider{host: host, port: port, user: user, pass: pass, from: from}
}

func (p *SMTPProvider) Send(_ context.Context, to, subject, html string) error {
	var msg strings.Builder
	msg.WriteString("From: " + p.from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(html)

	// The envelope sender must be a bare address even when the From header
	// carries a display name.
	envelopeFrom := p.from
	if parsed, err := mail.ParseAddress(p.from); err == nil {
		envelopeFrom = parsed.Address
	}

	addr := fmt.Sprintf("%s:%d", p.host, p.port)
	var auth smtp.Auth
	if p.user != "" {
		auth = smtp.PlainAuth("", p.user, p.pass, p.host)
	}
	return smtp.SendMail(addr, auth, envelopeFrom, []string{to}, []byte(msg.String()))
}
