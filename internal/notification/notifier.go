// Package notification delivers alert digests to operators.
package notification

import (
	"fmt"
	"net/smtp"
	"strings"

	"NetSentry/internal/config"
)

// EmailNotifier sends HTML mail over SMTP with PLAIN auth. The
// recipient list is parsed once at construction; empty entries in the
// comma-separated config value are dropped.
type EmailNotifier struct {
	addr       string
	from       string
	recipients []string
	auth       smtp.Auth
}

// NewEmailNotifier prepares a notifier from the SMTP configuration.
func NewEmailNotifier(cfg config.SMTPConfig) *EmailNotifier {
	n := &EmailNotifier{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		from: cfg.From,
		auth: smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host),
	}
	for _, to := range strings.Split(cfg.To, ",") {
		if to = strings.TrimSpace(to); to != "" {
			n.recipients = append(n.recipients, to)
		}
	}
	return n
}

// Send mails one HTML message to every configured recipient.
func (n *EmailNotifier) Send(subject, body string) error {
	if len(n.recipients) == 0 {
		return fmt.Errorf("no recipients configured")
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(n.recipients, ", "))
	fmt.Fprintf(&msg, "From: %s\r\n", n.from)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(n.addr, n.auth, n.from, n.recipients, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
