package notification

import (
	"testing"

	"NetSentry/internal/config"
)

func TestEmailNotifierRecipientParsing(t *testing.T) {
	n := NewEmailNotifier(config.SMTPConfig{
		Host: "smtp.example.com",
		Port: 587,
		From: "sentry@example.com",
		To:   "ops@example.com, soc@example.com ,,",
	})

	if n.addr != "smtp.example.com:587" {
		t.Errorf("addr = %q, want smtp.example.com:587", n.addr)
	}
	want := []string{"ops@example.com", "soc@example.com"}
	if len(n.recipients) != len(want) {
		t.Fatalf("recipients = %v, want %v", n.recipients, want)
	}
	for i, r := range want {
		if n.recipients[i] != r {
			t.Errorf("recipient[%d] = %q, want %q", i, n.recipients[i], r)
		}
	}
}

func TestEmailNotifierRequiresRecipients(t *testing.T) {
	n := NewEmailNotifier(config.SMTPConfig{Host: "smtp.example.com", Port: 587})
	if err := n.Send("subject", "body"); err == nil {
		t.Error("expected an error when no recipients are configured")
	}
}
