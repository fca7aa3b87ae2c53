package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"solarsite/internal/config"
)

const smtpTimeout = 10 * time.Second

// EmailChannel delivers lead alerts over SMTP (STARTTLS + auth). Without
// full credentials it stays in dry-run mode and only logs the summary.
type EmailChannel struct {
	cfg config.SMTPConfig
}

func NewEmailChannel(cfg config.SMTPConfig) *EmailChannel {
	return &EmailChannel{cfg: cfg}
}

func (e *EmailChannel) Name() string { return "email" }

func (e *EmailChannel) Send(ctx context.Context, s LeadSummary) (Outcome, error) {
	if !e.cfg.Configured() {
		logPreview("email", s)
		return OutcomeLoggedLocally, nil
	}

	msg := mail.NewMsg()
	if err := msg.From(e.cfg.From); err != nil {
		return "", fmt.Errorf("email from address: %w", err)
	}
	if err := msg.To(e.cfg.To); err != nil {
		return "", fmt.Errorf("email to address: %w", err)
	}
	msg.Subject(fmt.Sprintf("New Lead #%d", s.ID))
	msg.SetBodyString(mail.TypeTextPlain, formatBody(s))

	client, err := mail.NewClient(e.cfg.Host,
		mail.WithPort(e.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(e.cfg.User),
		mail.WithPassword(e.cfg.Pass),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(smtpTimeout),
	)
	if err != nil {
		return "", fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return "", fmt.Errorf("smtp send: %w", err)
	}
	return OutcomeDelivered, nil
}

func formatBody(s LeadSummary) string {
	return strings.Join([]string{
		"Name: " + s.Name,
		"Phone: " + s.Phone,
		"Email: " + s.Email,
		"City: " + s.City,
		"Message: " + s.Message,
		"Source: " + s.Source,
	}, "\n")
}
