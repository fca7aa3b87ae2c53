package notify

import (
	"context"
	"log"

	"solarsite/internal/domain"
)

// Outcome is the per-channel delivery result. A channel either delivered the
// alert or logged it locally (missing credentials, dry-run). Transport
// failures are returned as errors and stay with the caller's log.
type Outcome string

const (
	OutcomeDelivered     Outcome = "delivered"
	OutcomeLoggedLocally Outcome = "logged_locally"
)

// Channel is an independent notification transport.
type Channel interface {
	Name() string
	Send(ctx context.Context, s LeadSummary) (Outcome, error)
}

// LeadSummary is the denormalized payload handed to channels. It is built
// from the stored entity once, so channels never see the domain type.
type LeadSummary struct {
	ID      int64
	Name    string
	Phone   string
	Email   string
	City    string
	Message string
	Source  string
}

const messageLimit = 500

// Summarize builds the channel payload from a stored lead. Absent optional
// fields become "-" and the message is cut at 500 characters.
func Summarize(l *domain.Lead) LeadSummary {
	s := LeadSummary{
		ID:      l.ID,
		Name:    l.Name,
		Phone:   l.Phone,
		Email:   orDash(l.Email),
		City:    orDash(l.City),
		Message: orDash(l.Message),
		Source:  l.Source,
	}
	if r := []rune(s.Message); len(r) > messageLimit {
		s.Message = string(r[:messageLimit])
	}
	return s
}

func orDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

// Notifier fans a lead summary out to all channels. Best-effort only:
// at most one attempt per channel, failures are logged and swallowed.
type Notifier struct {
	channels []Channel
}

func New(channels ...Channel) *Notifier {
	return &Notifier{channels: channels}
}

// Dispatch sends the summary over each channel independently and returns the
// outcome per channel name. A failed channel never affects the others and
// never surfaces to the caller as an error.
func (n *Notifier) Dispatch(ctx context.Context, s LeadSummary) map[string]Outcome {
	outcomes := make(map[string]Outcome, len(n.channels))
	for _, ch := range n.channels {
		outcome, err := ch.Send(ctx, s)
		if err != nil {
			log.Printf("warning: %s alert failed for lead #%d: %v", ch.Name(), s.ID, err)
			continue
		}
		outcomes[ch.Name()] = outcome
	}
	return outcomes
}

func logPreview(channel string, s LeadSummary) {
	log.Printf("[notify:%s] dry-run lead #%d name=%q phone=%q email=%q city=%q source=%q",
		channel, s.ID, s.Name, s.Phone, s.Email, s.City, s.Source)
}
