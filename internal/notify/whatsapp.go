package notify

import (
	"context"
	"log"

	"solarsite/internal/config"
)

// WhatsAppChannel is the messaging alert channel. The Cloud API transport is
// an extension point: with credentials present the channel still only logs.
// TODO: POST the summary to the Graph API /{phone_id}/messages endpoint.
type WhatsAppChannel struct {
	cfg config.WhatsAppConfig
}

func NewWhatsAppChannel(cfg config.WhatsAppConfig) *WhatsAppChannel {
	return &WhatsAppChannel{cfg: cfg}
}

func (w *WhatsAppChannel) Name() string { return "whatsapp" }

func (w *WhatsAppChannel) Send(ctx context.Context, s LeadSummary) (Outcome, error) {
	if !w.cfg.Configured() {
		logPreview("whatsapp", s)
		return OutcomeLoggedLocally, nil
	}

	log.Printf("[notify:whatsapp] configured but transport not implemented, lead #%d", s.ID)
	return OutcomeLoggedLocally, nil
}
