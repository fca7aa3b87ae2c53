package domain

import "time"

// Lead is a contact-form submission from a prospective customer.
// Leads are append-only: they are created once, read back by ID for
// notification payloads, and never updated or deleted.
type Lead struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email,omitempty"`
	City      *string   `json:"city,omitempty"`
	Message   *string   `json:"message,omitempty"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}
