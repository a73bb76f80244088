package entities

import "time"

// PaymentMethod is how the client intends to settle an approved quote.
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodOnline PaymentMethod = "online"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodCash, PaymentMethodOnline:
		return true
	}
	return false
}

// ClientApproval records the client's terminal decision on a quote.
// Exactly one approval record exists per decided quote.
type ClientApproval struct {
	QuoteID       string        `json:"quote_id"`
	Approved      bool          `json:"approved"`
	ApprovedAt    time.Time     `json:"approved_at"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	ClientNotes   string        `json:"client_notes,omitempty"`
}
