package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// QuotePayment is an online collection attempt for an approved quote.
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original provider response (JSON) for
//     traceability/audit.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging.
type QuotePayment struct {
	ID      string        `json:"id"`
	QuoteID string        `json:"quote_id"`
	Date    time.Time     `json:"date"`
	Status  PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
