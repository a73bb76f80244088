package response

import (
	"time"

	"assistec_quotes/internal/domain/entities"
)

type QuotePaymentResponse struct {
	PaymentID string    `json:"payment_id"`
	ID        string    `json:"id"`
	QuoteID   string    `json:"quote_id"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromQuotePayment(p entities.QuotePayment) QuotePaymentResponse {
	return QuotePaymentResponse{
		PaymentID:          p.ID,
		ID:                 p.ID,
		QuoteID:            p.QuoteID,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}
