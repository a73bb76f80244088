package response

import (
	"encoding/json"
	"testing"
	"time"

	"assistec_quotes/internal/domain/entities"
)

func TestFromQuotePayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.QuotePayment{
		ID:                 "mp-123",
		QuoteID:            "quote-1",
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: json.RawMessage(`{"id":"mp-123","status":"approved"}`),
		ProviderPayload:    map[string]interface{}{"id": "mp-123", "status": "approved"},
	}

	res := FromQuotePayment(p)
	if res.ID != "mp-123" || res.PaymentID != "mp-123" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.QuoteID != "quote-1" || res.Status != "approved" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.Date.Equal(now) {
		t.Fatalf("unexpected date: %+v", res.Date)
	}
	if res.ProviderPayloadRaw == "" || res.ProviderPayload["status"] != "approved" {
		t.Fatalf("unexpected provider payload: %+v", res)
	}
}
