package response

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"assistec_quotes/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	expires := now.Add(entities.QuoteValidity)
	q := entities.RepairQuote{
		ID:          "quote-1",
		OrderID:     "order-1",
		QuoteNumber: "Q-20260310-ABCD1234",
		Status:      entities.QuoteStatusSent,
		Breakdown: entities.QuoteBreakdown{
			Total:    decimal.NewFromInt(8154),
			Currency: "BRL",
		},
		CreatedAt:   now,
		ExpiresAt:   expires,
		UpdatedAt:   now,
		ArtifactRef: "s3://quote-artifacts/quotes/order-1/quote-1.pdf",
	}

	res := FromQuote(q)
	if res.ID != "quote-1" || res.QuoteID != "quote-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.OrderID != "order-1" || res.QuoteNumber != "Q-20260310-ABCD1234" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Status != "sent" {
		t.Fatalf("unexpected status: %s", res.Status)
	}
	if res.CreatedAt == nil || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %+v", res.CreatedAt)
	}
	if res.ExpiresAt == nil || !res.ExpiresAt.Equal(expires) {
		t.Fatalf("unexpected expires_at: %+v", res.ExpiresAt)
	}
	if res.ArtifactRef != q.ArtifactRef {
		t.Fatalf("unexpected artifact ref: %s", res.ArtifactRef)
	}
}

func TestFromQuote_DraftOmitsValidityWindow(t *testing.T) {
	q := entities.RepairQuote{
		ID:        "quote-1",
		OrderID:   "order-1",
		Status:    entities.QuoteStatusDraft,
		UpdatedAt: time.Now().UTC(),
	}

	res := FromQuote(q)
	if res.CreatedAt != nil || res.ExpiresAt != nil {
		t.Fatalf("draft must not expose a validity window: %+v", res)
	}
	if res.QuoteNumber != "" {
		t.Fatalf("draft must not carry a quote number: %+v", res)
	}
}

func TestFromQuotes(t *testing.T) {
	quotes := []entities.RepairQuote{
		{ID: "quote-1", OrderID: "order-1", Status: entities.QuoteStatusDraft},
		{ID: "quote-2", OrderID: "order-1", Status: entities.QuoteStatusSent},
	}

	res := FromQuotes(quotes)
	if len(res) != 2 || res[0].QuoteID != "quote-1" || res[1].QuoteID != "quote-2" {
		t.Fatalf("unexpected result: %+v", res)
	}

	if empty := FromQuotes(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty slice, got %+v", empty)
	}
}

func TestFromQuoteDocument(t *testing.T) {
	q := entities.RepairQuote{
		ID:          "quote-1",
		QuoteNumber: "Q-20260310-ABCD1234",
		ArtifactRef: "s3://quote-artifacts/quotes/order-1/quote-1.pdf",
	}

	res := FromQuoteDocument(q)
	if res.QuoteID != "quote-1" || res.QuoteNumber != q.QuoteNumber || res.ArtifactRef != q.ArtifactRef {
		t.Fatalf("unexpected result: %+v", res)
	}
}
