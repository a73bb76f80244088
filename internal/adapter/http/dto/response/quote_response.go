package response

import (
	"time"

	"assistec_quotes/internal/domain/entities"
)

type QuoteResponse struct {
	QuoteID     string                  `json:"quote_id"`
	ID          string                  `json:"id"`
	OrderID     string                  `json:"order_id"`
	QuoteNumber string                  `json:"quote_number,omitempty"`
	Status      string                  `json:"status"`
	Breakdown   entities.QuoteBreakdown `json:"breakdown"`
	CreatedAt   *time.Time              `json:"created_at,omitempty"`
	ExpiresAt   *time.Time              `json:"expires_at,omitempty"`
	UpdatedAt   time.Time               `json:"updated_at"`
	ApprovedAt  *time.Time              `json:"approved_at,omitempty"`
	ApprovedBy  string                  `json:"approved_by,omitempty"`
	ArtifactRef string                  `json:"artifact_ref,omitempty"`
}

func FromQuote(q entities.RepairQuote) QuoteResponse {
	resp := QuoteResponse{
		QuoteID:     q.ID,
		ID:          q.ID,
		OrderID:     q.OrderID,
		QuoteNumber: q.QuoteNumber,
		Status:      string(q.Status),
		Breakdown:   q.Breakdown,
		UpdatedAt:   q.UpdatedAt,
		ApprovedAt:  q.ApprovedAt,
		ApprovedBy:  q.ApprovedBy,
		ArtifactRef: q.ArtifactRef,
	}
	if !q.CreatedAt.IsZero() {
		createdAt := q.CreatedAt
		resp.CreatedAt = &createdAt
	}
	if !q.ExpiresAt.IsZero() {
		expiresAt := q.ExpiresAt
		resp.ExpiresAt = &expiresAt
	}
	return resp
}

func FromQuotes(quotes []entities.RepairQuote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

type QuoteDocumentResponse struct {
	QuoteID     string `json:"quote_id"`
	QuoteNumber string `json:"quote_number"`
	ArtifactRef string `json:"artifact_ref"`
}

func FromQuoteDocument(q entities.RepairQuote) QuoteDocumentResponse {
	return QuoteDocumentResponse{
		QuoteID:     q.ID,
		QuoteNumber: q.QuoteNumber,
		ArtifactRef: q.ArtifactRef,
	}
}
