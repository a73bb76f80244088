package interfaces

import (
	"context"

	"assistec_quotes/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for RepairQuote.
//
// Save takes the status the caller read before applying a transition; the
// implementation must refuse the write when the stored status no longer
// matches, which is how concurrent transitions on the same quote are kept
// serialized at the storage boundary.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.RepairQuote) (entities.RepairQuote, error)
	GetByID(ctx context.Context, id string) (entities.RepairQuote, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.RepairQuote, error)
	Save(ctx context.Context, q entities.RepairQuote, expectedStatus entities.QuoteStatus) (entities.RepairQuote, error)
	UpdateArtifactRef(ctx context.Context, id, artifactRef string) (entities.RepairQuote, error)
}
