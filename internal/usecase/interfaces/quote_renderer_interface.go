package interfaces

import (
	"context"

	"assistec_quotes/internal/domain/entities"
)

// IQuoteRenderer abstracts the external document renderer. It is invoked
// only for quotes that already reached Sent. Rendering is best-effort: a
// failure must never roll back a lifecycle transition, and the operation can
// be retried independently of the approval state.
type IQuoteRenderer interface {
	Render(ctx context.Context, q entities.RepairQuote) (artifactRef string, err error)
}
