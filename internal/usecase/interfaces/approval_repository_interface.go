package interfaces

import (
	"context"

	"assistec_quotes/internal/domain/entities"
)

// IApprovalRepository abstracts DynamoDB persistence for ClientApproval.
//
// One approval record exists per decided quote; Create must fail if a record
// for the quote already exists.

type IApprovalRepository interface {
	Create(ctx context.Context, a entities.ClientApproval) (entities.ClientApproval, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.ClientApproval, error)
}
