package interfaces

import (
	"context"

	"assistec_quotes/internal/domain/entities"
)

// IQuotePaymentRepository abstracts DynamoDB persistence for QuotePayment.

type IQuotePaymentRepository interface {
	Create(ctx context.Context, p entities.QuotePayment) (entities.QuotePayment, error)
	GetByID(ctx context.Context, id string) (entities.QuotePayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error)
}
