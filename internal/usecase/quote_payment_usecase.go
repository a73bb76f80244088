package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"assistec_quotes/internal/domain/entities"
	"assistec_quotes/internal/usecase/interfaces"
)

var (
	ErrQuotePaymentNotFound       = errors.New("quote payment not found")
	ErrInvalidPaymentQuoteID      = errors.New("invalid quote_id")
	ErrInvalidProviderPayload     = errors.New("invalid payment provider payload")
	ErrQuoteNotApproved           = errors.New("quote not approved")
	ErrPaymentMethodNotOnline     = errors.New("quote was not approved for online payment")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IQuotePaymentUseCase collects an approved quote through the online payment
// provider and keeps the provider response for audit.
//
// Guards, in order: the quote must exist, must be Approved, and the client's
// recorded payment method must be online. Card and cash settlements happen
// at the counter and never reach the gateway.

type IQuotePaymentUseCase interface {
	CreateForQuote(ctx context.Context, quoteID string, providerPayload json.RawMessage) (entities.QuotePayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error)
}

type QuotePaymentUseCase struct {
	repo         interfaces.IQuotePaymentRepository
	quoteRepo    interfaces.IQuoteRepository
	approvalRepo interfaces.IApprovalRepository
	gateway      interfaces.IPaymentGateway
}

var _ IQuotePaymentUseCase = (*QuotePaymentUseCase)(nil)

func NewQuotePaymentUseCase(
	repo interfaces.IQuotePaymentRepository,
	quoteRepo interfaces.IQuoteRepository,
	approvalRepo interfaces.IApprovalRepository,
	gateway interfaces.IPaymentGateway,
) *QuotePaymentUseCase {
	return &QuotePaymentUseCase{repo: repo, quoteRepo: quoteRepo, approvalRepo: approvalRepo, gateway: gateway}
}

func (u *QuotePaymentUseCase) CreateForQuote(ctx context.Context, quoteID string, providerPayload json.RawMessage) (entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.QuotePayment{}, ErrInvalidPaymentQuoteID
	}
	if len(providerPayload) == 0 {
		providerPayload = json.RawMessage("{}")
	}
	if !json.Valid(providerPayload) {
		return entities.QuotePayment{}, ErrInvalidProviderPayload
	}
	if u.gateway == nil {
		return entities.QuotePayment{}, errors.New("payment gateway not configured")
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if q.ID == "" {
		return entities.QuotePayment{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusApproved {
		return entities.QuotePayment{}, ErrQuoteNotApproved
	}

	if !isPaymentGatewayMockEnabled() {
		approval, err := u.approvalRepo.GetByQuoteID(ctx, quoteID)
		if err != nil {
			return entities.QuotePayment{}, err
		}
		if approval.PaymentMethod != entities.PaymentMethodOnline {
			return entities.QuotePayment{}, ErrPaymentMethodNotOnline
		}
	}

	providerPayload = u.enrichPayload(providerPayload, q)

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, providerPayload)
	if err != nil {
		log.Error().Err(err).Str("quote_id", quoteID).Msg("payment gateway failed")
		return entities.QuotePayment{}, classifyGatewayError(err)
	}
	log.Info().Str("quote_id", quoteID).Str("provider_payment_id", providerPaymentID).
		Str("provider_status", providerStatus).Msg("payment gateway success")

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn().Err(err).Str("quote_id", quoteID).Msg("provider response unmarshal failed")
	}

	p := entities.QuotePayment{
		ID:                 providerPaymentID,
		QuoteID:            quoteID,
		Date:               time.Now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	return created, nil
}

func (u *QuotePaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidPaymentQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

// enrichPayload pins the provider request to the quote: external_reference
// links reconciliation events back to the quote, and the charged amount is
// always the stored breakdown total, never a caller-supplied figure.
func (u *QuotePaymentUseCase) enrichPayload(payload json.RawMessage, q entities.RepairQuote) json.RawMessage {
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return payload
	}
	if reqMap == nil {
		reqMap = map[string]any{}
	}

	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = q.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Repair quote %s", q.QuoteNumber)
	}
	// The gateway speaks JSON numbers; this is the only point where the
	// decimal total leaves fixed-point representation.
	reqMap["transaction_amount"] = q.Breakdown.Total.InexactFloat64()

	b, err := json.Marshal(reqMap)
	if err != nil {
		return payload
	}
	return b
}

func paymentStatusFromProvider(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "accredited":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unauthorized"), strings.Contains(msg, "401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "bad request"), strings.Contains(msg, "400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
