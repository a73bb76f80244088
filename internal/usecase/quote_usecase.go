package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"assistec_quotes/internal/domain/entities"
	"assistec_quotes/internal/domain/pricing"
	"assistec_quotes/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrInvalidOrderID   = errors.New("invalid order_id")
	ErrInvalidQuoteID   = errors.New("invalid quote id")
	ErrQuoteNotSent     = errors.New("quote has not been sent")
	ErrQuoteConflict    = errors.New("quote was modified concurrently")
	ErrDocumentNotReady = errors.New("quote document is not available")
)

// IQuoteUseCase exposes the repair-quote operations.
//
// CreateDraft and ReplaceBreakdown cover the assembly phase, Send/Approve/
// Reject/ExpireIfDue drive the lifecycle, and Document retries the
// best-effort rendering on demand.

type IQuoteUseCase interface {
	CreateDraft(ctx context.Context, orderID string, spec entities.BreakdownSpec) (entities.RepairQuote, error)
	ReplaceBreakdown(ctx context.Context, quoteID string, spec entities.BreakdownSpec) (entities.RepairQuote, error)
	Send(ctx context.Context, quoteID string) (entities.RepairQuote, error)
	Approve(ctx context.Context, quoteID string, method entities.PaymentMethod, approvedBy, clientNotes string) (entities.RepairQuote, error)
	Reject(ctx context.Context, quoteID string, confirmed bool, clientNotes string) (entities.RepairQuote, error)
	ExpireIfDue(ctx context.Context, quoteID string) (entities.RepairQuote, error)
	GetByID(ctx context.Context, quoteID string) (entities.RepairQuote, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.RepairQuote, error)
	Document(ctx context.Context, quoteID string) (entities.RepairQuote, error)
}

type QuoteUseCase struct {
	repo         interfaces.IQuoteRepository
	approvalRepo interfaces.IApprovalRepository
	renderer     interfaces.IQuoteRenderer
	now          func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, approvalRepo interfaces.IApprovalRepository, renderer interfaces.IQuoteRenderer) *QuoteUseCase {
	return &QuoteUseCase{
		repo:         repo,
		approvalRepo: approvalRepo,
		renderer:     renderer,
		now:          time.Now,
	}
}

func (u *QuoteUseCase) CreateDraft(ctx context.Context, orderID string, spec entities.BreakdownSpec) (entities.RepairQuote, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.RepairQuote{}, ErrInvalidOrderID
	}

	breakdown, err := pricing.ComputeBreakdown(spec)
	if err != nil {
		return entities.RepairQuote{}, err
	}

	q := entities.RepairQuote{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		Status:    entities.QuoteStatusDraft,
		Breakdown: breakdown,
		UpdatedAt: u.now().UTC(),
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.RepairQuote{}, err
	}
	log.Info().Str("quote_id", created.ID).Str("order_id", orderID).
		Str("total", created.Breakdown.Total.String()).Msg("draft quote created")
	return created, nil
}

func (u *QuoteUseCase) ReplaceBreakdown(ctx context.Context, quoteID string, spec entities.BreakdownSpec) (entities.RepairQuote, error) {
	q, err := u.load(ctx, quoteID)
	if err != nil {
		return entities.RepairQuote{}, err
	}

	breakdown, err := pricing.ComputeBreakdown(spec)
	if err != nil {
		return entities.RepairQuote{}, err
	}
	if err := q.ReplaceBreakdown(breakdown, u.now()); err != nil {
		return entities.RepairQuote{}, err
	}

	return u.save(ctx, q, entities.QuoteStatusDraft)
}

func (u *QuoteUseCase) Send(ctx context.Context, quoteID string) (entities.RepairQuote, error) {
	q, err := u.load(ctx, quoteID)
	if err != nil {
		return entities.RepairQuote{}, err
	}

	now := u.now()
	if err := q.Send(newQuoteNumber(q.ID, now), now); err != nil {
		return entities.RepairQuote{}, err
	}

	saved, err := u.save(ctx, q, entities.QuoteStatusDraft)
	if err != nil {
		return entities.RepairQuote{}, err
	}
	log.Info().Str("quote_id", saved.ID).Str("quote_number", saved.QuoteNumber).
		Time("expires_at", saved.ExpiresAt).Msg("quote sent")

	// Rendering is best-effort: a renderer failure leaves the quote Sent
	// with an empty artifact ref, and Document retries later.
	return u.renderAndAttach(ctx, saved), nil
}

func (u *QuoteUseCase) Approve(ctx context.Context, quoteID string, method entities.PaymentMethod, approvedBy, clientNotes string) (entities.RepairQuote, error) {
	q, err := u.load(ctx, quoteID)
	if err != nil {
		return entities.RepairQuote{}, err
	}

	now := u.now()
	if err := q.Approve(method, approvedBy, now); err != nil {
		return entities.RepairQuote{}, err
	}

	saved, err := u.save(ctx, q, entities.QuoteStatusSent)
	if err != nil {
		return entities.RepairQuote{}, err
	}

	approval := entities.ClientApproval{
		QuoteID:       saved.ID,
		Approved:      true,
		ApprovedAt:    *saved.ApprovedAt,
		PaymentMethod: method,
		ClientNotes:   clientNotes,
	}
	if _, err := u.approvalRepo.Create(ctx, approval); err != nil {
		log.Error().Err(err).Str("quote_id", saved.ID).Msg("approval record creation failed")
		return entities.RepairQuote{}, err
	}
	log.Info().Str("quote_id", saved.ID).Str("payment_method", string(method)).Msg("quote approved")
	return saved, nil
}

func (u *QuoteUseCase) Reject(ctx context.Context, quoteID string, confirmed bool, clientNotes string) (entities.RepairQuote, error) {
	q, err := u.load(ctx, quoteID)
	if err != nil {
		return entities.RepairQuote{}, err
	}

	now := u.now()
	if err := q.Reject(confirmed, now); err != nil {
		return entities.RepairQuote{}, err
	}

	saved, err := u.save(ctx, q, entities.QuoteStatusSent)
	if err != nil {
		return entities.RepairQuote{}, err
	}

	approval := entities.ClientApproval{
		QuoteID:     saved.ID,
		Approved:    false,
		ApprovedAt:  now.UTC(),
		ClientNotes: clientNotes,
	}
	if _, err := u.approvalRepo.Create(ctx, approval); err != nil {
		log.Error().Err(err).Str("quote_id", saved.ID).Msg("rejection record creation failed")
		return entities.RepairQuote{}, err
	}
	log.Info().Str("quote_id", saved.ID).Msg("quote rejected")
	return saved, nil
}

func (u *QuoteUseCase) ExpireIfDue(ctx context.Context, quoteID string) (entities.RepairQuote, error) {
	q, err := u.load(ctx, quoteID)
	if err != nil {
		return entities.RepairQuote{}, err
	}

	if err := q.MarkExpired(u.now()); err != nil {
		return entities.RepairQuote{}, err
	}

	saved, err := u.save(ctx, q, entities.QuoteStatusSent)
	if err != nil {
		return entities.RepairQuote{}, err
	}
	log.Info().Str("quote_id", saved.ID).Time("expired_at", saved.ExpiresAt).Msg("quote expired")
	return saved, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, quoteID string) (entities.RepairQuote, error) {
	return u.load(ctx, quoteID)
}

func (u *QuoteUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.RepairQuote, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

// Document returns the quote with a populated artifact ref, rendering on
// demand when the send-time attempt failed.
func (u *QuoteUseCase) Document(ctx context.Context, quoteID string) (entities.RepairQuote, error) {
	q, err := u.load(ctx, quoteID)
	if err != nil {
		return entities.RepairQuote{}, err
	}
	if q.Status == entities.QuoteStatusDraft {
		return entities.RepairQuote{}, ErrQuoteNotSent
	}
	if q.ArtifactRef != "" {
		return q, nil
	}

	q = u.renderAndAttach(ctx, q)
	if q.ArtifactRef == "" {
		return entities.RepairQuote{}, ErrDocumentNotReady
	}
	return q, nil
}

func (u *QuoteUseCase) renderAndAttach(ctx context.Context, q entities.RepairQuote) entities.RepairQuote {
	if u.renderer == nil {
		return q
	}

	ref, err := u.renderer.Render(ctx, q)
	if err != nil {
		log.Warn().Err(err).Str("quote_id", q.ID).Msg("quote document rendering failed")
		return q
	}

	updated, err := u.repo.UpdateArtifactRef(ctx, q.ID, ref)
	if err != nil {
		log.Warn().Err(err).Str("quote_id", q.ID).Msg("artifact ref persistence failed")
		q.AttachArtifact(ref, u.now())
		return q
	}
	return updated
}

func (u *QuoteUseCase) load(ctx context.Context, quoteID string) (entities.RepairQuote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.RepairQuote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.RepairQuote{}, err
	}
	if q.ID == "" {
		return entities.RepairQuote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) save(ctx context.Context, q entities.RepairQuote, expected entities.QuoteStatus) (entities.RepairQuote, error) {
	saved, err := u.repo.Save(ctx, q, expected)
	if err != nil {
		return entities.RepairQuote{}, err
	}
	if saved.ID == "" {
		return entities.RepairQuote{}, ErrQuoteConflict
	}
	return saved, nil
}

// newQuoteNumber derives a human-readable quote number from the issue date
// and the quote identity, e.g. Q-20260901-4F21A7C3.
func newQuoteNumber(quoteID string, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(quoteID, "-", ""))
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return fmt.Sprintf("Q-%s-%s", now.UTC().Format("20060102"), suffix)
}
