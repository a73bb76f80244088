package entities

import (
	"errors"
	"time"
)

// QuoteStatus represents the lifecycle of a repair quote.
//
// Domain notes:
//   - Draft quotes are still being assembled and carry no quote number.
//   - Sent freezes the breakdown; part/labor edits are no longer permitted.
//   - Approved, Rejected and Expired are terminal: no transition leaves them.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// Terminal reports whether no further transition is permitted from s.
func (s QuoteStatus) Terminal() bool {
	switch s {
	case QuoteStatusApproved, QuoteStatusRejected, QuoteStatusExpired:
		return true
	}
	return false
}

// QuoteValidity is how long a sent quote stays open for a client decision.
const QuoteValidity = 7 * 24 * time.Hour

var (
	ErrInvalidTransition     = errors.New("invalid quote status transition")
	ErrQuoteFrozen           = errors.New("quote breakdown is frozen after sending")
	ErrPaymentMethodRequired = errors.New("payment method required to approve quote")
	ErrRejectNotConfirmed    = errors.New("quote rejection requires explicit confirmation")
	ErrQuoteNotExpired       = errors.New("quote validity has not elapsed")
)

// RepairQuote is a priced, time-bounded repair proposal for a service order.
//
// All mutation goes through the transition methods below; callers must not
// flip Status directly. A single quote value is owned by one caller at a
// time; serializing concurrent transitions is the owner's responsibility.
type RepairQuote struct {
	ID          string         `json:"id"`
	OrderID     string         `json:"order_id"`
	QuoteNumber string         `json:"quote_number,omitempty"`
	CreatedAt   time.Time      `json:"created_at,omitempty"`
	ExpiresAt   time.Time      `json:"expires_at,omitempty"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Breakdown   QuoteBreakdown `json:"breakdown"`
	Status      QuoteStatus    `json:"status"`
	ApprovedAt  *time.Time     `json:"approved_at,omitempty"`
	ApprovedBy  string         `json:"approved_by,omitempty"`
	ArtifactRef string         `json:"artifact_ref,omitempty"`
}

// ReplaceBreakdown swaps the breakdown of a draft quote. Sent and terminal
// quotes are frozen.
func (q *RepairQuote) ReplaceBreakdown(b QuoteBreakdown, now time.Time) error {
	if q.Status != QuoteStatusDraft {
		return ErrQuoteFrozen
	}
	q.Breakdown = b
	q.UpdatedAt = now.UTC()
	return nil
}

// Send moves a draft quote to Sent: the quote number is assigned, issue and
// expiry timestamps are stamped and the breakdown freezes.
func (q *RepairQuote) Send(quoteNumber string, now time.Time) error {
	if q.Status != QuoteStatusDraft {
		return ErrInvalidTransition
	}
	now = now.UTC()
	q.QuoteNumber = quoteNumber
	q.CreatedAt = now
	q.ExpiresAt = now.Add(QuoteValidity)
	q.UpdatedAt = now
	q.Status = QuoteStatusSent
	return nil
}

// Approve moves a sent quote to Approved. A payment method is a hard
// precondition; without one the transition is rejected and nothing changes.
func (q *RepairQuote) Approve(method PaymentMethod, approvedBy string, now time.Time) error {
	if q.Status != QuoteStatusSent {
		return ErrInvalidTransition
	}
	if !method.Valid() {
		return ErrPaymentMethodRequired
	}
	now = now.UTC()
	q.Status = QuoteStatusApproved
	q.ApprovedAt = &now
	q.ApprovedBy = approvedBy
	q.UpdatedAt = now
	return nil
}

// Reject moves a sent quote to Rejected. The caller must confirm explicitly;
// the flag models the confirmation step, it is not quote state.
func (q *RepairQuote) Reject(confirmed bool, now time.Time) error {
	if q.Status != QuoteStatusSent {
		return ErrInvalidTransition
	}
	if !confirmed {
		return ErrRejectNotConfirmed
	}
	q.Status = QuoteStatusRejected
	q.UpdatedAt = now.UTC()
	return nil
}

// IsExpired reports whether a sent quote's validity window has elapsed at
// now. It is a pure predicate; the owning process decides when to call
// MarkExpired. Quotes in any other status never report expired.
func (q *RepairQuote) IsExpired(now time.Time) bool {
	return q.Status == QuoteStatusSent && now.After(q.ExpiresAt)
}

// MarkExpired moves a sent quote past its validity window to Expired.
func (q *RepairQuote) MarkExpired(now time.Time) error {
	if q.Status != QuoteStatusSent {
		return ErrInvalidTransition
	}
	if !q.IsExpired(now) {
		return ErrQuoteNotExpired
	}
	q.Status = QuoteStatusExpired
	q.UpdatedAt = now.UTC()
	return nil
}

// AttachArtifact records the rendered document handle. Rendering is
// best-effort and independent of the lifecycle, so this is legal in any
// non-draft status and never fails a transition.
func (q *RepairQuote) AttachArtifact(ref string, now time.Time) {
	q.ArtifactRef = ref
	q.UpdatedAt = now.UTC()
}
