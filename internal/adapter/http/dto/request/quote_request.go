package request

import (
	"strings"

	"github.com/shopspring/decimal"

	"assistec_quotes/internal/domain/entities"
)

type PartLineRequest struct {
	ID        string          `json:"id"`
	Name      string          `json:"name" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity" binding:"required"`
}

type LaborRequest struct {
	Hours       int             `json:"hours"`
	Minutes     int             `json:"minutes"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
}

type DiscountRequest struct {
	Kind  string           `json:"kind" binding:"required,oneof=percentage fixed"`
	Value decimal.Decimal  `json:"value"`
	Cap   *decimal.Decimal `json:"cap"`
}

// QuoteCreateRequest is the payload for creating a draft quote. Monetary
// fields accept JSON numbers or strings; they are decoded to fixed-point
// decimals, never floats.
type QuoteCreateRequest struct {
	OrderID    string            `json:"order_id" binding:"required"`
	Parts      []PartLineRequest `json:"parts"`
	Labor      LaborRequest      `json:"labor" binding:"required"`
	ServiceFee decimal.Decimal   `json:"service_fee"`
	Discount   *DiscountRequest  `json:"discount"`
	TaxRate    decimal.Decimal   `json:"tax_rate"`
	Currency   string            `json:"currency"`
}

// BreakdownUpdateRequest replaces the breakdown of a draft quote.
type BreakdownUpdateRequest struct {
	Parts      []PartLineRequest `json:"parts"`
	Labor      LaborRequest      `json:"labor" binding:"required"`
	ServiceFee decimal.Decimal   `json:"service_fee"`
	Discount   *DiscountRequest  `json:"discount"`
	TaxRate    decimal.Decimal   `json:"tax_rate"`
	Currency   string            `json:"currency"`
}

func (r QuoteCreateRequest) ResolveOrderID() string {
	return strings.TrimSpace(r.OrderID)
}

func (r QuoteCreateRequest) ToBreakdownSpec() entities.BreakdownSpec {
	return toBreakdownSpec(r.Parts, r.Labor, r.ServiceFee, r.Discount, r.TaxRate, r.Currency)
}

func (r BreakdownUpdateRequest) ToBreakdownSpec() entities.BreakdownSpec {
	return toBreakdownSpec(r.Parts, r.Labor, r.ServiceFee, r.Discount, r.TaxRate, r.Currency)
}

func toBreakdownSpec(parts []PartLineRequest, labor LaborRequest, fee decimal.Decimal, discount *DiscountRequest, taxRate decimal.Decimal, currency string) entities.BreakdownSpec {
	lines := make([]entities.PartLine, 0, len(parts))
	for _, p := range parts {
		lines = append(lines, entities.PartLine{
			ID:        p.ID,
			Name:      p.Name,
			UnitPrice: p.UnitPrice,
			Quantity:  p.Quantity,
		})
	}

	var d *entities.Discount
	if discount != nil {
		d = &entities.Discount{
			Kind:  entities.DiscountKind(discount.Kind),
			Value: discount.Value,
			Cap:   discount.Cap,
		}
	}

	return entities.BreakdownSpec{
		Parts: lines,
		Labor: entities.LaborEstimate{
			Hours:       labor.Hours,
			Minutes:     labor.Minutes,
			HourlyRate:  labor.HourlyRate,
			Category:    entities.LaborCategory(labor.Category),
			Description: labor.Description,
		},
		ServiceFee: fee,
		Discount:   d,
		TaxRate:    taxRate,
		Currency:   strings.ToUpper(strings.TrimSpace(currency)),
	}
}

// QuoteApproveRequest carries the client's approval decision. A payment
// method is mandatory; approval without one is rejected downstream.
type QuoteApproveRequest struct {
	PaymentMethod string `json:"payment_method"`
	ApprovedBy    string `json:"approved_by"`
	ClientNotes   string `json:"client_notes"`
}

// QuoteRejectRequest carries the rejection decision. Confirm models the
// explicit confirmation step required before a quote can be rejected.
type QuoteRejectRequest struct {
	Confirm     bool   `json:"confirm"`
	ClientNotes string `json:"client_notes"`
}
