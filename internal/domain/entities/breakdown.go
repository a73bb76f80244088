package entities

import "github.com/shopspring/decimal"

// LaborCategory classifies the kind of work being estimated.
type LaborCategory string

const (
	LaborCategoryDiagnosis    LaborCategory = "diagnosis"
	LaborCategoryRepair       LaborCategory = "repair"
	LaborCategoryInstallation LaborCategory = "installation"
	LaborCategoryMaintenance  LaborCategory = "maintenance"
)

func (c LaborCategory) Valid() bool {
	switch c {
	case LaborCategoryDiagnosis, LaborCategoryRepair, LaborCategoryInstallation, LaborCategoryMaintenance:
		return true
	}
	return false
}

// PartLine is a single replacement-part line inside a breakdown.
// Lines are owned by the quote and frozen once the quote is sent.
type PartLine struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// LaborEstimate is the technician's time estimate for the job.
type LaborEstimate struct {
	Hours       int             `json:"hours"`
	Minutes     int             `json:"minutes"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	Category    LaborCategory   `json:"category"`
	Description string          `json:"description,omitempty"`
}

// DiscountKind distinguishes the two discount variants.
type DiscountKind string

const (
	DiscountKindPercentage DiscountKind = "percentage"
	DiscountKindFixed      DiscountKind = "fixed"
)

// Discount is a percentage- or fixed-amount reduction. It is always resolved
// against a concrete subtotal at computation time and never stored
// pre-resolved. Cap only applies to the percentage variant.
type Discount struct {
	Kind  DiscountKind     `json:"kind"`
	Value decimal.Decimal  `json:"value"`
	Cap   *decimal.Decimal `json:"cap,omitempty"`
}

// TaxCalculation is the derived tax block of a breakdown. TaxableAmount is
// the post-discount subtotal; tax is always computed after the discount.
type TaxCalculation struct {
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	RatePercent   decimal.Decimal `json:"rate_percent"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	TotalWithTax  decimal.Decimal `json:"total_with_tax"`
}

// BreakdownSpec bundles the raw pricing inputs for a quote. It is the shape
// the HTTP layer hands to the calculator.
type BreakdownSpec struct {
	Parts      []PartLine
	Labor      LaborEstimate
	ServiceFee decimal.Decimal
	Discount   *Discount
	TaxRate    decimal.Decimal
	Currency   string
}

// QuoteBreakdown is the fully reconciled cost breakdown embedded in a quote.
//
// Invariants (held by the pricing calculator):
//   - Subtotal = PartsTotal + LaborTotal + ServiceFee
//   - 0 <= DiscountAmount <= Subtotal
//   - Total = (Subtotal - DiscountAmount) + Tax.TaxAmount
type QuoteBreakdown struct {
	Parts          []PartLine      `json:"parts"`
	PartsTotal     decimal.Decimal `json:"parts_total"`
	Labor          LaborEstimate   `json:"labor"`
	LaborTotal     decimal.Decimal `json:"labor_total"`
	ServiceFee     decimal.Decimal `json:"service_fee"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Discount       *Discount       `json:"discount,omitempty"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Tax            TaxCalculation  `json:"tax"`
	Total          decimal.Decimal `json:"total"`
	Currency       string          `json:"currency"`
}
