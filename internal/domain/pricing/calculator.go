// Package pricing holds the pure repair-quote pricing engine: part and labor
// totals, discount resolution, tax application and the composed breakdown.
// Nothing in this package performs I/O or rounds intermediate values;
// rounding is a presentation concern of the layers above.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"assistec_quotes/internal/domain/entities"
)

const defaultCurrency = "BRL"

// ErrInvalidInput is the base class for calculator validation failures.
// Every specific error below unwraps to it, so callers can match the whole
// family with a single errors.Is.
var ErrInvalidInput = errors.New("invalid pricing input")

var (
	ErrNegativePartPrice    = fmt.Errorf("%w: negative part unit price", ErrInvalidInput)
	ErrInvalidPartQuantity  = fmt.Errorf("%w: part quantity must be at least 1", ErrInvalidInput)
	ErrNegativeLaborHours   = fmt.Errorf("%w: negative labor hours", ErrInvalidInput)
	ErrInvalidLaborMinutes  = fmt.Errorf("%w: labor minutes must be in [0,59]", ErrInvalidInput)
	ErrNegativeHourlyRate   = fmt.Errorf("%w: negative hourly rate", ErrInvalidInput)
	ErrInvalidLaborCategory = fmt.Errorf("%w: unknown labor category", ErrInvalidInput)
	ErrNegativeServiceFee   = fmt.Errorf("%w: negative service fee", ErrInvalidInput)
	ErrNegativeTaxRate      = fmt.Errorf("%w: negative tax rate", ErrInvalidInput)
)

var sixty = decimal.NewFromInt(60)

// ComputeBreakdown composes parts, labor, service fee, discount and tax into
// one reconciled breakdown, in fixed order:
//
//  1. partsTotal = sum(unitPrice * quantity)
//  2. laborTotal = hours*rate + (minutes/60)*rate
//  3. subtotal = partsTotal + laborTotal + serviceFee
//  4. discountAmount = ResolveDiscount(discount, subtotal)
//  5. tax = ApplyTax(subtotal - discountAmount, taxRate)
//  6. total = tax.TotalWithTax
//
// The function is pure: identical inputs always yield an identical
// breakdown. All inputs are validated before any computation happens, so a
// failed call leaves nothing half-applied.
func ComputeBreakdown(spec entities.BreakdownSpec) (entities.QuoteBreakdown, error) {
	if err := validateSpec(spec); err != nil {
		return entities.QuoteBreakdown{}, err
	}

	partsTotal := decimal.Zero
	for _, p := range spec.Parts {
		partsTotal = partsTotal.Add(p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}

	laborTotal := laborTotal(spec.Labor)
	subtotal := partsTotal.Add(laborTotal).Add(spec.ServiceFee)

	discountAmount := ResolveDiscount(spec.Discount, subtotal)
	afterDiscount := subtotal.Sub(discountAmount)

	tax, err := ApplyTax(afterDiscount, spec.TaxRate)
	if err != nil {
		return entities.QuoteBreakdown{}, err
	}

	currency := spec.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	return entities.QuoteBreakdown{
		Parts:          spec.Parts,
		PartsTotal:     partsTotal,
		Labor:          spec.Labor,
		LaborTotal:     laborTotal,
		ServiceFee:     spec.ServiceFee,
		Subtotal:       subtotal,
		Discount:       spec.Discount,
		DiscountAmount: discountAmount,
		Tax:            tax,
		Total:          tax.TotalWithTax,
		Currency:       currency,
	}, nil
}

func laborTotal(l entities.LaborEstimate) decimal.Decimal {
	hours := l.HourlyRate.Mul(decimal.NewFromInt(int64(l.Hours)))
	minutes := l.HourlyRate.Mul(decimal.NewFromInt(int64(l.Minutes))).Div(sixty)
	return hours.Add(minutes)
}

func validateSpec(spec entities.BreakdownSpec) error {
	for _, p := range spec.Parts {
		if p.UnitPrice.IsNegative() {
			return ErrNegativePartPrice
		}
		if p.Quantity < 1 {
			return ErrInvalidPartQuantity
		}
	}
	if spec.Labor.Hours < 0 {
		return ErrNegativeLaborHours
	}
	if spec.Labor.Minutes < 0 || spec.Labor.Minutes > 59 {
		return ErrInvalidLaborMinutes
	}
	if spec.Labor.HourlyRate.IsNegative() {
		return ErrNegativeHourlyRate
	}
	if !spec.Labor.Category.Valid() {
		return ErrInvalidLaborCategory
	}
	if spec.ServiceFee.IsNegative() {
		return ErrNegativeServiceFee
	}
	if spec.TaxRate.IsNegative() {
		return ErrNegativeTaxRate
	}
	return nil
}
