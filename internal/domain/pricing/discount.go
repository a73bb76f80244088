package pricing

import (
	"github.com/shopspring/decimal"

	"assistec_quotes/internal/domain/entities"
)

var (
	oneHundred = decimal.NewFromInt(100)
)

// ResolveDiscount turns a discount specification into a concrete amount for
// the given subtotal. Out-of-range inputs are clamped, never rejected: a
// negative value resolves to zero, a percentage above 100 is treated as 100
// and a fixed amount above the subtotal is capped at the subtotal. The
// result always satisfies 0 <= amount <= subtotal.
//
// A nil discount resolves to zero.
func ResolveDiscount(d *entities.Discount, subtotal decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}

	value := d.Value
	if value.IsNegative() {
		value = decimal.Zero
	}

	var amount decimal.Decimal
	switch d.Kind {
	case entities.DiscountKindPercentage:
		if value.GreaterThan(oneHundred) {
			value = oneHundred
		}
		amount = subtotal.Mul(value).Div(oneHundred)
		if d.Cap != nil && amount.GreaterThan(*d.Cap) {
			amount = *d.Cap
		}
	case entities.DiscountKindFixed:
		amount = value
	default:
		return decimal.Zero
	}

	// Whatever the variant said, a discount can never push the total negative.
	if amount.IsNegative() {
		return decimal.Zero
	}
	if amount.GreaterThan(subtotal) {
		return subtotal
	}
	return amount
}
