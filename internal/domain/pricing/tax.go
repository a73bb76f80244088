package pricing

import (
	"github.com/shopspring/decimal"

	"assistec_quotes/internal/domain/entities"
)

// ApplyTax computes the tax block over a post-discount amount. The discount
// must already be applied: tax is never computed on the pre-discount
// subtotal or on a tax-inclusive total.
//
// A negative rate is a configuration error and is rejected, unlike the
// clamping policy for discounts.
func ApplyTax(amountAfterDiscount, ratePercent decimal.Decimal) (entities.TaxCalculation, error) {
	if ratePercent.IsNegative() {
		return entities.TaxCalculation{}, ErrNegativeTaxRate
	}

	taxAmount := amountAfterDiscount.Mul(ratePercent).Div(oneHundred)
	return entities.TaxCalculation{
		TaxableAmount: amountAfterDiscount,
		RatePercent:   ratePercent,
		TaxAmount:     taxAmount,
		TotalWithTax:  amountAfterDiscount.Add(taxAmount),
	}, nil
}
