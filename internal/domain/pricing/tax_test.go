package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistec_quotes/internal/domain/pricing"
)

func TestApplyTax(t *testing.T) {
	tax, err := pricing.ApplyTax(decimal.NewFromInt(6795), decimal.NewFromInt(20))
	require.NoError(t, err)

	assert.True(t, tax.TaxableAmount.Equal(decimal.NewFromInt(6795)))
	assert.True(t, tax.RatePercent.Equal(decimal.NewFromInt(20)))
	assert.True(t, tax.TaxAmount.Equal(decimal.NewFromInt(1359)), "tax: %s", tax.TaxAmount)
	assert.True(t, tax.TotalWithTax.Equal(decimal.NewFromInt(8154)), "total: %s", tax.TotalWithTax)
}

func TestApplyTax_ZeroRate(t *testing.T) {
	tax, err := pricing.ApplyTax(decimal.NewFromInt(500), decimal.Zero)
	require.NoError(t, err)

	assert.True(t, tax.TaxAmount.IsZero())
	assert.True(t, tax.TotalWithTax.Equal(decimal.NewFromInt(500)))
}

func TestApplyTax_NegativeRateRejected(t *testing.T) {
	_, err := pricing.ApplyTax(decimal.NewFromInt(500), decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, pricing.ErrNegativeTaxRate)
}

func TestApplyTax_ZeroAmount(t *testing.T) {
	tax, err := pricing.ApplyTax(decimal.Zero, decimal.NewFromInt(20))
	require.NoError(t, err)

	assert.True(t, tax.TaxAmount.IsZero())
	assert.True(t, tax.TotalWithTax.IsZero())
}
