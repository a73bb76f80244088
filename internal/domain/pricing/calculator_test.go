package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistec_quotes/internal/domain/entities"
	"assistec_quotes/internal/domain/pricing"
)

// baseSpec is the reference job: two parts, two hours of repair labor, a
// flat service fee, a 10% discount and 20% tax.
//
//	partsTotal = 850 + 3200 = 4050
//	laborTotal = 2 * 1500  = 3000
//	subtotal   = 4050 + 3000 + 500 = 7550
//	discount   = 755, afterDiscount = 6795
//	tax        = 1359, total = 8154
func baseSpec() entities.BreakdownSpec {
	cap := decimal.NewFromInt(7550)
	return entities.BreakdownSpec{
		Parts: []entities.PartLine{
			{ID: "part-1", Name: "Compressor", UnitPrice: decimal.NewFromInt(850), Quantity: 1},
			{ID: "part-2", Name: "Control board", UnitPrice: decimal.NewFromInt(3200), Quantity: 1},
		},
		Labor: entities.LaborEstimate{
			Hours:      2,
			Minutes:    0,
			HourlyRate: decimal.NewFromInt(1500),
			Category:   entities.LaborCategoryRepair,
		},
		ServiceFee: decimal.NewFromInt(500),
		Discount: &entities.Discount{
			Kind:  entities.DiscountKindPercentage,
			Value: decimal.NewFromInt(10),
			Cap:   &cap,
		},
		TaxRate: decimal.NewFromInt(20),
	}
}

func TestComputeBreakdown_ReferenceJob(t *testing.T) {
	b, err := pricing.ComputeBreakdown(baseSpec())
	require.NoError(t, err)

	assert.True(t, b.PartsTotal.Equal(decimal.NewFromInt(4050)), "parts total: %s", b.PartsTotal)
	assert.True(t, b.LaborTotal.Equal(decimal.NewFromInt(3000)), "labor total: %s", b.LaborTotal)
	assert.True(t, b.Subtotal.Equal(decimal.NewFromInt(7550)), "subtotal: %s", b.Subtotal)
	assert.True(t, b.DiscountAmount.Equal(decimal.NewFromInt(755)), "discount: %s", b.DiscountAmount)
	assert.True(t, b.Tax.TaxableAmount.Equal(decimal.NewFromInt(6795)), "taxable: %s", b.Tax.TaxableAmount)
	assert.True(t, b.Tax.TaxAmount.Equal(decimal.NewFromInt(1359)), "tax: %s", b.Tax.TaxAmount)
	assert.True(t, b.Total.Equal(decimal.NewFromInt(8154)), "total: %s", b.Total)
	assert.Equal(t, "BRL", b.Currency)
}

func TestComputeBreakdown_FixedDiscountClampsToSubtotal(t *testing.T) {
	spec := baseSpec()
	spec.Discount = &entities.Discount{
		Kind:  entities.DiscountKindFixed,
		Value: decimal.NewFromInt(100000),
	}

	b, err := pricing.ComputeBreakdown(spec)
	require.NoError(t, err)

	assert.True(t, b.DiscountAmount.Equal(decimal.NewFromInt(7550)), "discount: %s", b.DiscountAmount)
	assert.True(t, b.Tax.TaxableAmount.IsZero(), "taxable: %s", b.Tax.TaxableAmount)
	assert.True(t, b.Tax.TaxAmount.IsZero(), "tax: %s", b.Tax.TaxAmount)
	assert.True(t, b.Total.IsZero(), "total: %s", b.Total)
}

func TestComputeBreakdown_MinutesOnlyLabor(t *testing.T) {
	spec := entities.BreakdownSpec{
		Labor: entities.LaborEstimate{
			Hours:      0,
			Minutes:    30,
			HourlyRate: decimal.NewFromInt(1000),
			Category:   entities.LaborCategoryDiagnosis,
		},
		TaxRate: decimal.NewFromInt(20),
	}

	b, err := pricing.ComputeBreakdown(spec)
	require.NoError(t, err)

	assert.True(t, b.PartsTotal.IsZero(), "parts total: %s", b.PartsTotal)
	assert.True(t, b.LaborTotal.Equal(decimal.NewFromInt(500)), "labor total: %s", b.LaborTotal)
	assert.True(t, b.Subtotal.Equal(decimal.NewFromInt(500)), "subtotal: %s", b.Subtotal)
	assert.True(t, b.Total.Equal(decimal.NewFromInt(600)), "total: %s", b.Total)
}

func TestComputeBreakdown_NoDiscountNoTax(t *testing.T) {
	spec := baseSpec()
	spec.Discount = nil
	spec.TaxRate = decimal.Zero

	b, err := pricing.ComputeBreakdown(spec)
	require.NoError(t, err)

	assert.True(t, b.DiscountAmount.IsZero())
	assert.True(t, b.Tax.TaxAmount.IsZero())
	assert.True(t, b.Total.Equal(b.Subtotal), "total %s should equal subtotal %s", b.Total, b.Subtotal)
}

func TestComputeBreakdown_PartQuantityMultiplies(t *testing.T) {
	spec := entities.BreakdownSpec{
		Parts: []entities.PartLine{
			{ID: "part-1", Name: "Spark plug", UnitPrice: decimal.NewFromInt(45), Quantity: 4},
		},
		Labor: entities.LaborEstimate{
			HourlyRate: decimal.Zero,
			Category:   entities.LaborCategoryMaintenance,
		},
	}

	b, err := pricing.ComputeBreakdown(spec)
	require.NoError(t, err)
	assert.True(t, b.PartsTotal.Equal(decimal.NewFromInt(180)), "parts total: %s", b.PartsTotal)
}

func TestComputeBreakdown_Deterministic(t *testing.T) {
	spec := baseSpec()

	first, err := pricing.ComputeBreakdown(spec)
	require.NoError(t, err)
	second, err := pricing.ComputeBreakdown(spec)
	require.NoError(t, err)

	assert.Equal(t, first.Total.String(), second.Total.String())
	assert.Equal(t, first.DiscountAmount.String(), second.DiscountAmount.String())
	assert.Equal(t, first.Tax.TaxAmount.String(), second.Tax.TaxAmount.String())
	assert.Equal(t, first.Subtotal.String(), second.Subtotal.String())
}

func TestComputeBreakdown_CurrencyPassthrough(t *testing.T) {
	spec := baseSpec()
	spec.Currency = "USD"

	b, err := pricing.ComputeBreakdown(spec)
	require.NoError(t, err)
	assert.Equal(t, "USD", b.Currency)
}

func TestComputeBreakdown_Validation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*entities.BreakdownSpec)
		wantErr error
	}{
		{
			name: "negative part price",
			mutate: func(s *entities.BreakdownSpec) {
				s.Parts[0].UnitPrice = decimal.NewFromInt(-1)
			},
			wantErr: pricing.ErrNegativePartPrice,
		},
		{
			name: "zero part quantity",
			mutate: func(s *entities.BreakdownSpec) {
				s.Parts[0].Quantity = 0
			},
			wantErr: pricing.ErrInvalidPartQuantity,
		},
		{
			name: "negative labor hours",
			mutate: func(s *entities.BreakdownSpec) {
				s.Labor.Hours = -1
			},
			wantErr: pricing.ErrNegativeLaborHours,
		},
		{
			name: "labor minutes above 59",
			mutate: func(s *entities.BreakdownSpec) {
				s.Labor.Minutes = 60
			},
			wantErr: pricing.ErrInvalidLaborMinutes,
		},
		{
			name: "negative labor minutes",
			mutate: func(s *entities.BreakdownSpec) {
				s.Labor.Minutes = -5
			},
			wantErr: pricing.ErrInvalidLaborMinutes,
		},
		{
			name: "negative hourly rate",
			mutate: func(s *entities.BreakdownSpec) {
				s.Labor.HourlyRate = decimal.NewFromInt(-100)
			},
			wantErr: pricing.ErrNegativeHourlyRate,
		},
		{
			name: "unknown labor category",
			mutate: func(s *entities.BreakdownSpec) {
				s.Labor.Category = "plumbing"
			},
			wantErr: pricing.ErrInvalidLaborCategory,
		},
		{
			name: "negative service fee",
			mutate: func(s *entities.BreakdownSpec) {
				s.ServiceFee = decimal.NewFromInt(-50)
			},
			wantErr: pricing.ErrNegativeServiceFee,
		},
		{
			name: "negative tax rate",
			mutate: func(s *entities.BreakdownSpec) {
				s.TaxRate = decimal.NewFromInt(-5)
			},
			wantErr: pricing.ErrNegativeTaxRate,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := baseSpec()
			tc.mutate(&spec)

			_, err := pricing.ComputeBreakdown(spec)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, pricing.ErrInvalidInput, "every validation error unwraps to the base error")
		})
	}
}
