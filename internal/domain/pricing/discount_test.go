package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"assistec_quotes/internal/domain/entities"
	"assistec_quotes/internal/domain/pricing"
)

func TestResolveDiscount(t *testing.T) {
	subtotal := decimal.NewFromInt(1000)
	capFifty := decimal.NewFromInt(50)

	cases := []struct {
		name     string
		discount *entities.Discount
		want     decimal.Decimal
	}{
		{
			name:     "nil discount resolves to zero",
			discount: nil,
			want:     decimal.Zero,
		},
		{
			name:     "percentage",
			discount: &entities.Discount{Kind: entities.DiscountKindPercentage, Value: decimal.NewFromInt(10)},
			want:     decimal.NewFromInt(100),
		},
		{
			name:     "percentage above 100 clamps to full subtotal",
			discount: &entities.Discount{Kind: entities.DiscountKindPercentage, Value: decimal.NewFromInt(150)},
			want:     subtotal,
		},
		{
			name:     "percentage capped",
			discount: &entities.Discount{Kind: entities.DiscountKindPercentage, Value: decimal.NewFromInt(10), Cap: &capFifty},
			want:     capFifty,
		},
		{
			name:     "negative percentage clamps to zero",
			discount: &entities.Discount{Kind: entities.DiscountKindPercentage, Value: decimal.NewFromInt(-10)},
			want:     decimal.Zero,
		},
		{
			name:     "fixed",
			discount: &entities.Discount{Kind: entities.DiscountKindFixed, Value: decimal.NewFromInt(250)},
			want:     decimal.NewFromInt(250),
		},
		{
			name:     "fixed above subtotal clamps to subtotal",
			discount: &entities.Discount{Kind: entities.DiscountKindFixed, Value: decimal.NewFromInt(5000)},
			want:     subtotal,
		},
		{
			name:     "negative fixed clamps to zero",
			discount: &entities.Discount{Kind: entities.DiscountKindFixed, Value: decimal.NewFromInt(-250)},
			want:     decimal.Zero,
		},
		{
			name:     "unknown kind resolves to zero",
			discount: &entities.Discount{Kind: "loyalty", Value: decimal.NewFromInt(10)},
			want:     decimal.Zero,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pricing.ResolveDiscount(tc.discount, subtotal)
			assert.True(t, got.Equal(tc.want), "got %s, want %s", got, tc.want)
			assert.False(t, got.IsNegative())
			assert.True(t, got.LessThanOrEqual(subtotal))
		})
	}
}

func TestResolveDiscount_ZeroSubtotal(t *testing.T) {
	d := &entities.Discount{Kind: entities.DiscountKindFixed, Value: decimal.NewFromInt(100)}
	got := pricing.ResolveDiscount(d, decimal.Zero)
	assert.True(t, got.IsZero(), "got %s", got)
}
