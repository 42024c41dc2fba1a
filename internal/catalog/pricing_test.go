package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/clubshop/internal/catalog"
)

func product(base string, plans ...catalog.InstallmentPlan) *catalog.Product {
	return &catalog.Product{
		ID:               "Season Membership",
		CatalogProductID: "prod_1",
		CatalogPriceID:   "price_1",
		BasePrice:        decimal.RequireFromString(base),
		Category:         catalog.CategoryMembership,
		InstallmentPlans: plans,
	}
}

func plan(months int, multiplier string) catalog.InstallmentPlan {
	return catalog.InstallmentPlan{Months: months, Multiplier: decimal.RequireFromString(multiplier)}
}

func TestPriceFor(t *testing.T) {
	tests := []struct {
		name    string
		product *catalog.Product
		months  int
		want    string
		wantErr error
	}{
		{
			name:    "PayInFull",
			product: product("100", plan(6, "1.1")),
			months:  0,
			want:    "100.00",
		},
		{
			name:    "SixMonthPlan",
			product: product("100", plan(6, "1.1")),
			months:  6,
			want:    "110.00",
		},
		{
			name:    "RoundsToCents",
			product: product("33.33", plan(3, "1.15")),
			months:  3,
			want:    "38.33",
		},
		{
			name:    "UnknownPlan",
			product: product("100", plan(6, "1.1")),
			months:  12,
			wantErr: catalog.ErrPlanNotFound,
		},
		{
			name:    "NegativeMonths",
			product: product("100"),
			months:  -1,
			wantErr: catalog.ErrPlanNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.PriceFor(tt.product, tt.months)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestPriceFor_PayInFullIsUnmodified(t *testing.T) {
	p := product("19.999")

	got, err := catalog.PriceFor(p, catalog.PayInFull)
	require.NoError(t, err)
	assert.True(t, p.BasePrice.Equal(got))
}

func TestMonthlyPrice(t *testing.T) {
	assert.Equal(t, "18.33", catalog.MonthlyPrice(decimal.NewFromInt(110), 6).StringFixed(2))
	assert.Equal(t, "110.00", catalog.MonthlyPrice(decimal.NewFromInt(110), 0).StringFixed(2))
}

func TestProduct_PriceOptions(t *testing.T) {
	p := product("120", plan(12, "1.2"), plan(6, "1.1"))

	options := p.PriceOptions()
	require.Len(t, options, 3)

	assert.Equal(t, 0, options[0].Months)
	assert.Equal(t, "120.00", options[0].Total.StringFixed(2))
	assert.Equal(t, "price_1", options[0].CatalogPriceID)

	assert.Equal(t, 6, options[1].Months)
	assert.Equal(t, "132.00", options[1].Total.StringFixed(2))
	assert.Equal(t, "22.00", options[1].Monthly.StringFixed(2))

	assert.Equal(t, 12, options[2].Months)
	assert.Equal(t, "144.00", options[2].Total.StringFixed(2))
	assert.Equal(t, "12.00", options[2].Monthly.StringFixed(2))
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, catalog.CategoryTraining, catalog.ParseCategory(" Training "))
	assert.Equal(t, catalog.CategoryMatch, catalog.ParseCategory("match"))
	assert.Equal(t, catalog.CategoryOther, catalog.ParseCategory("raffle"))
	assert.Equal(t, catalog.CategoryOther, catalog.ParseCategory(""))
}
