package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/clubshop/internal/catalog"
)

func listing(name, price string, months *int) catalog.Listing {
	return catalog.Listing{
		Name:              name,
		CatalogProductID:  "prod_" + name,
		CatalogPriceID:    "price_" + name + "_" + price,
		Price:             decimal.RequireFromString(price),
		InstallmentMonths: months,
		Category:          "training",
	}
}

func TestBuildProducts(t *testing.T) {
	listings := []catalog.Listing{
		listing("Camp", "100", nil),
		listing("Kit", "40", new(0)),
		listing("Camp", "110", new(6)),
		listing("Camp", "120", new(12)),
	}

	products, err := catalog.BuildProducts(listings)
	require.NoError(t, err)
	require.Len(t, products, 2)

	camp := products[0]
	assert.Equal(t, "Camp", camp.ID)
	assert.Equal(t, "price_Camp_100", camp.CatalogPriceID)
	assert.Equal(t, catalog.CategoryTraining, camp.Category)
	require.Len(t, camp.InstallmentPlans, 2)
	assert.Equal(t, 6, camp.InstallmentPlans[0].Months)
	assert.True(t, decimal.RequireFromString("1.1").Equal(camp.InstallmentPlans[0].Multiplier))
	assert.Equal(t, "price_Camp_110", camp.InstallmentPlans[0].CatalogPriceID)

	got, err := catalog.PriceFor(camp, 12)
	require.NoError(t, err)
	assert.Equal(t, "120.00", got.StringFixed(2))

	assert.Equal(t, "Kit", products[1].ID)
	assert.Empty(t, products[1].InstallmentPlans)
}

func TestBuildProducts_MembershipFlagWins(t *testing.T) {
	l := listing("Season", "250", nil)
	l.Category = "other"
	l.IsMembership = true

	products, err := catalog.BuildProducts([]catalog.Listing{l})
	require.NoError(t, err)
	assert.Equal(t, catalog.CategoryMembership, products[0].Category)
}

func TestBuildProducts_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		listings []catalog.Listing
	}{
		{
			name:     "MissingName",
			listings: []catalog.Listing{listing("", "10", nil)},
		},
		{
			name:     "NegativePrice",
			listings: []catalog.Listing{listing("Kit", "-1", nil)},
		},
		{
			name:     "NoPayInFull",
			listings: []catalog.Listing{listing("Camp", "110", new(6))},
		},
		{
			name:     "DuplicatePayInFull",
			listings: []catalog.Listing{listing("Kit", "40", nil), listing("Kit", "45", nil)},
		},
		{
			name: "DuplicatePlan",
			listings: []catalog.Listing{
				listing("Camp", "100", nil),
				listing("Camp", "110", new(6)),
				listing("Camp", "115", new(6)),
			},
		},
		{
			name:     "PlanNotAboveBase",
			listings: []catalog.Listing{listing("Camp", "100", nil), listing("Camp", "100", new(6))},
		},
		{
			name:     "PlanOnFreeProduct",
			listings: []catalog.Listing{listing("Trial", "0", nil), listing("Trial", "10", new(2))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := catalog.BuildProducts(tt.listings)
			assert.ErrorIs(t, err, catalog.ErrInvalidListing)
			assert.Nil(t, products)
		})
	}
}

func TestNewListing_Validate(t *testing.T) {
	valid := catalog.NewListing{
		Name:     "Kit",
		Price:    decimal.NewFromInt(40),
		Category: catalog.CategoryMerchandise,
	}
	assert.NoError(t, valid.Validate())

	noName := valid
	noName.Name = " "
	assert.ErrorIs(t, noName.Validate(), catalog.ErrInvalidListing)

	badMonths := valid
	badMonths.InstallmentMonths = new(0)
	assert.ErrorIs(t, badMonths.Validate(), catalog.ErrInvalidListing)

	badCategory := valid
	badCategory.Category = "raffle"
	assert.ErrorIs(t, badCategory.Validate(), catalog.ErrInvalidListing)
}
