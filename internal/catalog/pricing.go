package catalog

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// PayInFull is the plan length that selects the undiscounted base price.
const PayInFull = 0

// PriceFor returns the payable price of p under the plan with the given
// number of months. PayInFull returns the base price unmodified.
func PriceFor(p *Product, months int) (decimal.Decimal, error) {
	if months == PayInFull {
		return p.BasePrice, nil
	}

	plan, ok := p.Plan(months)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q has no %d month plan", ErrPlanNotFound, p.ID, months)
	}

	return p.BasePrice.Mul(plan.Multiplier).Round(2), nil
}

// MonthlyPrice splits a plan total into equal monthly payments.
func MonthlyPrice(total decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return total
	}

	return total.Div(decimal.NewFromInt(int64(months))).Round(2)
}

// PriceOption is one way of paying for a product.
type PriceOption struct {
	Months         int             `json:"months"`
	Total          decimal.Decimal `json:"total"`
	Monthly        decimal.Decimal `json:"monthly"`
	CatalogPriceID string          `json:"catalog_price_id,omitempty"`
}

// PriceOptions lists pay-in-full followed by every installment plan, shortest first.
func (p *Product) PriceOptions() []PriceOption {
	options := make([]PriceOption, 0, len(p.InstallmentPlans)+1)
	options = append(options, PriceOption{
		Months:         PayInFull,
		Total:          p.BasePrice,
		Monthly:        p.BasePrice,
		CatalogPriceID: p.CatalogPriceID,
	})

	for _, plan := range p.InstallmentPlans {
		total := p.BasePrice.Mul(plan.Multiplier).Round(2)
		options = append(options, PriceOption{
			Months:         plan.Months,
			Total:          total,
			Monthly:        MonthlyPrice(total, plan.Months),
			CatalogPriceID: plan.CatalogPriceID,
		})
	}

	slices.SortStableFunc(options, func(a, b PriceOption) int {
		return a.Months - b.Months
	})

	return options
}
