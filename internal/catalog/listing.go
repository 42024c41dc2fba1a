package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Listing is a single priced row of the remote catalog. A product is listed
// once for pay-in-full and once more per installment plan.
type Listing struct {
	Name              string
	CatalogProductID  string
	CatalogPriceID    string
	Price             decimal.Decimal
	InstallmentMonths *int
	Category          string
	IsMembership      bool
}

func (l Listing) months() int {
	if l.InstallmentMonths == nil {
		return PayInFull
	}

	return *l.InstallmentMonths
}

// NewListing describes a product to be created in the remote catalog.
type NewListing struct {
	Name              string
	Price             decimal.Decimal
	InstallmentMonths *int
	Category          Category
	IsMembership      bool
}

// Validate checks a listing before it is submitted for creation.
func (l NewListing) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidListing)
	}

	if l.Price.IsNegative() {
		return fmt.Errorf("%w: %q has a negative price", ErrInvalidListing, l.Name)
	}

	if l.InstallmentMonths != nil && *l.InstallmentMonths <= 0 {
		return fmt.Errorf("%w: %q installment months must be positive", ErrInvalidListing, l.Name)
	}

	if ParseCategory(string(l.Category)) != l.Category {
		return fmt.Errorf("%w: %q has unknown category %q", ErrInvalidListing, l.Name, l.Category)
	}

	return nil
}

// BuildProducts groups listings by name into products. The pay-in-full
// listing supplies the base price; every other listing becomes an
// installment plan priced relative to it. Products keep the order in which
// their names first appear.
func BuildProducts(listings []Listing) ([]*Product, error) {
	type group struct {
		base  *Listing
		plans []Listing
	}

	var order []string

	groups := make(map[string]*group)

	for i := range listings {
		l := listings[i]

		name := strings.TrimSpace(l.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: listing %d has no name", ErrInvalidListing, i)
		}

		if l.Price.IsNegative() {
			return nil, fmt.Errorf("%w: %q has a negative price", ErrInvalidListing, name)
		}

		if l.months() < 0 {
			return nil, fmt.Errorf("%w: %q has negative installment months", ErrInvalidListing, name)
		}

		g, ok := groups[name]
		if !ok {
			g = &group{}
			groups[name] = g
			order = append(order, name)
		}

		if l.months() != PayInFull {
			g.plans = append(g.plans, l)
			continue
		}

		if g.base != nil {
			return nil, fmt.Errorf("%w: %q is listed twice without installments", ErrInvalidListing, name)
		}

		g.base = &l
	}

	products := make([]*Product, 0, len(order))

	for _, name := range order {
		g := groups[name]
		if g.base == nil {
			return nil, fmt.Errorf("%w: %q has no pay-in-full listing", ErrInvalidListing, name)
		}

		p := &Product{
			ID:               name,
			CatalogProductID: g.base.CatalogProductID,
			CatalogPriceID:   g.base.CatalogPriceID,
			BasePrice:        g.base.Price,
			Category:         ParseCategory(g.base.Category),
			IsMembership:     g.base.IsMembership,
		}

		if p.IsMembership {
			p.Category = CategoryMembership
		}

		for _, l := range g.plans {
			if _, dup := p.Plan(l.months()); dup {
				return nil, fmt.Errorf("%w: %q has two %d month plans", ErrInvalidListing, name, l.months())
			}

			if !p.BasePrice.IsPositive() {
				return nil, fmt.Errorf("%w: %q has installments but no base price", ErrInvalidListing, name)
			}

			multiplier := l.Price.Div(p.BasePrice)
			if !multiplier.GreaterThan(decimal.NewFromInt(1)) {
				return nil, fmt.Errorf("%w: %q %d month plan is not above the base price", ErrInvalidListing, name, l.months())
			}

			p.InstallmentPlans = append(p.InstallmentPlans, InstallmentPlan{
				Months:         l.months(),
				Multiplier:     multiplier,
				CatalogPriceID: l.CatalogPriceID,
			})
		}

		products = append(products, p)
	}

	return products, nil
}
