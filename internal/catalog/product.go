package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Category groups products for display and reporting.
type Category string

const (
	CategoryMembership  Category = "membership"
	CategoryMerchandise Category = "merchandise"
	CategoryTraining    Category = "training"
	CategoryMatch       Category = "match"
	CategoryOther       Category = "other"
)

// ParseCategory maps a catalog category string onto a known Category.
// Unknown values fall back to CategoryOther.
func ParseCategory(s string) Category {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryMembership, CategoryMerchandise, CategoryTraining, CategoryMatch:
		return c
	}

	return CategoryOther
}

// InstallmentPlan is an alternative payment schedule for a product.
type InstallmentPlan struct {
	Months         int             `json:"months"`
	Multiplier     decimal.Decimal `json:"multiplier"`
	CatalogPriceID string          `json:"catalog_price_id,omitempty"`
}

// Product is a purchasable catalog entry. ID is the human-readable product
// name and is unique within a catalog.
type Product struct {
	ID               string            `json:"id"`
	CatalogProductID string            `json:"catalog_product_id"`
	CatalogPriceID   string            `json:"catalog_price_id"`
	BasePrice        decimal.Decimal   `json:"base_price"`
	Category         Category          `json:"category"`
	IsMembership     bool              `json:"is_membership"`
	InstallmentPlans []InstallmentPlan `json:"installment_plans,omitempty"`
}

// Plan returns the installment plan with the given length, if any.
func (p *Product) Plan(months int) (InstallmentPlan, bool) {
	for _, plan := range p.InstallmentPlans {
		if plan.Months == months {
			return plan, true
		}
	}

	return InstallmentPlan{}, false
}
