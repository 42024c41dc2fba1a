package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/clubshop/internal/transaction"
)

// Criteria narrows a report to matching transactions and one spend category.
type Criteria struct {
	transaction.Criteria
	Category string
}

// CategorySpend is one bucket of spend, in display order.
type CategorySpend struct {
	Category string
	Total    decimal.Decimal
}

// View is a filtered purchase history with its aggregates.
type View struct {
	Transactions []*transaction.Transaction
	TotalSpend   decimal.Decimal
	ByCategory   []CategorySpend
}

// Build filters txs and aggregates the result. An empty category counts
// every category towards the total.
func Build(txs []*transaction.Transaction, c Criteria) View {
	filtered := transaction.Filter(txs, c.Criteria)

	category := c.Category
	if category == "" {
		category = transaction.CategoryAll
	}

	spend := transaction.SpendByCategory(filtered)
	categories := transaction.Categories(spend)

	byCategory := make([]CategorySpend, len(categories))
	for i, name := range categories {
		byCategory[i] = CategorySpend{Category: name, Total: spend[name]}
	}

	return View{
		Transactions: filtered,
		TotalSpend:   transaction.TotalSpend(filtered, category),
		ByCategory:   byCategory,
	}
}

// SpendMap returns the per-category totals keyed by category.
func (v View) SpendMap() map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(v.ByCategory))
	for _, c := range v.ByCategory {
		m[c.Category] = c.Total
	}

	return m
}

// Summary renders a plain-text overview of v, one category per line.
func Summary(v View) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Transactions: %d\n", len(v.Transactions))
	fmt.Fprintf(&sb, "Total spend: %s\n", v.TotalSpend.StringFixed(2))

	for _, c := range v.ByCategory {
		fmt.Fprintf(&sb, "* %s | %s\n", c.Category, c.Total.StringFixed(2))
	}

	return sb.String()
}
