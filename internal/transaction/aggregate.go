package transaction

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// TotalSpend sums item totals across txs for category, or for every
// category when it is CategoryAll.
func TotalSpend(txs []*Transaction, category string) decimal.Decimal {
	total := decimal.Zero

	for _, tx := range txs {
		for _, item := range tx.Items {
			if category == CategoryAll || item.Category == category {
				total = total.Add(item.TotalPrice)
			}
		}
	}

	return total.Round(2)
}

// SpendByCategory sums item totals per category. Categories come from the
// data, so unfamiliar ones get their own bucket.
func SpendByCategory(txs []*Transaction) map[string]decimal.Decimal {
	spend := make(map[string]decimal.Decimal)

	for _, tx := range txs {
		for _, item := range tx.Items {
			spend[item.Category] = spend[item.Category].Add(item.TotalPrice)
		}
	}

	for category, total := range spend {
		spend[category] = total.Round(2)
	}

	return spend
}

// Categories orders the buckets of spend by descending total, then by name.
func Categories(spend map[string]decimal.Decimal) []string {
	names := make([]string, 0, len(spend))
	for name := range spend {
		names = append(names, name)
	}

	slices.SortFunc(names, func(a, b string) int {
		if c := spend[b].Cmp(spend[a]); c != 0 {
			return c
		}

		return strings.Compare(a, b)
	})

	return names
}
