package transaction

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidCriteria = errors.New("invalid filter")

// Criteria narrows a list of transactions. Zero values impose no constraint.
type Criteria struct {
	Search    string
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

// Filter returns the transactions matching c, in their original order.
func Filter(txs []*Transaction, c Criteria) []*Transaction {
	search := strings.ToLower(strings.TrimSpace(c.Search))

	var end time.Time
	if c.EndDate != nil {
		end = EndOfDay(*c.EndDate)
	}

	out := make([]*Transaction, 0, len(txs))

	for _, tx := range txs {
		if search != "" && !matchesSearch(tx, search) {
			continue
		}

		if c.Status != "" && c.Status != StatusAll && c.Status != string(tx.Status) {
			continue
		}

		if c.StartDate != nil && tx.Timestamp.Before(*c.StartDate) {
			continue
		}

		if c.EndDate != nil && tx.Timestamp.After(end) {
			continue
		}

		out = append(out, tx)
	}

	return out
}

// matchesSearch reports whether any item's name, category or total price
// contains the lower-cased search term.
func matchesSearch(tx *Transaction, search string) bool {
	for _, item := range tx.Items {
		if strings.Contains(strings.ToLower(item.ProductName), search) ||
			strings.Contains(strings.ToLower(item.Category), search) ||
			strings.Contains(item.TotalPrice.String(), search) {
			return true
		}
	}

	return false
}

// EndOfDay returns the last millisecond of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
