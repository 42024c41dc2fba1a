package transaction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the settlement state of a purchase.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusFailed    Status = "failed"
)

// StatusAll disables status filtering.
const StatusAll = "all"

// CategoryAll selects every category in spend totals.
const CategoryAll = "all"

// Transaction is a completed checkout as reported by the club API.
type Transaction struct {
	ID        string
	Amount    decimal.Decimal
	Currency  string
	Status    Status
	Club      string
	AgeGroup  string
	Division  string
	Timestamp time.Time
	Items     []PurchasedItem
}

// PurchasedItem is one product line of a transaction. Category is kept as
// reported so that categories unknown to the catalog still aggregate.
type PurchasedItem struct {
	ProductID         string
	ProductName       string
	Category          string
	Quantity          int
	InstallmentMonths *int
	TotalPrice        decimal.Decimal
}
