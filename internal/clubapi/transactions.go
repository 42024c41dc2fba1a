package clubapi

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/clubshop/internal/club"
	"github.com/MrJamesThe3rd/clubshop/internal/transaction"
)

type purchasedItemDTO struct {
	ProductID         string          `json:"productId"`
	ProductName       string          `json:"productName" validate:"required"`
	Category          string          `json:"category"`
	Quantity          int             `json:"quantity" validate:"gte=0"`
	InstallmentMonths *int            `json:"installmentMonths" validate:"omitempty,gt=0"`
	TotalPrice        decimal.Decimal `json:"totalPrice"`
}

type transactionDTO struct {
	ID             string             `json:"id" validate:"required"`
	Amount         decimal.Decimal    `json:"amount"`
	Currency       string             `json:"currency"`
	Status         string             `json:"status" validate:"oneof=completed pending failed"`
	ClubName       string             `json:"clubName"`
	AgeGroup       string             `json:"ageGroup"`
	Division       string             `json:"division"`
	Timestamp      time.Time          `json:"timestamp" validate:"required"`
	PurchasedItems []purchasedItemDTO `json:"purchasedItems" validate:"dive"`
}

type listTransactionsResponse struct {
	Transactions []transactionDTO `json:"transactions" validate:"required,dive"`
}

// ListTransactions fetches the buyer's purchase history within the query's
// club scope.
func (c *Client) ListTransactions(ctx context.Context, q transaction.Query) ([]*transaction.Transaction, error) {
	query := scopeQuery(q.Scope)
	query.Set("email", q.Email)

	var resp listTransactionsResponse

	if err := c.do(ctx, http.MethodGet, "/transactions/list", query, nil, &resp); err != nil {
		return nil, err
	}

	txs := make([]*transaction.Transaction, len(resp.Transactions))
	for i, t := range resp.Transactions {
		items := make([]transaction.PurchasedItem, len(t.PurchasedItems))
		for j, it := range t.PurchasedItems {
			items[j] = transaction.PurchasedItem{
				ProductID:         it.ProductID,
				ProductName:       it.ProductName,
				Category:          it.Category,
				Quantity:          it.Quantity,
				InstallmentMonths: it.InstallmentMonths,
				TotalPrice:        it.TotalPrice,
			}
		}

		txs[i] = &transaction.Transaction{
			ID:        t.ID,
			Amount:    t.Amount,
			Currency:  t.Currency,
			Status:    transaction.Status(t.Status),
			Club:      t.ClubName,
			AgeGroup:  t.AgeGroup,
			Division:  t.Division,
			Timestamp: t.Timestamp,
			Items:     items,
		}
	}

	return txs, nil
}

func scopeQuery(scope club.Scope) url.Values {
	return url.Values{
		"clubName": {scope.Club},
		"ageGroup": {scope.AgeGroup},
		"division": {scope.Division},
	}
}
