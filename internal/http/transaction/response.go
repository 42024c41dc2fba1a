package transaction

import (
	"time"

	"github.com/MrJamesThe3rd/clubshop/internal/report"
	"github.com/MrJamesThe3rd/clubshop/internal/transaction"
)

type transactionResponse struct {
	ID        string                  `json:"id"`
	Amount    string                  `json:"amount"`
	Currency  string                  `json:"currency"`
	Status    transaction.Status      `json:"status"`
	Club      string                  `json:"club"`
	AgeGroup  string                  `json:"age_group"`
	Division  string                  `json:"division"`
	Timestamp time.Time               `json:"timestamp"`
	Items     []purchasedItemResponse `json:"items"`
}

type purchasedItemResponse struct {
	ProductID         string `json:"product_id"`
	ProductName       string `json:"product_name"`
	Category          string `json:"category"`
	Quantity          int    `json:"quantity"`
	InstallmentMonths *int   `json:"installment_months,omitempty"`
	TotalPrice        string `json:"total_price"`
}

type reportResponse struct {
	Transactions    []transactionResponse `json:"transactions"`
	TotalSpend      string                `json:"total_spend"`
	SpendByCategory map[string]string     `json:"spend_by_category"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	resp := transactionResponse{
		ID:        tx.ID,
		Amount:    tx.Amount.StringFixed(2),
		Currency:  tx.Currency,
		Status:    tx.Status,
		Club:      tx.Club,
		AgeGroup:  tx.AgeGroup,
		Division:  tx.Division,
		Timestamp: tx.Timestamp,
		Items:     make([]purchasedItemResponse, len(tx.Items)),
	}

	for i, it := range tx.Items {
		resp.Items[i] = purchasedItemResponse{
			ProductID:         it.ProductID,
			ProductName:       it.ProductName,
			Category:          it.Category,
			Quantity:          it.Quantity,
			InstallmentMonths: it.InstallmentMonths,
			TotalPrice:        it.TotalPrice.StringFixed(2),
		}
	}

	return resp
}

func toReportResponse(v report.View) reportResponse {
	resp := reportResponse{
		Transactions:    make([]transactionResponse, len(v.Transactions)),
		TotalSpend:      v.TotalSpend.StringFixed(2),
		SpendByCategory: make(map[string]string, len(v.ByCategory)),
	}

	for i, tx := range v.Transactions {
		resp.Transactions[i] = toResponse(tx)
	}

	for _, c := range v.ByCategory {
		resp.SpendByCategory[c.Category] = c.Total.StringFixed(2)
	}

	return resp
}
