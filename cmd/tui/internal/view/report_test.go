package view

import (
	"archive/zip"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/clubshop/internal/report"
	"github.com/MrJamesThe3rd/clubshop/internal/transaction"
)

func purchase(id string, status transaction.Status, category, total string) *transaction.Transaction {
	amount := decimal.RequireFromString(total)

	return &transaction.Transaction{
		ID:        id,
		Amount:    amount,
		Currency:  "eur",
		Status:    status,
		Timestamp: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		Items: []transaction.PurchasedItem{
			{ProductID: id, ProductName: "Item " + id, Category: category, Quantity: 1, TotalPrice: amount},
		},
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedModel(t *testing.T) TransactionsModel {
	t.Helper()

	txs := []*transaction.Transaction{
		purchase("a", transaction.StatusCompleted, "membership", "120.00"),
		purchase("b", transaction.StatusPending, "merchandise", "35.50"),
		purchase("c", transaction.StatusCompleted, "merchandise", "10.00"),
	}

	next, _ := NewTransactionsModel(nil, transaction.Query{}).Update(txLoadedMsg{txs: txs})

	return next.(TransactionsModel)
}

func TestTransactionsModel_StatusCycle(t *testing.T) {
	m := loadedModel(t)
	assert.Len(t, m.view.Transactions, 3)

	next, _ := m.Update(key("s"))
	m = next.(TransactionsModel)

	assert.Equal(t, string(transaction.StatusCompleted), m.criteria.Status)
	assert.Len(t, m.view.Transactions, 2)
	assert.Equal(t, "130", m.view.TotalSpend.String())
}

func TestTransactionsModel_CategoryCycle(t *testing.T) {
	m := loadedModel(t)

	// Buckets are sorted by spend, so membership comes first.
	next, _ := m.Update(key("c"))
	m = next.(TransactionsModel)
	assert.Equal(t, "membership", m.selectedCategory())
	assert.Equal(t, "120", m.view.TotalSpend.String())

	next, _ = m.Update(key("c"))
	m = next.(TransactionsModel)
	assert.Equal(t, "merchandise", m.selectedCategory())
	assert.Equal(t, "45.5", m.view.TotalSpend.String())

	next, _ = m.Update(key("c"))
	m = next.(TransactionsModel)
	assert.Equal(t, transaction.CategoryAll, m.selectedCategory())
}

func TestTransactionsModel_Timeframe(t *testing.T) {
	m := loadedModel(t)

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	next, _ := m.Update(TimeframeSelectedMsg{Label: "October", Start: &start})
	m = next.(TransactionsModel)

	assert.Empty(t, m.view.Transactions)
	assert.Equal(t, "October", m.timeframe)
	assert.Equal(t, txStateBrowse, m.state)
}

func TestWriteArchive(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	v := report.Build([]*transaction.Transaction{
		purchase("a", transaction.StatusCompleted, "membership", "120.00"),
	}, report.Criteria{})

	path, err := writeArchive(dir, v, time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "purchases_20261015_093000.zip"), path)

	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	t.Cleanup(func() { zr.Close() })

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}

	assert.ElementsMatch(t, []string{"transactions.csv", "summary.txt"}, names)
}
