package transaction_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/clubshop/internal/club"
	txHandler "github.com/MrJamesThe3rd/clubshop/internal/http/transaction"
	"github.com/MrJamesThe3rd/clubshop/internal/transaction"
)

// brokenWriter accepts headers but fails every body write, like a client
// that hung up mid-download.
type brokenWriter struct {
	header   http.Header
	statuses []int
}

func (w *brokenWriter) Header() http.Header { return w.header }

func (w *brokenWriter) WriteHeader(status int) { w.statuses = append(w.statuses, status) }

func (w *brokenWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestHandler_ExportWriteFailureSendsNoErrorStatus(t *testing.T) {
	query := transaction.Query{
		Email: "parent@example.com",
		Scope: club.Scope{Club: "Rovers", AgeGroup: "U12", Division: "North"},
	}

	txs := []*transaction.Transaction{{
		ID: "tx_1", Status: transaction.StatusCompleted,
		Timestamp: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
		Items: []transaction.PurchasedItem{
			{ProductName: "Kit", Category: "merchandise", Quantity: 1, TotalPrice: decimal.NewFromInt(45)},
		},
	}}

	for _, path := range []string{"/export", "/export/archive"} {
		t.Run(path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			source := transaction.NewMockSource(ctrl)
			source.EXPECT().ListTransactions(gomock.Any(), query).Return(txs, nil)

			r := chi.NewRouter()
			txHandler.NewHandler(transaction.NewService(source), query).Routes(r)

			w := &brokenWriter{header: http.Header{}}
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

			assert.NotContains(t, w.statuses, http.StatusInternalServerError)
			assert.NotEqual(t, "text/plain; charset=utf-8", w.header.Get("Content-Type"))
		})
	}
}
