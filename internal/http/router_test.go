package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/clubshop/internal/cart"
	cartStore "github.com/MrJamesThe3rd/clubshop/internal/cart/store"
	"github.com/MrJamesThe3rd/clubshop/internal/catalog"
	"github.com/MrJamesThe3rd/clubshop/internal/checkout"
	"github.com/MrJamesThe3rd/clubshop/internal/club"
	clubHttp "github.com/MrJamesThe3rd/clubshop/internal/http"
	cartHandler "github.com/MrJamesThe3rd/clubshop/internal/http/cart"
	catalogHandler "github.com/MrJamesThe3rd/clubshop/internal/http/catalog"
	checkoutHandler "github.com/MrJamesThe3rd/clubshop/internal/http/checkout"
	payoutHandler "github.com/MrJamesThe3rd/clubshop/internal/http/payout"
	txHandler "github.com/MrJamesThe3rd/clubshop/internal/http/transaction"
	"github.com/MrJamesThe3rd/clubshop/internal/importer"
	"github.com/MrJamesThe3rd/clubshop/internal/payout"
	"github.com/MrJamesThe3rd/clubshop/internal/transaction"
)

var scope = club.Scope{Club: "Rovers", AgeGroup: "U12", Division: "North"}

type mocks struct {
	catalog  *catalog.MockSource
	sessions *checkout.MockSessionCreator
	txs      *transaction.MockSource
	payout   *payout.MockSource
}

func newServer(t *testing.T) (*httptest.Server, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := mocks{
		catalog:  catalog.NewMockSource(ctrl),
		sessions: checkout.NewMockSessionCreator(ctrl),
		txs:      transaction.NewMockSource(ctrl),
		payout:   payout.NewMockSource(ctrl),
	}

	var (
		catalogService     = catalog.NewService(m.catalog)
		cartService        = cart.New(context.Background(), cartStore.NewMemory())
		checkoutService    = checkout.NewService(m.sessions)
		transactionService = transaction.NewService(m.txs)
		payoutService      = payout.NewService(m.payout)
	)

	router := clubHttp.New(
		clubHttp.Options{AllowedOrigins: []string{"https://shop.example"}, Timeout: 5 * time.Second},
		catalogHandler.NewHandler(catalogService, importer.NewService(), scope),
		cartHandler.NewHandler(cartService, catalogService),
		checkoutHandler.NewHandler(checkoutService, cartService, scope),
		txHandler.NewHandler(transactionService, transaction.Query{Email: "parent@example.com", Scope: scope}),
		payoutHandler.NewHandler(payoutService, scope.Club, "treasurer@rovers.example"),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv, m
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, b
}

func listings() []catalog.Listing {
	return []catalog.Listing{
		{Name: "Kit", CatalogProductID: "prod_kit", CatalogPriceID: "price_kit", Price: decimal.NewFromInt(45), Category: "merchandise"},
		{Name: "Membership", CatalogProductID: "prod_mem", CatalogPriceID: "price_mem", Price: decimal.NewFromInt(120), IsMembership: true},
		{Name: "Membership", CatalogProductID: "prod_mem", CatalogPriceID: "price_mem_3", Price: decimal.NewFromInt(132), InstallmentMonths: new(3), IsMembership: true},
	}
}

func TestRouter_ShoppingFlow(t *testing.T) {
	srv, m := newServer(t)

	m.catalog.EXPECT().ListListings(gomock.Any(), scope).Return(listings(), nil)

	resp, body := do(t, srv, http.MethodPost, "/api/v1/catalog/refresh", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var products []map[string]any
	require.NoError(t, json.Unmarshal(body, &products))
	require.Len(t, products, 2)
	assert.Equal(t, "Kit", products[0]["id"])

	resp, body = do(t, srv, http.MethodGet, "/api/v1/catalog/Membership/prices", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[
		{"months":0,"total":"120.00","monthly":"120.00","catalog_price_id":"price_mem"},
		{"months":3,"total":"132.00","monthly":"44.00","catalog_price_id":"price_mem_3"}
	]`, string(body))

	for range 2 {
		resp, _ = do(t, srv, http.MethodPost, "/api/v1/cart/items", `{"product_id":"Kit"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, body = do(t, srv, http.MethodPost, "/api/v1/cart/items", `{"product_id":"Membership"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		TotalPrice string `json:"total_price"`
		TotalItems int    `json:"total_items"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "210.00", got.TotalPrice)
	assert.Equal(t, 3, got.TotalItems)

	resp, _ = do(t, srv, http.MethodPost, "/api/v1/cart/items", `{"product_id":"Ghost"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodPost, "/api/v1/cart/items", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	m.sessions.EXPECT().
		CreateSession(gomock.Any(), checkout.SessionRequest{
			Scope: scope,
			Items: []checkout.LineItem{
				{ProductID: "Kit", CatalogProductID: "prod_kit", CatalogPriceID: "price_kit", Quantity: 2},
				{ProductID: "Membership", CatalogProductID: "prod_mem", CatalogPriceID: "price_mem", Quantity: 1},
			},
		}).
		Return("https://checkout.example.com/s/1", nil)

	resp, body = do(t, srv, http.MethodPost, "/api/v1/checkout", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.JSONEq(t, `{"checkout_url":"https://checkout.example.com/s/1"}`, string(body))

	resp, _ = do(t, srv, http.MethodPost, "/api/v1/checkout/return?outcome=maybe", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodPost, "/api/v1/checkout/return?outcome=cancel", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = do(t, srv, http.MethodGet, "/api/v1/cart", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, 0, got.TotalItems)

	resp, _ = do(t, srv, http.MethodPost, "/api/v1/checkout", "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestRouter_CartDecrementAndRemove(t *testing.T) {
	srv, m := newServer(t)

	m.catalog.EXPECT().ListListings(gomock.Any(), scope).Return(listings(), nil)

	resp, _ := do(t, srv, http.MethodPost, "/api/v1/catalog/refresh", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	do(t, srv, http.MethodPost, "/api/v1/cart/items", `{"product_id":"Kit"}`)
	do(t, srv, http.MethodPost, "/api/v1/cart/items", `{"product_id":"Kit"}`)
	do(t, srv, http.MethodPost, "/api/v1/cart/items", `{"product_id":"Membership"}`)

	var got struct {
		Lines []struct {
			Quantity  int    `json:"quantity"`
			LineTotal string `json:"line_total"`
		} `json:"lines"`
	}

	_, body := do(t, srv, http.MethodPost, "/api/v1/cart/items/Kit/decrement", "")
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got.Lines, 2)
	assert.Equal(t, 1, got.Lines[0].Quantity)
	assert.Equal(t, "45.00", got.Lines[0].LineTotal)

	_, body = do(t, srv, http.MethodDelete, "/api/v1/cart/items/Membership", "")
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Len(t, got.Lines, 1)

	resp, _ = do(t, srv, http.MethodDelete, "/api/v1/cart", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRouter_CatalogRefreshFailure(t *testing.T) {
	srv, m := newServer(t)

	bad := listings()[2:]
	m.catalog.EXPECT().ListListings(gomock.Any(), scope).Return(bad, nil)

	resp, _ := do(t, srv, http.MethodPost, "/api/v1/catalog/refresh", "")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	resp, body := do(t, srv, http.MethodGet, "/api/v1/catalog", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))
}

func TestRouter_CreateProducts(t *testing.T) {
	srv, m := newServer(t)

	m.catalog.EXPECT().
		CreateListings(gomock.Any(), scope, gomock.Len(2)).
		Return(nil)

	resp, body := do(t, srv, http.MethodPost, "/api/v1/catalog/products", `{"products":[
		{"name":"Socks","price":"8.50","category":"merchandise"},
		{"name":"Socks","price":"9.00","installment_months":2,"category":"merchandise"}
	]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	assert.JSONEq(t, `{"created":2}`, string(body))

	resp, _ = do(t, srv, http.MethodPost, "/api/v1/catalog/products", `{"products":[]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodPost, "/api/v1/catalog/products", `{"products":[{"name":"X","price":"1","category":"camps"}]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_Transactions(t *testing.T) {
	srv, m := newServer(t)

	txs := []*transaction.Transaction{
		{
			ID: "tx_1", Status: transaction.StatusCompleted,
			Timestamp: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
			Items: []transaction.PurchasedItem{
				{ProductName: "Winter Camp", Category: "training", Quantity: 1, TotalPrice: decimal.NewFromInt(50)},
			},
		},
		{
			ID: "tx_2", Status: transaction.StatusPending,
			Timestamp: time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC),
			Items: []transaction.PurchasedItem{
				{ProductName: "Spring Camp", Category: "training", Quantity: 1, TotalPrice: decimal.NewFromInt(30)},
				{ProductName: "Cup Entry", Category: "match", Quantity: 1, TotalPrice: decimal.NewFromInt(20)},
			},
		},
	}

	query := transaction.Query{Email: "parent@example.com", Scope: scope}
	m.txs.EXPECT().ListTransactions(gomock.Any(), query).Return(txs, nil).Times(3)

	resp, body := do(t, srv, http.MethodGet, "/api/v1/transactions?category=match", "")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got struct {
		Transactions    []map[string]any  `json:"transactions"`
		TotalSpend      string            `json:"total_spend"`
		SpendByCategory map[string]string `json:"spend_by_category"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Len(t, got.Transactions, 2)
	assert.Equal(t, "20.00", got.TotalSpend)
	assert.Equal(t, map[string]string{"training": "80.00", "match": "20.00"}, got.SpendByCategory)

	resp, body = do(t, srv, http.MethodGet, "/api/v1/transactions?status=completed&end_date=2026-01-10", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got.Transactions, 1)
	assert.Equal(t, "tx_1", got.Transactions[0]["id"])
	assert.Equal(t, "50.00", got.TotalSpend)

	resp, body = do(t, srv, http.MethodGet, "/api/v1/transactions/export", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Equal(t, 4, strings.Count(string(body), "\n"))
}

func TestRouter_TransactionsRejectMalformedDates(t *testing.T) {
	srv, _ := newServer(t)

	tests := []struct {
		name  string
		query string
		param string
	}{
		{name: "Slashes", query: "end_date=01/01/2021", param: "end_date"},
		{name: "Unpadded", query: "end_date=2021-1-1", param: "end_date"},
		{name: "Not a date", query: "start_date=yesterday", param: "start_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No ListTransactions expectation: a bad filter must not reach the API.
			for _, path := range []string{"/api/v1/transactions", "/api/v1/transactions/export"} {
				resp, body := do(t, srv, http.MethodGet, path+"?"+tt.query, "")
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
				assert.Contains(t, string(body), tt.param)
			}
		})
	}
}

func TestRouter_Payout(t *testing.T) {
	srv, m := newServer(t)

	m.payout.EXPECT().AccountID(gomock.Any(), "Rovers").Return("", nil).Times(2)
	m.payout.EXPECT().
		OnboardingLink(gomock.Any(), "Rovers", "treasurer@rovers.example").
		Return("https://connect.example.com/o/1", nil)

	resp, body := do(t, srv, http.MethodGet, "/api/v1/payout/status", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"club":"Rovers","connected":false}`, string(body))

	resp, _ = do(t, srv, http.MethodPost, "/api/v1/payout/login-link", "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = do(t, srv, http.MethodPost, "/api/v1/payout/connect", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"url":"https://connect.example.com/o/1"}`, string(body))
}

func TestRouter_CORSPreflight(t *testing.T) {
	srv, _ := newServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/v1/cart", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://shop.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "https://shop.example", resp.Header.Get("Access-Control-Allow-Origin"))
}
