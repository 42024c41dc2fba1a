package catalog

import (
	"github.com/MrJamesThe3rd/clubshop/internal/catalog"
)

type productResponse struct {
	*catalog.Product
	Prices []priceOptionResponse `json:"prices"`
}

type priceOptionResponse struct {
	Months         int    `json:"months"`
	Total          string `json:"total"`
	Monthly        string `json:"monthly"`
	CatalogPriceID string `json:"catalog_price_id,omitempty"`
}

func toProductList(products []*catalog.Product) []productResponse {
	resp := make([]productResponse, len(products))
	for i, p := range products {
		resp[i] = productResponse{
			Product: p,
			Prices:  toPriceOptions(p.PriceOptions()),
		}
	}

	return resp
}

func toPriceOptions(opts []catalog.PriceOption) []priceOptionResponse {
	resp := make([]priceOptionResponse, len(opts))
	for i, o := range opts {
		resp[i] = priceOptionResponse{
			Months:         o.Months,
			Total:          o.Total.StringFixed(2),
			Monthly:        o.Monthly.StringFixed(2),
			CatalogPriceID: o.CatalogPriceID,
		}
	}

	return resp
}
