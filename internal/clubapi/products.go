package clubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/clubshop/internal/catalog"
	"github.com/MrJamesThe3rd/clubshop/internal/club"
)

type productDTO struct {
	ID                string          `json:"id" validate:"required"`
	StripeProductID   string          `json:"stripe_product_id" validate:"required"`
	StripePriceID     string          `json:"stripe_price_id" validate:"required"`
	Price             decimal.Decimal `json:"price"`
	InstallmentMonths *int            `json:"installmentMonths" validate:"omitempty,gt=0"`
	Category          string          `json:"category"`
	IsMembership      bool            `json:"isMembership"`
}

type listProductsResponse struct {
	Products []productDTO `json:"products" validate:"required,dive"`
}

type newProductDTO struct {
	Name              string      `json:"name"`
	Price             json.Number `json:"price"`
	InstallmentMonths *int        `json:"installmentMonths"`
	Category          string      `json:"category"`
	IsMembership      bool        `json:"isMembership"`
}

type createProductsRequest struct {
	ClubName string          `json:"clubName"`
	AgeGroup string          `json:"ageGroup"`
	Division string          `json:"division"`
	Products []newProductDTO `json:"products"`
}

// ListListings fetches every priced catalog row for scope.
func (c *Client) ListListings(ctx context.Context, scope club.Scope) ([]catalog.Listing, error) {
	var resp listProductsResponse

	if err := c.do(ctx, http.MethodGet, "/products/list", scopeQuery(scope), nil, &resp); err != nil {
		return nil, err
	}

	listings := make([]catalog.Listing, len(resp.Products))
	for i, p := range resp.Products {
		listings[i] = catalog.Listing{
			Name:              p.ID,
			CatalogProductID:  p.StripeProductID,
			CatalogPriceID:    p.StripePriceID,
			Price:             p.Price,
			InstallmentMonths: p.InstallmentMonths,
			Category:          p.Category,
			IsMembership:      p.IsMembership,
		}
	}

	return listings, nil
}

// CreateListings submits new products to the catalog for scope.
func (c *Client) CreateListings(ctx context.Context, scope club.Scope, listings []catalog.NewListing) error {
	req := createProductsRequest{
		ClubName: scope.Club,
		AgeGroup: scope.AgeGroup,
		Division: scope.Division,
		Products: make([]newProductDTO, len(listings)),
	}

	for i, l := range listings {
		req.Products[i] = newProductDTO{
			Name:              l.Name,
			Price:             json.Number(l.Price.StringFixed(2)),
			InstallmentMonths: l.InstallmentMonths,
			Category:          string(l.Category),
			IsMembership:      l.IsMembership,
		}
	}

	if err := c.do(ctx, http.MethodPost, "/products/create", nil, req, nil); err != nil {
		return fmt.Errorf("creating %d products: %w", len(listings), err)
	}

	return nil
}
