package clubapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/MrJamesThe3rd/clubshop/internal/checkout"
)

type checkoutItemDTO struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	PriceID   string `json:"priceId"`
	Quantity  int    `json:"quantity"`
}

type checkoutSessionRequest struct {
	ClubName string            `json:"clubName"`
	AgeGroup string            `json:"ageGroup"`
	Division string            `json:"division"`
	Cart     []checkoutItemDTO `json:"cart"`
}

type checkoutSessionResponse struct {
	CheckoutURL string `json:"checkoutUrl" validate:"required,url"`
}

// CreateSession asks the payment processor for a hosted checkout session.
// Failures are reported as *checkout.ProcessorRequestError.
func (c *Client) CreateSession(ctx context.Context, req checkout.SessionRequest) (string, error) {
	body := checkoutSessionRequest{
		ClubName: req.Scope.Club,
		AgeGroup: req.Scope.AgeGroup,
		Division: req.Scope.Division,
		Cart:     make([]checkoutItemDTO, len(req.Items)),
	}

	for i, item := range req.Items {
		body.Cart[i] = checkoutItemDTO{
			ID:        item.ProductID,
			ProductID: item.CatalogProductID,
			PriceID:   item.CatalogPriceID,
			Quantity:  item.Quantity,
		}
	}

	var resp checkoutSessionResponse

	if err := c.do(ctx, http.MethodPost, "/stripe/create-checkout-session", nil, body, &resp); err != nil {
		reqErr := &checkout.ProcessorRequestError{Err: err}

		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			reqErr.StatusCode = statusErr.StatusCode
			reqErr.Payload = statusErr.Payload
		}

		return "", reqErr
	}

	return resp.CheckoutURL, nil
}
