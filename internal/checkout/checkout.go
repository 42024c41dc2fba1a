package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MrJamesThe3rd/clubshop/internal/cart"
	"github.com/MrJamesThe3rd/clubshop/internal/club"
)

// LineItem is the processor-facing form of a cart line.
type LineItem struct {
	ProductID        string
	CatalogProductID string
	CatalogPriceID   string
	Quantity         int
}

type SessionRequest struct {
	Scope club.Scope
	Items []LineItem
}

//go:generate mockgen -source=checkout.go -destination=session_mock.go -package=checkout
type SessionCreator interface {
	// CreateSession returns the hosted checkout URL the buyer is sent to.
	CreateSession(ctx context.Context, req SessionRequest) (string, error)
}

// Service turns a cart into a single checkout session request. It never
// retries and never modifies the cart.
type Service struct {
	sessions SessionCreator
}

func NewService(sessions SessionCreator) *Service {
	return &Service{sessions: sessions}
}

// Checkout requests a checkout session for lines within scope and returns
// the URL to redirect the buyer to.
func (s *Service) Checkout(ctx context.Context, lines []cart.Line, scope club.Scope) (string, error) {
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}

	if missing := scope.Missing(); len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrMissingContext, strings.Join(missing, ", "))
	}

	url, err := s.sessions.CreateSession(ctx, SessionRequest{
		Scope: scope,
		Items: LineItems(lines),
	})
	if err != nil {
		var reqErr *ProcessorRequestError
		if errors.As(err, &reqErr) {
			return "", reqErr
		}

		return "", &ProcessorRequestError{Err: err}
	}

	return url, nil
}

// LineItems maps cart lines to processor line items, billed at each
// product's pay-in-full price.
func LineItems(lines []cart.Line) []LineItem {
	items := make([]LineItem, len(lines))
	for i, l := range lines {
		items[i] = LineItem{
			ProductID:        l.Product.ID,
			CatalogProductID: l.Product.CatalogProductID,
			CatalogPriceID:   l.Product.CatalogPriceID,
			Quantity:         l.Quantity,
		}
	}

	return items
}
