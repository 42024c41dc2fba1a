package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MrJamesThe3rd/clubshop/internal/club"
)

// refreshTimeout bounds a shared catalog fetch once it no longer follows
// any single caller's context.
const refreshTimeout = 30 * time.Second

//go:generate mockgen -source=service.go -destination=source_mock.go -package=catalog
type Source interface {
	ListListings(ctx context.Context, scope club.Scope) ([]Listing, error)
	CreateListings(ctx context.Context, scope club.Scope, listings []NewListing) error
}

// Service holds the catalog loaded for the current club scope.
type Service struct {
	source Source
	sfg    singleflight.Group // one remote fetch per scope at a time

	mu       sync.RWMutex
	products []*Product
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// Refresh replaces the held catalog with the one listed for scope. On any
// failure the held catalog is emptied so stale products are never served.
func (s *Service) Refresh(ctx context.Context, scope club.Scope) ([]*Product, error) {
	if err := scope.Validate(); err != nil {
		s.reset()
		return nil, err
	}

	// The fetch is shared by every caller waiting on this scope, so one
	// caller going away must not cancel it for the others.
	v, err, _ := s.sfg.Do(scope.String(), func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()

		listings, err := s.source.ListListings(fetchCtx, scope)
		if err != nil {
			return nil, fmt.Errorf("listing products: %w", err)
		}

		return BuildProducts(listings)
	})
	if err != nil {
		s.reset()
		return nil, err
	}

	products := v.([]*Product)

	s.mu.Lock()
	s.products = products
	s.mu.Unlock()

	return products, nil
}

func (s *Service) reset() {
	s.mu.Lock()
	s.products = nil
	s.mu.Unlock()
}

// Products returns the held catalog.
func (s *Service) Products() []*Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.products
}

func (s *Service) Find(id string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrProductNotFound, id)
}

// Create submits new products to the remote catalog for scope.
func (s *Service) Create(ctx context.Context, scope club.Scope, listings []NewListing) error {
	if err := scope.Validate(); err != nil {
		return err
	}

	if len(listings) == 0 {
		return fmt.Errorf("%w: nothing to create", ErrInvalidListing)
	}

	for _, l := range listings {
		if err := l.Validate(); err != nil {
			return err
		}
	}

	if err := s.source.CreateListings(ctx, scope, listings); err != nil {
		return fmt.Errorf("creating products: %w", err)
	}

	return nil
}
