package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MrJamesThe3rd/clubshop/internal/club"
)

var ErrMissingEmail = errors.New("missing buyer email")

// Query selects whose purchases to fetch.
type Query struct {
	Email string
	Scope club.Scope
}

//go:generate mockgen -source=service.go -destination=source_mock.go -package=transaction
type Source interface {
	ListTransactions(ctx context.Context, q Query) ([]*Transaction, error)
}

// Service holds the purchase history last fetched for reporting.
type Service struct {
	source Source

	mu  sync.RWMutex
	txs []*Transaction
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// Refresh replaces the held history with a fresh fetch. On failure the held
// history is emptied so that stale purchases are never reported as current.
func (s *Service) Refresh(ctx context.Context, q Query) ([]*Transaction, error) {
	txs, err := s.fetch(ctx, q)

	s.mu.Lock()
	s.txs = txs
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}

	return txs, nil
}

func (s *Service) fetch(ctx context.Context, q Query) ([]*Transaction, error) {
	if strings.TrimSpace(q.Email) == "" {
		return nil, ErrMissingEmail
	}

	if err := q.Scope.Validate(); err != nil {
		return nil, err
	}

	txs, err := s.source.ListTransactions(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	return txs, nil
}

// Current returns the held history.
func (s *Service) Current() []*Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.txs
}
