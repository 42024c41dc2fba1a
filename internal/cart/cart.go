package cart

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/clubshop/internal/catalog"
)

const persistTimeout = time.Second

// Line is a product in the cart with a quantity of at least one.
type Line struct {
	Product  *catalog.Product `json:"product"`
	Quantity int              `json:"quantity"`
}

// Store owns the buyer's cart. Every mutation writes the full cart through
// the Persister; persistence is best-effort and never fails an operation.
type Store struct {
	persister Persister

	mu    sync.Mutex
	lines []Line
}

// New returns a Store rehydrated from persister, or empty when nothing was
// saved or the saved cart cannot be read.
func New(ctx context.Context, persister Persister) *Store {
	s := &Store{persister: persister}

	lines, err := persister.Load(ctx)
	switch {
	case err == nil:
		s.lines = sanitize(lines)
	case IsNoSnapshot(err):
	default:
		slog.Warn("failed to load cart, starting empty", "error", err)
	}

	return s
}

// Add puts one more unit of p in the cart.
func (s *Store) Add(p *catalog.Product) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.index(p.ID); i >= 0 {
		s.lines[i].Quantity++
	} else {
		s.lines = append(s.lines, Line{Product: p, Quantity: 1})
	}

	s.save()

	return s.snapshot()
}

// Remove takes one unit of the product out of the cart, dropping the line
// when its quantity reaches zero. Unknown ids are ignored.
func (s *Store) Remove(productID string) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(productID)
	if i < 0 {
		return s.snapshot()
	}

	s.lines[i].Quantity--
	if s.lines[i].Quantity <= 0 {
		s.lines = slices.Delete(s.lines, i, i+1)
	}

	s.save()

	return s.snapshot()
}

// RemoveAll drops the product's line whatever its quantity.
func (s *Store) RemoveAll(productID string) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(productID)
	if i < 0 {
		return s.snapshot()
	}

	s.lines = slices.Delete(s.lines, i, i+1)
	s.save()

	return s.snapshot()
}

// Clear empties the cart and erases the saved copy.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := s.persister.Clear(ctx); err != nil {
		slog.Warn("failed to clear saved cart", "error", err)
	}
}

func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// TotalPrice sums base price times quantity over all lines. Installment
// plans are not applied at the cart stage.
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Total(s.lines)
}

func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}

	return n
}

// Total sums base price times quantity, rounded to cents.
func Total(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Product.BasePrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	return total.Round(2)
}

func (s *Store) index(productID string) int {
	return slices.IndexFunc(s.lines, func(l Line) bool {
		return l.Product.ID == productID
	})
}

func (s *Store) snapshot() []Line {
	return slices.Clone(s.lines)
}

// save must be called with mu held so writes land in mutation order.
func (s *Store) save() {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := s.persister.Save(ctx, s.snapshot()); err != nil {
		slog.Warn("failed to save cart", "error", err)
	}
}

// sanitize drops lines that break the cart invariants and merges
// duplicate products.
func sanitize(lines []Line) []Line {
	var clean []Line

	for _, l := range lines {
		if l.Product == nil || l.Product.ID == "" || l.Quantity <= 0 {
			continue
		}

		i := slices.IndexFunc(clean, func(c Line) bool {
			return c.Product.ID == l.Product.ID
		})
		if i >= 0 {
			clean[i].Quantity += l.Quantity
			continue
		}

		clean = append(clean, l)
	}

	return clean
}
