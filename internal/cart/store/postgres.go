package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/clubshop/internal/cart"
)

// Postgres keeps the cart as a JSONB row in the carts table, one row per key.
type Postgres struct {
	db  *sql.DB
	key string
}

func NewPostgres(db *sql.DB, key string) *Postgres {
	return &Postgres{db: db, key: key}
}

func (p *Postgres) Load(ctx context.Context) ([]cart.Line, error) {
	query := `SELECT lines FROM carts WHERE cart_key = $1`

	var data []byte
	if err := p.db.QueryRowContext(ctx, query, p.key).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cart.ErrNoSnapshot
		}

		return nil, fmt.Errorf("loading cart: %w", err)
	}

	return cart.UnmarshalSnapshot(data)
}

func (p *Postgres) Save(ctx context.Context, lines []cart.Line) error {
	data, err := cart.MarshalSnapshot(lines)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO carts (cart_key, lines, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (cart_key) DO UPDATE SET lines = EXCLUDED.lines, updated_at = NOW()
	`

	if _, err := p.db.ExecContext(ctx, query, p.key, string(data)); err != nil {
		return fmt.Errorf("saving cart: %w", err)
	}

	return nil
}

func (p *Postgres) Clear(ctx context.Context) error {
	query := `DELETE FROM carts WHERE cart_key = $1`

	if _, err := p.db.ExecContext(ctx, query, p.key); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}

	return nil
}
