package store

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/MrJamesThe3rd/clubshop/internal/cart"
	"github.com/MrJamesThe3rd/clubshop/internal/config"
	"github.com/MrJamesThe3rd/clubshop/internal/database"
)

// Open returns the persister for the configured cart backend. The returned
// func releases any connection it holds. When the database cannot be reached
// the cart is kept in memory for this run instead.
func Open(cfg *config.Config) (cart.Persister, func(), error) {
	switch cfg.Cart.Backend {
	case config.CartBackendMemory:
		return NewMemory(), func() {}, nil
	case config.CartBackendFile:
		return NewFile(cfg.Cart.Path), func() {}, nil
	case config.CartBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		return NewRedis(client, cfg.Cart.Key, cfg.Cart.TTL), func() { client.Close() }, nil
	case config.CartBackendPostgres:
		p, closeFn, err := openPostgres(cfg)
		if err != nil {
			slog.Warn("cart database unavailable, keeping cart in memory", "error", err)
			return NewMemory(), func() {}, nil
		}

		return p, closeFn, nil
	}

	return nil, nil, fmt.Errorf("unknown cart backend %q", cfg.Cart.Backend)
}

func openPostgres(cfg *config.Config) (*Postgres, func(), error) {
	if err := database.Migrate(cfg.ConnectionString()); err != nil {
		return nil, nil, err
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return nil, nil, err
	}

	return NewPostgres(db, cfg.Cart.Key), func() { db.Close() }, nil
}
