package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrJamesThe3rd/clubshop/internal/cart"
)

// Redis keeps the cart as a JSON value under cart:<key>. A zero ttl keeps
// it until cleared.
type Redis struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedis(client *redis.Client, key string, ttl time.Duration) *Redis {
	return &Redis{
		client: client,
		key:    cacheKey(key),
		ttl:    ttl,
	}
}

func (r *Redis) Load(ctx context.Context) ([]cart.Line, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, cart.ErrNoSnapshot
	}

	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	return cart.UnmarshalSnapshot(data)
}

func (r *Redis) Save(ctx context.Context, lines []cart.Line) error {
	data, err := cart.MarshalSnapshot(lines)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (r *Redis) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}

	return nil
}

func cacheKey(key string) string {
	return fmt.Sprintf("cart:%s", key)
}
