package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoSnapshot is returned by Persister.Load when no cart has been saved.
var ErrNoSnapshot = errors.New("no saved cart")

//go:generate mockgen -source=persister.go -destination=persister_mock.go -package=cart
type Persister interface {
	Load(ctx context.Context) ([]Line, error)
	Save(ctx context.Context, lines []Line) error
	Clear(ctx context.Context) error
}

func IsNoSnapshot(err error) bool {
	return errors.Is(err, ErrNoSnapshot)
}

// MarshalSnapshot encodes lines in the durable format: a JSON array of
// {"product": ..., "quantity": n} objects.
func MarshalSnapshot(lines []Line) ([]byte, error) {
	if lines == nil {
		lines = []Line{}
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("encoding cart: %w", err)
	}

	return data, nil
}

func UnmarshalSnapshot(data []byte) ([]Line, error) {
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("decoding cart: %w", err)
	}

	return lines, nil
}
