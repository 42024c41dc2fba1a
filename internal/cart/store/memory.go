package store

import (
	"context"
	"sync"

	"github.com/MrJamesThe3rd/clubshop/internal/cart"
)

// Memory keeps the encoded cart in process. Useful for tests and for
// sessions that should not outlive the program.
type Memory struct {
	mu   sync.Mutex
	data []byte
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) ([]cart.Line, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		return nil, cart.ErrNoSnapshot
	}

	return cart.UnmarshalSnapshot(m.data)
}

func (m *Memory) Save(_ context.Context, lines []cart.Line) error {
	data, err := cart.MarshalSnapshot(lines)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.data = data
	m.mu.Unlock()

	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	m.data = nil
	m.mu.Unlock()

	return nil
}
