package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MrJamesThe3rd/clubshop/internal/cart"
)

// File keeps the cart as a JSON document on disk.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Load(_ context.Context) ([]cart.Line, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cart.ErrNoSnapshot
		}

		return nil, fmt.Errorf("reading cart file: %w", err)
	}

	return cart.UnmarshalSnapshot(data)
}

// Save replaces the file atomically so a crash never leaves half a cart behind.
func (f *File) Save(_ context.Context, lines []cart.Line) error {
	data, err := cart.MarshalSnapshot(lines)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating cart directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".cart-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing cart file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing cart file: %w", err)
	}

	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replacing cart file: %w", err)
	}

	return nil
}

func (f *File) Clear(_ context.Context) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing cart file: %w", err)
	}

	return nil
}
