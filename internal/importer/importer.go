package importer

import (
	"io"

	"github.com/MrJamesThe3rd/clubshop/internal/catalog"
)

// Format names a product sheet layout.
type Format string

const (
	FormatProducts Format = "products"
)

type Importer interface {
	Parse(r io.Reader) ([]catalog.NewListing, error)
}
