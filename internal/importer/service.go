package importer

import (
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/clubshop/internal/catalog"
	"github.com/MrJamesThe3rd/clubshop/internal/importer/product"
)

type Service struct {
	productImporter Importer
}

func NewService() *Service {
	return &Service{
		productImporter: product.NewParser(),
	}
}

// Import parses r as a product sheet in the given format. An empty format
// selects FormatProducts.
func (s *Service) Import(format Format, r io.Reader) ([]catalog.NewListing, error) {
	var importer Importer

	switch format {
	case FormatProducts, "":
		importer = s.productImporter
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	return importer.Parse(r)
}
