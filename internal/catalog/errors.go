package catalog

import "errors"

var (
	ErrPlanNotFound    = errors.New("installment plan not found")
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidListing marks catalog data that cannot be mapped onto a Product.
	ErrInvalidListing = errors.New("invalid catalog listing")
)
