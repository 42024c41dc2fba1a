package product

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var errTooPrecise = errors.New("more than two decimal places")

// parsePrice accepts both "1.234,56" and "1,234.56" styles. The rightmost
// separator is the decimal one; with a single kind present, a comma is
// always decimal.
func parsePrice(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimSuffix(clean, "€")
	clean = strings.TrimPrefix(clean, "€")
	clean = strings.ReplaceAll(clean, " ", "")

	lastComma := strings.LastIndex(clean, ",")
	lastDot := strings.LastIndex(clean, ".")

	switch {
	case lastComma > lastDot:
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	case lastDot > lastComma && lastComma >= 0:
		clean = strings.ReplaceAll(clean, ",", "")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return decimal.Decimal{}, errTooPrecise
	}

	return d.Round(2), nil
}
