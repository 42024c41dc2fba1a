package product

import "strings"

const (
	fieldName         = "name"
	fieldPrice        = "price"
	fieldMonths       = "installment_months"
	fieldCategory     = "category"
	fieldIsMembership = "is_membership"
)

// headerAliases maps the header spellings seen in club sheets onto fields.
// Only name and price are required.
var headerAliases = map[string]string{
	"name":               fieldName,
	"product":            fieldName,
	"nome":               fieldName,
	"produto":            fieldName,
	"price":              fieldPrice,
	"preço":              fieldPrice,
	"preco":              fieldPrice,
	"installment_months": fieldMonths,
	"installments":       fieldMonths,
	"months":             fieldMonths,
	"prestações":         fieldMonths,
	"meses":              fieldMonths,
	"category":           fieldCategory,
	"categoria":          fieldCategory,
	"is_membership":      fieldIsMembership,
	"membership":         fieldIsMembership,
	"quota":              fieldIsMembership,
}

// colIndex maps fields to their index in the row.
type colIndex map[string]int

// mapHeader resolves header cells to fields. It reports false when a
// required field is missing.
func mapHeader(row []string) (colIndex, bool) {
	cols := make(colIndex)

	for i, cell := range row {
		key := strings.ToLower(strings.TrimSpace(cell))
		key = strings.ReplaceAll(key, " ", "_")

		if field, ok := headerAliases[key]; ok {
			if _, seen := cols[field]; !seen {
				cols[field] = i
			}
		}
	}

	_, hasName := cols[fieldName]
	_, hasPrice := cols[fieldPrice]

	return cols, hasName && hasPrice
}

// get returns the trimmed cell for field, or "" when the column is absent.
func (c colIndex) get(row []string, field string) string {
	idx, ok := c[field]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
