package cart

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/clubshop/internal/cart"
	"github.com/MrJamesThe3rd/clubshop/internal/catalog"
)

type lineResponse struct {
	Product   *catalog.Product `json:"product"`
	Quantity  int              `json:"quantity"`
	LineTotal string           `json:"line_total"`
}

type cartResponse struct {
	Lines      []lineResponse `json:"lines"`
	TotalPrice string         `json:"total_price"`
	TotalItems int            `json:"total_items"`
}

func toResponse(lines []cart.Line) cartResponse {
	resp := cartResponse{
		Lines:      make([]lineResponse, len(lines)),
		TotalPrice: cart.Total(lines).StringFixed(2),
	}

	for i, l := range lines {
		resp.Lines[i] = lineResponse{
			Product:   l.Product,
			Quantity:  l.Quantity,
			LineTotal: l.Product.BasePrice.Mul(decimal.NewFromInt(int64(l.Quantity))).StringFixed(2),
		}
		resp.TotalItems += l.Quantity
	}

	return resp
}
