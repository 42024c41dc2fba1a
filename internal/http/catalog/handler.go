package catalog

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/clubshop/internal/catalog"
	"github.com/MrJamesThe3rd/clubshop/internal/club"
	"github.com/MrJamesThe3rd/clubshop/internal/http/httputil"
	"github.com/MrJamesThe3rd/clubshop/internal/importer"
)

type Handler struct {
	svc       *catalog.Service
	importSvc *importer.Service
	scope     club.Scope
}

func NewHandler(svc *catalog.Service, importSvc *importer.Service, scope club.Scope) *Handler {
	return &Handler{svc: svc, importSvc: importSvc, scope: scope}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/refresh", h.refresh)
	r.Post("/products", h.create)
	r.Post("/import", h.importCSV)
	r.Get("/{id}/prices", h.prices)
}

func (h *Handler) list(w http.ResponseWriter, _ *http.Request) {
	httputil.JSON(w, http.StatusOK, toProductList(h.svc.Products()))
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.Refresh(r.Context(), h.scope)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidListing) {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		httputil.Error(w, err)

		return
	}

	httputil.JSON(w, http.StatusOK, toProductList(products))
}

type newProductRequest struct {
	Name              string          `json:"name" validate:"required"`
	Price             decimal.Decimal `json:"price"`
	InstallmentMonths *int            `json:"installment_months,omitempty" validate:"omitempty,gt=0"`
	Category          string          `json:"category" validate:"omitempty,oneof=membership merchandise training match other"`
	IsMembership      bool            `json:"is_membership"`
}

type createProductsRequest struct {
	Products []newProductRequest `json:"products" validate:"required,min=1,dive"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createProductsRequest
	if err := httputil.Decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	listings := make([]catalog.NewListing, len(req.Products))
	for i, p := range req.Products {
		listings[i] = catalog.NewListing{
			Name:              p.Name,
			Price:             p.Price,
			InstallmentMonths: p.InstallmentMonths,
			Category:          catalog.ParseCategory(p.Category),
			IsMembership:      p.IsMembership,
		}
	}

	h.submit(w, r, listings)
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	listings, err := h.importSvc.Import(importer.Format(r.FormValue("format")), file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.submit(w, r, listings)
}

type createdResponse struct {
	Created int `json:"created"`
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request, listings []catalog.NewListing) {
	if err := h.svc.Create(r.Context(), h.scope, listings); err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusCreated, createdResponse{Created: len(listings)})
}

func (h *Handler) prices(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Find(chi.URLParam(r, "id"))
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, toPriceOptions(p.PriceOptions()))
}
