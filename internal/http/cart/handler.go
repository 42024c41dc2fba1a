package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/clubshop/internal/cart"
	"github.com/MrJamesThe3rd/clubshop/internal/catalog"
	"github.com/MrJamesThe3rd/clubshop/internal/http/httputil"
)

type Handler struct {
	store    *cart.Store
	products *catalog.Service
}

func NewHandler(store *cart.Store, products *catalog.Service) *Handler {
	return &Handler{store: store, products: products}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Delete("/", h.clear)
	r.Post("/items", h.add)
	r.Post("/items/{id}/decrement", h.decrement)
	r.Delete("/items/{id}", h.removeAll)
}

func (h *Handler) get(w http.ResponseWriter, _ *http.Request) {
	httputil.JSON(w, http.StatusOK, toResponse(h.store.Lines()))
}

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := httputil.Decode(r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.products.Find(req.ProductID)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, toResponse(h.store.Add(p)))
}

func (h *Handler) decrement(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, toResponse(h.store.Remove(chi.URLParam(r, "id"))))
}

func (h *Handler) removeAll(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, toResponse(h.store.RemoveAll(chi.URLParam(r, "id"))))
}

func (h *Handler) clear(w http.ResponseWriter, _ *http.Request) {
	h.store.Clear()
	w.WriteHeader(http.StatusNoContent)
}
