package checkout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/clubshop/internal/cart"
	"github.com/MrJamesThe3rd/clubshop/internal/checkout"
	"github.com/MrJamesThe3rd/clubshop/internal/club"
	"github.com/MrJamesThe3rd/clubshop/internal/http/httputil"
)

type Handler struct {
	svc   *checkout.Service
	store *cart.Store
	scope club.Scope
}

func NewHandler(svc *checkout.Service, store *cart.Store, scope club.Scope) *Handler {
	return &Handler{svc: svc, store: store, scope: scope}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.checkout)
	r.Post("/return", h.resolve)
}

type checkoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	url, err := h.svc.Checkout(r.Context(), h.store.Lines(), h.scope)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	slog.Info("checkout session created", "club", h.scope.String(), "items", h.store.TotalItems())

	httputil.JSON(w, http.StatusOK, checkoutResponse{CheckoutURL: url})
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) {
	outcome, err := checkout.ParseOutcome(r.URL.Query().Get("outcome"))
	if err != nil {
		httputil.Error(w, err)
		return
	}

	checkout.Resolve(outcome, h.store)

	w.WriteHeader(http.StatusNoContent)
}
