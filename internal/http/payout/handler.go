package payout

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/clubshop/internal/http/httputil"
	"github.com/MrJamesThe3rd/clubshop/internal/payout"
)

type Handler struct {
	svc      *payout.Service
	clubName string
	email    string
}

func NewHandler(svc *payout.Service, clubName, email string) *Handler {
	return &Handler{svc: svc, clubName: clubName, email: email}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/status", h.status)
	r.Post("/connect", h.connect)
	r.Post("/login-link", h.loginLink)
}

type statusResponse struct {
	Club      string `json:"club"`
	Connected bool   `json:"connected"`
	AccountID string `json:"account_id,omitempty"`
}

type linkResponse struct {
	URL string `json:"url"`
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	account, err := h.svc.Status(r.Context(), h.clubName)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, statusResponse{
		Club:      account.Club,
		Connected: account.Connected(),
		AccountID: account.AccountID,
	})
}

type connectRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
}

func (h *Handler) connect(w http.ResponseWriter, r *http.Request) {
	var req connectRequest
	if r.ContentLength != 0 {
		if err := httputil.Decode(r, &req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	email := req.Email
	if email == "" {
		email = h.email
	}

	url, err := h.svc.Connect(r.Context(), h.clubName, email)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, linkResponse{URL: url})
}

func (h *Handler) loginLink(w http.ResponseWriter, r *http.Request) {
	url, err := h.svc.LoginLink(r.Context(), h.clubName)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, linkResponse{URL: url})
}
