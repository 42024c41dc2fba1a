package transaction

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/clubshop/internal/http/httputil"
	"github.com/MrJamesThe3rd/clubshop/internal/report"
	"github.com/MrJamesThe3rd/clubshop/internal/transaction"
)

type Handler struct {
	svc   *transaction.Service
	query transaction.Query
}

func NewHandler(svc *transaction.Service, query transaction.Query) *Handler {
	return &Handler{svc: svc, query: query}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/export", h.exportCSV)
	r.Get("/export/archive", h.exportArchive)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, toReportResponse(view))
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"", time.Now().Format("20060102")))

	// Headers are already sent, so a failure can only be logged.
	if err := report.WriteCSV(w, view.Transactions); err != nil {
		slog.Error("failed to write export", "path", r.URL.Path, "error", err)
	}
}

func (h *Handler) exportArchive(w http.ResponseWriter, r *http.Request) {
	view, err := h.view(r)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"transactions_%s.zip\"", time.Now().Format("20060102")))

	// Headers are already sent, so a failure can only be logged.
	if err := report.WriteArchive(w, view); err != nil {
		slog.Error("failed to write export", "path", r.URL.Path, "error", err)
	}
}

// view applies the request's filters to a fresh fetch of the history.
// Filters are checked first so a bad request costs no remote call.
func (h *Handler) view(r *http.Request) (report.View, error) {
	criteria, err := parseCriteria(r)
	if err != nil {
		return report.View{}, err
	}

	txs, err := h.svc.Refresh(r.Context(), h.query)
	if err != nil {
		return report.View{}, err
	}

	return report.Build(txs, criteria), nil
}

func parseCriteria(r *http.Request) (report.Criteria, error) {
	q := r.URL.Query()

	criteria := report.Criteria{
		Criteria: transaction.Criteria{
			Search: q.Get("search"),
			Status: q.Get("status"),
		},
		Category: q.Get("category"),
	}

	var err error

	if criteria.StartDate, err = parseDate(q.Get("start_date"), "start_date"); err != nil {
		return report.Criteria{}, err
	}

	if criteria.EndDate, err = parseDate(q.Get("end_date"), "end_date"); err != nil {
		return report.Criteria{}, err
	}

	return criteria, nil
}

// parseDate reads an optional YYYY-MM-DD bound; empty means unbounded.
func parseDate(s, param string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD, got %q", transaction.ErrInvalidCriteria, param, s)
	}

	return &t, nil
}
