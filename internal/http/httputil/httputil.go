package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/MrJamesThe3rd/clubshop/internal/auth"
	"github.com/MrJamesThe3rd/clubshop/internal/catalog"
	"github.com/MrJamesThe3rd/clubshop/internal/checkout"
	"github.com/MrJamesThe3rd/clubshop/internal/club"
	"github.com/MrJamesThe3rd/clubshop/internal/clubapi"
	"github.com/MrJamesThe3rd/clubshop/internal/payout"
	"github.com/MrJamesThe3rd/clubshop/internal/transaction"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode reads a JSON body into v and checks its validate tags.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	return nil
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error writes err as plain text with the status it maps to.
func Error(w http.ResponseWriter, err error) {
	status := Status(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "status", status, "error", err)
	}

	msg := err.Error()

	var reqErr *checkout.ProcessorRequestError
	if errors.As(err, &reqErr) {
		if m := reqErr.Message(); m != "" {
			msg = m
		}
	}

	http.Error(w, msg, status)
}

// Status maps domain errors onto HTTP status codes.
func Status(err error) int {
	var (
		reqErr    *checkout.ProcessorRequestError
		statusErr *clubapi.StatusError
	)

	switch {
	case errors.Is(err, auth.ErrNoToken), errors.Is(err, auth.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, catalog.ErrPlanNotFound), errors.Is(err, catalog.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrMissingContext),
		errors.Is(err, club.ErrIncompleteScope),
		errors.Is(err, transaction.ErrMissingEmail),
		errors.Is(err, payout.ErrMissingEmail):
		return http.StatusUnprocessableEntity
	case errors.Is(err, checkout.ErrUnknownOutcome),
		errors.Is(err, catalog.ErrInvalidListing),
		errors.Is(err, transaction.ErrInvalidCriteria):
		return http.StatusBadRequest
	case errors.Is(err, payout.ErrNotConnected):
		return http.StatusConflict
	case errors.As(err, &reqErr),
		errors.As(err, &statusErr),
		errors.Is(err, clubapi.ErrInvalidResponseShape):
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
