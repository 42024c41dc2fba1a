package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/clubshop/internal/http/cart"
	"github.com/MrJamesThe3rd/clubshop/internal/http/catalog"
	"github.com/MrJamesThe3rd/clubshop/internal/http/checkout"
	"github.com/MrJamesThe3rd/clubshop/internal/http/payout"
	"github.com/MrJamesThe3rd/clubshop/internal/http/transaction"
)

type Options struct {
	AllowedOrigins []string
	Timeout        time.Duration
}

func New(
	opts Options,
	catalogV1 *catalog.Handler,
	cartV1 *cart.Handler,
	checkoutV1 *checkout.Handler,
	transactionsV1 *transaction.Handler,
	payoutV1 *payout.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if opts.Timeout > 0 {
		router.Use(middleware.Timeout(opts.Timeout))
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", catalogV1.Routes)

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			cartV1.Routes(r)
		})

		r.Route("/checkout", checkoutV1.Routes)
		r.Route("/transactions", transactionsV1.Routes)

		r.Route("/payout", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			payoutV1.Routes(r)
		})
	})

	return router
}
