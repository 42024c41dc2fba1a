package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/clubshop/internal/auth"
	"github.com/MrJamesThe3rd/clubshop/internal/cart"
	cartStore "github.com/MrJamesThe3rd/clubshop/internal/cart/store"
	"github.com/MrJamesThe3rd/clubshop/internal/catalog"
	"github.com/MrJamesThe3rd/clubshop/internal/checkout"
	"github.com/MrJamesThe3rd/clubshop/internal/clubapi"
	"github.com/MrJamesThe3rd/clubshop/internal/config"
	clubHttp "github.com/MrJamesThe3rd/clubshop/internal/http"
	cartHandler "github.com/MrJamesThe3rd/clubshop/internal/http/cart"
	catalogHandler "github.com/MrJamesThe3rd/clubshop/internal/http/catalog"
	checkoutHandler "github.com/MrJamesThe3rd/clubshop/internal/http/checkout"
	payoutHandler "github.com/MrJamesThe3rd/clubshop/internal/http/payout"
	txHandler "github.com/MrJamesThe3rd/clubshop/internal/http/transaction"
	"github.com/MrJamesThe3rd/clubshop/internal/importer"
	"github.com/MrJamesThe3rd/clubshop/internal/payout"
	"github.com/MrJamesThe3rd/clubshop/internal/transaction"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	persister, closePersister, err := cartStore.Open(cfg)
	if err != nil {
		slog.Error("failed to open cart storage", "backend", cfg.Cart.Backend, "error", err)
		os.Exit(1)
	}
	defer closePersister()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	token := auth.StaticToken(cfg.Auth.Token)
	client := clubapi.New(cfg.API.BaseURL, cfg.API.Timeout, token)
	scope := cfg.Scope()

	var (
		catalogService     = catalog.NewService(client)
		cartService        = cart.New(ctx, persister)
		checkoutService    = checkout.NewService(client)
		transactionService = transaction.NewService(client)
		payoutService      = payout.NewService(client)
		importService      = importer.NewService()
	)

	email := auth.Email(cfg.Auth.Token, cfg.Auth.Email)

	var (
		catalogH  = catalogHandler.NewHandler(catalogService, importService, scope)
		cartH     = cartHandler.NewHandler(cartService, catalogService)
		checkoutH = checkoutHandler.NewHandler(checkoutService, cartService, scope)
		txH       = txHandler.NewHandler(transactionService, transaction.Query{Email: email, Scope: scope})
		payoutH   = payoutHandler.NewHandler(payoutService, scope.Club, email)
	)

	router := clubHttp.New(
		clubHttp.Options{AllowedOrigins: cfg.Server.AllowedOrigins, Timeout: cfg.Server.Timeout},
		catalogH, cartH, checkoutH, txH, payoutH,
	)

	if _, err := catalogService.Refresh(ctx, scope); err != nil {
		slog.Warn("initial catalog load failed", "club", scope.String(), "error", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "port", srv.Addr, "club", scope.String(), "cart_backend", cfg.Cart.Backend)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
