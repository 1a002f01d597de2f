// Package main is the entry point for the Shopfront server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopfront/internal/cache"
	"shopfront/internal/cart"
	"shopfront/internal/catalog"
	"shopfront/internal/config"
	"shopfront/internal/database"
	"shopfront/internal/handlers"
	"shopfront/internal/payment"
	"shopfront/internal/render"
	"shopfront/internal/router"
	"shopfront/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed a demo catalog in development (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey for the catalog fragment cache. The storefront
	// works without it — grids are just rendered fresh each time.
	var gridCache *cache.CatalogCache
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable — catalog caching disabled", "error", err)
	} else {
		defer valkeyClient.Close()
		gridCache = cache.NewCatalogCache(valkeyClient, cache.DefaultGridTTL)
	}

	// Initialize the HTML template renderer.
	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Initialize data stores and the catalog/cart modules over them.
	categoryStore := store.NewCategoryStore(db)
	productStore := store.NewProductStore(db)
	cartStore := store.NewCartStore(db)

	catalogSvc := catalog.New(categoryStore, productStore)
	cartSvc := cart.New(cartStore)

	// Payment gateway client. The widget itself is third-party; only
	// its transaction status is observed.
	gateway := payment.NewGateway(payment.Config{
		SecretKey: cfg.PaymentSecretKey,
		BaseURL:   cfg.PaymentBaseURL,
	})

	// Create handler groups with their dependencies.
	shopHandlers := handlers.NewShop(renderer, catalogSvc, cartSvc, gridCache)
	cartHandlers := handlers.NewCart(renderer, cartSvc)
	checkoutHandlers := handlers.NewCheckout(renderer, cartSvc, gateway, cfg.Currency)

	// In non-development environments, mark the session cookie as
	// Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()

	// Set up the Chi router with all middleware and routes.
	r := router.New(shopHandlers, cartHandlers, checkoutHandlers, secureCookies)

	// Create the HTTP server with sensible timeouts. WriteTimeout
	// accommodates the payment gateway round trip on /checkout.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
