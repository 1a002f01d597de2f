// Package router sets up all HTTP routes and middleware chains for the
// storefront. Every route shares the same stack: panic recovery,
// request logging, security headers, and the cart session identity.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"shopfront/internal/handlers"
	"shopfront/internal/middleware"
	"shopfront/web"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(shop *handlers.Shop, cart *handlers.Cart, checkout *handlers.Checkout, secureCookies bool) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.WithSession(secureCookies))

	// Health check.
	r.Get("/health", healthHandler)

	// Storefront page and catalog fragments.
	r.Get("/", shop.Home)
	r.Get("/products", shop.ProductGrid)
	r.Get("/products/{id}", shop.ProductDetail)

	// Cart drawer and mutations.
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", cart.Drawer)
		r.Delete("/", cart.Clear)
		r.Post("/items", cart.AddItem)
		r.Put("/items/{id}", cart.UpdateItem)
		r.Delete("/items/{id}", cart.RemoveItem)
	})

	// Payment panel.
	r.Route("/checkout", func(r chi.Router) {
		r.Get("/", checkout.Panel)
		r.Get("/status", checkout.Status)
		r.Post("/complete", checkout.Complete)
	})

	// Embedded static assets.
	staticFS, _ := fs.Sub(web.StaticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
