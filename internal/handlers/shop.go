// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handler groups for the storefront:
// Shop (catalog pages and fragments), Cart (drawer and mutations), and
// Checkout (payment panel). Handlers parse input, call the catalog and
// cart modules, and render templates; store failures are logged and
// degrade to empty or unchanged fragments, never to a blocking error
// page.
package handlers

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"shopfront/internal/cache"
	"shopfront/internal/cart"
	"shopfront/internal/catalog"
	"shopfront/internal/markdown"
	"shopfront/internal/render"
	"shopfront/internal/session"
)

// StoreName is the display title rendered in the storefront header.
const StoreName = "Shopfront"

// Shop groups the catalog-facing handlers. gridCache may be nil, in
// which case grid fragments are rendered fresh on every request.
type Shop struct {
	renderer  *render.Renderer
	catalog   *catalog.Service
	cart      *cart.Service
	gridCache *cache.CatalogCache
}

// NewShop creates the Shop handler group.
func NewShop(renderer *render.Renderer, catalogSvc *catalog.Service, cartSvc *cart.Service, gridCache *cache.CatalogCache) *Shop {
	return &Shop{
		renderer:  renderer,
		catalog:   catalogSvc,
		cart:      cartSvc,
		gridCache: gridCache,
	}
}

// Home renders the full storefront page: header with search and cart
// badge, category sidebar, and the initial unfiltered product grid.
func (h *Shop) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.catalog.Categories(ctx)
	if err != nil {
		slog.Error("list categories failed", "error", err)
	}

	products, err := h.catalog.Products(ctx, nil)
	if err != nil {
		slog.Error("list products failed", "error", err)
	}

	items, err := h.cart.Load(ctx, session.FromContext(ctx))
	if err != nil {
		slog.Error("load cart failed", "error", err)
	}

	data := map[string]any{
		"Title":            StoreName,
		"Categories":       categories,
		"SelectedCategory": "",
		"Query":            "",
		"Products":         products,
		"CartCount":        cart.Count(items),
	}
	if err := h.renderer.Render(w, "storefront", data); err != nil {
		slog.Error("render storefront failed", "error", err)
	}
}

// ProductGrid renders the product grid fragment for the current
// category filter and search query. Unsearched grids are cached per
// category; the search filter runs in memory over the fetched list.
func (h *Shop) ProductGrid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query().Get("q")

	var categoryID *uuid.UUID
	cacheKey := cache.AllProductsKey()
	if raw := r.URL.Query().Get("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid category", http.StatusBadRequest)
			return
		}
		categoryID = &id
		cacheKey = cache.CategoryKey(raw)
	}

	cacheable := query == "" && h.gridCache != nil
	if cacheable {
		if cached, ok := h.gridCache.Get(ctx, cacheKey); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(cached)
			return
		}
	}

	products, err := h.catalog.Products(ctx, categoryID)
	if err != nil {
		slog.Error("list products failed", "error", err)
	}
	products = catalog.Search(query, products)

	out, err := h.renderer.RenderBytes("grid", map[string]any{"Products": products})
	if err != nil {
		slog.Error("render grid failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if cacheable {
		h.gridCache.Set(ctx, cacheKey, out)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(out)
}

// ProductDetail renders the product detail panel fragment with the
// size, color, and quantity selectors.
func (h *Shop) ProductDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	product, err := h.catalog.Product(ctx, id)
	if err != nil {
		slog.Error("find product failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.NotFound(w, r)
		return
	}

	// Product descriptions are authored as Markdown.
	var descHTML template.HTML
	if product.Description != nil {
		html, err := markdown.ToHTML(*product.Description)
		if err != nil {
			slog.Warn("render description failed", "error", err, "id", id)
		} else {
			descHTML = template.HTML(html)
		}
	}

	// The quantity stepper is clamped to advisory stock; the store
	// itself accepts any quantity since stock is display data only.
	maxQty := product.Stock
	if maxQty < 1 {
		maxQty = 1
	}

	data := map[string]any{
		"Product":         product,
		"DescriptionHTML": descHTML,
		"MaxQuantity":     maxQty,
	}
	if err := h.renderer.Render(w, "detail", data); err != nil {
		slog.Error("render detail failed", "error", err)
	}
}
