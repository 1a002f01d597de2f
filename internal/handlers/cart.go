// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"shopfront/internal/cart"
	"shopfront/internal/models"
	"shopfront/internal/render"
	"shopfront/internal/session"
)

// Cart groups the cart drawer handlers. Every mutation responds with
// the re-rendered drawer built from the authoritative, reloaded item
// list; a failed mutation logs the error and re-renders the prior
// state, so to the shopper the operation simply appears not to have
// happened.
type Cart struct {
	renderer *render.Renderer
	cart     *cart.Service
}

// NewCart creates the Cart handler group.
func NewCart(renderer *render.Renderer, cartSvc *cart.Service) *Cart {
	return &Cart{renderer: renderer, cart: cartSvc}
}

// Drawer renders the cart drawer fragment.
func (h *Cart) Drawer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.cart.Load(ctx, session.FromContext(ctx))
	if err != nil {
		slog.Error("load cart failed", "error", err)
	}
	h.renderDrawer(w, items, false)
}

// AddItem handles the detail panel's add-to-cart submit. An existing
// row with the same (product, size, color) key is merged into; the
// success toast is shown for a fixed two-second window client-side.
func (h *Cart) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	productID, err := uuid.Parse(r.PostFormValue("product_id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	size := optional(r.PostFormValue("size"))
	color := optional(r.PostFormValue("color"))
	quantity := parseQuantity(r.PostFormValue("quantity"), 1)

	items, err := h.cart.Add(ctx, sessionID, productID, size, color, quantity)
	if err != nil {
		slog.Error("add to cart failed", "error", err, "product_id", productID)
		h.renderPrior(w, ctx, sessionID)
		return
	}
	h.renderDrawer(w, items, true)
}

// UpdateItem sets a row's quantity. Values below 1 are rejected without
// effect; the drawer re-renders with the stored quantity unchanged.
func (h *Cart) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.FromContext(ctx)

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	quantity, err := strconv.Atoi(r.URL.Query().Get("quantity"))
	if err != nil {
		http.Error(w, "invalid quantity", http.StatusBadRequest)
		return
	}

	items, err := h.cart.UpdateQuantity(ctx, sessionID, itemID, quantity)
	if err != nil {
		slog.Error("update cart quantity failed", "error", err, "item_id", itemID)
		h.renderPrior(w, ctx, sessionID)
		return
	}
	h.renderDrawer(w, items, false)
}

// RemoveItem deletes a single row.
func (h *Cart) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.FromContext(ctx)

	itemID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	items, err := h.cart.Remove(ctx, sessionID, itemID)
	if err != nil {
		slog.Error("remove cart item failed", "error", err, "item_id", itemID)
		h.renderPrior(w, ctx, sessionID)
		return
	}
	h.renderDrawer(w, items, false)
}

// Clear empties the session's cart. The result is known, so the empty
// drawer is rendered directly without a reload.
func (h *Cart) Clear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.FromContext(ctx)

	if err := h.cart.Clear(ctx, sessionID); err != nil {
		slog.Error("clear cart failed", "error", err)
		h.renderPrior(w, ctx, sessionID)
		return
	}
	h.renderDrawer(w, nil, false)
}

// renderDrawer renders the cart fragment with derived total and count.
func (h *Cart) renderDrawer(w http.ResponseWriter, items []models.CartItem, added bool) {
	data := map[string]any{
		"Items":     items,
		"Total":     cart.Total(items),
		"CartCount": cart.Count(items),
		"Added":     added,
	}
	if err := h.renderer.Render(w, "cart", data); err != nil {
		slog.Error("render cart failed", "error", err)
	}
}

// renderPrior re-renders the drawer from whatever the store currently
// holds after a failed mutation. No partial local state is ever shown.
func (h *Cart) renderPrior(w http.ResponseWriter, ctx context.Context, sessionID string) {
	items, err := h.cart.Load(ctx, sessionID)
	if err != nil {
		slog.Error("reload cart failed", "error", err)
	}
	h.renderDrawer(w, items, false)
}

// optional converts an empty form value to nil, so an unselected size
// or color matches the absent side of the cart item key.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// parseQuantity parses a quantity field, falling back to a default and
// clamping below 1.
func parseQuantity(v string, fallback int) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
