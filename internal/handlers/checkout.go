// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"shopfront/internal/cart"
	"shopfront/internal/payment"
	"shopfront/internal/render"
	"shopfront/internal/session"
)

// Checkout groups the payment panel handlers. The panel embeds the
// third-party widget for the current cart total and polls the
// externally-owned transaction status; only the "success" state drives
// behavior here (cart clear and panel close after a fixed delay).
// Failed and pending transactions are the widget's own concern.
type Checkout struct {
	renderer *render.Renderer
	cart     *cart.Service
	gateway  payment.Gateway
	currency string
}

// NewCheckout creates the Checkout handler group.
func NewCheckout(renderer *render.Renderer, cartSvc *cart.Service, gateway payment.Gateway, currency string) *Checkout {
	return &Checkout{
		renderer: renderer,
		cart:     cartSvc,
		gateway:  gateway,
		currency: currency,
	}
}

// Panel initiates a gateway transaction for the cart total and renders
// the payment panel. If initiation fails, the panel still opens with
// the widget amount shown and no status polling — the shopper can
// cancel and retry, mirroring the silent-failure contract everywhere
// else.
func (h *Checkout) Panel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.cart.Load(ctx, session.FromContext(ctx))
	if err != nil {
		slog.Error("load cart failed", "error", err)
	}
	total := cart.Total(items)

	var transactionID string
	tx, err := h.gateway.Initiate(ctx, total, h.currency)
	if err != nil {
		slog.Error("initiate payment failed", "error", err, "amount", total.StringFixed(2))
	} else {
		transactionID = tx.ID
	}

	data := map[string]any{
		"Widget":        payment.DefaultWidget(total, h.currency),
		"TransactionID": transactionID,
	}
	if err := h.renderer.Render(w, "payment", data); err != nil {
		slog.Error("render payment panel failed", "error", err)
	}
}

// Status polls the gateway for the transaction state. Anything other
// than success re-arms the poll; a lookup failure is logged and treated
// the same way.
func (h *Checkout) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	transactionID := r.URL.Query().Get("tx")
	if transactionID == "" {
		http.Error(w, "missing transaction", http.StatusBadRequest)
		return
	}

	tx, err := h.gateway.Lookup(ctx, transactionID)
	if err != nil {
		slog.Error("payment status lookup failed", "error", err, "tx", transactionID)
	}

	data := map[string]any{
		"TransactionID": transactionID,
		"Succeeded":     tx.Succeeded(),
		"Failed":        tx != nil && tx.Status == payment.StatusFailed,
	}
	if err := h.renderer.Render(w, "payment_status", data); err != nil {
		slog.Error("render payment status failed", "error", err)
	}
}

// Complete runs after the fixed post-success delay: it clears the cart
// and closes the panel, resetting the header badge.
func (h *Checkout) Complete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.FromContext(ctx)

	if err := h.cart.Clear(ctx, sessionID); err != nil {
		slog.Error("clear cart after payment failed", "error", err)
	}

	data := map[string]any{"CartCount": 0}
	if err := h.renderer.Render(w, "payment_complete", data); err != nil {
		slog.Error("render payment complete failed", "error", err)
	}
}
