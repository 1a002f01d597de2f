// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package payment wraps the third-party payment gateway behind a narrow
// boundary. The gateway owns the entire transaction lifecycle; the host
// only initiates a transaction for the cart total and observes its
// status. No payment protocol is implemented here.
package payment

import "github.com/shopspring/decimal"

// Status is the externally-owned transaction state observed by the host.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Transaction is the host-visible view of a gateway transaction.
type Transaction struct {
	ID       string          `json:"id"`
	Status   Status          `json:"status"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// Succeeded reports whether the transaction reached its terminal
// success state, the only signal the storefront acts on (cart clear
// and panel close). Failed and pending are left to the widget's own UI.
func (t *Transaction) Succeeded() bool {
	return t != nil && t.Status == StatusSuccess
}

// Widget holds the public configuration rendered into the embedded
// payment widget. The merchant secret never reaches the browser; it is
// used only by the server-side gateway client.
type Widget struct {
	Currency  string
	Amount    decimal.Decimal
	BgColor   string
	TextColor string
}

// DefaultWidget returns the widget configuration with the storefront's
// theme colors applied.
func DefaultWidget(amount decimal.Decimal, currency string) Widget {
	return Widget{
		Currency:  currency,
		Amount:    amount,
		BgColor:   "#111828",
		TextColor: "#ffffff",
	}
}
