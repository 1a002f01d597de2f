// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem represents one row in a session's cart. The (SessionID,
// ProductID, Size, Color) tuple is the logical key: adding the same
// combination again merges into the existing row instead of creating a
// duplicate.
type CartItem struct {
	ID        uuid.UUID `json:"id"`
	SessionID *string   `json:"session_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Size      *string   `json:"size,omitempty"`
	Color     *string   `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Product is populated by joined fetches. It may be nil if the
	// referenced product no longer resolves; callers must treat a nil
	// product as price zero.
	Product *Product `json:"product,omitempty"`
}

// LineTotal returns price × quantity for the row. An unresolved
// product contributes zero.
func (i *CartItem) LineTotal() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// MatchesKey reports whether the item has the given logical key.
// Size and color match only when both sides agree, including both
// being absent.
func (i *CartItem) MatchesKey(productID uuid.UUID, size, color *string) bool {
	return i.ProductID == productID && ptrEq(i.Size, size) && ptrEq(i.Color, color)
}

// ptrEq compares two *string values (both nil or same value).
func ptrEq(a, b *string) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}
