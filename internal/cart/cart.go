// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cart implements the shopping cart over the cart_items store.
//
// Consistency contract: every mutation method returns only after the
// authoritative item list has been reloaded from the store. There are no
// optimistic local updates; the returned list is always what the store
// holds. Clear is the one exception — the result is known to be empty,
// so it skips the reload.
package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shopfront/internal/models"
)

// Store is the slice of the database layer the cart needs. Satisfied by
// *store.CartStore; substitutable with an in-memory double in tests.
type Store interface {
	ListBySession(ctx context.Context, sessionID string) ([]models.CartItem, error)
	Insert(ctx context.Context, item *models.CartItem) (*models.CartItem, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteBySession(ctx context.Context, sessionID string) error
}

// Service manages one logical cart per session identifier.
type Service struct {
	store Store
}

// New creates a cart service over the given store.
func New(store Store) *Service {
	return &Service{store: store}
}

// Load fetches all cart rows for the session, each joined with its
// referenced product.
func (s *Service) Load(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	return s.store.ListBySession(ctx, sessionID)
}

// Add puts a product in the cart. If a row with the same
// (product, size, color) key already exists — including size and color
// both being absent — its quantity is incremented by quantity instead of
// creating a duplicate row. Quantities below 1 are treated as 1.
// On success the reloaded list is returned; on failure the store is
// untouched and the error is reported.
func (s *Service) Add(ctx context.Context, sessionID string, productID uuid.UUID, size, color *string, quantity int) ([]models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	items, err := s.store.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("cart add: %w", err)
	}

	var existing *models.CartItem
	for i := range items {
		if items[i].MatchesKey(productID, size, color) {
			existing = &items[i]
			break
		}
	}

	if existing != nil {
		err = s.store.UpdateQuantity(ctx, existing.ID, existing.Quantity+quantity)
	} else {
		_, err = s.store.Insert(ctx, &models.CartItem{
			SessionID: &sessionID,
			ProductID: productID,
			Quantity:  quantity,
			Size:      size,
			Color:     color,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("cart add: %w", err)
	}

	return s.Load(ctx, sessionID)
}

// UpdateQuantity sets an item's quantity. Requests below 1 are rejected
// without effect and return the current list; decrement-to-zero is only
// expressed as Remove.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, itemID uuid.UUID, quantity int) ([]models.CartItem, error) {
	if quantity < 1 {
		return s.Load(ctx, sessionID)
	}

	if err := s.store.UpdateQuantity(ctx, itemID, quantity); err != nil {
		return nil, fmt.Errorf("cart update quantity: %w", err)
	}
	return s.Load(ctx, sessionID)
}

// Remove deletes a single item and returns the reloaded list.
func (s *Service) Remove(ctx context.Context, sessionID string, itemID uuid.UUID) ([]models.CartItem, error) {
	if err := s.store.Delete(ctx, itemID); err != nil {
		return nil, fmt.Errorf("cart remove: %w", err)
	}
	return s.Load(ctx, sessionID)
}

// Clear deletes every row for the session. No reload follows: the
// result is known to be empty.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.DeleteBySession(ctx, sessionID); err != nil {
		return fmt.Errorf("cart clear: %w", err)
	}
	return nil
}

// Total computes Σ price×quantity over the items, treating a missing
// product as price zero. Recomputed fresh on every call.
func Total(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].LineTotal())
	}
	return total
}

// Count computes Σ quantity over the items.
func Count(items []models.CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
