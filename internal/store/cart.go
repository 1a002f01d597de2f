// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"shopfront/internal/models"
)

// CartStore manages cart_items rows. Rows are scoped to a session
// identifier; each fetched row carries its referenced product joined in.
type CartStore struct {
	db *sql.DB
}

// NewCartStore returns a new CartStore.
func NewCartStore(db *sql.DB) *CartStore {
	return &CartStore{db: db}
}

// ListBySession returns all cart rows for a session, oldest first, each
// left-joined with its product. A dangling product reference yields a
// row with a nil Product rather than an error.
func (s *CartStore) ListBySession(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ci.id, ci.session_id, ci.product_id, ci.quantity, ci.size, ci.color, ci.created_at,
		       p.id, p.category_id, p.name, p.description, p.price, p.image_url,
		       p.sizes, p.colors, p.stock, p.created_at
		FROM cart_items ci
		LEFT JOIN products p ON p.id = ci.product_id
		WHERE ci.session_id = $1
		ORDER BY ci.created_at
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var (
			item models.CartItem
			p    models.Product

			// Product columns come from a LEFT JOIN and may all be NULL.
			pID        *uuid.UUID
			pCatID     *uuid.UUID
			pName      *string
			pDesc      *string
			pPrice     sql.NullString
			pImage     *string
			pStock     sql.NullInt64
			pCreatedAt sql.NullTime
		)
		err := rows.Scan(
			&item.ID, &item.SessionID, &item.ProductID, &item.Quantity,
			&item.Size, &item.Color, &item.CreatedAt,
			&pID, &pCatID, &pName, &pDesc, &pPrice, &pImage,
			&p.Sizes, &p.Colors, &pStock, &pCreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		if pID != nil {
			p.ID = *pID
			p.CategoryID = *pCatID
			p.Name = *pName
			p.Description = pDesc
			if pPrice.Valid {
				if err := p.Price.Scan(pPrice.String); err != nil {
					return nil, fmt.Errorf("scan cart item price: %w", err)
				}
			}
			if pImage != nil {
				p.ImageURL = *pImage
			}
			p.Stock = int(pStock.Int64)
			p.CreatedAt = pCreatedAt.Time
			item.Product = &p
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Insert creates a new cart row and returns it (without the joined
// product).
func (s *CartStore) Insert(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO cart_items (session_id, product_id, quantity, size, color)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, session_id, product_id, quantity, size, color, created_at
	`, item.SessionID, item.ProductID, item.Quantity, item.Size, item.Color)

	var created models.CartItem
	err := row.Scan(
		&created.ID, &created.SessionID, &created.ProductID,
		&created.Quantity, &created.Size, &created.Color, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert cart item: %w", err)
	}
	return &created, nil
}

// UpdateQuantity sets the quantity of a single cart row.
func (s *CartStore) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE cart_items SET quantity = $1 WHERE id = $2`, quantity, id)
	if err != nil {
		return fmt.Errorf("update cart quantity: %w", err)
	}
	return nil
}

// Delete removes a single cart row by ID.
func (s *CartStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// DeleteBySession removes every cart row belonging to a session.
func (s *CartStore) DeleteBySession(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
