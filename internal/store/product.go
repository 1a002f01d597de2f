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

// ProductStore reads products from the database. The storefront never
// writes to this table; stock values are advisory display data.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore returns a new ProductStore.
func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `id, category_id, name, description, price, image_url, sizes, colors, stock, created_at`

// scanProduct scans a row into a Product struct.
func scanProduct(scanner interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	err := scanner.Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Price,
		&p.ImageURL, &p.Sizes, &p.Colors, &p.Stock, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns products ordered by creation time descending (newest
// first). When categoryID is non-nil, the result is restricted to that
// category server-side.
func (s *ProductStore) List(ctx context.Context, categoryID *uuid.UUID) ([]models.Product, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if categoryID != nil {
		rows, err = s.db.QueryContext(ctx, `
			SELECT `+productColumns+` FROM products
			WHERE category_id = $1
			ORDER BY created_at DESC
		`, *categoryID)
	} else {
		rows, err = s.db.QueryContext(ctx, `
			SELECT `+productColumns+` FROM products
			ORDER BY created_at DESC
		`)
	}
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var items []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a product by ID. Returns nil if not found.
func (s *ProductStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return p, nil
}
