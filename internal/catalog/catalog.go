// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog exposes the read side of the storefront: category
// listing, product listing with optional server-side category filtering,
// and a pure in-memory text search over an already-fetched product list.
package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"shopfront/internal/models"
)

// CategoryStore is the slice of the database layer the catalog needs for
// categories. Satisfied by *store.CategoryStore; substitutable in tests.
type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
}

// ProductStore is the slice of the database layer the catalog needs for
// products.
type ProductStore interface {
	List(ctx context.Context, categoryID *uuid.UUID) ([]models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// Service answers catalog queries. It holds no state of its own; every
// call goes to the store.
type Service struct {
	categories CategoryStore
	products   ProductStore
}

// New creates a catalog service over the given stores.
func New(categories CategoryStore, products ProductStore) *Service {
	return &Service{categories: categories, products: products}
}

// Categories returns all categories ordered by name ascending.
func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

// Products returns products newest-first, restricted server-side to a
// category when categoryID is non-nil.
func (s *Service) Products(ctx context.Context, categoryID *uuid.UUID) ([]models.Product, error) {
	return s.products.List(ctx, categoryID)
}

// Product returns a single product by ID, or nil if not found.
func (s *Service) Product(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.products.FindByID(ctx, id)
}

// Search returns the subsequence of products whose name or description
// contains the query as a case-insensitive substring. An empty query
// returns the input unchanged. This is a view-level filter over whatever
// list is currently loaded, never a store query.
func Search(query string, products []models.Product) []models.Product {
	if query == "" {
		return products
	}
	q := strings.ToLower(query)

	var matched []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			matched = append(matched, p)
			continue
		}
		if p.Description != nil && strings.Contains(strings.ToLower(*p.Description), q) {
			matched = append(matched, p)
		}
	}
	return matched
}
