package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with a small demo catalog so the
// storefront is browsable in development. It is a no-op if any
// categories already exist. Production catalogs are managed by an
// external administrative process, never by this application.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	type seedProduct struct {
		name, description, price, image string
		sizes, colors                   string
		stock                           int
	}

	catalog := []struct {
		name, slug, description string
		products                []seedProduct
	}{
		{
			name: "Tops", slug: "tops", description: "Shirts, tees and blouses",
			products: []seedProduct{
				{"Classic Oxford Shirt", "A crisp cotton oxford for every day.", "45.00",
					"https://images.pexels.com/photos/297933/pexels-photo-297933.jpeg",
					`["S","M","L","XL"]`, `["white","blue"]`, 24},
				{"Relaxed Linen Tee", "Breathable linen blend with a boxy cut.", "28.00",
					"https://images.pexels.com/photos/1656684/pexels-photo-1656684.jpeg",
					`["S","M","L"]`, `["beige","black"]`, 40},
			},
		},
		{
			name: "Bottoms", slug: "bottoms", description: "Trousers, denim and shorts",
			products: []seedProduct{
				{"Tapered Chino", "Mid-rise chino with a tapered leg.", "62.00",
					"https://images.pexels.com/photos/1598507/pexels-photo-1598507.jpeg",
					`["28","30","32","34"]`, `["navy","gray"]`, 18},
				{"Wide-Leg Denim", "Rigid denim, wide through the leg.", "78.00",
					"https://images.pexels.com/photos/1082529/pexels-photo-1082529.jpeg",
					`["26","28","30","32"]`, `["blue"]`, 12},
			},
		},
		{
			name: "Accessories", slug: "accessories", description: "Finishing touches",
			products: []seedProduct{
				{"Leather Belt", "Full-grain leather with a brushed buckle.", "35.00",
					"https://images.pexels.com/photos/45055/pexels-photo-45055.jpeg",
					`[]`, `["black","nude"]`, 30},
				{"Silk Scarf", "Hand-rolled edges, printed silk twill.", "49.00",
					"https://images.pexels.com/photos/1927259/pexels-photo-1927259.jpeg",
					`[]`, `["pink","silver","red"]`, 8},
			},
		},
	}

	for _, c := range catalog {
		var categoryID string
		err := db.QueryRow(`
			INSERT INTO categories (name, slug, description)
			VALUES ($1, $2, $3)
			RETURNING id
		`, c.name, c.slug, c.description).Scan(&categoryID)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", c.name, err)
		}

		for _, p := range c.products {
			_, err := db.Exec(`
				INSERT INTO products (category_id, name, description, price, image_url, sizes, colors, stock)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			`, categoryID, p.name, p.description, p.price, p.image, p.sizes, p.colors, p.stock)
			if err != nil {
				return fmt.Errorf("seed product %q: %w", p.name, err)
			}
		}
	}

	slog.Info("database seeded with demo catalog")
	return nil
}
