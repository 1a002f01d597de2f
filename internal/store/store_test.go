// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"shopfront/internal/database"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "shopfront")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "shopfront")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// insertCategory creates a category fixture and registers its removal.
// Products and cart rows referencing it cascade away with it.
func insertCategory(t *testing.T, db *sql.DB, name, slug string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(
		`INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id`,
		name, slug,
	).Scan(&id)
	if err != nil {
		t.Fatalf("insert category fixture: %v", err)
	}

	t.Cleanup(func() {
		if _, err := db.Exec(`DELETE FROM categories WHERE id = $1`, id); err != nil {
			t.Errorf("cleanup category: %v", err)
		}
	})
	return id
}

// insertProduct creates a product fixture under the given category.
func insertProduct(t *testing.T, db *sql.DB, categoryID uuid.UUID, name, price string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO products (category_id, name, description, price, image_url, sizes, colors, stock)
		VALUES ($1, $2, 'Test description.', $3, 'https://example.com/p.jpg', '["S","M"]', '["white","black"]', 9)
		RETURNING id
	`, categoryID, name, price).Scan(&id)
	if err != nil {
		t.Fatalf("insert product fixture: %v", err)
	}
	return id
}

var testCtx = context.Background()
