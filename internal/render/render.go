// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the storefront.
// The full page and every HTMX fragment (product grid, detail panel,
// cart drawer, payment panel) live in one embedded template set; view
// code stays free of business logic beyond display formatting.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/shopspring/decimal"

	"shopfront/internal/swatch"
)

//go:embed templates/shop/*.html
var shopFS embed.FS

// Renderer executes storefront templates by name.
type Renderer struct {
	templates *template.Template
}

// New parses all storefront templates from the embedded filesystem.
func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		// money formats a decimal amount with two fixed decimals.
		"money": func(d decimal.Decimal) string {
			return d.StringFixed(2)
		},
		// deref safely dereferences a string pointer for use in templates.
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		// swatchHex maps a color name to its display hex value.
		"swatchHex": swatch.Hex,
		// inc and dec drive the cart quantity stepper links.
		"inc": func(n int) int { return n + 1 },
		"dec": func(n int) int { return n - 1 },
	}

	t, err := template.New("shop").Funcs(funcMap).ParseFS(shopFS, "templates/shop/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{templates: t}, nil
}

// Render executes the named template into the response with an HTML
// content type. Execution errors after the first byte cannot be
// reported to the client; they are returned for the caller to log.
func (r *Renderer) Render(w http.ResponseWriter, name string, data any) error {
	out, err := r.RenderBytes(name, data)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = w.Write(out)
	return err
}

// RenderBytes executes the named template into a buffer. Used by
// handlers that cache rendered fragments.
func (r *Renderer) RenderBytes(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
