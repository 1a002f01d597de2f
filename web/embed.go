// Package web provides embedded static assets for the storefront.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree served at /static/.
//
//go:embed all:static
var StaticFS embed.FS
