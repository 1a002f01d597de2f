// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"

	"shopfront/internal/session"
)

// WithSession ensures every request carries a cart session identity.
// A missing cookie gets a fresh token issued on the response; the token
// is placed on the request context for handlers to scope cart rows.
func WithSession(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, _ := session.GetOrCreate(w, r, secure)
			next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), id)))
		})
	}
}
