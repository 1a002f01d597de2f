// Package session provides the anonymous cart identity. A random token
// is issued once per browser in a long-lived cookie and reused verbatim
// on every later visit; cart rows are scoped to it in lieu of user
// accounts. There is no server-side session state, no expiry, and no
// rotation.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	// CookieName is the fixed key the cart session token is stored under.
	CookieName = "cart_session_id"

	// cookieMaxAge keeps the cookie effectively permanent. The identity
	// has no expiry by design; ten years is the practical ceiling
	// browsers honour.
	cookieMaxAge = int(10 * 365 * 24 * time.Hour / time.Second)
)

type contextKey struct{}

// GetOrCreate returns the session token from the request cookie, or
// generates a new one and sets it on the response. The second return
// value reports whether a new identity was issued.
func GetOrCreate(w http.ResponseWriter, r *http.Request, secure bool) (string, bool) {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		return cookie.Value, false
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   cookieMaxAge,
	})
	return id, true
}

// NewContext returns a context carrying the session token.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext extracts the session token placed by the middleware.
// Returns "" if none is present.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
