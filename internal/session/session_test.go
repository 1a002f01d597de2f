// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestGetOrCreateIssuesToken(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	id, created := GetOrCreate(w, r, false)
	if !created {
		t.Fatal("expected a new identity on first use")
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("token is not a UUID: %q", id)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != CookieName {
		t.Errorf("cookie name: got %q, want %q", c.Name, CookieName)
	}
	if c.Value != id {
		t.Error("cookie value differs from returned token")
	}
	if !c.HttpOnly {
		t.Error("cookie must be HttpOnly")
	}
	if c.MaxAge <= 0 {
		t.Error("cookie must be long-lived")
	}
}

func TestGetOrCreateReusesStoredTokenVerbatim(t *testing.T) {
	// First load issues the token.
	w1 := httptest.NewRecorder()
	r1 := httptest.NewRequest(http.MethodGet, "/", nil)
	first, _ := GetOrCreate(w1, r1, false)

	// Second load on the same storage replays the cookie.
	w2 := httptest.NewRecorder()
	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(&http.Cookie{Name: CookieName, Value: first})

	second, created := GetOrCreate(w2, r2, false)
	if created {
		t.Error("expected existing identity to be reused")
	}
	if second != first {
		t.Errorf("token changed across loads: %q != %q", second, first)
	}
	if len(w2.Result().Cookies()) != 0 {
		t.Error("no cookie should be re-set for an existing identity")
	}
}

func TestSecureFlagFollowsEnvironment(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	GetOrCreate(w, r, true)
	if !w.Result().Cookies()[0].Secure {
		t.Error("expected Secure cookie when requested")
	}
}

func TestContextRoundTrip(t *testing.T) {
	ctx := NewContext(context.Background(), "token-1")
	if got := FromContext(ctx); got != "token-1" {
		t.Errorf("FromContext = %q", got)
	}
	if got := FromContext(context.Background()); got != "" {
		t.Errorf("FromContext on empty context = %q", got)
	}
}
