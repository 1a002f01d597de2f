// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package payment

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func newTestGateway(handler http.HandlerFunc) (Gateway, *httptest.Server) {
	server := httptest.NewServer(handler)
	gw := NewGateway(Config{SecretKey: "sk_test_123", BaseURL: server.URL})
	return gw, server
}

func TestInitiateSendsAmountAndAuth(t *testing.T) {
	var gotPath, gotAuth, gotBody string

	gw, server := newTestGateway(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"id": "txn_1", "status": "pending", "amount": "149.50", "currency": "NGN",
		})
	})
	defer server.Close()

	txn, err := gw.Initiate(context.Background(), decimal.RequireFromString("149.5"), "NGN")
	if err != nil {
		t.Fatalf("Initiate: %v", err)
	}

	if gotPath != "POST /transactions" {
		t.Errorf("request: %s", gotPath)
	}
	if gotAuth != "Bearer sk_test_123" {
		t.Errorf("auth header: %q", gotAuth)
	}
	if !strings.Contains(gotBody, `"amount":"149.50"`) {
		t.Errorf("amount not sent with two decimals: %s", gotBody)
	}
	if !strings.Contains(gotBody, `"currency":"NGN"`) {
		t.Errorf("currency not sent: %s", gotBody)
	}

	if txn.ID != "txn_1" {
		t.Errorf("id: %q", txn.ID)
	}
	if txn.Status != StatusPending {
		t.Errorf("status: %q", txn.Status)
	}
	if !txn.Amount.Equal(decimal.RequireFromString("149.50")) {
		t.Errorf("amount: %s", txn.Amount)
	}
}

func TestLookupParsesStatus(t *testing.T) {
	gw, server := newTestGateway(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transactions/txn_9" {
			t.Errorf("path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"id": "txn_9", "status": "success", "amount": "60.00", "currency": "NGN",
		})
	})
	defer server.Close()

	txn, err := gw.Lookup(context.Background(), "txn_9")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !txn.Succeeded() {
		t.Errorf("expected success, got status %q", txn.Status)
	}
}

func TestGatewayAPIErrorSurfacesStatusAndBody(t *testing.T) {
	gw, server := newTestGateway(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid key"}`, http.StatusUnauthorized)
	})
	defer server.Close()

	_, err := gw.Initiate(context.Background(), decimal.RequireFromString("10"), "NGN")
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("error does not carry status code: %v", err)
	}
	if !strings.Contains(err.Error(), "invalid key") {
		t.Errorf("error does not carry response body: %v", err)
	}
}

func TestGatewayBadAmountRejected(t *testing.T) {
	gw, server := newTestGateway(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"id": "txn_2", "status": "pending", "amount": "not-a-number", "currency": "NGN",
		})
	})
	defer server.Close()

	if _, err := gw.Lookup(context.Background(), "txn_2"); err == nil {
		t.Fatal("expected error for malformed amount")
	}
}

func TestSucceeded(t *testing.T) {
	if (&Transaction{Status: StatusPending}).Succeeded() {
		t.Error("pending reported as succeeded")
	}
	if (&Transaction{Status: StatusFailed}).Succeeded() {
		t.Error("failed reported as succeeded")
	}
	if !(&Transaction{Status: StatusSuccess}).Succeeded() {
		t.Error("success not reported as succeeded")
	}
	var nilTxn *Transaction
	if nilTxn.Succeeded() {
		t.Error("nil transaction reported as succeeded")
	}
}

func TestDefaultWidgetTheme(t *testing.T) {
	w := DefaultWidget(decimal.RequireFromString("99.00"), "NGN")
	if w.BgColor != "#111828" || w.TextColor != "#ffffff" {
		t.Errorf("widget theme: bg %q text %q", w.BgColor, w.TextColor)
	}
	if w.Currency != "NGN" {
		t.Errorf("widget currency: %q", w.Currency)
	}
}
