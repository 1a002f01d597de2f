// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func TestStringListScan(t *testing.T) {
	var l StringList
	if err := l.Scan([]byte(`["S","M","L"]`)); err != nil {
		t.Fatalf("Scan bytes: %v", err)
	}
	if len(l) != 3 || l[0] != "S" || l[2] != "L" {
		t.Errorf("scanned %v", l)
	}

	if err := l.Scan(`["black"]`); err != nil {
		t.Fatalf("Scan string: %v", err)
	}
	if len(l) != 1 || l[0] != "black" {
		t.Errorf("scanned %v", l)
	}

	if err := l.Scan(nil); err != nil {
		t.Fatalf("Scan nil: %v", err)
	}
	if l != nil {
		t.Errorf("expected nil list from NULL, got %v", l)
	}

	if err := l.Scan(42); err == nil {
		t.Error("expected error for unsupported scan type")
	}
}

func TestStringListValue(t *testing.T) {
	v, err := StringList{"S", "M"}.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if string(v.([]byte)) != `["S","M"]` {
		t.Errorf("Value = %s", v)
	}

	// nil list writes an empty array, never SQL NULL.
	v, err = StringList(nil).Value()
	if err != nil {
		t.Fatalf("Value nil: %v", err)
	}
	if string(v.([]byte)) != `[]` {
		t.Errorf("Value(nil) = %s", v)
	}
}

func TestCartItemMatchesKey(t *testing.T) {
	productID := uuid.New()
	item := CartItem{ProductID: productID, Size: strPtr("M"), Color: nil}

	if !item.MatchesKey(productID, strPtr("M"), nil) {
		t.Error("expected match for identical key")
	}
	if item.MatchesKey(productID, strPtr("L"), nil) {
		t.Error("matched despite different size")
	}
	if item.MatchesKey(productID, nil, nil) {
		t.Error("matched nil size against chosen size")
	}
	if item.MatchesKey(productID, strPtr("M"), strPtr("black")) {
		t.Error("matched chosen color against absent color")
	}
	if item.MatchesKey(uuid.New(), strPtr("M"), nil) {
		t.Error("matched different product")
	}

	bare := CartItem{ProductID: productID}
	if !bare.MatchesKey(productID, nil, nil) {
		t.Error("expected match when both sides have no size/color")
	}
}

func TestCartItemLineTotal(t *testing.T) {
	p := &Product{Price: decimal.RequireFromString("19.99")}
	item := CartItem{Quantity: 3, Product: p}

	if got := item.LineTotal(); !got.Equal(decimal.RequireFromString("59.97")) {
		t.Errorf("LineTotal = %s, want 59.97", got)
	}

	// Unresolved product contributes zero.
	orphan := CartItem{Quantity: 5}
	if !orphan.LineTotal().IsZero() {
		t.Errorf("LineTotal without product = %s, want 0", orphan.LineTotal())
	}
}

func TestProductInStock(t *testing.T) {
	if (&Product{Stock: 0}).InStock() {
		t.Error("zero stock reported as in stock")
	}
	if !(&Product{Stock: 3}).InStock() {
		t.Error("positive stock reported as out of stock")
	}
}
