// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package swatch maps product color names to display hex values for the
// color selector swatches. Purely cosmetic; color names themselves are
// the data the cart stores.
package swatch

import "strings"

// fallback is the neutral swatch used for unrecognised color names.
const fallback = "#d1d5db"

var hexByName = map[string]string{
	"white":  "#ffffff",
	"black":  "#000000",
	"blue":   "#3b82f6",
	"red":    "#ef4444",
	"gray":   "#6b7280",
	"beige":  "#d4b896",
	"pink":   "#ec4899",
	"navy":   "#1e3a8a",
	"silver": "#c0c0c0",
	"nude":   "#e3bc9a",
}

// Hex returns the display hex value for a color name, matched
// case-insensitively. Unknown names get a neutral fallback.
func Hex(name string) string {
	if hex, ok := hexByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return hex
	}
	return fallback
}
