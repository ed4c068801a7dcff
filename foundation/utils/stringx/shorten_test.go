// File: shorten_test.go
// Title: Tests for Width Limited Shortening
// Description: Tests for Shorten, EastAsianShorten and WidthAdjust.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package stringx

import (
	"testing"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

func TestShorten(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"Hello  world!", 11, "Hello world"},
		{"0123456789 0123456789", 11, "0123456789 "},
		{"hell world! 0123456789 0123456789", 11, "hell world!"},
		{"short", 10, "short"},
		{" a \t b ", 10, " a b "},
		{"中文字符", 2, "中文"},
		{"anything", 0, ""},
	}

	for _, tt := range tests {
		if got := Shorten(tt.input, tt.width); got != tt.expected {
			t.Errorf("Shorten(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
		}
	}
}

func TestEastAsianShorten(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		width       int
		placeholder string
		expected    string
	}{
		{"cut", "a啊ba啊ba啊ba啊b", 11, "...", "a啊ba啊..."},
		{"fits", "abc", 10, "...", "abc"},
		{"fits collapses spaces", "a   b", 10, "...", "a b"},
		{"exact width is cut", "abcde", 5, "..", "ab.."},
		{"no room beyond placeholder", "abcdef", 3, "...", ".."},
		{"zero width", "abc", 0, "...", ""},
		{"empty placeholder", "中文中文", 4, "", "中"},
		{"outside gbk", "😀😀😀😀", 6, "...", "😀..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EastAsianShorten(tt.input, tt.width, tt.placeholder)
			if got != tt.expected {
				t.Errorf("EastAsianShorten(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.expected)
			}
		})
	}
}

func TestWordShorten(t *testing.T) {
	tests := []struct {
		input    string
		limit    int
		expected string
	}{
		{"one two three", 9, "one two"},
		{"one two three", 20, "one two three"},
		{"abcdefgh ij", 4, "abcd"},
	}

	for _, tt := range tests {
		if got := wordShorten(tt.input, tt.limit); got != tt.expected {
			t.Errorf("wordShorten(%q, %d) = %q, want %q", tt.input, tt.limit, got, tt.expected)
		}
	}
}

func TestWidthAdjust(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		align     Align
		cw        float64
		expected  string
		wantWidth int
	}{
		{"right", "哈哈a", AlignRight, 1.8, "　　　哈哈a", 10},
		{"left", "哈哈a", AlignLeft, 1.8, "哈哈a　　　", 10},
		{"center", "哈哈a", AlignCenter, 1.8, "　　哈哈a　", 10},
		{"already integral", "哈哈a", AlignRight, 1.5, "哈哈a", 4},
		{"ascii only", "ab", AlignRight, 1.8, "ab", 2},
		{"two columns", "中", AlignRight, 2, "中", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, w, err := WidthAdjust(tt.input, tt.align, tt.cw)
			if err != nil {
				t.Fatalf("WidthAdjust() unexpected error: %v", err)
			}
			if got != tt.expected || w != tt.wantWidth {
				t.Errorf("WidthAdjust(%q) = (%q, %d), want (%q, %d)", tt.input, got, w, tt.expected, tt.wantWidth)
			}
		})
	}

	if _, _, err := WidthAdjust("中", AlignRight, 0); !mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
		t.Errorf("WidthAdjust() with zero width error = %v, want VALUE_OUT_OF_RANGE", err)
	}
}
