// File: align_test.go
// Title: Tests for List and Column Alignment
// Description: Tests for ParseAligns, ListAlign and Realign.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package stringx

import (
	"reflect"
	"testing"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

func TestParseAligns(t *testing.T) {
	got, err := ParseAligns("lCr")
	if err != nil {
		t.Fatalf("ParseAligns() unexpected error: %v", err)
	}
	want := []Align{AlignLeft, AlignCenter, AlignRight}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseAligns() = %v, want %v", got, want)
	}

	if _, err := ParseAligns("lx"); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
		t.Errorf("ParseAligns(\"lx\") error = %v, want INVALID_FORMAT", err)
	}
}

func TestListAlign(t *testing.T) {
	tests := []struct {
		name     string
		items    []string
		opts     ListAlignOptions
		expected []string
	}{
		{
			name:     "defaults",
			items:    []string{"a", "哈哈", "ccd"},
			expected: []string{"   a", "哈哈", " ccd"},
		},
		{
			name:  "aligns width fill and affixes",
			items: []string{"ab", "中", "x"},
			opts: ListAlignOptions{
				Aligns: []Align{AlignLeft, AlignCenter},
				Width:  6,
				Fill:   '-',
				Prefix: "[",
				Suffix: "]",
			},
			expected: []string{"[ab----]", "[--中--]", "[---x--]"},
		},
		{
			name:     "newlines escaped",
			items:    []string{"a\nb", "c"},
			opts:     ListAlignOptions{Aligns: []Align{AlignLeft}},
			expected: []string{`a\nb`, "c   "},
		},
		{
			name:     "fractional chinese width",
			items:    []string{"哈哈a", "b"},
			opts:     ListAlignOptions{ChineseWidth: 1.8},
			expected: []string{"　　　哈哈a", "         b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ListAlign(tt.items, tt.opts)
			if err != nil {
				t.Fatalf("ListAlign() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ListAlign() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestListAlign_Errors(t *testing.T) {
	got, err := ListAlign(nil, ListAlignOptions{})
	if err != nil || got != nil {
		t.Errorf("ListAlign(nil) = %v, %v, want nil, nil", got, err)
	}

	_, err = ListAlign([]string{"a"}, ListAlignOptions{ChineseWidth: -1})
	if !mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
		t.Errorf("ListAlign() with negative width error = %v, want VALUE_OUT_OF_RANGE", err)
	}
}

func TestRealign(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		opts     RealignOptions
		expected string
	}{
		{
			name:     "ragged columns",
			text:     "a    b    c\nlonger    d",
			expected: "a         b    c\nlonger    d",
		},
		{
			name:     "single column untouched",
			text:     "x\ny  z",
			expected: "x\ny  z",
		},
		{
			name:     "tabs expand",
			text:     "ab\tc\nd    e",
			expected: "ab    c\nd     e",
		},
		{
			name:     "rune width",
			text:     "中文    a\nb    c",
			expected: "中文    a\nb     c",
		},
		{
			name:     "east asian width",
			text:     "中文    a\nb    c",
			opts:     RealignOptions{EastAsian: true},
			expected: "中文    a\nb       c",
		},
		{
			name:     "custom separator and gap",
			text:     "k  v\nkey  value\n\n",
			opts:     RealignOptions{LeastBlank: 2, Separator: "="},
			expected: "k  =v\nkey=value",
		},
		{
			name:     "lines trimmed",
			text:     "  a    b  ",
			expected: "a    b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Realign(tt.text, tt.opts); got != tt.expected {
				t.Errorf("Realign() = %q, want %q", got, tt.expected)
			}
		})
	}
}
