// File: render_test.go
// Title: Tests for Terminal Table Rendering
// Description: Structural tests for Render: equal line widths, shortened
//              cells, index column and border selection.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package tablex

import (
	"strings"
	"testing"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
)

func assertRectangular(t *testing.T, out string) []string {
	t.Helper()
	lines := strings.Split(out, "\n")
	want := mdwstringx.DisplayWidth(lines[0])
	for i, line := range lines {
		if got := mdwstringx.DisplayWidth(line); got != want {
			t.Errorf("line %d width = %d, want %d\n%s", i, got, want, out)
		}
	}
	return lines
}

func TestRender(t *testing.T) {
	rows := [][]string{
		{"alpha", "中文"},
		{"b"},
		{"a啊ba啊ba啊ba啊b", "x"},
	}
	opts := DefaultOptions()
	opts.MaxColWidth = 11

	out, err := Render([]string{"name", "备注"}, rows, opts)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	lines := assertRectangular(t, out)
	if len(lines) != 7 {
		t.Errorf("Render() produced %d lines, want 7\n%s", len(lines), out)
	}
	if !strings.Contains(out, "a啊ba啊...") {
		t.Errorf("Render() did not shorten the long cell\n%s", out)
	}
	if !strings.Contains(out, "备注") {
		t.Errorf("Render() lost a header\n%s", out)
	}
}

func TestRender_NoShorten(t *testing.T) {
	long := strings.Repeat("x", 80)
	opts := DefaultOptions()
	opts.Shorten = false

	out, err := Render(nil, [][]string{{long}}, opts)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if !strings.Contains(out, long) {
		t.Errorf("Render() shortened a cell with Shorten disabled")
	}
}

func TestRender_Index(t *testing.T) {
	opts := DefaultOptions()
	opts.Index = true
	opts.Border = "ascii"

	out, err := Render([]string{"v"}, [][]string{{"a"}, {"b"}, {"c"}}, opts)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	assertRectangular(t, out)
	for _, want := range []string{"| 0 | a |", "| 2 | c |"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q\n%s", want, out)
		}
	}
}

func TestRender_Borders(t *testing.T) {
	for _, name := range Borders() {
		t.Run(name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Border = name
			if _, err := Render([]string{"h"}, [][]string{{"c"}}, opts); err != nil {
				t.Errorf("Render() with border %q: %v", name, err)
			}
		})
	}

	opts := DefaultOptions()
	opts.Border = "zigzag"
	_, err := Render(nil, nil, opts)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("Render() with unknown border error = %v, want INVALID_INPUT", err)
	}
}
