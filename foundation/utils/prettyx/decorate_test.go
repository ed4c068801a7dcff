// File: decorate_test.go
// Title: Tests for Result Formatting Decorators
// Description: Tests for Stringify, Prettified, Printed and FuncMsg.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package prettyx

import (
	"bytes"
	"strings"
	"testing"
)

func double(n int) []int {
	return []int{n, n}
}

func TestStringify(t *testing.T) {
	d := Stringify(double)

	if got := d.Call(3); got != "[3 3]" {
		t.Errorf("Call() = %q, want %q", got, "[3 3]")
	}
	if raw := d.LastRaw(); len(raw) != 2 || raw[0] != 3 {
		t.Errorf("LastRaw() = %v, want [3 3]", raw)
	}
}

func TestPrettified(t *testing.T) {
	d := Prettified(double)

	if got := d.Call(4); got != "[]int length: 2\n[4, 4]" {
		t.Errorf("Call() = %q", got)
	}
	d.Call(5)
	if raw := d.LastRaw(); raw[0] != 5 {
		t.Errorf("LastRaw() = %v, want the latest result", raw)
	}
}

func TestPrinted(t *testing.T) {
	var buf bytes.Buffer
	fn := Printed(&buf, func(s string) string { return strings.ToUpper(s) })

	if got := fn("abc"); got != "ABC" {
		t.Errorf("Printed() returned %q, want ABC", got)
	}
	if buf.String() != "ABC\n" {
		t.Errorf("Printed() wrote %q, want %q", buf.String(), "ABC\n")
	}
}

func TestFuncMsg(t *testing.T) {
	for name, fn := range map[string]any{
		"plain":     double,
		"decorated": Stringify(double),
	} {
		t.Run(name, func(t *testing.T) {
			got := FuncMsg(fn)
			if !strings.Contains(got, "prettyx.double") {
				t.Errorf("FuncMsg() = %q, want the function name", got)
			}
			if !strings.Contains(got, "decorate_test.go") {
				t.Errorf("FuncMsg() = %q, want the source file", got)
			}
		})
	}

	if got := FuncMsg(42); !strings.Contains(got, "cannot be located") {
		t.Errorf("FuncMsg(42) = %q", got)
	}
}
