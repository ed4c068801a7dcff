// File: enum_test.go
// Title: Tests for Enumerations and Labels
// Description: Tests for spreadsheet column names, character enumerations,
//              sequences and weekday labels.
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

func TestExcelColName(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{1, "A"},
		{26, "Z"},
		{27, "AA"},
		{28, "AB"},
		{52, "AZ"},
		{53, "BA"},
		{702, "ZZ"},
		{703, "AAA"},
		{16384, "XFD"},
	}

	for _, tt := range tests {
		got, err := ExcelColName(tt.n)
		if err != nil {
			t.Fatalf("ExcelColName(%d) unexpected error: %v", tt.n, err)
		}
		if got != tt.expected {
			t.Errorf("ExcelColName(%d) = %q, want %q", tt.n, got, tt.expected)
		}
	}

	for _, n := range []int{0, -5} {
		if _, err := ExcelColName(n); !mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
			t.Errorf("ExcelColName(%d) error = %v, want VALUE_OUT_OF_RANGE", n, err)
		}
	}
}

func TestParseExcelColName(t *testing.T) {
	for n := 1; n <= 2000; n++ {
		name, _ := ExcelColName(n)
		got, err := ParseExcelColName(name)
		if err != nil || got != n {
			t.Fatalf("ParseExcelColName(%q) = %d, %v, want %d", name, got, err, n)
		}
	}

	if got, _ := ParseExcelColName("xfd"); got != 16384 {
		t.Errorf("ParseExcelColName(\"xfd\") = %d, want 16384", got)
	}

	for _, s := range []string{"", "A1", "-", "ABCDEFGHIJKLM"} {
		if _, err := ParseExcelColName(s); !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
			t.Errorf("ParseExcelColName(%q) error = %v, want INVALID_FORMAT", s, err)
		}
	}
}

func TestAlphaEnum(t *testing.T) {
	tests := map[int]string{0: "_", 1: "a", 26: "z", 27: "A", 52: "Z"}
	for n, want := range tests {
		got, err := AlphaEnum(n)
		if err != nil || got != want {
			t.Errorf("AlphaEnum(%d) = %q, %v, want %q", n, got, err, want)
		}
	}

	for _, n := range []int{-1, 53} {
		if _, err := AlphaEnum(n); !mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
			t.Errorf("AlphaEnum(%d) error = %v, want VALUE_OUT_OF_RANGE", n, err)
		}
	}
}

func TestSequences(t *testing.T) {
	if got := SequenceInts(3, 5); !reflect.DeepEqual(got, []int{5, 6, 7}) {
		t.Errorf("SequenceInts(3, 5) = %v", got)
	}
	if got := SequenceInts(0, 1); got != nil {
		t.Errorf("SequenceInts(0, 1) = %v, want nil", got)
	}
	if got := SequenceExcel(3); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("SequenceExcel(3) = %v", got)
	}
	if got := SequenceCycle(5, []string{"x", "y"}); !reflect.DeepEqual(got, []string{"x", "y", "x", "y", "x"}) {
		t.Errorf("SequenceCycle(5) = %v", got)
	}
	if got := SequenceCycle[int](3, nil); got != nil {
		t.Errorf("SequenceCycle(3, nil) = %v, want nil", got)
	}
}

func TestWeekdayTag(t *testing.T) {
	if got, _ := WeekdayTag(1); got != "周一" {
		t.Errorf("WeekdayTag(1) = %q, want 周一", got)
	}
	if got, _ := WeekdayTag(7); got != "周日" {
		t.Errorf("WeekdayTag(7) = %q, want 周日", got)
	}
	for _, d := range []int{0, 8} {
		if _, err := WeekdayTag(d); !mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
			t.Errorf("WeekdayTag(%d) error = %v, want VALUE_OUT_OF_RANGE", d, err)
		}
	}
}
