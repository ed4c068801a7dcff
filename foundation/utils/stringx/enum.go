// File: enum.go
// Title: Enumerations and Labels
// Description: Excel column names, single character enumerations, numbered
//              sequences and Chinese weekday labels.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// maxExcelLetters bounds ParseExcelColName so the result fits into an int.
const maxExcelLetters = 12

// ExcelColName converts a 1-based column number to its spreadsheet name:
// 1 is A, 27 is AA, 28 is AB.
func ExcelColName(n int) (string, error) {
	if n < 1 {
		return "", mdwerror.Newf("column number %d must be at least 1", n).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation("stringx.ExcelColName").
			WithDetail("n", n)
	}

	var buf [16]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('A' + (n-1)%26)
		n = (n - 1) / 26
	}
	return string(buf[i:]), nil
}

// ParseExcelColName converts a spreadsheet column name to its 1-based
// number. Letters are case-insensitive.
func ParseExcelColName(s string) (int, error) {
	if s == "" || len(s) > maxExcelLetters {
		return 0, mdwerror.Newf("invalid column name %q", s).
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("stringx.ParseExcelColName")
	}

	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || c > 'Z' {
			return 0, mdwerror.Newf("invalid column name %q", s).
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("stringx.ParseExcelColName").
				WithDetail("position", i)
		}
		n = n*26 + int(c-'A'+1)
	}
	return n, nil
}

const alphaEnum = "_abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// AlphaEnum maps 0 to "_", 1..26 to a..z and 27..52 to A..Z.
func AlphaEnum(n int) (string, error) {
	if n < 0 || n >= len(alphaEnum) {
		return "", mdwerror.Newf("value %d outside 0..%d", n, len(alphaEnum)-1).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation("stringx.AlphaEnum").
			WithDetail("n", n)
	}
	return alphaEnum[n : n+1], nil
}

// SequenceInts returns n consecutive integers starting at start.
func SequenceInts(n, start int) []int {
	if n <= 0 {
		return nil
	}
	seq := make([]int, n)
	for i := range seq {
		seq[i] = start + i
	}
	return seq
}

// SequenceExcel returns the first n spreadsheet column names: A, B, C...
func SequenceExcel(n int) []string {
	if n <= 0 {
		return nil
	}
	seq := make([]string, n)
	for i := range seq {
		seq[i], _ = ExcelColName(i + 1)
	}
	return seq
}

// SequenceCycle returns n labels taken from tags in turn.
func SequenceCycle[T any](n int, tags []T) []T {
	if n <= 0 || len(tags) == 0 {
		return nil
	}
	seq := make([]T, n)
	for i := range seq {
		seq[i] = tags[i%len(tags)]
	}
	return seq
}

var weekdays = []string{"周一", "周二", "周三", "周四", "周五", "周六", "周日"}

// WeekdayTag converts 1..7 to 周一..周日.
func WeekdayTag(d int) (string, error) {
	if d < 1 || d > 7 {
		return "", mdwerror.Newf("weekday %d outside 1..7", d).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation("stringx.WeekdayTag").
			WithDetail("d", d)
	}
	return weekdays[d-1], nil
}
