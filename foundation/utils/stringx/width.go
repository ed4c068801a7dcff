// File: width.go
// Title: Display Width Measurement
// Description: Column width of strings on terminals and in fixed-width
//              fonts, counting CJK characters as two columns.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// StrWidth returns the GBK byte length of s: one column per ASCII
// character and two per Chinese character. Strings GBK cannot encode
// count one column per rune plus one per non-ASCII rune.
//
//	StrWidth("ab")    == 2
//	StrWidth("a⑪中⑩") == 7
func StrWidth(s string) int {
	if b, ok := encodeGBK(s); ok {
		return len(b)
	}

	n := 0
	for _, r := range s {
		n++
		if r > 127 {
			n++
		}
	}
	return n
}

// EastAsianWidth returns the Unicode East Asian display width of s.
// Ambiguous characters such as ① count as two columns when ambiguousWide
// is set, which matches most Windows consoles.
func EastAsianWidth(s string, ambiguousWide bool) int {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = ambiguousWide
	return cond.StringWidth(s)
}

// DisplayWidth returns the terminal width of s after removing ANSI escape
// sequences. Ambiguous characters count as one column.
func DisplayWidth(s string) int {
	return EastAsianWidth(ansi.Strip(s), false)
}

// PadLeft pads s on the left with pad until it is width columns wide.
// Strings that are already wide enough are returned unchanged.
func PadLeft(s string, width int, pad rune) string {
	n := padCount(s, width, pad)
	if n == 0 {
		return s
	}
	return strings.Repeat(string(pad), n) + s
}

// PadRight pads s on the right with pad until it is width columns wide.
func PadRight(s string, width int, pad rune) string {
	n := padCount(s, width, pad)
	if n == 0 {
		return s
	}
	return s + strings.Repeat(string(pad), n)
}

// PadCenter centers s within width columns. An odd remainder goes to the
// left side.
func PadCenter(s string, width int, pad rune) string {
	n := padCount(s, width, pad)
	if n == 0 {
		return s
	}
	right := n / 2
	return strings.Repeat(string(pad), n-right) + s + strings.Repeat(string(pad), right)
}

// padCount returns how many pad runes fit into the missing columns.
func padCount(s string, width int, pad rune) int {
	missing := width - DisplayWidth(s)
	if missing <= 0 {
		return 0
	}
	pw := runewidth.RuneWidth(pad)
	if pw <= 0 {
		pw = 1
	}
	return missing / pw
}
