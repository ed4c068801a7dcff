// File: shorten.go
// Title: Width Limited Shortening
// Description: Whitespace collapsing truncation and East Asian width aware
//              truncation with a placeholder.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	"math"
	"strings"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// DefaultPlaceholder marks text removed by EastAsianShorten.
const DefaultPlaceholder = "..."

// Shorten collapses every whitespace run to one space and cuts the result
// to at most width runes. Unlike word wrapping, a long first word is cut
// instead of being replaced entirely.
//
//	Shorten("Hello  world!", 11)          == "Hello world"
//	Shorten("0123456789 0123456789", 11) == "0123456789 "
func Shorten(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = CollapseSpace(s)
	if r := []rune(s); len(r) > width {
		return string(r[:width])
	}
	return s
}

// EastAsianShorten truncates s so that it stays strictly narrower than
// width columns, counting Chinese characters as two. When text is cut the
// placeholder is appended and included in the budget. If width leaves no
// room beyond the placeholder, a prefix of the placeholder is returned.
//
//	EastAsianShorten("a啊ba啊ba啊ba啊b", 11, "...") == "a啊ba啊..."
func EastAsianShorten(s string, width int, placeholder string) string {
	if width <= 0 {
		return ""
	}

	s = wordShorten(s, width*3)
	if EastAsianWidth(s, false) < width {
		return s
	}

	width--
	m := EastAsianWidth(placeholder, false)
	if width <= m {
		if r := []rune(placeholder); len(r) > width {
			return string(r[:width])
		}
		return placeholder
	}

	width -= m
	if b, ok := encodeGBK(s); ok {
		return decodeGBK(cutGBK(b, width)) + placeholder
	}

	count := 0
	var out strings.Builder
	for _, r := range s {
		w := 1
		if r > 127 {
			w = 2
		}
		if count+w > width {
			break
		}
		count += w
		out.WriteRune(r)
	}
	return out.String() + placeholder
}

// wordShorten joins the whitespace separated words of s with single spaces
// and keeps as many whole words as fit into limit runes. A first word that
// is longer than limit is cut.
func wordShorten(s string, limit int) string {
	words := strings.Fields(s)
	joined := strings.Join(words, " ")
	if len([]rune(joined)) <= limit {
		return joined
	}

	var out []string
	n := 0
	for _, w := range words {
		wl := len([]rune(w))
		if len(out) == 0 {
			if wl > limit {
				return string([]rune(w)[:limit])
			}
			out = append(out, w)
			n = wl
			continue
		}
		if n+1+wl > limit {
			break
		}
		out = append(out, w)
		n += 1 + wl
	}
	return strings.Join(out, " ")
}

// widthTolerance is how close to an integer a fractional width must be.
const widthTolerance = 0.05

// maxAdjustSteps bounds the padding loop in WidthAdjust.
const maxAdjustSteps = 100

// WidthAdjust supports fonts in which a Chinese character is chineseWidth
// columns wide (for example 1.8). It adds ideographic spaces (U+3000)
// until the total width is within 0.05 of an integer and returns the
// padded string with that width. Spaces go left for AlignRight, right for
// AlignLeft and are split for AlignCenter with the extra one on the left.
//
//	WidthAdjust("哈哈a", AlignRight, 1.8) == ("　　　哈哈a", 10, nil)
func WidthAdjust(s string, align Align, chineseWidth float64) (string, int, error) {
	if chineseWidth <= 0 {
		return s, 0, mdwerror.Newf("chinese character width %g must be positive", chineseWidth).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation("stringx.WidthAdjust").
			WithDetail("chineseWidth", chineseWidth)
	}

	runes := len([]rune(s))
	wide := StrWidth(s) - runes
	narrow := runes - wide
	w := float64(narrow) + float64(wide)*chineseWidth

	t := 0
	for t < maxAdjustSteps {
		frac := w - math.Floor(w)
		if frac <= widthTolerance || frac >= 1-widthTolerance {
			break
		}
		t++
		w += chineseWidth
	}

	if t > 0 {
		const ideographicSpace = "　"
		switch align {
		case AlignLeft:
			s += strings.Repeat(ideographicSpace, t)
		case AlignCenter:
			s = strings.Repeat(ideographicSpace, t-t/2) + s + strings.Repeat(ideographicSpace, t/2)
		default:
			s = strings.Repeat(ideographicSpace, t) + s
		}
	}

	return s, int(math.Round(w)), nil
}
