// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides string search, width measurement and
//              alignment helpers for mixed Chinese and Latin text.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-19 v0.3.0: Rewritten for the textkit search and alignment helpers

// Package stringx provides string search, width measurement and alignment
// helpers for text that mixes Chinese and Latin characters.
//
// Package: stringx
// Title: Text Search and Display Helpers for textkit
// Description: Bounded multi-pattern search, East Asian display width,
//              width limited shortening, list and column alignment,
//              natural sort order and spreadsheet style enumerations.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Overview
//
// Every function in this package is a stateless transform over strings or
// small slices and is safe for concurrent use. Positions are byte offsets
// into the input, as everywhere else in Go. Use RuneOffset to convert.
//
// Architecture
//
// The package is organized into functional groups:
//
//   - Search: Find and FindAll with Single and AnyOf patterns (find.go)
//   - Width: StrWidth, EastAsianWidth, DisplayWidth and padding (width.go)
//   - Shortening: Shorten, EastAsianShorten and WidthAdjust (shorten.go)
//   - Alignment: ListAlign and Realign (align.go)
//   - Ordering: NaturalSort and NaturalSortKey (sort.go)
//   - Enumerations: ExcelColName, AlphaEnum, sequences, WeekdayTag (enum.go)
//   - Fuzzy search: FuzzyFind (fuzzy.go)
//   - GBK: EnsureGBK (gbk.go)
//
// Search
//
// Find returns the k-th match of one needle or of any of several needles.
// A search walks forward by default. Backward searches report match starts.
//
//	m, _ := stringx.Find("aabbaabb", stringx.Single("bb"), stringx.Occurrence(1))
//	// m.Pos == 6
//
//	m, _ = stringx.Find("aabbaabb", stringx.AnyOf("aa", "bb"), stringx.Occurrence(2))
//	// m.Pos == 4, m.Needle == "aa"
//
//	m, _ = stringx.Find("aaaa", stringx.Single("aa"), stringx.Occurrence(1), stringx.WithOverlap())
//	// m.Pos == 1
//
//	m, _ = stringx.Find("aabbaabb", stringx.Single("aa"), stringx.WithDirection(stringx.Backward))
//	// m.Pos == 4
//
// A missing match is reported through Match.Found, never through the error.
// Errors mark invalid arguments: an empty pattern, an empty needle, a
// negative occurrence or a start outside the haystack. They carry the
// INVALID_INPUT or VALUE_OUT_OF_RANGE codes of the error package.
//
// Width and Alignment
//
// StrWidth counts a Chinese character as two columns, which is what most
// fixed-width fonts draw:
//
//	stringx.StrWidth("a⑪中⑩") // 7
//
// ListAlign and Realign use it to line up columns:
//
//	stringx.ListAlign([]string{"a", "哈哈", "ccd"}, stringx.ListAlignOptions{})
//	// ["   a", "哈哈", " ccd"]
//
// Fonts in which a Chinese character is not exactly two columns wide are
// handled by WidthAdjust through ListAlignOptions.ChineseWidth.
package stringx
