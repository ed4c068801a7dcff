// File: doc.go
// Title: Package Documentation for tablex
// Description: Package tablex renders two-dimensional string data as
//              terminal tables and HTML tables.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package tablex renders two-dimensional string data as terminal tables and
// HTML tables.
//
// Render builds on lipgloss/table and shortens long cells with
// stringx.EastAsianShorten so that mixed Chinese and Latin content keeps
// its columns aligned:
//
//	out, err := tablex.Render([]string{"name", "note"}, rows, tablex.DefaultOptions())
//
// HTML produces a plain <table> and can merge blank cells into the row
// span of the cell above, which pairs with slicex.HangClear:
//
//	tablex.HTML(slicex.HangClear(rows, 0, ""), true)
package tablex
