// File: grid.go
// Title: Two-Dimensional Slice Utilities
// Description: Helpers for ragged row slices as they come out of text
//              tables: column counting, padding to a rectangle, transposing
//              and clearing repeated leading cells.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package slicex

// ===============================
// Shape
// ===============================

// ColumnCount returns the length of the longest row.
func ColumnCount[T any](rows [][]T) int {
	n := 0
	for _, row := range rows {
		n = max(n, len(row))
	}
	return n
}

// EnsureRect returns a copy of rows in which every row is padded with fill
// up to ColumnCount columns.
func EnsureRect[T any](rows [][]T, fill T) [][]T {
	if rows == nil {
		return nil
	}

	cols := ColumnCount(rows)
	result := make([][]T, len(rows))
	for i, row := range rows {
		r := make([]T, cols)
		n := copy(r, row)
		for j := n; j < cols; j++ {
			r[j] = fill
		}
		result[i] = r
	}
	return result
}

// Transpose swaps rows and columns. Ragged input is cut to its shortest
// row; call EnsureRect first to keep every cell.
//
//	Transpose([][]int{{1, 2, 3}, {4, 5, 6}}) // [[1 4] [2 5] [3 6]]
func Transpose[T any](rows [][]T) [][]T {
	if len(rows) == 0 {
		return nil
	}

	cols := len(rows[0])
	for _, row := range rows[1:] {
		cols = min(cols, len(row))
	}

	result := make([][]T, cols)
	for j := range result {
		col := make([]T, len(rows))
		for i, row := range rows {
			col[i] = row[j]
		}
		result[j] = col
	}
	return result
}

// ===============================
// Simplification
// ===============================

// HangClear blanks leading cells that repeat the row above, which turns a
// sorted listing into a tree-like view. Rows are processed bottom-up and
// compared against the original values. Within a row, clearing stops at
// the first cell that differs or after depth columns. A depth of zero or
// less means every column but the last.
//
//	HangClear([][]any{{1, 2, 4}, {1, 2, 5}, {1, 3, 5}, {1, 3, 5}}, 0, "")
//	// [[1 2 4] [  5] [ 3 5] [  5]]
func HangClear[T comparable](rows [][]T, depth int, blank T) [][]T {
	if rows == nil {
		return nil
	}
	if depth <= 0 {
		depth = ColumnCount(rows) - 1
	}

	result := make([][]T, len(rows))
	for i, row := range rows {
		result[i] = Clone(row)
	}

	for i := len(rows) - 1; i > 0; i-- {
		above := rows[i-1]
		for j := 0; j < depth && j < len(rows[i]) && j < len(above); j++ {
			if rows[i][j] != above[j] {
				break
			}
			result[i][j] = blank
		}
	}
	return result
}
