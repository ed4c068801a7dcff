// Package slicex provides generic slice helpers for line lists and cell
// grids.
//
// Package: slicex
// Title: Extended Slice Utilities for Go
// Description: Filtering, mapping and deduplication of one-dimensional
//              slices, plus shape helpers for ragged [][]T rows as they come
//              out of text tables.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice operations
// - 2026-10-19 v0.2.0: Grid helpers, reduced one-dimensional set
//
// # Slices
//
//   - Filter, Map, MapWithIndex: functional transformations
//   - Chunk: split a list into rows of fixed length
//   - Unique, Reverse, Clone, Equal
//
// # Grids
//
//   - ColumnCount: length of the longest row
//   - EnsureRect: pad ragged rows to a rectangle
//   - Transpose: swap rows and columns
//   - HangClear: blank leading cells repeated from the row above
//
// All functions return new slices and leave their input untouched. A nil
// input yields nil.
//
// Example:
//
//	rows := [][]string{{"A", "1", "x"}, {"A", "1", "y"}, {"A", "2", "z"}}
//	slicex.HangClear(rows, 0, "")
//	// [[A 1 x] [  y] [ 2 z]]
package slicex
