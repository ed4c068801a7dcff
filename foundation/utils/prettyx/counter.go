// File: counter.go
// Title: Occurrence Counter
// Description: Counts comparable values and lists them by frequency.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package prettyx

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
)

// Counter counts how often each value was added.
type Counter[K cmp.Ordered] map[K]int

// CountOf is one entry of Counter.MostCommon.
type CountOf[K cmp.Ordered] struct {
	Value K
	Count int
}

// NewCounter returns a counter holding values.
func NewCounter[K cmp.Ordered](values ...K) Counter[K] {
	c := make(Counter[K], len(values))
	c.Add(values...)
	return c
}

// Add counts every value once.
func (c Counter[K]) Add(values ...K) {
	for _, v := range values {
		c[v]++
	}
}

// Len returns the number of distinct values.
func (c Counter[K]) Len() int {
	return len(c)
}

// MostCommon returns all entries, highest count first. Equal counts are
// ordered by value.
func (c Counter[K]) MostCommon() []CountOf[K] {
	entries := make([]CountOf[K], 0, len(c))
	for v, n := range c {
		entries = append(entries, CountOf[K]{Value: v, Count: n})
	}
	slices.SortFunc(entries, func(a, b CountOf[K]) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return entries
}

// countRows is used by Prettify to draw the value/count table.
func (c Counter[K]) countRows() [][]string {
	entries := c.MostCommon()
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{fmt.Sprint(e.Value), strconv.Itoa(e.Count)}
	}
	return rows
}

type counter interface {
	Len() int
	countRows() [][]string
}
