// File: sort.go
// Title: Natural Sort Order
// Description: Orders strings so that embedded numbers compare by value and
//              letters compare case-insensitively: file2 < file10.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	"sort"
	"strings"
)

// NaturalKey is a precomputed sort key. Even positions hold lowercased
// text, odd positions hold digit runs without leading zeros.
type NaturalKey []string

// NaturalSortKey splits s into alternating text and digit runs. The key
// always starts with a text run, which may be empty.
func NaturalSortKey(s string) NaturalKey {
	key := NaturalKey{}
	start := 0
	inDigits := false

	flush := func(end int) {
		part := s[start:end]
		if inDigits {
			part = strings.TrimLeft(part, "0")
		} else {
			part = strings.ToLower(part)
		}
		key = append(key, part)
		start = end
	}

	for i := 0; i < len(s); i++ {
		digit := s[i] >= '0' && s[i] <= '9'
		if digit != inDigits {
			flush(i)
			inDigits = digit
		}
	}
	flush(len(s))

	return key
}

// Less reports whether k sorts before other.
func (k NaturalKey) Less(other NaturalKey) bool {
	return k.compare(other) < 0
}

func (k NaturalKey) compare(other NaturalKey) int {
	for i := 0; i < len(k) && i < len(other); i++ {
		a, b := k[i], other[i]
		if i%2 == 1 && len(a) != len(b) {
			if len(a) < len(b) {
				return -1
			}
			return 1
		}
		if c := strings.Compare(a, b); c != 0 {
			return c
		}
	}
	switch {
	case len(k) < len(other):
		return -1
	case len(k) > len(other):
		return 1
	}
	return 0
}

// NaturalLess reports whether a sorts before b in natural order.
func NaturalLess(a, b string) bool {
	return NaturalSortKey(a).Less(NaturalSortKey(b))
}

// NaturalSort returns a sorted copy of items. Equal keys keep their input
// order.
func NaturalSort(items []string) []string {
	keys := make([]NaturalKey, len(items))
	for i, s := range items {
		keys[i] = NaturalSortKey(s)
	}

	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return keys[idx[a]].Less(keys[idx[b]])
	})

	out := make([]string, len(items))
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}
