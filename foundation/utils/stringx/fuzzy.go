// File: fuzzy.go
// Title: Fuzzy Matching
// Description: Ranked fuzzy search over candidate strings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	"github.com/sahilm/fuzzy"
)

// FuzzyMatch is one candidate that contains the pattern characters in order.
type FuzzyMatch struct {
	Str            string // the candidate
	Index          int    // position in the candidate list
	MatchedIndexes []int  // byte offsets of the matched characters in Str
	Score          int    // higher is better
}

// FuzzyFind returns the candidates that match pattern, best first. Matches
// on word starts, after separators and in adjacent runs rank higher. An
// empty pattern matches nothing.
func FuzzyFind(pattern string, candidates []string) []FuzzyMatch {
	if pattern == "" {
		return nil
	}

	found := fuzzy.Find(pattern, candidates)
	matches := make([]FuzzyMatch, len(found))
	for i, m := range found {
		matches[i] = FuzzyMatch{
			Str:            m.Str,
			Index:          m.Index,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return matches
}
