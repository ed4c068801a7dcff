// File: find.go
// Title: Bounded Multi-Pattern Search
// Description: Find locates the k-th occurrence of one needle or of any of
//              several needles, searching forward or backward from a start
//              position with optional overlapping matches.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: AnyOf forward steps resume after the match start

package stringx

import (
	"strings"
	"unicode/utf8"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// NotFound is the position reported when no match exists.
const NotFound = -1

// Direction selects which way the search walks through the haystack.
type Direction int

const (
	// Forward searches from the start position towards the end.
	Forward Direction = iota

	// Backward searches from the start position towards the beginning.
	// Reported positions are still match starts.
	Backward
)

// String returns the string representation of the direction
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Pattern is what Find looks for: a single needle or a set of candidates.
type Pattern struct {
	needles []string
	multi   bool
}

// Single returns a pattern that matches exactly needle.
func Single(needle string) Pattern {
	return Pattern{needles: []string{needle}}
}

// AnyOf returns a pattern that matches any of the needles. At every step
// the nearest match wins; ties go to the needle listed first. A forward
// step resumes one byte after the previous match start whatever needle
// won, so positions do not depend on the order of the needles.
func AnyOf(needles ...string) Pattern {
	return Pattern{needles: append([]string(nil), needles...), multi: true}
}

// Needles returns a copy of the candidate needles.
func (p Pattern) Needles() []string {
	return append([]string(nil), p.needles...)
}

// IsMulti reports whether the pattern was built with AnyOf.
func (p Pattern) IsMulti() bool {
	return p.multi
}

// Match is the result of a search.
type Match struct {
	Pos    int    // byte offset of the match start, NotFound if none
	Needle string // the needle that matched
	Found  bool
}

func notFound() Match {
	return Match{Pos: NotFound}
}

// Option configures a search.
type Option func(*findOptions)

type findOptions struct {
	start      int
	startSet   bool
	occurrence int
	direction  Direction
	overlap    bool
}

// WithStart sets the start position as a byte offset. Forward searches
// accept matches beginning at pos or later. Backward searches accept
// matches whose last byte is at pos or earlier. Valid range is
// [0, len(haystack)].
func WithStart(pos int) Option {
	return func(o *findOptions) {
		o.start = pos
		o.startSet = true
	}
}

// Occurrence selects the k-th match counted from the start (0 is the first).
func Occurrence(k int) Option {
	return func(o *findOptions) {
		o.occurrence = k
	}
}

// WithDirection sets the search direction.
func WithDirection(d Direction) Option {
	return func(o *findOptions) {
		o.direction = d
	}
}

// WithOverlap lets consecutive matches share bytes. Forward, the next
// step resumes one byte after the previous match start instead of after
// its end; AnyOf patterns always resume that way. Backward, the next match only has to start before the
// previous one.
func WithOverlap() Option {
	return func(o *findOptions) {
		o.overlap = true
	}
}

// Find returns the requested occurrence of pattern in haystack. A missing
// match is not an error: the result has Found false and Pos NotFound.
// Errors are returned only for invalid arguments.
func Find(haystack string, pattern Pattern, opts ...Option) (Match, error) {
	o, err := buildOptions("stringx.Find", haystack, pattern, opts)
	if err != nil {
		return notFound(), err
	}

	s := newSearch(haystack, pattern, o)
	m := notFound()
	for i := 0; i <= o.occurrence; i++ {
		if m = s.next(); !m.Found {
			return notFound(), nil
		}
	}
	return m, nil
}

// FindAll returns the start of every match in search order. The
// Occurrence option is ignored.
func FindAll(haystack string, pattern Pattern, opts ...Option) ([]int, error) {
	o, err := buildOptions("stringx.FindAll", haystack, pattern, opts)
	if err != nil {
		return nil, err
	}

	var positions []int
	s := newSearch(haystack, pattern, o)
	for m := s.next(); m.Found; m = s.next() {
		positions = append(positions, m.Pos)
	}
	return positions, nil
}

// RuneOffset converts a byte offset returned by Find into a rune offset.
// NotFound is passed through, offsets past the end are clamped.
func RuneOffset(s string, byteOffset int) int {
	if byteOffset < 0 {
		return NotFound
	}
	if byteOffset > len(s) {
		byteOffset = len(s)
	}
	return utf8.RuneCountInString(s[:byteOffset])
}

func buildOptions(op, haystack string, pattern Pattern, opts []Option) (findOptions, error) {
	var o findOptions
	for _, opt := range opts {
		opt(&o)
	}

	if len(pattern.needles) == 0 {
		return o, mdwerror.New("pattern has no needles").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation(op)
	}
	for i, n := range pattern.needles {
		if n == "" {
			return o, mdwerror.New("needle must not be empty").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation(op).
				WithDetail("index", i)
		}
	}
	if o.occurrence < 0 {
		return o, mdwerror.Newf("occurrence %d is negative", o.occurrence).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation(op).
			WithDetail("occurrence", o.occurrence)
	}
	if o.startSet && (o.start < 0 || o.start > len(haystack)) {
		return o, mdwerror.Newf("start %d outside [0, %d]", o.start, len(haystack)).
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation(op).
			WithDetail("start", o.start).
			WithDetail("length", len(haystack))
	}

	if !o.startSet {
		if o.direction == Backward {
			o.start = len(haystack) - 1
		} else {
			o.start = 0
		}
	}
	return o, nil
}

// search holds the cursor state between steps. Forward, from is the
// earliest allowed match start. Backward, a match must start at or
// before maxStart and end at or before maxEnd.
type search struct {
	haystack string
	needles  []string
	dir      Direction
	overlap  bool
	multi    bool

	from     int
	maxStart int
	maxEnd   int
}

func newSearch(haystack string, pattern Pattern, o findOptions) *search {
	return &search{
		haystack: haystack,
		needles:  pattern.needles,
		dir:      o.direction,
		overlap:  o.overlap,
		multi:    pattern.multi,
		from:     o.start,
		maxStart: o.start,
		maxEnd:   o.start + 1,
	}
}

// next performs one step: every needle is searched once from the current
// cursor and the nearest hit wins.
func (s *search) next() Match {
	best := notFound()
	for _, n := range s.needles {
		p := s.locate(n)
		if p == NotFound {
			continue
		}
		if !best.Found || s.nearer(p, best.Pos) {
			best = Match{Pos: p, Needle: n, Found: true}
		}
	}

	if best.Found {
		s.advance(best)
	}
	return best
}

func (s *search) nearer(p, q int) bool {
	if s.dir == Backward {
		return p > q
	}
	return p < q
}

// locate finds the first occurrence of needle from the cursor.
func (s *search) locate(needle string) int {
	h := s.haystack

	if s.dir == Forward {
		if s.from > len(h) {
			return NotFound
		}
		i := strings.Index(h[s.from:], needle)
		if i < 0 {
			return NotFound
		}
		return s.from + i
	}

	if s.maxStart < 0 {
		return NotFound
	}
	end := min(s.maxEnd, s.maxStart+len(needle), len(h))
	if end < len(needle) {
		return NotFound
	}
	return strings.LastIndex(h[:end], needle)
}

func (s *search) advance(m Match) {
	if s.dir == Forward {
		if s.overlap || s.multi {
			s.from = m.Pos + 1
		} else {
			s.from = m.Pos + len(m.Needle)
		}
		return
	}

	if s.overlap {
		s.maxStart = m.Pos - 1
		s.maxEnd = len(s.haystack)
	} else {
		s.maxStart = m.Pos
		s.maxEnd = m.Pos
	}
}
