// File: prettify.go
// Title: Friendly Value Formatting
// Description: Formats arbitrary values for display: collections get a
//              type and length title, counters a frequency table and long
//              collections one element per line.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Line width measured in display columns

package prettyx

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	mdwstringx "github.com/msto63/textkit/foundation/utils/stringx"
	mdwtablex "github.com/msto63/textkit/foundation/utils/tablex"
)

// LineWidth is the display width in terminal columns up to which
// collections stay on one line.
const LineWidth = 80

// TypeName returns the Go type of v, for example "[]int" or
// "map[string]int". A nil interface yields "nil".
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

// Prettify formats v for display.
//
// Strings are returned unchanged. A Counter becomes a title line and a
// value/count table, most common first. Slices, arrays and maps get a
// "<type> length: n" title followed by their pretty form. Everything else
// is returned in pretty form only.
//
// The pretty form keeps a collection on one line while it fits into
// LineWidth columns and otherwise puts every element on its own line.
func Prettify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case counter:
		table, err := mdwtablex.Render([]string{"value", "count"}, x.countRows(), mdwtablex.DefaultOptions())
		if err != nil {
			table = pretty(reflect.ValueOf(v))
		}
		return fmt.Sprintf("Counter length: %d\n%s", x.Len(), table)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("%s length: %d\n%s", TypeName(v), rv.Len(), pretty(rv))
	}
	return pretty(rv)
}

func pretty(rv reflect.Value) string {
	if !rv.IsValid() {
		return "<nil>"
	}

	var opening, closing string
	var elems []string
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return "[]"
		}
		opening, closing = "[", "]"
		for i := 0; i < rv.Len(); i++ {
			elems = append(elems, scalar(rv.Index(i)))
		}
	case reflect.Map:
		opening, closing = "{", "}"
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return scalar(keys[i]) < scalar(keys[j])
		})
		for _, k := range keys {
			elems = append(elems, scalar(k)+": "+scalar(rv.MapIndex(k)))
		}
	default:
		return scalar(rv)
	}

	line := opening + strings.Join(elems, ", ") + closing
	if mdwstringx.DisplayWidth(line) <= LineWidth {
		return line
	}
	return opening + strings.Join(elems, ",\n ") + closing
}

// scalar formats one element. Strings are quoted so that collections of
// strings stay unambiguous.
func scalar(rv reflect.Value) string {
	if !rv.IsValid() {
		return "<nil>"
	}
	if rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.String {
		return fmt.Sprintf("%q", rv.String())
	}
	if !rv.CanInterface() {
		return rv.String()
	}
	return fmt.Sprintf("%+v", rv.Interface())
}
