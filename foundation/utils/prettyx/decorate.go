// File: decorate.go
// Title: Result Formatting Decorators
// Description: Wrappers that turn the result of a function into a string or
//              print it, plus a helper that locates a function's source.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package prettyx

import (
	"fmt"
	"io"
	"reflect"
	"runtime"
	"sync"

	mdwlog "github.com/msto63/textkit/foundation/core/log"
)

// Decorated wraps fn and formats its result. The raw result of the last
// call stays available through LastRaw.
type Decorated[A, R any] struct {
	fn     func(A) R
	format func(any) string

	mu      sync.Mutex
	lastRaw R
}

// Stringify formats results with fmt.Sprint.
func Stringify[A, R any](fn func(A) R) *Decorated[A, R] {
	return &Decorated[A, R]{fn: fn, format: func(v any) string { return fmt.Sprint(v) }}
}

// Prettified formats results with Prettify.
func Prettified[A, R any](fn func(A) R) *Decorated[A, R] {
	return &Decorated[A, R]{fn: fn, format: Prettify}
}

// Call runs the wrapped function and returns its formatted result.
func (d *Decorated[A, R]) Call(arg A) string {
	res := d.fn(arg)

	d.mu.Lock()
	d.lastRaw = res
	d.mu.Unlock()

	return d.format(res)
}

// LastRaw returns the unformatted result of the most recent Call.
func (d *Decorated[A, R]) LastRaw() R {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastRaw
}

// Unwrap returns the wrapped function.
func (d *Decorated[A, R]) Unwrap() any {
	return d.fn
}

// Printed returns a function that writes the result of fn to w, followed
// by a newline, and then returns it unchanged.
func Printed[A, R any](w io.Writer, fn func(A) R) func(A) R {
	return func(arg A) R {
		res := fn(arg)
		if _, err := fmt.Fprintln(w, res); err != nil {
			mdwlog.Debug("cannot print function result", mdwlog.Fields{
				"error": err.Error(),
			})
		}
		return res
	}
}

// FuncMsg describes where fn is defined: its name, source file and line.
// Values with an Unwrap() any method, such as Decorated, are unwrapped
// first. Other non-function values cannot be located.
func FuncMsg(fn any) string {
	for {
		u, ok := fn.(interface{ Unwrap() any })
		if !ok {
			break
		}
		fn = u.Unwrap()
	}

	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return fmt.Sprintf("decorator %s cannot be located", TypeName(fn))
	}

	f := runtime.FuncForPC(rv.Pointer())
	if f == nil {
		return fmt.Sprintf("function %s cannot be located", TypeName(fn))
	}
	file, line := f.FileLine(f.Entry())
	return fmt.Sprintf("function: %s, file: %s, line: %d", f.Name(), file, line)
}
