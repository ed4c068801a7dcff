// File: doc.go
// Title: Package Documentation for prettyx
// Description: Package prettyx formats values and function results for
//              display on a terminal.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package prettyx formats values and function results for display.
//
// Prettify adds a type and length title to collections and renders a
// Counter as a frequency table:
//
//	c := prettyx.NewCounter("a", "b", "a")
//	fmt.Println(prettyx.Prettify(c))
//
// Stringify, Prettified and Printed wrap a func(A) R so that its result is
// formatted or printed on every call. FuncMsg reports where a function, or
// the function inside such a wrapper, is defined.
package prettyx
