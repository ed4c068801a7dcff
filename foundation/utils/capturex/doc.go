// File: doc.go
// Title: Package Documentation for capturex
// Description: Package capturex captures text written to standard output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package capturex captures text written to os.Stdout.
//
//	out, err := capturex.Capture(func() {
//	    fmt.Println("hello")
//	})
//	// out == "hello\n"
//
// A Stdout created with a path also stores the captured text in that file
// when the capture stops. Captures replace the process wide os.Stdout, so
// only one should run at a time. Nested captures must stop in reverse
// order.
package capturex
