// Package filex provides text file helpers with foundation error codes.
//
// Package: filex
// Title: Extended File Operations for Go
// Description: Whole-file reads, writes and appends for the command line
//              tools. Failures are returned as *mdwerror.Error with the codes
//              NOT_FOUND or IO_ERROR and the path as detail.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2025-01-26 v0.1.1: Enhanced documentation with comprehensive examples
// - 2026-10-19 v0.2.0: Reduced to text file helpers
//
// Example:
//
//	if err := filex.AppendString("session.log", text); err != nil {
//		mdwlog.GetDefault().LogError(err)
//	}
package filex
