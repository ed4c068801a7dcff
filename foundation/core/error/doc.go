// Package error provides structured error handling for the textkit foundation.
//
// Package: error
// Title: textkit Error Handling
// Description: Errors carry a code, a severity, free-form details, the failing
//              operation and a captured stack trace. They wrap standard errors and
//              stay compatible with errors.Is / errors.As through Unwrap.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Trimmed codes to the text-processing domain, dropped localisation keys
//
// Usage:
//
//	import mdwerror "github.com/msto63/textkit/foundation/core/error"
//
//	err := mdwerror.New("needle set is empty").
//		WithCode(mdwerror.CodeInvalidInput).
//		WithOperation("stringx.Find")
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
//		// reject the call
//	}
package error
