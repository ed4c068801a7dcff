// File: filex.go
// Title: Core File Utilities
// Description: Text file helpers used by the command line input and the
//              output capture: reading, writing and appending whole texts
//              with foundation error codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-19 v0.2.0: Reduced to text file helpers, foundation error codes

package filex

import (
	"os"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// DefaultPerm is the permission of files created by WriteString and
// AppendString.
const DefaultPerm os.FileMode = 0o644

// ===============================
// File Existence
// ===============================

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ===============================
// Reading
// ===============================

// ReadString reads the entire file. A missing file yields NOT_FOUND,
// every other failure IO_ERROR.
func ReadString(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeIOError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return "", mdwerror.Wrap(err, "failed to read file").
			WithCode(code).
			WithOperation("filex.ReadString").
			WithDetail("path", path)
	}
	return string(content), nil
}

// ===============================
// Writing
// ===============================

// WriteString replaces the content of path, creating the file if necessary
func WriteString(path, content string) error {
	return writeString(path, content, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, "filex.WriteString")
}

// AppendString appends content to path, creating the file if necessary
func AppendString(path, content string) error {
	return writeString(path, content, os.O_CREATE|os.O_WRONLY|os.O_APPEND, "filex.AppendString")
}

func writeString(path, content string, flags int, op string) error {
	f, err := os.OpenFile(path, flags, DefaultPerm)
	if err != nil {
		return mdwerror.Wrap(err, "failed to open file").
			WithCode(mdwerror.CodeIOError).
			WithOperation(op).
			WithDetail("path", path)
	}

	_, err = f.WriteString(content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return mdwerror.Wrap(err, "failed to write file").
			WithCode(mdwerror.CodeIOError).
			WithOperation(op).
			WithDetail("path", path)
	}
	return nil
}
