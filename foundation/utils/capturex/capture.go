// File: capture.go
// Title: Standard Output Capture
// Description: Redirects os.Stdout into a buffer for the duration of a
//              capture and optionally stores the captured text in a file.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package capturex

import (
	"bytes"
	"io"
	"os"
	"sync"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/filex"
)

// Mode selects how the captured text is written to the file.
type Mode int

const (
	// Truncate replaces the file content.
	Truncate Mode = iota
	// Append adds to the end of the file.
	Append
)

// String returns the string representation of the mode
func (m Mode) String() string {
	if m == Append {
		return "append"
	}
	return "truncate"
}

// Stdout captures everything written to os.Stdout between Start and Stop.
// A Stdout can be started again after it was stopped.
type Stdout struct {
	path string
	mode Mode

	mu     sync.Mutex
	buf    bytes.Buffer
	result string
	active bool

	orig   *os.File
	reader *os.File
	writer *os.File
	done   chan struct{}
}

// NewStdout prepares a capture. When path is not empty the captured text
// is written to it on Stop.
func NewStdout(path string, mode Mode) *Stdout {
	return &Stdout{path: path, mode: mode}
}

// Start replaces os.Stdout with a pipe that feeds the capture buffer.
func (s *Stdout) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return mdwerror.New("capture already active").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("capturex.Start")
	}

	r, w, err := os.Pipe()
	if err != nil {
		return mdwerror.Wrap(err, "cannot create pipe").
			WithCode(mdwerror.CodeIOError).
			WithOperation("capturex.Start")
	}

	s.buf.Reset()
	s.result = ""
	s.orig = os.Stdout
	s.reader, s.writer = r, w
	s.done = make(chan struct{})
	s.active = true
	os.Stdout = w

	go s.drain(r, s.done)
	return nil
}

func (s *Stdout) drain(r io.Reader, done chan<- struct{}) {
	defer close(done)

	chunk := make([]byte, 4096)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			s.mu.Lock()
			s.buf.Write(chunk[:n])
			s.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// Stop restores os.Stdout and returns the captured text. A failure to
// write the file is logged and does not fail Stop.
func (s *Stdout) Stop() (string, error) {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return "", mdwerror.New("capture not active").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("capturex.Stop")
	}
	os.Stdout = s.orig
	writer, reader, done := s.writer, s.reader, s.done
	s.mu.Unlock()

	closeErr := writer.Close()
	<-done
	reader.Close()

	s.mu.Lock()
	s.result = s.buf.String()
	s.active = false
	result := s.result
	s.mu.Unlock()

	if closeErr != nil {
		return result, mdwerror.Wrap(closeErr, "cannot close pipe").
			WithCode(mdwerror.CodeIOError).
			WithOperation("capturex.Stop")
	}

	if s.path != "" {
		if err := s.persist(result); err != nil {
			mdwlog.GetDefault().LogError(err)
		}
	}
	return result, nil
}

func (s *Stdout) persist(text string) error {
	write := filex.WriteString
	if s.mode == Append {
		write = filex.AppendString
	}

	if err := write(s.path, text); err != nil {
		return mdwerror.Wrap(err, "cannot write capture file").
			WithOperation("capturex.Stop").
			WithDetail("path", s.path).
			WithDetail("mode", s.mode.String())
	}
	return nil
}

// String returns the text captured so far while active and the final
// result after Stop.
func (s *Stdout) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return s.buf.String()
	}
	return s.result
}

// IsActive reports whether the capture is running.
func (s *Stdout) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Capture runs fn with os.Stdout redirected and returns what it printed.
func Capture(fn func()) (string, error) {
	s := NewStdout("", Truncate)
	if err := s.Start(); err != nil {
		return "", err
	}

	stopped := false
	defer func() {
		if !stopped {
			s.Stop()
		}
	}()

	fn()

	stopped = true
	return s.Stop()
}
