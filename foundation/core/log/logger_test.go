// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, persistent fields, levels,
//              error integration and timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-19 v0.2.0: Adapted to the synchronous logger

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}
	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
		Name:   "test-logger",
	})

	if logger.GetLevel() != LevelError {
		t.Errorf("NewWithConfig() level = %v, want %v", logger.GetLevel(), LevelError)
	}
	if logger.Name() != "test-logger" {
		t.Errorf("NewWithConfig() name = %v, want test-logger", logger.Name())
	}
	if logger.output != &buf {
		t.Error("NewWithConfig() should set custom output")
	}
}

func TestLoggerWithLevel(t *testing.T) {
	logger := New()
	newLogger := logger.WithLevel(LevelDebug)

	if newLogger == logger {
		t.Error("WithLevel() should return a new logger instance")
	}
	if newLogger.GetLevel() != LevelDebug {
		t.Errorf("WithLevel() level = %v, want %v", newLogger.GetLevel(), LevelDebug)
	}
	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify original logger")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelWarn, Format: FormatJSON, Output: &buf})

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too")

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if lines[0]["level"] != "warn" || lines[1]["level"] != "error" {
		t.Errorf("unexpected levels: %v, %v", lines[0]["level"], lines[1]["level"])
	}
}

func TestPersistentFields(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithConfig(Config{Level: LevelInfo, Output: &buf, Name: "align"})
	logger := base.WithField("component", "stringx").WithFields(Fields{"columns": 3})

	logger.Info("realigned", Int("lines", 2))
	base.Info("plain")

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	first := lines[0]
	if first["component"] != "stringx" || first["columns"] != float64(3) || first["lines"] != float64(2) {
		t.Errorf("fields missing from first entry: %v", first)
	}
	if first["logger"] != "align" {
		t.Errorf("logger name = %v, want align", first["logger"])
	}
	if _, ok := lines[1]["component"]; ok {
		t.Error("WithField() must not modify the parent logger")
	}
}

func TestErrorWithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Output: &buf})

	logger.ErrorWithErr("write failed", errors.New("disk full"))

	lines := decodeLines(t, &buf)
	if len(lines) != 1 || lines[0]["error"] != "disk full" {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  interface{}
	}{
		{"plain error", errors.New("boom"), "error", nil},
		{"low severity", mdwerror.New("bad needle").WithCode(mdwerror.CodeInvalidInput), "info", "INVALID_INPUT"},
		{"medium severity", mdwerror.New("odd"), "warn", "UNKNOWN"},
		{"high severity", mdwerror.New("io").WithCode(mdwerror.CodeIOError), "error", "IO_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithConfig(Config{Level: LevelTrace, Output: &buf})
			logger.LogError(tt.err)

			lines := decodeLines(t, &buf)
			if len(lines) != 1 {
				t.Fatalf("got %d lines, want 1", len(lines))
			}
			if lines[0]["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", lines[0]["level"], tt.wantLevel)
			}
			if lines[0]["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", lines[0]["error_code"], tt.wantCode)
			}
		})
	}

	var buf bytes.Buffer
	NewWithConfig(Config{Output: &buf}).LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should not write anything")
	}
}

func TestFatalExits(t *testing.T) {
	var code int
	saved := exit
	exit = func(c int) { code = c }
	defer func() { exit = saved }()

	var buf bytes.Buffer
	NewWithConfig(Config{Output: &buf}).Fatal("cannot continue")

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(buf.String(), "cannot continue") {
		t.Errorf("fatal message not written: %s", buf.String())
	}
}

func TestCallerInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Output: &buf}).WithCaller(0)
	logger.Info("where")

	lines := decodeLines(t, &buf)
	caller, _ := lines[0]["caller"].(string)
	if !strings.HasPrefix(caller, "logger_test.go:") {
		t.Errorf("caller = %q, want logger_test.go:<line>", caller)
	}
}

func TestConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Output: &buf})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			logger.WithField("n", n).Info("tick")
		}(i)
	}
	wg.Wait()

	if lines := decodeLines(t, &buf); len(lines) != 20 {
		t.Errorf("got %d lines, want 20", len(lines))
	}
}

func TestTimer(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Output: &buf})

	timer := logger.StartTimer("realign").WithField("lines", 4)
	if !timer.IsRunning() {
		t.Error("timer should be running")
	}
	timer.Stop()
	if timer.Stop() != 0 {
		t.Error("second Stop() should return 0")
	}

	failed := logger.StartTimer("capture")
	failed.StopWithError(errors.New("pipe closed"))

	cancelled := logger.StartTimer("never")
	cancelled.Cancel()
	cancelled.Stop()

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if lines[0]["message"] != "realign completed" || lines[0]["lines"] != float64(4) {
		t.Errorf("unexpected completion entry: %v", lines[0])
	}
	if lines[1]["message"] != "capture failed" || lines[1]["level"] != "error" {
		t.Errorf("unexpected failure entry: %v", lines[1])
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewWithConfig(Config{Level: LevelDebug, Format: FormatText, Output: &buf}))

	Debug("global debug")
	Info("global info")

	out := buf.String()
	if !strings.Contains(out, "[DBG] global debug") || !strings.Contains(out, "[INF] global info") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
