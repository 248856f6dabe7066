// File: logger_test.go
// Title: Logger Unit Tests
// Description: Tests for logger construction, level filtering, derived
//              loggers with contextual fields, and both output formats.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-18 v0.1.0: Initial test suite

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func newTestLogger(buf *bytes.Buffer, level Level, format Format) *Logger {
	return NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: buf,
		Name:   "test",
	})
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelWarn, FormatText)

	logger.Debug("not logged")
	logger.Info("not logged either")
	if buf.Len() != 0 {
		t.Errorf("below-level entries were written: %q", buf.String())
	}

	logger.Warn("logged")
	if !strings.Contains(buf.String(), "logged") {
		t.Errorf("warn entry missing: %q", buf.String())
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug, FormatJSON)

	logger.Info("hello", Fields{"records": 3})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, buf.String())
	}
	if entry["message"] != "hello" {
		t.Errorf("message = %v, want hello", entry["message"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
	if entry["logger"] != "test" {
		t.Errorf("logger = %v, want test", entry["logger"])
	}
	if entry["records"] != float64(3) {
		t.Errorf("records = %v, want 3", entry["records"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("timestamp missing")
	}
}

func TestLogger_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug, FormatText)

	logger.ErrorWith("it broke", errors.New("boom"), Fields{"path": "x.csv"})

	out := buf.String()
	for _, want := range []string{"[ERR]", "test:", "it broke", "path=x.csv", `error="boom"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLogger_WithField(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, LevelDebug, FormatJSON)
	derived := base.WithField("component", "parser")

	derived.Info("derived entry")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["component"] != "parser" {
		t.Errorf("component = %v, want parser", entry["component"])
	}

	// The parent logger must stay untouched.
	buf.Reset()
	base.Info("base entry")
	entry = nil
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := entry["component"]; ok {
		t.Error("derived field leaked into the parent logger")
	}
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug, FormatJSON).WithFields(Fields{
		"a": 1,
		"b": "two",
	})

	logger.Info("entry")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["a"] != float64(1) || entry["b"] != "two" {
		t.Errorf("fields = %v/%v, want 1/two", entry["a"], entry["b"])
	}
}

func TestLogger_WithLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelError, FormatText).WithLevel(LevelDebug)

	logger.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("debug entry missing after WithLevel: %q", buf.String())
	}
	if logger.Level() != LevelDebug {
		t.Errorf("Level() = %v, want LevelDebug", logger.Level())
	}
}

func TestFields_Merge(t *testing.T) {
	merged := Fields{"a": 1, "b": 1}.Merge(Fields{"b": 2, "c": 3})
	if merged["a"] != 1 || merged["b"] != 2 || merged["c"] != 3 {
		t.Errorf("merged = %v", merged)
	}
}

func TestGetDefault(t *testing.T) {
	if GetDefault() == nil {
		t.Fatal("GetDefault returned nil")
	}

	var buf bytes.Buffer
	custom := newTestLogger(&buf, LevelDebug, FormatText)
	SetDefault(custom)
	defer SetDefault(New())

	if GetDefault() != custom {
		t.Error("SetDefault did not replace the default logger")
	}
}
