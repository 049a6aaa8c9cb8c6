package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func newCapturedLogger(verbose bool) (*Logger, *bytes.Buffer) {
	l := NewLogger(verbose)
	l.useColors = false
	var buf bytes.Buffer
	l.SetOutput(&buf)
	return l, &buf
}

func TestLogger_Levels(t *testing.T) {
	l, buf := newCapturedLogger(false)

	l.Info("info %d", 1)
	l.Warn("warn")
	l.Error("error")
	l.Debug("debug hidden")

	out := buf.String()
	if !strings.Contains(out, "info 1") {
		t.Errorf("expected info output, got %q", out)
	}
	if !strings.Contains(out, "warn") {
		t.Errorf("expected warn output, got %q", out)
	}
	if !strings.Contains(out, "error") {
		t.Errorf("expected error output, got %q", out)
	}
	if strings.Contains(out, "debug hidden") {
		t.Errorf("debug must be hidden in normal mode, got %q", out)
	}
}

func TestLogger_VerboseShowsDebug(t *testing.T) {
	l, buf := newCapturedLogger(true)

	l.Debug("debug visible")
	l.DebugHTTP("GET /")

	out := buf.String()
	if !strings.Contains(out, "[DEBUG] debug visible") {
		t.Errorf("expected debug output, got %q", out)
	}
	if !strings.Contains(out, "[HTTP] GET /") {
		t.Errorf("expected http debug output, got %q", out)
	}
}

func TestLogHelpers_ContextPrefix(t *testing.T) {
	l, buf := newCapturedLogger(false)
	old := appLogger
	SetAppLogger(l)
	defer SetAppLogger(old)

	LogInfo(WithLogPrefix(context.Background(), "classify"), "hello")
	LogInfo(context.Background(), "plain")

	out := buf.String()
	if !strings.Contains(out, "[classify] hello") {
		t.Errorf("expected prefixed line, got %q", out)
	}
	if strings.Contains(out, "[classify] plain") {
		t.Errorf("prefix must not leak across contexts, got %q", out)
	}
}
