package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/proplog/proplog/core"
)

func newSlogBuffer() (*Slog, *bytes.Buffer) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug - 4, // admit VERBOSE
	}))
	return NewSlog(l), &buf
}

func TestSlog_Forward(t *testing.T) {
	h, buf := newSlogBuffer()

	h.Log(core.InfoLevel, "http", "listening", nil)

	out := buf.String()
	if !strings.Contains(out, "listening") {
		t.Errorf("Expected message in output, got: %s", out)
	}
	if !strings.Contains(out, "tag=http") {
		t.Errorf("Expected tag attribute in output, got: %s", out)
	}
}

func TestSlog_ErrorAttribute(t *testing.T) {
	h, buf := newSlogBuffer()

	h.Log(core.ErrorLevel, "db", "query failed", errors.New("boom"))

	out := buf.String()
	if !strings.Contains(out, "error=boom") {
		t.Errorf("Expected error attribute in output, got: %s", out)
	}
	if !strings.Contains(out, "level=ERROR") {
		t.Errorf("Expected ERROR level in output, got: %s", out)
	}
}

func TestSlog_VerboseBelowDebug(t *testing.T) {
	var buf bytes.Buffer
	// Default slog threshold (Info) must filter VERBOSE out.
	h := NewSlog(slog.New(slog.NewTextHandler(&buf, nil)))

	h.Log(core.VerboseLevel, "tag", "chatter", nil)

	if buf.Len() != 0 {
		t.Errorf("Expected VERBOSE to be filtered by slog level, got: %s", buf.String())
	}
}

func TestSlogLevel_Mapping(t *testing.T) {
	tests := []struct {
		in   core.Level
		want slog.Level
	}{
		{core.VerboseLevel, slog.LevelDebug - 4},
		{core.DebugLevel, slog.LevelDebug},
		{core.InfoLevel, slog.LevelInfo},
		{core.WarnLevel, slog.LevelWarn},
		{core.ErrorLevel, slog.LevelError},
		{core.AssertLevel, slog.LevelError + 4},
	}
	for _, tc := range tests {
		if got := slogLevel(tc.in); got != tc.want {
			t.Errorf("slogLevel(%s) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewSlog_NilDefaults(t *testing.T) {
	h := NewSlog(nil)
	if h.logger == nil {
		t.Error("Expected nil logger to fall back to slog.Default")
	}
}
