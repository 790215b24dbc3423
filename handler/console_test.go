package handler

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/proplog/proplog/core"
)

func TestConsole_Line(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsole(ConsoleConfig{Writer: &buf})

	h.Log(core.InfoLevel, "http", "listening", nil)

	line := buf.String()
	if !strings.Contains(line, "I/http: listening") {
		t.Errorf("Expected 'I/http: listening' in output, got: %s", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("Expected trailing newline, got: %q", line)
	}
}

func TestConsole_ErrorAppended(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsole(ConsoleConfig{Writer: &buf})

	h.Log(core.ErrorLevel, "db", "query failed", errors.New("connection reset"))

	line := buf.String()
	if !strings.Contains(line, "E/db: query failed: connection reset") {
		t.Errorf("Expected error detail in output, got: %s", line)
	}
}

func TestConsole_LevelLetters(t *testing.T) {
	levels := []struct {
		level  core.Level
		letter string
	}{
		{core.VerboseLevel, "V/"},
		{core.DebugLevel, "D/"},
		{core.InfoLevel, "I/"},
		{core.WarnLevel, "W/"},
		{core.ErrorLevel, "E/"},
		{core.AssertLevel, "A/"},
	}
	for _, tc := range levels {
		var buf bytes.Buffer
		h := NewConsole(ConsoleConfig{Writer: &buf})
		h.Log(tc.level, "tag", "msg", nil)
		if !strings.Contains(buf.String(), tc.letter+"tag: msg") {
			t.Errorf("Expected %q prefix for %s, got: %s", tc.letter, tc.level, buf.String())
		}
	}
}

func TestConsole_TimestampFormat(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsole(ConsoleConfig{Writer: &buf, TimestampFormat: "15:04"})

	h.Log(core.DebugLevel, "tag", "msg", nil)

	// "HH:MM D/tag: msg\n", 5 timestamp bytes plus a space.
	line := buf.String()
	if len(line) < 6 || line[5] != ' ' {
		t.Errorf("Expected 5-character timestamp prefix, got: %q", line)
	}
}

func TestConsole_ConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsole(ConsoleConfig{Writer: &buf})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				h.Log(core.InfoLevel, "tag", "message", nil)
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 400 {
		t.Errorf("Expected 400 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if !strings.Contains(line, "I/tag: message") {
			t.Errorf("Interleaved line: %q", line)
			break
		}
	}
}

func TestConsole_DefaultWriter(t *testing.T) {
	h := NewConsole(ConsoleConfig{})
	if h.w != os.Stdout {
		t.Error("Expected default writer to be stdout")
	}
	if !h.concurrentSafe {
		t.Error("Expected *os.File writer to be detected as concurrent-safe")
	}
}

func TestIsConcurrentSafeWriter(t *testing.T) {
	if !isConcurrentSafeWriter(io.Discard) {
		t.Error("io.Discard should be concurrent-safe")
	}
	if !isConcurrentSafeWriter(os.Stderr) {
		t.Error("*os.File should be concurrent-safe")
	}
	if isConcurrentSafeWriter(&bytes.Buffer{}) {
		t.Error("bytes.Buffer should not be concurrent-safe")
	}
}

func TestConsole_Close(t *testing.T) {
	h := NewConsole(ConsoleConfig{Writer: &bytes.Buffer{}})
	if err := h.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
}

func BenchmarkConsole_Log(b *testing.B) {
	h := NewConsole(ConsoleConfig{Writer: io.Discard})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Log(core.InfoLevel, "bench", "benchmark message", nil)
	}
}
