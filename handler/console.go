package handler

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/proplog/proplog/core"
)

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// ConsoleConfig holds configuration for the console handler.
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// TimestampFormat for the line prefix (default: time.RFC3339)
	TimestampFormat string
	// ConcurrentWriter indicates the Writer supports concurrent Write
	// calls. Automatically detected for io.Discard and *os.File; set
	// true for other goroutine-safe writers.
	ConcurrentWriter bool
}

// Console writes logcat-style lines to an io.Writer:
//
//	2024-05-01T10:30:00Z D/MyTag: message
//	2024-05-01T10:30:01Z E/MyTag: message: cause of the failure
//
// Each message is formatted into a pooled buffer and written with a
// single Write call, serialized by a mutex unless the writer is
// concurrent-safe.
type Console struct {
	w              io.Writer
	tsFormat       string
	concurrentSafe bool
	mu             sync.Mutex
	bufPool        sync.Pool
}

// NewConsole creates a new console handler.
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &Console{
		w:              cfg.Writer,
		tsFormat:       cfg.TimestampFormat,
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer),
		bufPool: sync.Pool{
			New: func() interface{} {
				buf := &bytes.Buffer{}
				buf.Grow(128)
				return buf
			},
		},
	}
}

// Log formats and writes a single line.
func (c *Console) Log(level core.Level, tag, msg string, err error) {
	buf := c.bufPool.Get().(*bytes.Buffer)
	buf.Reset()

	buf.Write(time.Now().AppendFormat(buf.AvailableBuffer(), c.tsFormat))
	buf.WriteByte(' ')
	buf.WriteByte(level.Letter())
	buf.WriteByte('/')
	buf.WriteString(tag)
	buf.WriteString(": ")
	buf.WriteString(msg)
	if err != nil {
		buf.WriteString(": ")
		buf.WriteString(err.Error())
	}
	buf.WriteByte('\n')

	if c.concurrentSafe {
		c.w.Write(buf.Bytes())
	} else {
		c.mu.Lock()
		c.w.Write(buf.Bytes())
		c.mu.Unlock()
	}

	c.bufPool.Put(buf)
}

// Close closes the handler. The writer is not owned by the handler and
// stays open.
func (c *Console) Close() error {
	return nil
}
