package handler

import (
	"context"
	"log/slog"

	"github.com/proplog/proplog/core"
)

// Slog is an adapter that routes messages into a log/slog.Logger. The
// display tag travels as a "tag" attribute and an attached error as an
// "error" attribute.
type Slog struct {
	logger *slog.Logger
}

// NewSlog creates a new slog adapter. A nil logger selects slog.Default.
func NewSlog(l *slog.Logger) *Slog {
	if l == nil {
		l = slog.Default()
	}
	return &Slog{logger: l}
}

// Log forwards a message to the wrapped slog.Logger.
func (s *Slog) Log(level core.Level, tag, msg string, err error) {
	attrs := make([]any, 0, 4)
	attrs = append(attrs, "tag", tag)
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	s.logger.Log(context.Background(), slogLevel(level), msg, attrs...)
}

// Close closes the handler.
func (s *Slog) Close() error {
	return nil
}

// slogLevel maps levels onto the slog scale. VERBOSE sits one step below
// slog's Debug and ASSERT one step above its Error, using the spacing
// slog reserves between named levels.
func slogLevel(l core.Level) slog.Level {
	switch l {
	case core.VerboseLevel:
		return slog.LevelDebug - 4
	case core.DebugLevel:
		return slog.LevelDebug
	case core.InfoLevel:
		return slog.LevelInfo
	case core.WarnLevel:
		return slog.LevelWarn
	case core.ErrorLevel:
		return slog.LevelError
	case core.AssertLevel:
		return slog.LevelError + 4
	default:
		return slog.LevelInfo
	}
}
