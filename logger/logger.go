package logger

import (
	"fmt"

	"github.com/proplog/proplog/core"
	"github.com/proplog/proplog/handler"
)

// Logger is a lightweight sink handle bound to a resolved rule
// (immutable). It carries a display tag and a minimum level and emits
// through a Handler. Loggers are cheap values; create as many as needed
// and share them freely across goroutines.
type Logger struct {
	tag   string
	level core.Level
	h     handler.Handler
}

// New creates a Logger with the given tag, minimum level, and handler.
func New(tag string, level core.Level, h handler.Handler) *Logger {
	return &Logger{tag: tag, level: level, h: h}
}

// Tag returns the display tag.
func (l *Logger) Tag() string { return l.tag }

// Level returns the minimum emitted level.
func (l *Logger) Level() core.Level { return l.level }

// Rule returns the (tag, level) pair the logger is bound to.
func (l *Logger) Rule() core.Rule {
	return core.Rule{Tag: l.tag, Level: l.level}
}

// WithHandler returns a copy of the logger bound to a different handler.
// The receiver is left untouched.
func (l *Logger) WithHandler(h handler.Handler) *Logger {
	return &Logger{tag: l.tag, level: l.level, h: h}
}

// Enabled reports whether a message at the given level would be emitted.
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.level
}

// Log emits msg at the given level with an optional attached error.
func (l *Logger) Log(level core.Level, msg string, err error) {
	// Level check before any other work; filtered-out messages cost a
	// single comparison.
	if level < l.level || l.h == nil {
		return
	}
	l.h.Log(level, l.tag, msg, err)
}

// Verbose logs a verbose message
func (l *Logger) Verbose(msg string) { l.Log(core.VerboseLevel, msg, nil) }

// Debug logs a debug message
func (l *Logger) Debug(msg string) { l.Log(core.DebugLevel, msg, nil) }

// Info logs an info message
func (l *Logger) Info(msg string) { l.Log(core.InfoLevel, msg, nil) }

// Warn logs a warning message
func (l *Logger) Warn(msg string) { l.Log(core.WarnLevel, msg, nil) }

// Error logs an error message
func (l *Logger) Error(msg string) { l.Log(core.ErrorLevel, msg, nil) }

// Assert logs a message for a failure that should never happen
func (l *Logger) Assert(msg string) { l.Log(core.AssertLevel, msg, nil) }

// Verbosef logs a verbose message with formatting
func (l *Logger) Verbosef(format string, args ...interface{}) {
	if core.VerboseLevel < l.level {
		return
	}
	l.Log(core.VerboseLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	l.Log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	l.Log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarnLevel < l.level {
		return
	}
	l.Log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.level {
		return
	}
	l.Log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Assertf logs a formatted message for a failure that should never happen
func (l *Logger) Assertf(format string, args ...interface{}) {
	if core.AssertLevel < l.level {
		return
	}
	l.Log(core.AssertLevel, fmt.Sprintf(format, args...), nil)
}
