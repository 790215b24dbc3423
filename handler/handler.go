package handler

import "github.com/proplog/proplog/core"

// Handler defines the interface for log sinks.
//
// A Handler receives fully resolved emissions (level, display tag,
// message, and an optional error) and is responsible only for writing
// them somewhere. Level gating happens in the Logger before a Handler
// is invoked.
type Handler interface {
	// Log writes a single message. err may be nil.
	Log(level core.Level, tag, msg string, err error)

	// Close closes the handler and releases resources
	Close() error
}
