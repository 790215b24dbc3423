// Package handler provides the Handler interface and its built-in
// implementations for writing resolved log messages to an output.
//
// Built-in handlers:
//
//   - Console writes logcat-style lines ("D/tag: message") to any
//     io.Writer (default: stdout).
//   - Slog routes messages into a log/slog.Logger, so applications that
//     standardized on the standard library keep a single output pipeline.
//   - Discard drops everything; useful for tests and benchmarks.
//
// Handlers are safe for concurrent use. Console serializes writes with a
// mutex unless the writer is known to be safe for concurrent Write
// calls, in which case the lock is skipped.
package handler
