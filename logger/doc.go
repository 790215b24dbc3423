// Package logger provides the Logger value emitted by the registry.
//
// A Logger is immutable after construction: the tag, the minimum level,
// and the handler are set once and never modified, which makes it
// inherently safe for concurrent use without any locking on the emit
// path. Level checks happen before any allocation, so filtered-out
// messages cost only a single integer comparison.
//
// Loggers are usually obtained from the registry package, which binds
// them to the rule resolved for a dotted name:
//
//	log := registry.Get("com.example.server.Handler")
//	log.Debug("request accepted")
//	log.Log(logger.ErrorLevel, "request failed", err)
//
// The package also owns the bootstrap logger, a VERBOSE console logger
// that exists independently of configuration (see Bootstrap).
package logger
