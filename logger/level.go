package logger

import "github.com/proplog/proplog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	VerboseLevel = core.VerboseLevel
	DebugLevel   = core.DebugLevel
	InfoLevel    = core.InfoLevel
	WarnLevel    = core.WarnLevel
	ErrorLevel   = core.ErrorLevel
	AssertLevel  = core.AssertLevel
)
