package core

// Level represents the verbosity tier of a logger or a single emission.
// Levels are totally ordered: VerboseLevel is the most permissive,
// AssertLevel the most severe.
type Level int8

const (
	// VerboseLevel for the most detailed output
	VerboseLevel Level = iota
	// DebugLevel for debugging information
	DebugLevel
	// InfoLevel for general informational messages (default for rules
	// whose level token cannot be decoded)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// AssertLevel for failures that should never happen
	AssertLevel
)

// String returns the configuration-file name of the level.
func (l Level) String() string {
	switch l {
	case VerboseLevel:
		return "VERBOSE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case AssertLevel:
		return "ASSERT"
	default:
		return "UNKNOWN"
	}
}

// Letter returns the single-character form used for console output.
func (l Level) Letter() byte {
	switch l {
	case VerboseLevel:
		return 'V'
	case DebugLevel:
		return 'D'
	case InfoLevel:
		return 'I'
	case WarnLevel:
		return 'W'
	case ErrorLevel:
		return 'E'
	case AssertLevel:
		return 'A'
	default:
		return '?'
	}
}

// ParseLevel converts a configuration token to a Level. The match is
// exact and case-sensitive: "DEBUG" parses, "debug" does not. When ok is
// false the returned level is InfoLevel, the lenient-decode default.
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "VERBOSE":
		return VerboseLevel, true
	case "DEBUG":
		return DebugLevel, true
	case "INFO":
		return InfoLevel, true
	case "WARN":
		return WarnLevel, true
	case "ERROR":
		return ErrorLevel, true
	case "ASSERT":
		return AssertLevel, true
	default:
		return InfoLevel, false
	}
}
