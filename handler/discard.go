package handler

import "github.com/proplog/proplog/core"

// Discard is a Handler that drops every message. Useful in tests and
// benchmarks where only level gating matters.
type Discard struct{}

func (Discard) Log(level core.Level, tag, msg string, err error) {}

func (Discard) Close() error { return nil }
