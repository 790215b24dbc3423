package logger

import (
	"sync"

	"github.com/proplog/proplog/core"
	"github.com/proplog/proplog/handler"
)

// BootstrapTag is the display tag of the bootstrap logger, and the tag
// of the fallback root rule the config loader installs when no
// configuration can be loaded.
const BootstrapTag = "proplog"

var (
	bootstrapOnce sync.Once
	bootstrap     *Logger
)

// Bootstrap returns the process-wide bootstrap logger: a maximally
// verbose console logger that exists independently of any configuration.
//
// The library emits its own diagnostics through it; for example a
// missing configuration file is reported here, which would otherwise be
// a chicken-and-egg problem: loading the configuration needs a logger
// before any configured logger exists. Applications may also use it for
// early debugging before a registry is available.
func Bootstrap() *Logger {
	bootstrapOnce.Do(func() {
		bootstrap = New(BootstrapTag, core.VerboseLevel, handler.NewConsole(handler.ConsoleConfig{}))
	})
	return bootstrap
}
