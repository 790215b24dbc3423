package registry

import (
	"reflect"
	"runtime"
	"sync"

	"github.com/proplog/proplog/config"
	"github.com/proplog/proplog/core"
	"github.com/proplog/proplog/handler"
	"github.com/proplog/proplog/logger"
)

// Registry resolves dotted names to loggers against an immutable rule
// table. Construct one explicitly with New, or use the package-level
// functions, which lazily build a process-wide registry from the default
// configuration source on first use.
//
// Resolution is a pure function of the name and the table; a Registry
// needs no locking and is safe for unlimited concurrent readers.
type Registry struct {
	table core.Table
	h     handler.Handler
}

// New creates a Registry over the given table. Returned loggers emit
// through h; a nil h selects a console handler on stdout.
func New(table core.Table, h handler.Handler) *Registry {
	if h == nil {
		h = handler.NewConsole(handler.ConsoleConfig{})
	}
	return &Registry{table: table, h: h}
}

// Get returns the logger for the given dotted name, bound to the most
// specific matching rule. The empty name selects the root rule. When the
// table holds no applicable rule at all, Get returns a logger with an
// empty tag and VERBOSE level rather than failing.
func (r *Registry) Get(name string) *logger.Logger {
	rule, ok := r.table.Match(name)
	if !ok {
		rule = core.Rule{Tag: "", Level: core.VerboseLevel}
	}
	return logger.New(rule.Tag, rule.Level, r.h)
}

// Root returns the logger selected by the root rule.
func (r *Registry) Root() *logger.Logger {
	return r.Get(core.RootKey)
}

// For returns the logger for the type of v, resolved by its package path
// joined with the type name; pointers are dereferenced first. A nil v
// selects the root rule.
func (r *Registry) For(v interface{}) *logger.Logger {
	return r.Get(nameOf(v))
}

// Caller returns the logger for the function that invoked it, resolved
// from the active call stack. Its name is the fully qualified Go
// function name (for example "github.com/acme/app/server.Start"), so
// rules keyed by package path apply naturally.
//
// Invoking Caller from a context where the calling frame cannot be
// resolved is a programming error and panics.
func (r *Registry) Caller() *logger.Logger {
	return r.Get(callerName(2))
}

// nameOf derives the dotted rule name of v's dynamic type.
func nameOf(v interface{}) string {
	if v == nil {
		return core.RootKey
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.PkgPath() == "" {
		// Unnamed and built-in types have no package path.
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// callerName returns the fully qualified name of the function skip
// frames above callerName itself.
func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			return fn.Name()
		}
	}
	panic("registry: unable to resolve the calling function")
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry. On first use it loads the
// rule table from the default configuration source, reporting problems
// through the bootstrap logger; every later call observes the same
// registry. There is no reloading; the table is fixed for the process
// lifetime.
func Default() *Registry {
	defaultOnce.Do(func() {
		table := config.Load(config.DefaultSource(), logger.Bootstrap())
		defaultReg = New(table, nil)
	})
	return defaultReg
}

// Get resolves name against the default registry.
func Get(name string) *logger.Logger {
	return Default().Get(name)
}

// For resolves the type of v against the default registry.
func For(v interface{}) *logger.Logger {
	return Default().For(v)
}

// Root returns the default registry's root logger.
func Root() *logger.Logger {
	return Default().Root()
}

// Caller resolves the calling function against the default registry.
func Caller() *logger.Logger {
	return Default().Get(callerName(2))
}
