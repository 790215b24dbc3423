// Package registry is the public entry point of proplog: it hands out
// loggers configured by longest-matching-prefix resolution.
//
// Rules come from a properties file (see the config package) keyed by
// dotted name prefixes. Asking for a logger picks the most specific rule
// whose key prefixes the requested name, falling back to the root rule
// and finally to a VERBOSE default, so a lookup always succeeds:
//
//	log := registry.Get("com.example.server.Handler")
//	log.Debug("request accepted")
//
// Loggers can also be resolved from a value's type or from the calling
// function:
//
//	log := registry.For(&Server{})  // rules keyed by package path apply
//	log := registry.Caller()
//
// The package-level functions use a process-wide registry built exactly
// once from the default configuration source. For explicit wiring
// (tests, embedded configuration, custom sinks) build a Registry by
// hand:
//
//	table := config.Load(config.BytesSource(doc), nil)
//	reg := registry.New(table, handler.NewConsole(handler.ConsoleConfig{}))
package registry
