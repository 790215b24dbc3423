package core

import "strings"

// RootKey is the table key of the root rule. It carries no string
// content and is never tested as a prefix against logger names; it only
// serves as the fallback of last resort during resolution.
const RootKey = ""

// Rule is an immutable (tag, level) pair produced from one configuration
// entry.
type Rule struct {
	Tag   string
	Level Level
}

// Table maps a dotted-name prefix (or RootKey) to its Rule. A Table is
// built once and never mutated after it is published, so concurrent
// readers need no synchronization.
type Table map[string]Rule

// Match resolves a dotted name to the most specific applicable rule.
//
// Every non-root key that is a string prefix of name is a candidate, and
// the longest candidate wins. Matching is byte-wise, not segment-aware:
// the name "com.example2" matches a rule keyed "com.example". Existing
// configurations rely on this behavior, so it is kept as-is.
//
// An empty name selects the root rule directly. When neither a candidate
// nor a root rule exists, ok is false and the caller is expected to
// synthesize a default.
func (t Table) Match(name string) (Rule, bool) {
	current := RootKey
	if name != "" {
		for key := range t {
			if key == RootKey || !strings.HasPrefix(name, key) {
				continue
			}
			if len(current) < len(key) {
				current = key
			}
		}
	}
	rule, ok := t[current]
	return rule, ok
}
