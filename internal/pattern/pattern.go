// Package pattern names the initial board seeds. Setups resolve a pattern
// by name and hand the resulting function to the core's Initialize.
package pattern

import (
	"sort"

	"lifegrid/internal/life"
)

// Factory builds a seed function for the given board configuration. The
// seed only matters for randomized patterns.
type Factory func(cfg life.Config, seed int64) life.PatternFunc

var patterns = map[string]Factory{}

// Register adds a pattern factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	patterns[name] = f
}

// Lookup resolves a registered pattern factory by name.
func Lookup(name string) (Factory, bool) {
	f, ok := patterns[name]
	return f, ok
}

// Names returns the registered pattern names, sorted.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
