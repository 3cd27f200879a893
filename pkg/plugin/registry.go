// Package plugin defines the extractor and comparer capabilities and
// the compile-time registration table behind them. A plugin's compile
// unit registers its factories at init time under the plugin's name;
// loading is a pure lookup, no directory scanning.
package plugin

import (
	"fmt"
	"log/slog"
)

// Settings is the configuration slice handed to one plugin instance.
type Settings map[string]any

// Extractor maps file bytes to zero or more (digest type, bytes) pairs
// plus warnings. CanProcess must be pure and cheap; Process may fail,
// which the pool reports as an error for that file only.
type Extractor interface {
	Name() string
	DigestTypes() []string
	CanProcess(filename, mimeType string, size int64) bool
	Process(filename, mimeType string, data []byte) (digests map[string][]byte, warnings map[string]string, err error)
}

// Comparer maps two digests of the same type to a similarity score in
// [0, 1]. Implementations may cache state keyed on the newer id as a
// batching hint but are not required to.
type Comparer interface {
	Name() string
	DigestTypes() []string
	Compare(digestType string, olderID int, older []byte, newerID int, newer []byte) (float64, error)
}

// ExtractorFactory builds a fresh extractor from its settings.
type ExtractorFactory func(Settings) (Extractor, error)

// ComparerFactory builds a fresh comparer from its settings.
type ComparerFactory func(Settings) (Comparer, error)

type extractorEntry struct {
	name    string
	factory ExtractorFactory
}

type comparerEntry struct {
	name    string
	factory ComparerFactory
}

var (
	extractorFactories []extractorEntry
	comparerFactories  []comparerEntry
)

// RegisterExtractor registers an extractor factory under name. It is
// meant to be called from init(); a duplicate name is a programming
// error and panics.
func RegisterExtractor(name string, factory ExtractorFactory) {
	for _, e := range extractorFactories {
		if e.name == name {
			panic(fmt.Sprintf("plugin: extractor %q registered twice", name))
		}
	}
	extractorFactories = append(extractorFactories, extractorEntry{name: name, factory: factory})
}

// RegisterComparer registers a comparer factory under name. Same rules
// as RegisterExtractor.
func RegisterComparer(name string, factory ComparerFactory) {
	for _, e := range comparerFactories {
		if e.name == name {
			panic(fmt.Sprintf("plugin: comparer %q registered twice", name))
		}
	}
	comparerFactories = append(comparerFactories, comparerEntry{name: name, factory: factory})
}

// Registry binds the registered factories to their configured settings.
// Instances are built per caller (the pool builds one set per worker),
// so plugin state never crosses goroutines.
type Registry struct {
	settings       map[string]Settings
	extractorTypes []string
}

// Load validates every registered factory against its settings slice
// and returns the registry. A plugin whose name has no configured entry
// receives an empty settings map.
func Load(settings map[string]Settings) (*Registry, error) {
	r := &Registry{settings: settings}

	extractors, err := r.NewExtractors()
	if err != nil {
		return nil, err
	}
	if _, err := r.NewComparers(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, ex := range extractors {
		for _, t := range ex.DigestTypes() {
			if !seen[t] {
				seen[t] = true
				r.extractorTypes = append(r.extractorTypes, t)
			}
		}
		slog.Info("Loaded extractor plugin", "name", ex.Name(), "digest_types", ex.DigestTypes())
	}
	return r, nil
}

func (r *Registry) settingsFor(name string) Settings {
	if s, ok := r.settings[name]; ok && s != nil {
		return s
	}
	return Settings{}
}

// NewExtractors builds a fresh extractor instance per registered
// factory, in registration order.
func (r *Registry) NewExtractors() ([]Extractor, error) {
	out := make([]Extractor, 0, len(extractorFactories))
	for _, e := range extractorFactories {
		ex, err := e.factory(r.settingsFor(e.name))
		if err != nil {
			return nil, fmt.Errorf("initializing extractor %q: %w", e.name, err)
		}
		out = append(out, ex)
	}
	return out, nil
}

// NewComparers builds a fresh comparer instance per registered factory,
// in registration order.
func (r *Registry) NewComparers() ([]Comparer, error) {
	out := make([]Comparer, 0, len(comparerFactories))
	for _, e := range comparerFactories {
		c, err := e.factory(r.settingsFor(e.name))
		if err != nil {
			return nil, fmt.Errorf("initializing comparer %q: %w", e.name, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// DigestTypes returns the union of digest types the loaded extractors
// can emit, in registration order.
func (r *Registry) DigestTypes() []string {
	return r.extractorTypes
}
