// Package lifecycle brings the system's components up and down in
// dependency order. Components declare the capability tags they require
// and provide; the orchestrator orders them topologically, starts them
// left to right and stops them right to left. Values flow between
// components through the capability bus.
package lifecycle

import (
	"errors"
	"fmt"
	"sync"
)

// Capability is an opaque dependency tag. Its meaning is a contract
// between the providing and consuming components, not a type.
type Capability string

var (
	// ErrDuplicateCapability is returned when a tag is registered twice.
	ErrDuplicateCapability = errors.New("capability already registered")

	// ErrUnknownCapability is returned when a tag was never registered.
	ErrUnknownCapability = errors.New("unknown capability")
)

// Bus carries the values components publish for their dependents.
// Lookups are valid only after the providing component started; the
// orchestrator enforces that through ordering.
type Bus struct {
	mu      sync.RWMutex
	entries map[Capability]any
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{entries: make(map[Capability]any)}
}

// Register publishes value under tag.
func (b *Bus) Register(tag Capability, value any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.entries[tag]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCapability, tag)
	}
	b.entries[tag] = value
	return nil
}

// Get returns the value published under tag.
func (b *Bus) Get(tag Capability) (any, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.entries[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCapability, tag)
	}
	return v, nil
}

// Resolve fetches the value published under tag with its expected type.
func Resolve[T any](b *Bus, tag Capability) (T, error) {
	var zero T
	v, err := b.Get(tag)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("capability %s holds %T, not %T", tag, v, zero)
	}
	return typed, nil
}
