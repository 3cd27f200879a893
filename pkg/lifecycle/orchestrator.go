package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Component is one managed unit. Start publishes the component's
// provided capabilities on the bus and brings it to the running state;
// Stop tears it down. The orchestrator guarantees every required
// capability is on the bus before Start runs.
type Component interface {
	Name() string
	Requires() []Capability
	Provides() []Capability
	Start(ctx context.Context, bus *Bus) error
	Stop(ctx context.Context) error
}

// Func adapts plain functions to the Component interface for components
// without state of their own.
type Func struct {
	ComponentName string
	Deps          []Capability
	Caps          []Capability
	StartFunc     func(ctx context.Context, bus *Bus) error
	StopFunc      func(ctx context.Context) error
}

// Name implements Component.
func (f *Func) Name() string { return f.ComponentName }

// Requires implements Component.
func (f *Func) Requires() []Capability { return f.Deps }

// Provides implements Component.
func (f *Func) Provides() []Capability { return f.Caps }

// Start implements Component.
func (f *Func) Start(ctx context.Context, bus *Bus) error {
	if f.StartFunc == nil {
		return nil
	}
	return f.StartFunc(ctx, bus)
}

// Stop implements Component.
func (f *Func) Stop(ctx context.Context) error {
	if f.StopFunc == nil {
		return nil
	}
	return f.StopFunc(ctx)
}

// UnmetDependenciesError reports every component that could not be
// ordered, each with its missing capability tags.
type UnmetDependenciesError struct {
	Missing map[string][]Capability
}

// Error returns the formatted list of unsatisfied components.
func (e *UnmetDependenciesError) Error() string {
	names := make([]string, 0, len(e.Missing))
	for name := range e.Missing {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		tags := make([]string, 0, len(e.Missing[name]))
		for _, t := range e.Missing[name] {
			tags = append(tags, string(t))
		}
		sort.Strings(tags)
		parts = append(parts, fmt.Sprintf("%s (missing: %s)", name, strings.Join(tags, ", ")))
	}
	return "unmet dependencies: " + strings.Join(parts, "; ")
}

// Orchestrator owns the component set and the shared bus.
type Orchestrator struct {
	components []Component
	bus        *Bus
	started    []Component
}

// NewOrchestrator creates an orchestrator over the given components.
// Registration order is only a tie-breaker; dependencies decide the
// actual ordering.
func NewOrchestrator(components ...Component) *Orchestrator {
	return &Orchestrator{
		components: components,
		bus:        NewBus(),
	}
}

// Bus returns the shared capability bus.
func (o *Orchestrator) Bus() *Bus {
	return o.bus
}

// Order computes the startup order: repeatedly scan the remaining
// components and append any whose requirements are covered by the
// capabilities provided so far. If a full pass adds nothing while
// components remain, ordering fails with UnmetDependenciesError.
func (o *Orchestrator) Order() ([]Component, error) {
	available := make(map[Capability]bool)
	remaining := make([]Component, len(o.components))
	copy(remaining, o.components)

	ordered := make([]Component, 0, len(remaining))
	for len(remaining) > 0 {
		progressed := false
		next := remaining[:0]
		for _, c := range remaining {
			if satisfied(c, available) {
				ordered = append(ordered, c)
				for _, tag := range c.Provides() {
					available[tag] = true
				}
				progressed = true
			} else {
				next = append(next, c)
			}
		}
		remaining = next
		if !progressed {
			err := &UnmetDependenciesError{Missing: make(map[string][]Capability, len(remaining))}
			for _, c := range remaining {
				for _, tag := range c.Requires() {
					if !available[tag] {
						err.Missing[c.Name()] = append(err.Missing[c.Name()], tag)
					}
				}
			}
			return nil, err
		}
	}
	return ordered, nil
}

func satisfied(c Component, available map[Capability]bool) bool {
	for _, tag := range c.Requires() {
		if !available[tag] {
			return false
		}
	}
	return true
}

// Start orders the components and starts them left to right. On the
// first failure the already-started components are stopped in reverse
// and the startup error is returned; later components never start.
func (o *Orchestrator) Start(ctx context.Context) error {
	ordered, err := o.Order()
	if err != nil {
		return err
	}

	for _, c := range ordered {
		slog.Info("Starting component", "component", c.Name())
		if err := c.Start(ctx, o.bus); err != nil {
			startErr := fmt.Errorf("starting component %s: %w", c.Name(), err)
			if stopErr := o.Stop(ctx); stopErr != nil {
				slog.Error("Teardown after failed startup reported errors", "error", stopErr)
			}
			return startErr
		}
		o.started = append(o.started, c)
	}
	slog.Info("All components started", "count", len(ordered))
	return nil
}

// Stop tears the started components down right to left. Per-component
// failures are collected; teardown always runs to completion across all
// started components.
func (o *Orchestrator) Stop(ctx context.Context) error {
	var errs []error
	for i := len(o.started) - 1; i >= 0; i-- {
		c := o.started[i]
		slog.Info("Stopping component", "component", c.Name())
		if err := c.Stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stopping component %s: %w", c.Name(), err))
		}
	}
	o.started = nil
	return errors.Join(errs...)
}
