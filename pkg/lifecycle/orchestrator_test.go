package lifecycle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingComponent appends its name to a shared event log on start
// and stop.
type recordingComponent struct {
	name     string
	requires []Capability
	provides []Capability
	events   *[]string
	startErr error
	stopErr  error
}

func (c *recordingComponent) Name() string            { return c.name }
func (c *recordingComponent) Requires() []Capability  { return c.requires }
func (c *recordingComponent) Provides() []Capability  { return c.provides }
func (c *recordingComponent) Stop(context.Context) error {
	*c.events = append(*c.events, "stop:"+c.name)
	return c.stopErr
}

func (c *recordingComponent) Start(_ context.Context, bus *Bus) error {
	*c.events = append(*c.events, "start:"+c.name)
	if c.startErr != nil {
		return c.startErr
	}
	for _, tag := range c.provides {
		if err := bus.Register(tag, c.name); err != nil {
			return err
		}
	}
	return nil
}

func TestOrchestratorOrdersByDependency(t *testing.T) {
	var events []string
	// Registered deliberately out of dependency order.
	o := NewOrchestrator(
		&recordingComponent{name: "api", requires: []Capability{"pipeline"}, events: &events},
		&recordingComponent{name: "pipeline", requires: []Capability{"db", "pool"}, provides: []Capability{"pipeline"}, events: &events},
		&recordingComponent{name: "pool", provides: []Capability{"pool"}, events: &events},
		&recordingComponent{name: "db", provides: []Capability{"db"}, events: &events},
	)

	ordered, err := o.Order()
	require.NoError(t, err)

	names := make([]string, len(ordered))
	for i, c := range ordered {
		names[i] = c.Name()
	}
	// pool and db carry no dependencies and keep registration order;
	// pipeline must follow both, api must follow pipeline.
	assert.Equal(t, []string{"pool", "db", "pipeline", "api"}, names)
}

func TestOrchestratorReportsUnmetDependencies(t *testing.T) {
	var events []string
	o := NewOrchestrator(
		&recordingComponent{name: "api", requires: []Capability{"pipeline"}, events: &events},
		&recordingComponent{name: "pipeline", requires: []Capability{"db"}, provides: []Capability{"pipeline"}, events: &events},
	)

	_, err := o.Order()
	require.Error(t, err)

	var unmet *UnmetDependenciesError
	require.ErrorAs(t, err, &unmet)
	assert.Equal(t, []Capability{"db"}, unmet.Missing["pipeline"])
	assert.Equal(t, []Capability{"pipeline"}, unmet.Missing["api"])
	assert.Contains(t, err.Error(), "pipeline (missing: db)")
}

func TestOrchestratorDetectsCycles(t *testing.T) {
	var events []string
	o := NewOrchestrator(
		&recordingComponent{name: "a", requires: []Capability{"b"}, provides: []Capability{"a"}, events: &events},
		&recordingComponent{name: "b", requires: []Capability{"a"}, provides: []Capability{"b"}, events: &events},
	)

	_, err := o.Order()
	var unmet *UnmetDependenciesError
	require.ErrorAs(t, err, &unmet)
	assert.Len(t, unmet.Missing, 2)
}

func TestOrchestratorStartStopOrder(t *testing.T) {
	var events []string
	o := NewOrchestrator(
		&recordingComponent{name: "worker", requires: []Capability{"db"}, events: &events},
		&recordingComponent{name: "db", provides: []Capability{"db"}, events: &events},
	)

	ctx := context.Background()
	require.NoError(t, o.Start(ctx))
	require.NoError(t, o.Stop(ctx))

	assert.Equal(t, []string{"start:db", "start:worker", "stop:worker", "stop:db"}, events)
}

func TestOrchestratorPassesValuesOverBus(t *testing.T) {
	// The provider publishes a live value in Start; the dependent pulls
	// it off the bus typed, never touching the provider directly.
	type conn struct{ addr string }

	var resolved *conn
	o := NewOrchestrator(
		&Func{
			ComponentName: "db",
			Caps:          []Capability{"db"},
			StartFunc: func(_ context.Context, bus *Bus) error {
				return bus.Register("db", &conn{addr: "10.0.0.5:5432"})
			},
		},
		&Func{
			ComponentName: "worker",
			Deps:          []Capability{"db"},
			StartFunc: func(_ context.Context, bus *Bus) error {
				c, err := Resolve[*conn](bus, "db")
				if err != nil {
					return err
				}
				resolved = c
				return nil
			},
		},
	)

	ctx := context.Background()
	require.NoError(t, o.Start(ctx))
	require.NotNil(t, resolved)
	assert.Equal(t, "10.0.0.5:5432", resolved.addr)
	require.NoError(t, o.Stop(ctx))

	t.Run("wrong type is an error", func(t *testing.T) {
		bus := NewBus()
		require.NoError(t, bus.Register("db", "not a conn"))
		_, err := Resolve[*conn](bus, "db")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "holds string")
	})
}

func TestOrchestratorRollsBackOnStartFailure(t *testing.T) {
	var events []string
	boom := errors.New("boom")
	o := NewOrchestrator(
		&recordingComponent{name: "db", provides: []Capability{"db"}, events: &events},
		&recordingComponent{name: "worker", requires: []Capability{"db"}, provides: []Capability{"worker"}, startErr: boom, events: &events},
		&recordingComponent{name: "api", requires: []Capability{"worker"}, events: &events},
	)

	err := o.Start(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "worker")

	// db started and was torn down; api never started.
	assert.Equal(t, []string{"start:db", "start:worker", "stop:db"}, events)
}

func TestOrchestratorStopCollectsErrors(t *testing.T) {
	var events []string
	stopFail := errors.New("stop failed")
	o := NewOrchestrator(
		&recordingComponent{name: "a", provides: []Capability{"a"}, stopErr: stopFail, events: &events},
		&recordingComponent{name: "b", requires: []Capability{"a"}, events: &events},
	)

	ctx := context.Background()
	require.NoError(t, o.Start(ctx))

	err := o.Stop(ctx)
	require.ErrorIs(t, err, stopFail)
	// Both components were stopped despite the failure.
	assert.Equal(t, []string{"start:a", "start:b", "stop:b", "stop:a"}, events)
}

func TestFuncAdaptor(t *testing.T) {
	started := false
	stopped := false
	c := &Func{
		ComponentName: "sensor",
		Caps:          []Capability{"sensor"},
		StartFunc: func(ctx context.Context, bus *Bus) error {
			started = true
			return bus.Register("sensor", struct{}{})
		},
		StopFunc: func(ctx context.Context) error {
			stopped = true
			return nil
		},
	}

	o := NewOrchestrator(c)
	ctx := context.Background()
	require.NoError(t, o.Start(ctx))
	require.NoError(t, o.Stop(ctx))
	assert.True(t, started)
	assert.True(t, stopped)

	// Nil funcs are valid no-ops.
	noop := &Func{ComponentName: "noop"}
	assert.NoError(t, noop.Start(ctx, NewBus()))
	assert.NoError(t, noop.Stop(ctx))
}
