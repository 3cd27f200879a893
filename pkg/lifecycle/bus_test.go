package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusRegisterAndGet(t *testing.T) {
	bus := NewBus()

	require.NoError(t, bus.Register("database", 42))

	v, err := bus.Get("database")
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestBusDuplicateRegistration(t *testing.T) {
	bus := NewBus()

	require.NoError(t, bus.Register("database", 1))
	err := bus.Register("database", 2)
	require.ErrorIs(t, err, ErrDuplicateCapability)

	// The first value wins.
	v, err := bus.Get("database")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestBusUnknownCapability(t *testing.T) {
	bus := NewBus()

	_, err := bus.Get("nothing")
	assert.ErrorIs(t, err, ErrUnknownCapability)
}

func TestResolveTyped(t *testing.T) {
	bus := NewBus()
	require.NoError(t, bus.Register("greeting", "hello"))

	s, err := Resolve[string](bus, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestResolveTypeMismatch(t *testing.T) {
	bus := NewBus()
	require.NoError(t, bus.Register("greeting", "hello"))

	_, err := Resolve[int](bus, "greeting")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "greeting")
}

func TestResolveUnknown(t *testing.T) {
	bus := NewBus()

	_, err := Resolve[string](bus, "missing")
	assert.ErrorIs(t, err, ErrUnknownCapability)
}
