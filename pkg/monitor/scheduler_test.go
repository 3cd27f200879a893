package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalScheduler_NewObjectsFireSpreadOut(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewIntervalScheduler(time.Hour, 1)

	s.SetQueriedObjects([]int64{1, 2, 3, 4}, now)

	// The first added id fires immediately, the rest are offset
	// backwards across the interval and become due one by one.
	b := s.PopTriggered(now)
	assert.Equal(t, []int64{1}, b.IDs())

	b = s.PopTriggered(now)
	assert.Empty(t, b.IDs(), "nothing else is due on the same tick")

	b = s.PopTriggered(now.Add(15 * time.Minute))
	assert.Equal(t, []int64{2}, b.IDs())

	b = s.PopTriggered(now.Add(30 * time.Minute))
	assert.Equal(t, []int64{3}, b.IDs())

	b = s.PopTriggered(now.Add(45 * time.Minute))
	assert.Equal(t, []int64{4}, b.IDs())
}

func TestIntervalScheduler_OldestFirstAndBatchLimit(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewIntervalScheduler(time.Minute, 2)

	s.SetQueriedObjects([]int64{10, 20, 30}, now)

	// All three become due well past the interval; only batchSize pop,
	// and the longest-waiting ones go first.
	b := s.PopTriggered(now.Add(time.Hour))
	require.Len(t, b.IDs(), 2)
	assert.Equal(t, []int64{10, 20}, b.IDs(), "ids with the oldest last-served times pop first")

	b = s.PopTriggered(now.Add(time.Hour))
	assert.Equal(t, []int64{30}, b.IDs())
}

func TestIntervalScheduler_RetainedObjectsKeepTheirSlot(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewIntervalScheduler(time.Hour, 10)

	s.SetQueriedObjects([]int64{1}, now)
	b := s.PopTriggered(now)
	require.Equal(t, []int64{1}, b.IDs())

	// Re-setting the same membership must not re-arm the id.
	s.SetQueriedObjects([]int64{1}, now.Add(time.Minute))
	b = s.PopTriggered(now.Add(time.Minute))
	assert.Empty(t, b.IDs())

	b = s.PopTriggered(now.Add(time.Hour))
	assert.Equal(t, []int64{1}, b.IDs())
}

func TestIntervalScheduler_RemovedObjectsAreDropped(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewIntervalScheduler(time.Minute, 10)

	s.SetQueriedObjects([]int64{1, 2}, now)
	s.SetQueriedObjects([]int64{2}, now)

	b := s.PopTriggered(now.Add(time.Hour))
	assert.Equal(t, []int64{2}, b.IDs())
	assert.False(t, s.IsEmpty())

	s.SetQueriedObjects(nil, now)
	assert.True(t, s.IsEmpty())
}

func TestIntervalScheduler_UndoRestoresLastServed(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewIntervalScheduler(time.Minute, 10)

	s.SetQueriedObjects([]int64{1, 2}, now)
	b := s.PopTriggered(now.Add(time.Hour))
	require.ElementsMatch(t, []int64{1, 2}, b.IDs())

	// After Undo the same batch is due again, as if the pop never
	// happened.
	s.Undo(b)
	b = s.PopTriggered(now.Add(time.Hour))
	assert.ElementsMatch(t, []int64{1, 2}, b.IDs())
}

func TestIntervalScheduler_UndoIgnoresRemovedIDs(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewIntervalScheduler(time.Minute, 10)

	s.SetQueriedObjects([]int64{1, 2}, now)
	b := s.PopTriggered(now.Add(time.Hour))
	require.Len(t, b.IDs(), 2)

	// id 1 leaves the queried set between pop and undo.
	s.SetQueriedObjects([]int64{2}, now.Add(time.Hour))
	s.Undo(b)

	got := s.PopTriggered(now.Add(2 * time.Hour))
	assert.Equal(t, []int64{2}, got.IDs())
}

func TestIntervalScheduler_TieBreaksOnSmallerID(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewIntervalScheduler(time.Minute, 2)

	// Popping both ids together gives them identical last-served times.
	s.SetQueriedObjects([]int64{7, 3}, now)
	s.PopTriggered(now.Add(time.Hour))

	b := s.PopTriggered(now.Add(2 * time.Hour))
	assert.Equal(t, []int64{3, 7}, b.IDs())
}
