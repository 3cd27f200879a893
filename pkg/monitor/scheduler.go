package monitor

import (
	"sort"
	"time"
)

// IntervalScheduler tracks a finite set of queried objects and the time
// each was last served, firing each id once per interval. Instances are
// not safe for concurrent use; the monitor owns one per cache tier and
// drives them from a single loop.
type IntervalScheduler struct {
	interval  time.Duration
	batchSize int
	entries   map[int64]time.Time
}

// NewIntervalScheduler creates a scheduler with the given cadence and
// per-pop batch size.
func NewIntervalScheduler(interval time.Duration, batchSize int) *IntervalScheduler {
	return &IntervalScheduler{
		interval:  interval,
		batchSize: batchSize,
		entries:   make(map[int64]time.Time),
	}
}

// SetQueriedObjects replaces the tracked set. Retained ids keep their
// last-served time; removed ids are dropped. Newly added ids get
// first-fire times spread across the interval, the first one due
// immediately, so a refilled set does not fire all at once.
func (s *IntervalScheduler) SetQueriedObjects(ids []int64, now time.Time) {
	next := make(map[int64]time.Time, len(ids))
	var added []int64
	for _, id := range ids {
		if last, ok := s.entries[id]; ok {
			next[id] = last
		} else {
			added = append(added, id)
		}
	}
	for i, id := range added {
		offset := 1 - float64(i)/float64(len(added))
		next[id] = now.Add(-time.Duration(offset * float64(s.interval)))
	}
	s.entries = next
}

// Batch is one PopTriggered result. Undo restores the pre-pop
// last-served times, so a failed refresh retries on the next pass.
type Batch struct {
	ids      []int64
	previous map[int64]time.Time
}

// IDs returns the triggered ids, oldest first.
func (b Batch) IDs() []int64 {
	return b.ids
}

// PopTriggered returns up to batchSize ids whose interval has elapsed,
// oldest first, and marks them served at now.
func (s *IntervalScheduler) PopTriggered(now time.Time) Batch {
	var due []int64
	for id, last := range s.entries {
		if now.Sub(last) >= s.interval {
			due = append(due, id)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		li, lj := s.entries[due[i]], s.entries[due[j]]
		if li.Equal(lj) {
			return due[i] < due[j]
		}
		return li.Before(lj)
	})
	if len(due) > s.batchSize {
		due = due[:s.batchSize]
	}

	b := Batch{ids: due, previous: make(map[int64]time.Time, len(due))}
	for _, id := range due {
		b.previous[id] = s.entries[id]
		s.entries[id] = now
	}
	return b
}

// Undo restores the last-served times of a popped batch for ids still
// tracked.
func (s *IntervalScheduler) Undo(b Batch) {
	for id, last := range b.previous {
		if _, ok := s.entries[id]; ok {
			s.entries[id] = last
		}
	}
}

// IsEmpty reports whether the scheduler has nothing to track.
func (s *IntervalScheduler) IsEmpty() bool {
	return len(s.entries) == 0
}
