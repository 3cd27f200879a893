// Package monitor is the monitoring scheduler: three cache tiers
// (courses, assignments, submissions) refreshed from the LMS on
// independent cadences, with the submissions tier split into a
// near-deadline class and an active class. A single loop drives all
// four interval schedulers; every outward step is guarded so one
// failing tier never stalls the others.
package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/moodle-tools/simwatch/pkg/cache"
	"github.com/moodle-tools/simwatch/pkg/config"
	"github.com/moodle-tools/simwatch/pkg/metrics"
	"github.com/moodle-tools/simwatch/pkg/moodle"
)

// courseSentinelID seeds the courses scheduler: there is a single
// enrolled-courses endpoint, so the tier tracks one synthetic object.
const courseSentinelID = int64(0)

// Client is the slice of the LMS client the monitor uses.
type Client interface {
	CollectEnrolledCourses(ctx context.Context, classification string) ([]moodle.Course, error)
	GetEnrolledUsers(ctx context.Context, courseID int64) ([]moodle.EnrolledUser, error)
	GetAssignments(ctx context.Context, courseIDs []int64) ([]moodle.Assignment, error)
	GetSubmissions(ctx context.Context, assignmentIDs []int64, since time.Time) ([]moodle.Submission, error)
}

// Store is the slice of the cache repository the monitor uses.
type Store interface {
	StoreCourses(ctx context.Context, courses []cache.Course, now time.Time) error
	StoreAssignments(ctx context.Context, assignments []cache.Assignment) error
	DropAssignmentsExceptFor(ctx context.Context, content map[int64][]int64) error
	StoreSubmissions(ctx context.Context, submissions []cache.Submission) error
	GetOpenCourseIDs(ctx context.Context, now time.Time, withDatesOnly bool) ([]int64, error)
	GetActiveAssignmentIDsEndingSoon(ctx context.Context, now time.Time, before, after time.Duration) ([]int64, error)
	GetActiveAssignmentIDsNotEndingSoon(ctx context.Context, now time.Time, before, after time.Duration) ([]int64, error)
	GetLastSubmissionTimes(ctx context.Context, assignmentIDs []int64) (map[int64]*time.Time, error)
}

// Monitor drives the periodic cache refreshes.
type Monitor struct {
	cfg    config.SchedulerConfig
	client Client
	store  Store

	courses     *IntervalScheduler
	assignments *IntervalScheduler
	deadline    *IntervalScheduler
	active      *IntervalScheduler

	wakeup chan struct{}
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// New creates a monitor with one scheduler per tier.
func New(cfg config.SchedulerConfig, client Client, store Store) *Monitor {
	return &Monitor{
		cfg:         cfg,
		client:      client,
		store:       store,
		courses:     NewIntervalScheduler(cfg.CoursesInterval, 1),
		assignments: NewIntervalScheduler(cfg.AssignmentsInterval, cfg.AssignmentsBatchSize),
		deadline:    NewIntervalScheduler(cfg.DeadlineInterval, cfg.DeadlineBatchSize),
		active:      NewIntervalScheduler(cfg.ActiveInterval, cfg.ActiveBatchSize),
		wakeup:      make(chan struct{}, 1),
	}
}

// Wakeup re-enters the scheduler loop before the wakeup interval
// elapses. Safe to call from any goroutine; extra signals coalesce.
func (m *Monitor) Wakeup() {
	select {
	case m.wakeup <- struct{}{}:
	default:
	}
}

// Start launches the scheduler loop as a background task.
func (m *Monitor) Start(ctx context.Context) error {
	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	m.cancel = cancel
	m.done = make(chan struct{})
	go m.loop(loopCtx)
	slog.Info("Monitoring scheduler started", "wakeup_interval", m.cfg.WakeupInterval)
	return nil
}

// Stop cancels the loop and waits for the current pass to wind down.
func (m *Monitor) Stop(ctx context.Context) error {
	m.once.Do(func() {
		if m.cancel != nil {
			m.cancel()
		}
	})
	if m.done == nil {
		return nil
	}
	select {
	case <-m.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for monitor shutdown: %w", ctx.Err())
	}
}

func (m *Monitor) loop(ctx context.Context) {
	defer close(m.done)
	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("Monitoring scheduler stopped")
			return
		case <-timer.C:
		case <-m.wakeup:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		}
		m.RunPass(ctx, time.Now().UTC())
		timer.Reset(m.cfg.WakeupInterval)
	}
}

// RunPass runs one scheduler pass: courses, then assignments, then
// deadline submissions, then active submissions. The order matters
// inside a pass so a freshly discovered course can have its assignments
// fetched in the same pass. Every step is guarded; a failing tier logs
// at ERROR, its scheduler state is rolled back and the pass continues.
func (m *Monitor) RunPass(ctx context.Context, now time.Time) {
	m.refreshTier("courses", m.courses, func() ([]int64, error) {
		return []int64{courseSentinelID}, nil
	}, func(ids []int64) error {
		return m.refreshCourses(ctx, now)
	}, now)

	m.refreshTier("assignments", m.assignments, func() ([]int64, error) {
		return m.store.GetOpenCourseIDs(ctx, now, false)
	}, func(ids []int64) error {
		return m.refreshAssignments(ctx, ids)
	}, now)

	m.refreshTier("submissions_deadline", m.deadline, func() ([]int64, error) {
		return m.store.GetActiveAssignmentIDsEndingSoon(ctx, now, m.cfg.DeadlineWindowBefore, m.cfg.DeadlineWindowAfter)
	}, func(ids []int64) error {
		return m.refreshSubmissions(ctx, ids)
	}, now)

	m.refreshTier("submissions_active", m.active, func() ([]int64, error) {
		return m.store.GetActiveAssignmentIDsNotEndingSoon(ctx, now, m.cfg.DeadlineWindowBefore, m.cfg.DeadlineWindowAfter)
	}, func(ids []int64) error {
		return m.refreshSubmissions(ctx, ids)
	}, now)
}

// refreshTier updates one scheduler's queried set, pops the triggered
// batch and runs the refresh. A failed queried-set lookup keeps the
// previous set; a failed refresh rolls the batch back so it retries
// next pass.
func (m *Monitor) refreshTier(tier string, s *IntervalScheduler, queried func() ([]int64, error), refresh func(ids []int64) error, now time.Time) {
	if ids, err := queried(); err != nil {
		slog.Error("Failed to load queried set, keeping previous one", "tier", tier, "error", err)
	} else {
		s.SetQueriedObjects(ids, now)
	}

	batch := s.PopTriggered(now)
	if len(batch.IDs()) == 0 {
		return
	}
	if err := refresh(batch.IDs()); err != nil {
		s.Undo(batch)
		metrics.TierErrors.WithLabelValues(tier).Inc()
		slog.Error("Tier refresh failed", "tier", tier, "ids", batch.IDs(), "error", err)
		return
	}
	metrics.TierRefreshes.WithLabelValues(tier).Inc()
	slog.Debug("Tier refreshed", "tier", tier, "count", len(batch.IDs()))
}

// refreshCourses replaces the course cache from the LMS: the enrolled
// courses plus, per course, the participants with their roles and
// groups.
func (m *Monitor) refreshCourses(ctx context.Context, now time.Time) error {
	remote, err := m.client.CollectEnrolledCourses(ctx, "all")
	if err != nil {
		return fmt.Errorf("fetching enrolled courses: %w", err)
	}

	courses := make([]cache.Course, 0, len(remote))
	for _, rc := range remote {
		users, err := m.client.GetEnrolledUsers(ctx, rc.ID)
		if err != nil {
			return fmt.Errorf("fetching participants of course %d: %w", rc.ID, err)
		}
		courses = append(courses, buildCourse(rc, users))
	}

	if err := m.store.StoreCourses(ctx, courses, now); err != nil {
		return fmt.Errorf("storing courses: %w", err)
	}
	slog.Info("Courses refreshed", "count", len(courses))
	return nil
}

func buildCourse(rc moodle.Course, users []moodle.EnrolledUser) cache.Course {
	c := cache.Course{
		ID:        rc.ID,
		ShortName: rc.ShortName,
		FullName:  rc.FullName,
		Starts:    rc.Starts,
		Ends:      rc.Ends,
	}
	seenGroups := make(map[int64]bool)
	for _, u := range users {
		p := cache.Participant{
			User: cache.User{ID: u.ID, FullName: u.FullName, Email: u.Email},
		}
		for _, r := range u.Roles {
			p.Roles = append(p.Roles, cache.Role{ID: r.ID, Name: r.Name})
		}
		for _, g := range u.Groups {
			p.Groups = append(p.Groups, cache.Group{ID: g.ID, Name: g.Name})
			if !seenGroups[g.ID] {
				seenGroups[g.ID] = true
				c.Groups = append(c.Groups, cache.Group{ID: g.ID, Name: g.Name})
			}
		}
		c.Participants = append(c.Participants, p)
	}
	return c
}

// refreshAssignments fetches and upserts the assignments of the popped
// courses, then drops assignments of exactly those courses that the
// LMS no longer reports.
func (m *Monitor) refreshAssignments(ctx context.Context, courseIDs []int64) error {
	remote, err := m.client.GetAssignments(ctx, courseIDs)
	if err != nil {
		return fmt.Errorf("fetching assignments: %w", err)
	}

	assignments := make([]cache.Assignment, 0, len(remote))
	keep := make(map[int64][]int64, len(courseIDs))
	for _, id := range courseIDs {
		keep[id] = nil
	}
	for _, ra := range remote {
		assignments = append(assignments, cache.Assignment{
			ID:       ra.ID,
			CourseID: ra.CourseID,
			Name:     ra.Name,
			Opening:  ra.Opening,
			Closing:  ra.Closing,
			Cutoff:   ra.Cutoff,
		})
		keep[ra.CourseID] = append(keep[ra.CourseID], ra.ID)
	}

	if err := m.store.StoreAssignments(ctx, assignments); err != nil {
		return fmt.Errorf("storing assignments: %w", err)
	}
	if err := m.store.DropAssignmentsExceptFor(ctx, keep); err != nil {
		return fmt.Errorf("dropping stale assignments: %w", err)
	}
	return nil
}

// refreshSubmissions fetches submissions changed since each popped
// assignment's latest cached update, plus one second to skip the row
// already cached.
func (m *Monitor) refreshSubmissions(ctx context.Context, assignmentIDs []int64) error {
	lastTimes, err := m.store.GetLastSubmissionTimes(ctx, assignmentIDs)
	if err != nil {
		return fmt.Errorf("loading last submission times: %w", err)
	}

	for _, id := range assignmentIDs {
		var since time.Time
		if last := lastTimes[id]; last != nil {
			since = last.Add(time.Second)
		}
		remote, err := m.client.GetSubmissions(ctx, []int64{id}, since)
		if err != nil {
			return fmt.Errorf("fetching submissions of assignment %d: %w", id, err)
		}

		submissions := make([]cache.Submission, 0, len(remote))
		for _, rs := range remote {
			s := cache.Submission{
				ID:           rs.ID,
				AssignmentID: rs.AssignmentID,
				UserID:       rs.UserID,
				Status:       rs.Status,
				Updated:      rs.Updated,
			}
			for _, f := range rs.Files {
				s.Files = append(s.Files, cache.SubmittedFile{
					Filename: f.Filename,
					Size:     f.Size,
					MimeType: f.MimeType,
					URL:      f.URL,
					Uploaded: f.Uploaded,
				})
			}
			submissions = append(submissions, s)
		}

		if err := m.store.StoreSubmissions(ctx, submissions); err != nil {
			return fmt.Errorf("storing submissions of assignment %d: %w", id, err)
		}
	}
	return nil
}
