package monitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodle-tools/simwatch/pkg/cache"
	"github.com/moodle-tools/simwatch/pkg/config"
	"github.com/moodle-tools/simwatch/pkg/moodle"
)

// fakeLMS serves canned courses, users, assignments and submissions and
// records which queries ran.
type fakeLMS struct {
	courses     []moodle.Course
	users       map[int64][]moodle.EnrolledUser
	assignments []moodle.Assignment
	submissions map[int64][]moodle.Submission

	coursesErr error

	assignmentQueries [][]int64
	submissionQueries []submissionQuery
}

type submissionQuery struct {
	ids   []int64
	since time.Time
}

func (f *fakeLMS) CollectEnrolledCourses(context.Context, string) ([]moodle.Course, error) {
	if f.coursesErr != nil {
		return nil, f.coursesErr
	}
	return f.courses, nil
}

func (f *fakeLMS) GetEnrolledUsers(_ context.Context, courseID int64) ([]moodle.EnrolledUser, error) {
	return f.users[courseID], nil
}

func (f *fakeLMS) GetAssignments(_ context.Context, courseIDs []int64) ([]moodle.Assignment, error) {
	f.assignmentQueries = append(f.assignmentQueries, courseIDs)
	var out []moodle.Assignment
	for _, a := range f.assignments {
		for _, id := range courseIDs {
			if a.CourseID == id {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

func (f *fakeLMS) GetSubmissions(_ context.Context, assignmentIDs []int64, since time.Time) ([]moodle.Submission, error) {
	f.submissionQueries = append(f.submissionQueries, submissionQuery{ids: assignmentIDs, since: since})
	var out []moodle.Submission
	for _, id := range assignmentIDs {
		out = append(out, f.submissions[id]...)
	}
	return out, nil
}

// fakeCache records stores and serves the queried id sets.
type fakeCache struct {
	openCourses []int64
	endingSoon  []int64
	notEnding   []int64
	lastTimes   map[int64]*time.Time

	storedCourses     []cache.Course
	storedAssignments []cache.Assignment
	droppedKeeps      []map[int64][]int64
	storedSubmissions []cache.Submission

	storeCoursesErr error
}

func (f *fakeCache) StoreCourses(_ context.Context, courses []cache.Course, _ time.Time) error {
	if f.storeCoursesErr != nil {
		return f.storeCoursesErr
	}
	f.storedCourses = append(f.storedCourses, courses...)
	return nil
}

func (f *fakeCache) StoreAssignments(_ context.Context, assignments []cache.Assignment) error {
	f.storedAssignments = append(f.storedAssignments, assignments...)
	return nil
}

func (f *fakeCache) DropAssignmentsExceptFor(_ context.Context, content map[int64][]int64) error {
	f.droppedKeeps = append(f.droppedKeeps, content)
	return nil
}

func (f *fakeCache) StoreSubmissions(_ context.Context, submissions []cache.Submission) error {
	f.storedSubmissions = append(f.storedSubmissions, submissions...)
	return nil
}

func (f *fakeCache) GetOpenCourseIDs(context.Context, time.Time, bool) ([]int64, error) {
	return f.openCourses, nil
}

func (f *fakeCache) GetActiveAssignmentIDsEndingSoon(context.Context, time.Time, time.Duration, time.Duration) ([]int64, error) {
	return f.endingSoon, nil
}

func (f *fakeCache) GetActiveAssignmentIDsNotEndingSoon(context.Context, time.Time, time.Duration, time.Duration) ([]int64, error) {
	return f.notEnding, nil
}

func (f *fakeCache) GetLastSubmissionTimes(_ context.Context, ids []int64) (map[int64]*time.Time, error) {
	out := make(map[int64]*time.Time, len(ids))
	for _, id := range ids {
		out[id] = f.lastTimes[id]
	}
	return out, nil
}

func testSchedulerConfig() config.SchedulerConfig {
	return config.SchedulerConfig{
		WakeupInterval:       time.Minute,
		CoursesInterval:      time.Hour,
		AssignmentsInterval:  15 * time.Minute,
		AssignmentsBatchSize: 10,
		ActiveInterval:       time.Hour,
		ActiveBatchSize:      10,
		DeadlineInterval:     2 * time.Minute,
		DeadlineBatchSize:    10,
		DeadlineWindowBefore: time.Hour,
		DeadlineWindowAfter:  30 * time.Minute,
	}
}

func TestRunPassRefreshesCourses(t *testing.T) {
	email := "ada@example.org"
	lms := &fakeLMS{
		courses: []moodle.Course{{ID: 1, ShortName: "c1", FullName: "Course 1"}},
		users: map[int64][]moodle.EnrolledUser{
			1: {{
				ID: 7, FullName: "Ada", Email: &email,
				Roles:  []moodle.Role{{ID: 5, Name: "student"}},
				Groups: []moodle.Group{{ID: 9, Name: "team-a"}},
			}},
		},
	}
	store := &fakeCache{}
	m := New(testSchedulerConfig(), lms, store)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.RunPass(context.Background(), now)

	require.Len(t, store.storedCourses, 1)
	c := store.storedCourses[0]
	assert.Equal(t, int64(1), c.ID)
	require.Len(t, c.Participants, 1)
	assert.Equal(t, "Ada", c.Participants[0].User.FullName)
	assert.Equal(t, []cache.Role{{ID: 5, Name: "student"}}, c.Participants[0].Roles)
	// Course groups are the union of participant groups.
	assert.Equal(t, []cache.Group{{ID: 9, Name: "team-a"}}, c.Groups)

	// The courses tier fired; within the same hour it must not again.
	m.RunPass(context.Background(), now.Add(time.Minute))
	assert.Len(t, store.storedCourses, 1)

	m.RunPass(context.Background(), now.Add(time.Hour))
	assert.Len(t, store.storedCourses, 2)
}

func TestRunPassFailedTierRetriesNextPass(t *testing.T) {
	lms := &fakeLMS{courses: []moodle.Course{{ID: 1}}}
	store := &fakeCache{storeCoursesErr: errors.New("db down")}
	m := New(testSchedulerConfig(), lms, store)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.RunPass(context.Background(), now)
	assert.Empty(t, store.storedCourses)

	// The failure rolled the scheduler back, so the very next pass
	// retries instead of waiting out the interval.
	store.storeCoursesErr = nil
	m.RunPass(context.Background(), now.Add(time.Minute))
	assert.Len(t, store.storedCourses, 1)
}

func TestRunPassRefreshesAssignmentsOfOpenCourses(t *testing.T) {
	lms := &fakeLMS{
		assignments: []moodle.Assignment{
			{ID: 100, CourseID: 1, Name: "hw1"},
			{ID: 101, CourseID: 1, Name: "hw2"},
		},
	}
	store := &fakeCache{openCourses: []int64{1, 2}}
	m := New(testSchedulerConfig(), lms, store)

	// A freshly discovered course set fires spread across the interval:
	// course 1 on the first pass, course 2 roughly half an interval later.
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.RunPass(context.Background(), now)

	require.Len(t, lms.assignmentQueries, 1)
	assert.Equal(t, []int64{1}, lms.assignmentQueries[0])
	assert.Len(t, store.storedAssignments, 2)

	require.Len(t, store.droppedKeeps, 1)
	keep := store.droppedKeeps[0]
	assert.ElementsMatch(t, []int64{100, 101}, keep[1])
	assert.NotContains(t, keep, int64(2), "untouched courses never lose assignments")

	m.RunPass(context.Background(), now.Add(8*time.Minute))
	require.Len(t, lms.assignmentQueries, 2)
	assert.Equal(t, []int64{2}, lms.assignmentQueries[1])

	// Course 2 reported nothing, so its keep list is empty and its
	// stale assignments get dropped.
	require.Len(t, store.droppedKeeps, 2)
	keep = store.droppedKeeps[1]
	require.Contains(t, keep, int64(2))
	assert.Empty(t, keep[2])
}

func TestRunPassFetchesSubmissionsIncrementally(t *testing.T) {
	last := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	lms := &fakeLMS{
		submissions: map[int64][]moodle.Submission{
			200: {{ID: 900, AssignmentID: 200, UserID: 7, Updated: last.Add(time.Hour)}},
		},
	}
	store := &fakeCache{
		endingSoon: []int64{200},
		lastTimes:  map[int64]*time.Time{200: &last},
	}
	m := New(testSchedulerConfig(), lms, store)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.RunPass(context.Background(), now)

	require.Len(t, lms.submissionQueries, 1)
	q := lms.submissionQueries[0]
	assert.Equal(t, []int64{200}, q.ids)
	// One second past the newest cached row, so the cached row itself
	// is not fetched again.
	assert.Equal(t, last.Add(time.Second), q.since)

	require.Len(t, store.storedSubmissions, 1)
	assert.Equal(t, int64(900), store.storedSubmissions[0].ID)
}

func TestRunPassFirstSubmissionFetchIsFull(t *testing.T) {
	lms := &fakeLMS{}
	store := &fakeCache{notEnding: []int64{300}}
	m := New(testSchedulerConfig(), lms, store)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.RunPass(context.Background(), now)

	require.Len(t, lms.submissionQueries, 1)
	assert.True(t, lms.submissionQueries[0].since.IsZero())
}

func TestRunPassFailedQueriedSetKeepsPreviousOne(t *testing.T) {
	lms := &fakeLMS{courses: []moodle.Course{{ID: 1}}}
	store := &fakeCache{}
	m := New(testSchedulerConfig(), lms, store)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.RunPass(context.Background(), now)
	require.Len(t, store.storedCourses, 1)

	// A failing enrolled-courses fetch must not clear the tier.
	lms.coursesErr = errors.New("lms down")
	m.RunPass(context.Background(), now.Add(time.Hour))
	assert.False(t, m.courses.IsEmpty())
}
