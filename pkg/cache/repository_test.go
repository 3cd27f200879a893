package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodle-tools/simwatch/ent/participant"
	"github.com/moodle-tools/simwatch/ent/user"
	testdb "github.com/moodle-tools/simwatch/test/database"
)

func ptr[T any](v T) *T { return &v }

func sampleCourse() Course {
	starts := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	ends := time.Date(2026, 6, 30, 23, 0, 0, 0, time.UTC)
	return Course{
		ID:        1,
		ShortName: "prog1",
		FullName:  "Programming 1",
		Starts:    &starts,
		Ends:      &ends,
		Groups:    []Group{{ID: 10, Name: "team-a"}},
		Participants: []Participant{
			{
				User:   User{ID: 7, FullName: "Ada", Email: ptr("ada@example.org")},
				Roles:  []Role{{ID: 5, Name: "student"}},
				Groups: []Group{{ID: 10, Name: "team-a"}},
			},
			{
				User:   User{ID: 8, FullName: "Bob"},
				Roles:  []Role{{ID: 5, Name: "student"}, {ID: 3, Name: "grader"}},
				Groups: []Group{{ID: 11, Name: "team-b"}},
			},
		},
	}
}

func TestRepository_StoreCourses(t *testing.T) {
	client := testdb.NewTestClient(t)
	repo := NewRepository(client)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("round-trips a full snapshot", func(t *testing.T) {
		require.NoError(t, repo.StoreCourses(ctx, []Course{sampleCourse()}, now))

		courses, err := repo.LoadCourses(ctx, []int64{1})
		require.NoError(t, err)
		require.Len(t, courses, 1)

		c := courses[0]
		assert.Equal(t, int64(1), c.ID)
		assert.Equal(t, "prog1", c.ShortName)
		assert.Equal(t, "Programming 1", c.FullName)
		require.NotNil(t, c.Starts)
		assert.WithinDuration(t, time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC), *c.Starts, time.Second)
		require.NotNil(t, c.Ends)

		// The course group set is the stored set plus every group a
		// participant belongs to.
		assert.ElementsMatch(t, []Group{{ID: 10, Name: "team-a"}, {ID: 11, Name: "team-b"}}, c.Groups)

		require.Len(t, c.Participants, 2)
		ada, bob := c.Participants[0], c.Participants[1]
		assert.Equal(t, "Ada", ada.User.FullName)
		require.NotNil(t, ada.User.Email)
		assert.Equal(t, "ada@example.org", *ada.User.Email)
		assert.Equal(t, []Role{{ID: 5, Name: "student"}}, ada.Roles)
		assert.Equal(t, []Group{{ID: 10, Name: "team-a"}}, ada.Groups)

		assert.Equal(t, "Bob", bob.User.FullName)
		assert.Nil(t, bob.User.Email)
		assert.ElementsMatch(t, []Role{{ID: 5, Name: "student"}, {ID: 3, Name: "grader"}}, bob.Roles)
	})

	t.Run("storing again is idempotent", func(t *testing.T) {
		require.NoError(t, repo.StoreCourses(ctx, []Course{sampleCourse()}, now.Add(time.Hour)))

		courses, err := repo.LoadCourses(ctx, []int64{1})
		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Len(t, courses[0].Participants, 2)
		assert.Len(t, courses[0].Groups, 2)
	})

	t.Run("refresh replaces membership but keeps users", func(t *testing.T) {
		shrunk := sampleCourse()
		shrunk.Groups = nil
		shrunk.Participants = shrunk.Participants[:1] // Ada only
		shrunk.Participants[0].Groups = nil
		require.NoError(t, repo.StoreCourses(ctx, []Course{shrunk}, now.Add(2*time.Hour)))

		courses, err := repo.LoadCourses(ctx, []int64{1})
		require.NoError(t, err)
		require.Len(t, courses, 1)
		require.Len(t, courses[0].Participants, 1)
		assert.Equal(t, "Ada", courses[0].Participants[0].User.FullName)
		assert.Empty(t, courses[0].Groups, "unreported groups are dropped")

		// Bob left the course but stays a known user; retention is not
		// this repository's call.
		exists, err := client.User.Query().Where(user.IDEQ(8)).Exist(ctx)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("refresh never touches other courses", func(t *testing.T) {
		other := Course{
			ID: 2, ShortName: "prog2", FullName: "Programming 2",
			Participants: []Participant{{User: User{ID: 8, FullName: "Bob"}}},
		}
		require.NoError(t, repo.StoreCourses(ctx, []Course{other}, now))

		// Refreshing course 1 alone must not drop Bob from course 2.
		require.NoError(t, repo.StoreCourses(ctx, []Course{sampleCourse()}, now))

		count, err := client.Participant.Query().Where(participant.CourseIDEQ(2)).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestRepository_StoreAssignments(t *testing.T) {
	client := testdb.NewTestClient(t)
	repo := NewRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.StoreCourses(ctx, []Course{
		{ID: 1, ShortName: "prog1", FullName: "Programming 1"},
	}, time.Now()))

	closing := time.Date(2026, 4, 1, 23, 59, 0, 0, time.UTC)
	assignments := []Assignment{
		{ID: 100, CourseID: 1, Name: "hw1", Closing: &closing},
		{ID: 101, CourseID: 1, Name: "hw2"},
	}
	require.NoError(t, repo.StoreAssignments(ctx, assignments))
	require.NoError(t, repo.StoreAssignments(ctx, assignments), "same snapshot twice")

	count, err := client.Assignment.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// A changed snapshot updates in place.
	assignments[0].Name = "hw1 (extended)"
	require.NoError(t, repo.StoreAssignments(ctx, assignments))

	row, err := client.Assignment.Get(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, "hw1 (extended)", row.Name)
	require.NotNil(t, row.Closing)
	assert.WithinDuration(t, closing, *row.Closing, time.Second)
}

func TestRepository_DropAssignmentsExceptFor(t *testing.T) {
	client := testdb.NewTestClient(t)
	repo := NewRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.StoreCourses(ctx, []Course{
		{ID: 1, ShortName: "c1", FullName: "Course 1"},
		{ID: 2, ShortName: "c2", FullName: "Course 2"},
	}, time.Now()))
	require.NoError(t, repo.StoreAssignments(ctx, []Assignment{
		{ID: 100, CourseID: 1, Name: "hw1"},
		{ID: 101, CourseID: 1, Name: "hw2"},
		{ID: 200, CourseID: 2, Name: "hw1"},
	}))

	// Course 2 is absent from the map, so it keeps its assignments.
	require.NoError(t, repo.DropAssignmentsExceptFor(ctx, map[int64][]int64{1: {100}}))

	ids, err := client.Assignment.Query().IDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{100, 200}, ids)

	// An empty keep list wipes the course.
	require.NoError(t, repo.DropAssignmentsExceptFor(ctx, map[int64][]int64{2: nil}))

	ids, err = client.Assignment.Query().IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{100}, ids)
}

func TestRepository_StoreSubmissions(t *testing.T) {
	client := testdb.NewTestClient(t)
	repo := NewRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.StoreCourses(ctx, []Course{{
		ID: 1, ShortName: "c1", FullName: "Course 1",
		Participants: []Participant{{User: User{ID: 7, FullName: "Ada"}}},
	}}, time.Now()))
	require.NoError(t, repo.StoreAssignments(ctx, []Assignment{{ID: 100, CourseID: 1, Name: "hw1"}}))

	uploaded := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	sub := Submission{
		ID: 900, AssignmentID: 100, UserID: 7,
		Status:  ptr("submitted"),
		Updated: uploaded,
		Files: []SubmittedFile{
			{Filename: "notes.txt", Size: 12, MimeType: "text/plain", URL: "https://lms/f/2", Uploaded: uploaded},
			{Filename: "essay.txt", Size: 40, MimeType: "text/plain", URL: "https://lms/f/1", Uploaded: uploaded},
		},
	}
	require.NoError(t, repo.StoreSubmissions(ctx, []Submission{sub}))

	t.Run("files come back ordered by filename", func(t *testing.T) {
		files, err := repo.GetSubmissionFiles(ctx, 900)
		require.NoError(t, err)
		require.Len(t, files, 2)
		assert.Equal(t, "essay.txt", files[0].Filename)
		assert.Equal(t, "notes.txt", files[1].Filename)
		assert.Equal(t, int64(900), files[0].SubmissionID)
		assert.Equal(t, int64(100), files[0].AssignmentID)
		assert.Equal(t, int64(7), files[0].UserID)
		assert.NotZero(t, files[0].FileID)
	})

	t.Run("re-store updates files in place", func(t *testing.T) {
		sub.Files[1].URL = "https://lms/f/1-v2"
		sub.Updated = uploaded.Add(time.Hour)
		require.NoError(t, repo.StoreSubmissions(ctx, []Submission{sub}))

		files, err := repo.GetSubmissionFiles(ctx, 900)
		require.NoError(t, err)
		require.Len(t, files, 2, "upsert by (submission, filename), no duplicates")
		assert.Equal(t, "https://lms/f/1-v2", files[0].URL)

		row, err := client.Submission.Get(ctx, 900)
		require.NoError(t, err)
		assert.WithinDuration(t, uploaded.Add(time.Hour), row.Updated, time.Second)
	})

	t.Run("unknown submission has no files", func(t *testing.T) {
		files, err := repo.GetSubmissionFiles(ctx, 999)
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}

func TestRepository_GetOpenCourseIDs(t *testing.T) {
	client := testdb.NewTestClient(t)
	repo := NewRepository(client)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	past := now.Add(-30 * 24 * time.Hour)
	future := now.Add(30 * 24 * time.Hour)
	require.NoError(t, repo.StoreCourses(ctx, []Course{
		{ID: 1, ShortName: "nodates", FullName: "No Dates"},
		{ID: 2, ShortName: "open", FullName: "Open", Starts: &past, Ends: &future},
		{ID: 3, ShortName: "ended", FullName: "Ended", Starts: &past, Ends: &past},
		{ID: 4, ShortName: "upcoming", FullName: "Upcoming", Starts: &future, Ends: &future},
	}, now))

	ids, err := repo.GetOpenCourseIDs(ctx, now, false)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids, "missing bounds count as open")

	ids, err = repo.GetOpenCourseIDs(ctx, now, true)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids, "with dates only, both bounds are required")
}

func TestRepository_AssignmentDeadlineWindows(t *testing.T) {
	client := testdb.NewTestClient(t)
	repo := NewRepository(client)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	before, after := time.Hour, 30*time.Minute

	past := now.Add(-30 * 24 * time.Hour)
	future := now.Add(30 * 24 * time.Hour)
	require.NoError(t, repo.StoreCourses(ctx, []Course{
		{ID: 1, ShortName: "open", FullName: "Open", Starts: &past, Ends: &future},
		{ID: 2, ShortName: "ended", FullName: "Ended", Starts: &past, Ends: &past},
	}, now))

	require.NoError(t, repo.StoreAssignments(ctx, []Assignment{
		// Both window boundaries are inclusive.
		{ID: 1, CourseID: 1, Name: "at lower bound", Closing: ptr(now.Add(-before))},
		{ID: 2, CourseID: 1, Name: "at upper bound", Closing: ptr(now.Add(after))},
		{ID: 3, CourseID: 1, Name: "just past", Closing: ptr(now.Add(-before - time.Second))},
		// A cutoff qualifies even without a due date.
		{ID: 4, CourseID: 1, Name: "cutoff only", Cutoff: ptr(now)},
		{ID: 5, CourseID: 1, Name: "no deadline"},
		// Not yet open, so it is in neither tier.
		{ID: 6, CourseID: 1, Name: "not opened", Opening: ptr(now.Add(time.Hour)), Closing: ptr(now)},
		// Closed course, in neither tier.
		{ID: 7, CourseID: 2, Name: "course over", Closing: ptr(now)},
	}))

	endingSoon, err := repo.GetActiveAssignmentIDsEndingSoon(ctx, now, before, after)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 4}, endingSoon)

	rest, err := repo.GetActiveAssignmentIDsNotEndingSoon(ctx, now, before, after)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 5}, rest)
}

func TestRepository_GetLastSubmissionTimes(t *testing.T) {
	client := testdb.NewTestClient(t)
	repo := NewRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.StoreCourses(ctx, []Course{{
		ID: 1, ShortName: "c1", FullName: "Course 1",
		Participants: []Participant{
			{User: User{ID: 7, FullName: "Ada"}},
			{User: User{ID: 8, FullName: "Bob"}},
		},
	}}, time.Now()))
	require.NoError(t, repo.StoreAssignments(ctx, []Assignment{
		{ID: 100, CourseID: 1, Name: "hw1"},
		{ID: 101, CourseID: 1, Name: "hw2"},
	}))

	early := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	late := time.Date(2026, 3, 11, 18, 30, 0, 0, time.UTC)
	require.NoError(t, repo.StoreSubmissions(ctx, []Submission{
		{ID: 900, AssignmentID: 100, UserID: 7, Updated: early},
		{ID: 901, AssignmentID: 100, UserID: 8, Updated: late},
	}))

	times, err := repo.GetLastSubmissionTimes(ctx, []int64{100, 101})
	require.NoError(t, err)
	require.Len(t, times, 2)

	require.NotNil(t, times[100])
	assert.WithinDuration(t, late, *times[100], time.Second)
	assert.Nil(t, times[101], "assignments without cached submissions map to nil")

	times, err = repo.GetLastSubmissionTimes(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, times)
}
