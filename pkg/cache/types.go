package cache

import "time"

// Course is one canonical course snapshot as fetched from the LMS.
// Groups is the course-level group set; each participant's Groups is a
// subset of it.
type Course struct {
	ID           int64
	ShortName    string
	FullName     string
	Starts       *time.Time
	Ends         *time.Time
	Groups       []Group
	Participants []Participant
}

// User is a server-global user referenced by participants.
type User struct {
	ID       int64
	FullName string
	Email    *string
}

// Role is a server-global role referenced by participant-role links.
type Role struct {
	ID   int64
	Name string
}

// Group is a course-scoped group.
type Group struct {
	ID   int64
	Name string
}

// Participant is the (course, user) pair with its course-scoped roles
// and groups.
type Participant struct {
	User   User
	Roles  []Role
	Groups []Group
}

// Assignment is one assignment snapshot. Optional timestamps are nil
// when the server does not set them.
type Assignment struct {
	ID       int64
	CourseID int64
	Name     string
	Opening  *time.Time
	Closing  *time.Time
	Cutoff   *time.Time
}

// Submission is one submission snapshot with its files.
type Submission struct {
	ID           int64
	AssignmentID int64
	UserID       int64
	Status       *string
	Updated      time.Time
	Files        []SubmittedFile
}

// SubmittedFile is one file of a submission, identified by
// (submission, filename).
type SubmittedFile struct {
	Filename string
	Size     int64
	MimeType string
	URL      string
	Uploaded time.Time
}

// StoredFile is a cached file row with its surrogate id, as read back
// from the store.
type StoredFile struct {
	FileID       int
	SubmissionID int64
	AssignmentID int64
	UserID       int64
	Filename     string
	Size         int64
	MimeType     string
	URL          string
	Uploaded     time.Time
}
