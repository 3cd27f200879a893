package moodle

import "time"

// SiteInfo describes the remote site and the token's owner.
type SiteInfo struct {
	SiteName string
	Username string
	UserID   int64
	Release  string
}

// Course is an enrolled course as reported by the timeline endpoint.
// Zero server timestamps are normalized to nil.
type Course struct {
	ID        int64
	ShortName string
	FullName  string
	Starts    *time.Time
	Ends      *time.Time
}

// Role is a course-scoped role of an enrolled user.
type Role struct {
	ID   int64
	Name string
}

// Group is a course group of an enrolled user.
type Group struct {
	ID   int64
	Name string
}

// EnrolledUser is a participant of one course together with their
// roles and groups in that course.
type EnrolledUser struct {
	ID       int64
	FullName string
	Email    *string
	Roles    []Role
	Groups   []Group
}

// Assignment is one assignment of a course. Optional timestamps are nil
// when the server reports 0.
type Assignment struct {
	ID       int64
	CourseID int64
	Name     string
	Opening  *time.Time
	Closing  *time.Time
	Cutoff   *time.Time
}

// SubmittedFile is one file of a submission, already normalized from
// the server's nested plugin/filearea arrays. The raw plugin JSON never
// leaves this package.
type SubmittedFile struct {
	Filename string
	Size     int64
	MimeType string
	URL      string
	Uploaded time.Time
}

// Submission is one submission of an assignment, with its files.
type Submission struct {
	ID           int64
	AssignmentID int64
	UserID       int64
	Status       *string
	Updated      time.Time
	Files        []SubmittedFile
}

// SubmissionStatus is the per-user submission state of one assignment.
type SubmissionStatus struct {
	AssignmentID int64
	UserID       int64
	Status       string
	GradingState string
}

// Message is one message from the user's inbox.
type Message struct {
	ID      int64
	FromID  int64
	Subject string
	Text    string
	Created time.Time
	Read    bool
}

// --- wire types (server JSON shapes) ---

type wireException struct {
	Exception string `json:"exception"`
	Errorcode string `json:"errorcode"`
	Message   string `json:"message"`
}

type wireSiteInfo struct {
	SiteName string `json:"sitename"`
	Username string `json:"username"`
	UserID   int64  `json:"userid"`
	Release  string `json:"release"`
}

type wireCourse struct {
	ID        int64  `json:"id"`
	ShortName string `json:"shortname"`
	FullName  string `json:"fullname"`
	StartDate int64  `json:"startdate"`
	EndDate   int64  `json:"enddate"`
}

type wireCoursesPage struct {
	Courses    []wireCourse `json:"courses"`
	NextOffset int          `json:"nextoffset"`
}

type wireEnrolledUser struct {
	ID       int64   `json:"id"`
	FullName string  `json:"fullname"`
	Email    *string `json:"email"`
	Roles    []struct {
		RoleID int64  `json:"roleid"`
		Name   string `json:"name"`
	} `json:"roles"`
	Groups []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"groups"`
}

type wireAssignmentsResponse struct {
	Courses []struct {
		ID          int64 `json:"id"`
		Assignments []struct {
			ID                       int64  `json:"id"`
			Course                   int64  `json:"course"`
			Name                     string `json:"name"`
			AllowSubmissionsFromDate int64  `json:"allowsubmissionsfromdate"`
			DueDate                  int64  `json:"duedate"`
			CutoffDate               int64  `json:"cutoffdate"`
		} `json:"assignments"`
	} `json:"courses"`
}

type wireFile struct {
	Filename     string `json:"filename"`
	Filesize     int64  `json:"filesize"`
	FileURL      string `json:"fileurl"`
	MimeType     string `json:"mimetype"`
	TimeModified int64  `json:"timemodified"`
}

type wirePlugin struct {
	Type      string `json:"type"`
	FileAreas []struct {
		Area  string     `json:"area"`
		Files []wireFile `json:"files"`
	} `json:"fileareas"`
}

type wireSubmission struct {
	ID           int64        `json:"id"`
	UserID       int64        `json:"userid"`
	Status       string       `json:"status"`
	TimeModified int64        `json:"timemodified"`
	Plugins      []wirePlugin `json:"plugins"`
}

type wireSubmissionsResponse struct {
	Assignments []struct {
		AssignmentID int64            `json:"assignmentid"`
		Submissions  []wireSubmission `json:"submissions"`
	} `json:"assignments"`
}

type wireSubmissionStatus struct {
	LastAttempt struct {
		Submission   wireSubmission `json:"submission"`
		GradingState string         `json:"gradingstatus"`
	} `json:"lastattempt"`
}

type wireMessage struct {
	ID          int64  `json:"id"`
	UserFromID  int64  `json:"useridfrom"`
	Subject     string `json:"subject"`
	Text        string `json:"text"`
	TimeCreated int64  `json:"timecreated"`
	Read        int    `json:"read"`
}

type wireMessagesPage struct {
	Messages   []wireMessage `json:"messages"`
	NextOffset int           `json:"nextoffset"`
}

// unixOrNil converts a server timestamp to *time.Time; the server uses
// 0 for "not set".
func unixOrNil(sec int64) *time.Time {
	if sec == 0 {
		return nil
	}
	t := time.Unix(sec, 0).UTC()
	return &t
}
