// Package moodle is a typed client for the Moodle web service REST API.
//
// All calls go through {base_url}/webservice/rest/server.php with
// query-string parameters (see Params for the encoding rules). The
// client logs in lazily and re-logs-in once when the server reports an
// invalidated token.
package moodle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/moodle-tools/simwatch/pkg/metrics"
)

const (
	restPath  = "/webservice/rest/server.php"
	loginPath = "/login/token.php"
)

// Config holds the connection settings of one Moodle server.
// Credentials come from the process environment (see LoadConfigFromEnv).
type Config struct {
	BaseURL  string
	Username string
	Password string
	Service  string
	Timeout  time.Duration
}

// Client talks to a single Moodle server. It is safe for concurrent use;
// the token is guarded because a re-login may race with other calls.
type Client struct {
	cfg  Config
	http *http.Client

	mu    sync.Mutex
	token string
}

// New validates cfg and returns a client. No network traffic happens
// until the first call.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("moodle: base URL is required")
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("moodle: username and password are required")
	}
	if cfg.Service == "" {
		cfg.Service = "moodle_mobile_app"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Login fetches a fresh token with the configured credentials. Callers
// normally never need this: call() logs in lazily and re-logs-in on
// invalidtoken.
func (c *Client) Login(ctx context.Context) error {
	vals := url.Values{}
	vals.Set("username", c.cfg.Username)
	vals.Set("password", c.cfg.Password)
	vals.Set("service", c.cfg.Service)
	loginURL := strings.TrimSuffix(c.cfg.BaseURL, "/") + loginPath + "?" + vals.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loginURL, nil)
	if err != nil {
		return fmt.Errorf("building login request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading login response: %w", err)
	}

	var decoded struct {
		Token     string `json:"token"`
		Error     string `json:"error"`
		Errorcode string `json:"errorcode"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return fmt.Errorf("decoding login response: %w", err)
	}
	if decoded.Token == "" {
		return &RemoteError{
			Errorcode: decoded.Errorcode,
			Message:   decoded.Error,
			URL:       strings.TrimSuffix(c.cfg.BaseURL, "/") + loginPath,
		}
	}

	c.mu.Lock()
	c.token = decoded.Token
	c.mu.Unlock()

	metrics.LMSLogins.Inc()
	slog.Info("Moodle login succeeded", "base_url", c.cfg.BaseURL, "user", c.cfg.Username)
	return nil
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// call performs one web service function call and decodes the response
// into out. A response carrying errorcode "invalidtoken" triggers a
// re-login and a single retry; every other error propagates immediately.
func (c *Client) call(ctx context.Context, wsfunction string, params Params, out any) error {
	if c.currentToken() == "" {
		if err := c.Login(ctx); err != nil {
			return err
		}
	}

	err := c.callOnce(ctx, wsfunction, params, out)
	if IsInvalidToken(err) {
		slog.Warn("Moodle token invalidated, re-logging in", "wsfunction", wsfunction)
		if loginErr := c.Login(ctx); loginErr != nil {
			return loginErr
		}
		err = c.callOnce(ctx, wsfunction, params, out)
	}
	return err
}

func (c *Client) callOnce(ctx context.Context, wsfunction string, params Params, out any) error {
	vals, err := params.Encode()
	if err != nil {
		return fmt.Errorf("encoding parameters for %s: %w", wsfunction, err)
	}
	vals.Set("wstoken", c.currentToken())
	vals.Set("wsfunction", wsfunction)
	vals.Set("moodlewsrestformat", "json")

	endpoint := strings.TrimSuffix(c.cfg.BaseURL, "/") + restPath
	callURL := endpoint + "?" + vals.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, callURL, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", wsfunction, err)
	}

	metrics.LMSRequests.WithLabelValues(wsfunction).Inc()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", wsfunction, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response: %w", wsfunction, err)
	}

	// Application-level errors arrive as a JSON object with an
	// "exception" field, regardless of the HTTP status.
	var exc wireException
	if json.Unmarshal(body, &exc) == nil && exc.Exception != "" {
		return &RemoteError{
			Errorcode: exc.Errorcode,
			Message:   exc.Message,
			URL:       endpoint + "?wsfunction=" + wsfunction,
		}
	}

	if resp.StatusCode >= 400 {
		return &RemoteError{
			Errorcode: errcodeHTTPStatus,
			Message:   fmt.Sprintf("HTTP %d", resp.StatusCode),
			URL:       endpoint + "?wsfunction=" + wsfunction,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", wsfunction, err)
	}
	return nil
}

// GetSiteInfo returns the remote site description for the token's owner.
func (c *Client) GetSiteInfo(ctx context.Context) (*SiteInfo, error) {
	var wire wireSiteInfo
	if err := c.call(ctx, "core_webservice_get_site_info", Params{}, &wire); err != nil {
		return nil, err
	}
	return &SiteInfo{
		SiteName: wire.SiteName,
		Username: wire.Username,
		UserID:   wire.UserID,
		Release:  wire.Release,
	}, nil
}

// GetEnrolledCourses returns a lazy stream over the user's enrolled
// courses, classified by timeline. The stream is finite and
// non-restartable; each page is fetched when the previous one is
// exhausted.
func (c *Client) GetEnrolledCourses(ctx context.Context, classification string) *CourseStream {
	if classification == "" {
		classification = "all"
	}
	return &CourseStream{client: c, classification: classification}
}

// CollectEnrolledCourses drains the course stream into a slice.
func (c *Client) CollectEnrolledCourses(ctx context.Context, classification string) ([]Course, error) {
	return c.GetEnrolledCourses(ctx, classification).Collect(ctx)
}

// GetEnrolledUsers returns every participant of one course with their
// course-scoped roles and groups.
func (c *Client) GetEnrolledUsers(ctx context.Context, courseID int64) ([]EnrolledUser, error) {
	var wire []wireEnrolledUser
	err := c.call(ctx, "core_enrol_get_enrolled_users", Params{"courseid": courseID}, &wire)
	if err != nil {
		return nil, err
	}

	users := make([]EnrolledUser, 0, len(wire))
	for _, w := range wire {
		u := EnrolledUser{
			ID:       w.ID,
			FullName: w.FullName,
			Email:    w.Email,
		}
		for _, r := range w.Roles {
			u.Roles = append(u.Roles, Role{ID: r.RoleID, Name: r.Name})
		}
		for _, g := range w.Groups {
			u.Groups = append(u.Groups, Group{ID: g.ID, Name: g.Name})
		}
		users = append(users, u)
	}
	return users, nil
}

// GetAssignments returns the assignments of the given courses.
func (c *Client) GetAssignments(ctx context.Context, courseIDs []int64) ([]Assignment, error) {
	var wire wireAssignmentsResponse
	err := c.call(ctx, "mod_assign_get_assignments", Params{"courseids": courseIDs}, &wire)
	if err != nil {
		return nil, err
	}

	var assignments []Assignment
	for _, course := range wire.Courses {
		for _, a := range course.Assignments {
			assignments = append(assignments, Assignment{
				ID:       a.ID,
				CourseID: a.Course,
				Name:     a.Name,
				Opening:  unixOrNil(a.AllowSubmissionsFromDate),
				Closing:  unixOrNil(a.DueDate),
				Cutoff:   unixOrNil(a.CutoffDate),
			})
		}
	}
	return assignments, nil
}

// GetSubmissions returns submissions of the given assignments modified
// at or after since. A zero since fetches everything.
func (c *Client) GetSubmissions(ctx context.Context, assignmentIDs []int64, since time.Time) ([]Submission, error) {
	params := Params{"assignmentids": assignmentIDs}
	if !since.IsZero() {
		params["since"] = since
	}
	var wire wireSubmissionsResponse
	if err := c.call(ctx, "mod_assign_get_submissions", params, &wire); err != nil {
		return nil, err
	}

	var submissions []Submission
	for _, a := range wire.Assignments {
		for _, s := range a.Submissions {
			submissions = append(submissions, normalizeSubmission(a.AssignmentID, s))
		}
	}
	return submissions, nil
}

// GetSubmissionStatus returns the submission state of one user in one
// assignment.
func (c *Client) GetSubmissionStatus(ctx context.Context, assignmentID, userID int64) (*SubmissionStatus, error) {
	var wire wireSubmissionStatus
	err := c.call(ctx, "mod_assign_get_submission_status", Params{
		"assignid": assignmentID,
		"userid":   userID,
	}, &wire)
	if err != nil {
		return nil, err
	}
	return &SubmissionStatus{
		AssignmentID: assignmentID,
		UserID:       userID,
		Status:       wire.LastAttempt.Submission.Status,
		GradingState: wire.LastAttempt.GradingState,
	}, nil
}

// normalizeSubmission flattens the variable-shape plugin array into the
// flat file records the rest of the system consumes.
func normalizeSubmission(assignmentID int64, w wireSubmission) Submission {
	sub := Submission{
		ID:           w.ID,
		AssignmentID: assignmentID,
		UserID:       w.UserID,
		Updated:      time.Unix(w.TimeModified, 0).UTC(),
	}
	if w.Status != "" {
		status := w.Status
		sub.Status = &status
	}
	for _, p := range w.Plugins {
		if p.Type != "file" {
			continue
		}
		for _, area := range p.FileAreas {
			for _, f := range area.Files {
				sub.Files = append(sub.Files, SubmittedFile{
					Filename: f.Filename,
					Size:     f.Filesize,
					MimeType: f.MimeType,
					URL:      f.FileURL,
					Uploaded: time.Unix(f.TimeModified, 0).UTC(),
				})
			}
		}
	}
	return sub
}

// Download opens a streaming reader over a submitted file. The caller
// owns the reader and must close it on all exit paths; closing releases
// the underlying connection.
func (c *Client) Download(ctx context.Context, fileURL string) (io.ReadCloser, error) {
	u, err := url.Parse(fileURL)
	if err != nil {
		return nil, fmt.Errorf("parsing file URL: %w", err)
	}
	q := u.Query()
	q.Set("token", c.currentToken())
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building download request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", fileURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, &RemoteError{
			Errorcode: errcodeHTTPStatus,
			Message:   fmt.Sprintf("HTTP %d", resp.StatusCode),
			URL:       fileURL,
		}
	}
	return resp.Body, nil
}
