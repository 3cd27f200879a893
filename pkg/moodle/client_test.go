package moodle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMoodle is a minimal in-process Moodle endpoint. Handlers are
// registered per wsfunction; login issues tokens from the tokens slice,
// one per call.
type fakeMoodle struct {
	t        *testing.T
	tokens   []string
	logins   int
	calls    []string
	handlers map[string]func(r *http.Request) any
}

func newFakeMoodle(t *testing.T) (*fakeMoodle, *Client) {
	f := &fakeMoodle{
		t:        t,
		tokens:   []string{"token-1", "token-2", "token-3"},
		handlers: map[string]func(r *http.Request) any{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/login/token.php", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "student", r.URL.Query().Get("username"))
		require.Equal(t, "secret", r.URL.Query().Get("password"))
		token := f.tokens[f.logins%len(f.tokens)]
		f.logins++
		writeJSON(t, w, map[string]string{"token": token})
	})
	mux.HandleFunc("/webservice/rest/server.php", func(w http.ResponseWriter, r *http.Request) {
		wsfunction := r.URL.Query().Get("wsfunction")
		f.calls = append(f.calls, wsfunction)
		require.Equal(t, "json", r.URL.Query().Get("moodlewsrestformat"))
		handler, ok := f.handlers[wsfunction]
		require.True(t, ok, "unexpected wsfunction %s", wsfunction)
		writeJSON(t, w, handler(r))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := New(Config{
		BaseURL:  server.URL,
		Username: "student",
		Password: "secret",
	})
	require.NoError(t, err)
	return f, client
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestClientLazyLoginAndTokenReuse(t *testing.T) {
	f, client := newFakeMoodle(t)
	f.handlers["core_webservice_get_site_info"] = func(r *http.Request) any {
		require.Equal(t, "token-1", r.URL.Query().Get("wstoken"))
		return map[string]any{"sitename": "Test Site", "username": "student", "userid": 7, "release": "4.5"}
	}

	ctx := context.Background()
	info, err := client.GetSiteInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Test Site", info.SiteName)
	assert.Equal(t, int64(7), info.UserID)

	_, err = client.GetSiteInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, f.logins, "the token is reused across calls")
}

func TestClientReloginOnInvalidToken(t *testing.T) {
	f, client := newFakeMoodle(t)
	f.handlers["core_webservice_get_site_info"] = func(r *http.Request) any {
		if r.URL.Query().Get("wstoken") == "token-1" {
			return map[string]string{
				"exception": "moodle_exception",
				"errorcode": ErrcodeInvalidToken,
				"message":   "Invalid token",
			}
		}
		return map[string]any{"sitename": "Test Site", "username": "student", "userid": 7}
	}

	info, err := client.GetSiteInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Test Site", info.SiteName)
	assert.Equal(t, 2, f.logins, "exactly one re-login")
	assert.Len(t, f.calls, 2, "exactly one retry of the failed call")
}

func TestClientSurfacesRemoteErrors(t *testing.T) {
	f, client := newFakeMoodle(t)
	f.handlers["core_webservice_get_site_info"] = func(r *http.Request) any {
		return map[string]string{
			"exception": "moodle_exception",
			"errorcode": ErrcodeAccessDenied,
			"message":   "Access denied",
		}
	}

	_, err := client.GetSiteInfo(context.Background())
	require.Error(t, err)
	assert.True(t, IsAccessDenied(err))
	assert.False(t, IsInvalidToken(err))

	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, ErrcodeAccessDenied, re.Errorcode)
	assert.Equal(t, 1, f.logins, "access errors are not retried")
}

func TestCourseStreamPagination(t *testing.T) {
	f, client := newFakeMoodle(t)
	pages := map[string]any{
		"0": map[string]any{
			"courses": []map[string]any{
				{"id": 1, "shortname": "c1", "fullname": "Course 1", "startdate": 1700000000},
				{"id": 2, "shortname": "c2", "fullname": "Course 2"},
			},
			"nextoffset": 2,
		},
		"2": map[string]any{
			"courses": []map[string]any{
				{"id": 3, "shortname": "c3", "fullname": "Course 3"},
			},
			"nextoffset": 2,
		},
	}
	f.handlers["core_course_get_enrolled_courses_by_timeline_classification"] = func(r *http.Request) any {
		require.Equal(t, "all", r.URL.Query().Get("classification"))
		return pages[r.URL.Query().Get("offset")]
	}

	courses, err := client.CollectEnrolledCourses(context.Background(), "all")
	require.NoError(t, err)
	require.Len(t, courses, 3)

	assert.Equal(t, int64(1), courses[0].ID)
	require.NotNil(t, courses[0].Starts)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), *courses[0].Starts)
	assert.Nil(t, courses[1].Starts, "zero timestamps become nil")
	assert.Equal(t, int64(3), courses[2].ID)
}

func TestGetSubmissionsNormalizesFilePlugins(t *testing.T) {
	f, client := newFakeMoodle(t)
	f.handlers["mod_assign_get_submissions"] = func(r *http.Request) any {
		require.Equal(t, "100", r.URL.Query().Get("assignmentids[0]"))
		require.Equal(t, "", r.URL.Query().Get("since"), "zero since is omitted")
		return map[string]any{
			"assignments": []map[string]any{{
				"assignmentid": 100,
				"submissions": []map[string]any{{
					"id":           500,
					"userid":       7,
					"status":       "submitted",
					"timemodified": 1700001000,
					"plugins": []map[string]any{
						{
							"type": "comments",
						},
						{
							"type": "file",
							"fileareas": []map[string]any{{
								"area": "submission_files",
								"files": []map[string]any{{
									"filename":     "essay.txt",
									"filesize":     321,
									"fileurl":      "https://lms/file/essay.txt",
									"mimetype":     "text/plain",
									"timemodified": 1700000500,
								}},
							}},
						},
					},
				}},
			}},
		}
	}

	subs, err := client.GetSubmissions(context.Background(), []int64{100}, time.Time{})
	require.NoError(t, err)
	require.Len(t, subs, 1)

	s := subs[0]
	assert.Equal(t, int64(500), s.ID)
	assert.Equal(t, int64(100), s.AssignmentID)
	require.NotNil(t, s.Status)
	assert.Equal(t, "submitted", *s.Status)
	require.Len(t, s.Files, 1)
	assert.Equal(t, "essay.txt", s.Files[0].Filename)
	assert.Equal(t, int64(321), s.Files[0].Size)
	assert.Equal(t, time.Unix(1700000500, 0).UTC(), s.Files[0].Uploaded)
}

func TestGetSubmissionsPassesSince(t *testing.T) {
	f, client := newFakeMoodle(t)
	since := time.Unix(1700002000, 0).UTC()
	f.handlers["mod_assign_get_submissions"] = func(r *http.Request) any {
		require.Equal(t, "1700002000", r.URL.Query().Get("since"))
		return map[string]any{"assignments": []any{}}
	}

	subs, err := client.GetSubmissions(context.Background(), []int64{100}, since)
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestDownloadAppendsToken(t *testing.T) {
	f, client := newFakeMoodle(t)
	f.handlers["core_webservice_get_site_info"] = func(r *http.Request) any {
		return map[string]any{"sitename": "s"}
	}

	// Force a login so the download carries a token.
	_, err := client.GetSiteInfo(context.Background())
	require.NoError(t, err)

	fileServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "token-1", r.URL.Query().Get("token"))
		fmt.Fprint(w, "file content")
	}))
	defer fileServer.Close()

	body, err := client.Download(context.Background(), fileServer.URL+"/pluginfile.php/essay.txt")
	require.NoError(t, err)
	defer func() { _ = body.Close() }()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "file content", string(data))
}

func TestDownloadReportsHTTPErrors(t *testing.T) {
	_, client := newFakeMoodle(t)

	fileServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer fileServer.Close()

	_, err := client.Download(context.Background(), fileServer.URL+"/pluginfile.php/gone.txt")
	require.Error(t, err)

	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Contains(t, re.Message, "404")
}
