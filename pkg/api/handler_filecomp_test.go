package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodle-tools/simwatch/pkg/cache"
	"github.com/moodle-tools/simwatch/pkg/config"
	"github.com/moodle-tools/simwatch/pkg/digest"
)

type fakeLookup struct {
	details map[string]digest.FileDetails
	err     error

	gotSubmissionID int64
	gotFilenames    []string
	gotMinScore     float64
	gotMaxSimilar   int
	gotAlsoLater    bool
}

func (f *fakeLookup) GetFilesBySubmission(_ context.Context, submissionID int64, filenames []string, minScore float64, maxSimilar int, alsoLater bool) (map[string]digest.FileDetails, error) {
	f.gotSubmissionID = submissionID
	f.gotFilenames = filenames
	f.gotMinScore = minScore
	f.gotMaxSimilar = maxSimilar
	f.gotAlsoLater = alsoLater
	return f.details, f.err
}

type fakeFiles struct {
	files []cache.StoredFile
	err   error
}

func (f *fakeFiles) GetSubmissionFiles(context.Context, int64) ([]cache.StoredFile, error) {
	return f.files, f.err
}

type fileCompResponse struct {
	Files  map[string]digest.FileDetails `json:"files"`
	Errors []string                      `json:"errors"`
}

func serve(t *testing.T, lookup FileLookup, files FileSource, target string) (*httptest.ResponseRecorder, fileCompResponse) {
	t.Helper()
	s := NewServer(config.APIConfig{ListenAddr: ":0"}, nil, lookup, files)
	router := s.Routes()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)

	var resp fileCompResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestFileComparisonDefaults(t *testing.T) {
	lookup := &fakeLookup{details: map[string]digest.FileDetails{
		"essay.txt": {Name: "essay.txt", Known: true},
	}}

	w, resp := serve(t, lookup, &fakeFiles{}, "/filecomp/submission/42?filename=essay.txt")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp.Errors)
	assert.Equal(t, int64(42), lookup.gotSubmissionID)
	assert.Equal(t, []string{"essay.txt"}, lookup.gotFilenames)
	assert.Equal(t, 0.5, lookup.gotMinScore)
	assert.Equal(t, 5, lookup.gotMaxSimilar)
	assert.False(t, lookup.gotAlsoLater)
}

func TestFileComparisonExplicitParameters(t *testing.T) {
	lookup := &fakeLookup{details: map[string]digest.FileDetails{}}

	w, _ := serve(t, lookup, &fakeFiles{},
		"/filecomp/submission/42?filename=a.txt&filename=b.txt&minratio=0.8&maxfiles=3&shownewer=true")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"a.txt", "b.txt"}, lookup.gotFilenames)
	assert.Equal(t, 0.8, lookup.gotMinScore)
	assert.Equal(t, 3, lookup.gotMaxSimilar)
	assert.True(t, lookup.gotAlsoLater)
}

func TestFileComparisonWithoutFilenamesUsesAllCachedFiles(t *testing.T) {
	lookup := &fakeLookup{details: map[string]digest.FileDetails{}}
	files := &fakeFiles{files: []cache.StoredFile{
		{Filename: "a.txt"},
		{Filename: "b.txt"},
	}}

	w, _ := serve(t, lookup, files, "/filecomp/submission/42")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"a.txt", "b.txt"}, lookup.gotFilenames)
}

func TestFileComparisonCollectsAllValidationErrors(t *testing.T) {
	w, resp := serve(t, &fakeLookup{}, &fakeFiles{},
		"/filecomp/submission/abc?minratio=7&maxfiles=99&shownewer=maybe")

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Len(t, resp.Errors, 4)
	assert.Empty(t, resp.Files)

	joined := ""
	for _, e := range resp.Errors {
		joined += e + "\n"
	}
	assert.Contains(t, joined, "submission_id")
	assert.Contains(t, joined, "minratio")
	assert.Contains(t, joined, "maxfiles")
	assert.Contains(t, joined, "shownewer")
}

func TestFileComparisonBoundaryValues(t *testing.T) {
	lookup := &fakeLookup{details: map[string]digest.FileDetails{}}

	w, _ := serve(t, lookup, &fakeFiles{},
		"/filecomp/submission/1?filename=a.txt&minratio=0&maxfiles=10")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0.0, lookup.gotMinScore)
	assert.Equal(t, 10, lookup.gotMaxSimilar)

	w, resp := serve(t, lookup, &fakeFiles{},
		"/filecomp/submission/1?filename=a.txt&maxfiles=11")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "maxfiles")
}

func TestFileComparisonNormalizesNilSlices(t *testing.T) {
	lookup := &fakeLookup{details: map[string]digest.FileDetails{
		"unknown.txt": {Name: "unknown.txt", Known: false},
	}}

	w, _ := serve(t, lookup, &fakeFiles{}, "/filecomp/submission/1?filename=unknown.txt")
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	entry := raw["files"].(map[string]any)["unknown.txt"].(map[string]any)

	assert.Equal(t, false, entry["known"])
	assert.Equal(t, []any{}, entry["older"], "clients always see lists, never null")
	assert.Equal(t, []any{}, entry["newer"])
	assert.Equal(t, []any{}, entry["warnings"])
}

func TestFileComparisonLookupFailure(t *testing.T) {
	lookup := &fakeLookup{err: errors.New("db down")}

	w, resp := serve(t, lookup, &fakeFiles{}, "/filecomp/submission/1?filename=a.txt")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Len(t, resp.Errors, 1)
	assert.NotContains(t, resp.Errors[0], "db down", "internal details stay internal")
}

func TestFileComparisonFileListingFailure(t *testing.T) {
	files := &fakeFiles{err: errors.New("db down")}

	w, _ := serve(t, &fakeLookup{}, files, "/filecomp/submission/1")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
