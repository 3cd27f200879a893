// Package e2e drives the full comparison path against a real database:
// seeded submissions, content served over HTTP, extraction and scoring
// on the worker pool with the bundled plaintext plugin, and the lookup
// endpoint on top.
package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodle-tools/simwatch/ent/filecomparison"
	"github.com/moodle-tools/simwatch/ent/filedigest"
	"github.com/moodle-tools/simwatch/ent/filewarning"
	"github.com/moodle-tools/simwatch/pkg/api"
	"github.com/moodle-tools/simwatch/pkg/cache"
	"github.com/moodle-tools/simwatch/pkg/config"
	"github.com/moodle-tools/simwatch/pkg/digest"
	"github.com/moodle-tools/simwatch/pkg/pipeline"
	"github.com/moodle-tools/simwatch/pkg/plugin"
	"github.com/moodle-tools/simwatch/pkg/pool"
	testdb "github.com/moodle-tools/simwatch/test/database"

	// Register the bundled plugins, as the server binary does.
	_ "github.com/moodle-tools/simwatch/pkg/plugin/plaintext"
)

// contentServer serves submitted file bodies and counts fetches per
// path, so tests can assert what was and was not downloaded.
type contentServer struct {
	mu   sync.Mutex
	body map[string]string
	hits map[string]int
	srv  *httptest.Server
}

func newContentServer(t *testing.T) *contentServer {
	t.Helper()
	cs := &contentServer{body: make(map[string]string), hits: make(map[string]int)}
	cs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.mu.Lock()
		body, ok := cs.body[r.URL.Path]
		cs.hits[r.URL.Path]++
		cs.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(cs.srv.Close)
	return cs
}

func (cs *contentServer) add(name, content string) string {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.body["/files/"+name] = content
	return cs.srv.URL + "/files/" + name
}

func (cs *contentServer) fetches(name string) int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.hits["/files/"+name]
}

func (cs *contentServer) totalFetches() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	total := 0
	for _, n := range cs.hits {
		total += n
	}
	return total
}

// httpDownloader fetches file content the way the LMS client does,
// minus authentication.
type httpDownloader struct {
	client *http.Client
}

func (d httpDownloader) Download(ctx context.Context, fileURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("downloading %s: status %d", fileURL, resp.StatusCode)
	}
	return resp.Body, nil
}

func storedFile(t *testing.T, mirror *cache.Repository, submissionID int64, name string) cache.StoredFile {
	t.Helper()
	files, err := mirror.GetSubmissionFiles(context.Background(), submissionID)
	require.NoError(t, err)
	for _, f := range files {
		if f.Filename == name {
			return f
		}
	}
	t.Fatalf("file %q not cached for submission %d", name, submissionID)
	return cache.StoredFile{}
}

func TestSubmissionSimilarityEndToEnd(t *testing.T) {
	client := testdb.NewTestClient(t)
	mirror := cache.NewRepository(client)
	digests := digest.NewRepository(client)
	ctx := context.Background()

	registry, err := plugin.Load(nil)
	require.NoError(t, err)
	require.Contains(t, registry.DigestTypes(), "plaintext")

	workers := pool.New(pool.Config{Workers: 2}, registry)
	require.NoError(t, workers.Start(ctx))
	t.Cleanup(func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, workers.Stop(stopCtx))
	})

	files := newContentServer(t)
	cfg := &config.Config{
		RefreshInterval: time.Hour,
		Pipeline:        config.PipelineConfig{BatchSize: 4},
	}
	pipe := pipeline.New(cfg, digests, httpDownloader{client: files.srv.Client()}, workers, registry.DigestTypes())

	// Two assignments: identical essays up to line endings, and notes
	// where the newer upload appends one line.
	essayAda := "Dear diary,\r\nToday I finished the essay.\r\n"
	essayBob := "Dear diary,\nToday I finished the essay.\n"
	notesAda := "alpha\nbeta\ngamma\n"
	notesBob := "alpha\nbeta\ngamma\ndelta\n"

	require.NoError(t, mirror.StoreCourses(ctx, []cache.Course{{
		ID: 1, ShortName: "prog1", FullName: "Programming 1",
		Participants: []cache.Participant{
			{User: cache.User{ID: 7, FullName: "Ada"}},
			{User: cache.User{ID: 8, FullName: "Bob"}},
		},
	}}, time.Now()))
	require.NoError(t, mirror.StoreAssignments(ctx, []cache.Assignment{
		{ID: 100, CourseID: 1, Name: "essay"},
		{ID: 200, CourseID: 1, Name: "notes"},
	}))

	// Uploaded times drive the pairing direction: Ada's uploads are the
	// older side of every pair.
	t1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	textFile := func(name, content string, uploaded time.Time) cache.SubmittedFile {
		return cache.SubmittedFile{
			Filename: name,
			Size:     int64(len(content)),
			MimeType: "text/plain",
			URL:      files.add(name, content),
			Uploaded: uploaded,
		}
	}
	require.NoError(t, mirror.StoreSubmissions(ctx, []cache.Submission{
		{ID: 900, AssignmentID: 100, UserID: 7, Updated: t1, Files: []cache.SubmittedFile{
			textFile("essay-ada.txt", essayAda, t1),
			{
				Filename: "report.pdf",
				Size:     64,
				MimeType: "application/pdf",
				URL:      files.add("report.pdf", "%PDF-1.4 binary"),
				Uploaded: t1,
			},
		}},
		{ID: 901, AssignmentID: 100, UserID: 8, Updated: t2, Files: []cache.SubmittedFile{
			textFile("essay-bob.txt", essayBob, t2),
		}},
		{ID: 902, AssignmentID: 200, UserID: 7, Updated: t1, Files: []cache.SubmittedFile{
			textFile("notes-ada.txt", notesAda, t1),
		}},
		{ID: 903, AssignmentID: 200, UserID: 8, Updated: t2, Files: []cache.SubmittedFile{
			textFile("notes-bob.txt", notesBob, t2),
		}},
	}))

	adaEssay := storedFile(t, mirror, 900, "essay-ada.txt")
	adaReport := storedFile(t, mirror, 900, "report.pdf")
	bobEssay := storedFile(t, mirror, 901, "essay-bob.txt")
	adaNotes := storedFile(t, mirror, 902, "notes-ada.txt")
	bobNotes := storedFile(t, mirror, 903, "notes-bob.txt")

	require.NoError(t, pipe.RunCycle(ctx))

	t.Run("identical essays score 1.0 in exactly one comparison", func(t *testing.T) {
		rows, err := client.FileComparison.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2, "one comparison per assignment pair")

		var found bool
		for _, row := range rows {
			if row.OlderFileID != adaEssay.FileID {
				continue
			}
			found = true
			assert.Equal(t, bobEssay.FileID, row.NewerFileID)
			assert.Equal(t, "plaintext", row.OlderDigestType)
			assert.Equal(t, "plaintext", row.NewerDigestType)
			assert.Equal(t, 1.0, row.SimilarityScore, "line endings normalize away")
		}
		assert.True(t, found, "essay pair was scored")
	})

	t.Run("appended line scores below 1.0", func(t *testing.T) {
		row, err := client.FileComparison.Query().
			Where(filecomparison.OlderFileIDEQ(adaNotes.FileID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, bobNotes.FileID, row.NewerFileID)
		assert.Greater(t, row.SimilarityScore, 0.5)
		assert.Less(t, row.SimilarityScore, 1.0)
	})

	t.Run("unprocessable file is never downloaded and never retried", func(t *testing.T) {
		assert.Zero(t, files.fetches("report.pdf"))

		row, err := client.FileDigest.Query().
			Where(filedigest.FileIDEQ(adaReport.FileID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Nil(t, row.Content)

		warning, err := client.FileWarning.Query().
			Where(filewarning.FileIDEQ(adaReport.FileID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Contains(t, warning.Message, "no extractor accepts")
	})

	t.Run("a second cycle is a no-op", func(t *testing.T) {
		before := files.totalFetches()
		require.NoError(t, pipe.RunCycle(ctx))
		assert.Equal(t, before, files.totalFetches(), "nothing is re-downloaded")

		count, err := client.FileComparison.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("lookup returns the older match", func(t *testing.T) {
		router := api.NewServer(config.APIConfig{}, client, digests, mirror).Routes()
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/filecomp/submission/901?filename=essay-bob.txt", nil)
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Files  map[string]digest.FileDetails `json:"files"`
			Errors []string                      `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Errors)

		d, ok := resp.Files["essay-bob.txt"]
		require.True(t, ok)
		assert.True(t, d.Known)
		require.Len(t, d.Older, 1)
		assert.Equal(t, "Ada", d.Older[0].UserName)
		assert.Equal(t, int64(900), d.Older[0].SubmissionID)
		assert.Equal(t, 1.0, d.Older[0].Similarity)
		assert.Empty(t, d.Newer)
	})
}
