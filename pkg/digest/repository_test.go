package digest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodle-tools/simwatch/ent/filedigest"
	"github.com/moodle-tools/simwatch/ent/filewarning"
	"github.com/moodle-tools/simwatch/pkg/cache"
	testdb "github.com/moodle-tools/simwatch/test/database"
)

// seedMirror fills the LMS mirror with one course, its users and two
// assignments, so digest rows have real files to hang off.
func seedMirror(t *testing.T, mirror *cache.Repository) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, mirror.StoreCourses(ctx, []cache.Course{{
		ID: 1, ShortName: "prog1", FullName: "Programming 1",
		Participants: []cache.Participant{
			{User: cache.User{ID: 7, FullName: "Ada"}},
			{User: cache.User{ID: 8, FullName: "Bob"}},
			{User: cache.User{ID: 9, FullName: "Cara"}},
		},
	}}, time.Now()))
	require.NoError(t, mirror.StoreAssignments(ctx, []cache.Assignment{
		{ID: 100, CourseID: 1, Name: "hw1"},
		{ID: 200, CourseID: 1, Name: "hw2"},
	}))
}

func storeSubmission(t *testing.T, mirror *cache.Repository, id, assignmentID, userID int64, uploaded time.Time, filenames ...string) {
	t.Helper()
	sub := cache.Submission{ID: id, AssignmentID: assignmentID, UserID: userID, Updated: uploaded}
	for _, name := range filenames {
		sub.Files = append(sub.Files, cache.SubmittedFile{
			Filename: name,
			Size:     10,
			MimeType: "text/plain",
			URL:      "https://lms/" + name,
			Uploaded: uploaded,
		})
	}
	require.NoError(t, mirror.StoreSubmissions(context.Background(), []cache.Submission{sub}))
}

func cachedFile(t *testing.T, mirror *cache.Repository, submissionID int64, name string) cache.StoredFile {
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

func recordFor(f cache.StoredFile, digestType string, content []byte) Record {
	return Record{
		FileID:       f.FileID,
		Type:         digestType,
		Content:      content,
		AssignmentID: f.AssignmentID,
		SubmissionID: f.SubmissionID,
		UserID:       f.UserID,
		Uploaded:     f.Uploaded,
	}
}

func drainFiles(t *testing.T, it FileIterator) []FileToProcess {
	t.Helper()
	defer func() { require.NoError(t, it.Close()) }()

	var out []FileToProcess
	for {
		f, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, f)
	}
	require.NoError(t, it.Err())
	return out
}

func drainPairs(t *testing.T, it PairIterator) []Pair {
	t.Helper()
	defer func() { require.NoError(t, it.Close()) }()

	var out []Pair
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	require.NoError(t, it.Err())
	return out
}

func TestRepository_StreamFilesWithMissingDigests(t *testing.T) {
	client := testdb.NewTestClient(t)
	mirror := cache.NewRepository(client)
	repo := NewRepository(client)
	ctx := context.Background()
	seedMirror(t, mirror)

	old := time.Now().UTC().Add(-2 * time.Hour)
	fresh := time.Now().UTC().Add(-time.Minute)
	storeSubmission(t, mirror, 900, 100, 7, old, "essay.txt")
	storeSubmission(t, mirror, 901, 100, 8, fresh, "essay.txt")
	fileA := cachedFile(t, mirror, 900, "essay.txt")
	fileB := cachedFile(t, mirror, 901, "essay.txt")

	t.Run("no digests yet means everything is missing", func(t *testing.T) {
		it, err := repo.StreamFilesWithMissingDigests(ctx, []string{"plaintext", "ast"}, nil, nil)
		require.NoError(t, err)
		files := drainFiles(t, it)

		require.Len(t, files, 2)
		assert.Equal(t, fileA.FileID, files[0].FileID)
		assert.Equal(t, []string{"plaintext", "ast"}, files[0].MissingTypes)
		assert.Equal(t, "essay.txt", files[0].Filename)
		assert.Equal(t, int64(900), files[0].SubmissionID)
		assert.Equal(t, int64(100), files[0].AssignmentID)
	})

	t.Run("stored digests shrink the missing set", func(t *testing.T) {
		require.NoError(t, repo.StoreDigests(ctx, []Record{
			recordFor(fileA, "plaintext", []byte("digest-a")),
		}))

		it, err := repo.StreamFilesWithMissingDigests(ctx, []string{"plaintext", "ast"}, nil, nil)
		require.NoError(t, err)
		files := drainFiles(t, it)

		require.Len(t, files, 2)
		assert.Equal(t, []string{"ast"}, files[0].MissingTypes)
		assert.Equal(t, []string{"plaintext", "ast"}, files[1].MissingTypes)
	})

	t.Run("null content still counts as done", func(t *testing.T) {
		require.NoError(t, repo.StoreDigests(ctx, []Record{
			recordFor(fileB, "plaintext", nil),
		}))

		it, err := repo.StreamFilesWithMissingDigests(ctx, []string{"plaintext"}, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, drainFiles(t, it), "files with every type recorded never reappear")
	})

	t.Run("max age filters old uploads", func(t *testing.T) {
		maxAge := time.Hour
		it, err := repo.StreamFilesWithMissingDigests(ctx, []string{"ast"}, &maxAge, nil)
		require.NoError(t, err)
		files := drainFiles(t, it)

		require.Len(t, files, 1)
		assert.Equal(t, fileB.FileID, files[0].FileID)
	})

	t.Run("max size filters large files", func(t *testing.T) {
		maxSize := int64(5)
		it, err := repo.StreamFilesWithMissingDigests(ctx, []string{"ast"}, nil, &maxSize)
		require.NoError(t, err)
		assert.Empty(t, drainFiles(t, it), "every seeded file is larger")
	})

	t.Run("no available types yields an exhausted stream", func(t *testing.T) {
		it, err := repo.StreamFilesWithMissingDigests(ctx, nil, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, drainFiles(t, it))
	})
}

func TestRepository_StoreDigestsAndWarnings(t *testing.T) {
	client := testdb.NewTestClient(t)
	mirror := cache.NewRepository(client)
	repo := NewRepository(client)
	ctx := context.Background()
	seedMirror(t, mirror)

	uploaded := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	storeSubmission(t, mirror, 900, 100, 7, uploaded, "essay.txt")
	file := cachedFile(t, mirror, 900, "essay.txt")

	require.NoError(t, repo.StoreDigests(ctx, []Record{
		recordFor(file, "plaintext", []byte("v1")),
	}))
	require.NoError(t, repo.StoreDigests(ctx, []Record{
		recordFor(file, "plaintext", []byte("v2")),
	}))

	digests, err := client.FileDigest.Query().
		Where(filedigest.FileIDEQ(file.FileID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, digests, 1, "keyed by (file, type)")
	assert.Equal(t, []byte("v2"), digests[0].Content)

	require.NoError(t, repo.StoreWarnings(ctx, []Warning{
		{FileID: file.FileID, Type: "encoding", Message: "first"},
	}))
	require.NoError(t, repo.StoreWarnings(ctx, []Warning{
		{FileID: file.FileID, Type: "encoding", Message: "second"},
	}))

	warnings, err := client.FileWarning.Query().
		Where(filewarning.FileIDEQ(file.FileID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, "second", warnings[0].Message)
}

func TestRepository_StreamMissingComparisons(t *testing.T) {
	client := testdb.NewTestClient(t)
	mirror := cache.NewRepository(client)
	repo := NewRepository(client)
	ctx := context.Background()
	seedMirror(t, mirror)

	t1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t1.Add(2 * time.Hour)
	storeSubmission(t, mirror, 900, 100, 7, t1, "essay.txt")
	storeSubmission(t, mirror, 901, 100, 8, t2, "essay.txt", "notes.txt")
	storeSubmission(t, mirror, 902, 200, 7, t1, "essay.txt")
	storeSubmission(t, mirror, 903, 100, 9, t3, "essay.txt")

	adaEssay := cachedFile(t, mirror, 900, "essay.txt")
	bobEssay := cachedFile(t, mirror, 901, "essay.txt")
	bobNotes := cachedFile(t, mirror, 901, "notes.txt")
	otherEssay := cachedFile(t, mirror, 902, "essay.txt")
	caraEssay := cachedFile(t, mirror, 903, "essay.txt")

	require.NoError(t, repo.StoreDigests(ctx, []Record{
		recordFor(adaEssay, "plaintext", []byte("d-ada")),
		recordFor(bobEssay, "plaintext", []byte("d-bob-e")),
		recordFor(bobNotes, "plaintext", []byte("d-bob-n")),
		recordFor(otherEssay, "plaintext", []byte("d-other")),
		recordFor(caraEssay, "plaintext", []byte("d-cara")),
		// Failed extractions never pair.
		recordFor(adaEssay, "ast", nil),
		recordFor(caraEssay, "ast", nil),
	}))

	type key struct{ older, newer int }
	pairKeys := func(pairs []Pair) []key {
		out := make([]key, 0, len(pairs))
		for _, p := range pairs {
			assert.Equal(t, "plaintext", p.Type)
			assert.NotNil(t, p.OlderContent)
			assert.NotNil(t, p.NewerContent)
			out = append(out, key{p.OlderFileID, p.NewerFileID})
		}
		return out
	}

	it, err := repo.StreamMissingComparisons(ctx)
	require.NoError(t, err)
	pairs := drainPairs(t, it)

	// Same assignment and type, different submissions, strictly older
	// against newer. Bob's two files never pair with each other and the
	// other assignment stays out entirely.
	assert.ElementsMatch(t, []key{
		{adaEssay.FileID, bobEssay.FileID},
		{adaEssay.FileID, bobNotes.FileID},
		{adaEssay.FileID, caraEssay.FileID},
		{bobEssay.FileID, caraEssay.FileID},
		{bobNotes.FileID, caraEssay.FileID},
	}, pairKeys(pairs))

	for _, p := range pairs {
		if p.OlderFileID == adaEssay.FileID && p.NewerFileID == bobEssay.FileID {
			assert.Equal(t, []byte("d-ada"), p.OlderContent)
			assert.Equal(t, []byte("d-bob-e"), p.NewerContent)
		}
	}

	// Recorded comparisons drop out of the stream.
	require.NoError(t, repo.StoreComparisons(ctx, []Comparison{{
		OlderFileID: adaEssay.FileID, OlderType: "plaintext",
		NewerFileID: bobEssay.FileID, NewerType: "plaintext",
		Score: 0.42,
	}}))

	it, err = repo.StreamMissingComparisons(ctx)
	require.NoError(t, err)
	pairs = drainPairs(t, it)
	assert.Len(t, pairs, 4)
	assert.NotContains(t, pairKeys(pairs), key{adaEssay.FileID, bobEssay.FileID})
}

func TestRepository_GetFilesBySubmission(t *testing.T) {
	client := testdb.NewTestClient(t)
	mirror := cache.NewRepository(client)
	repo := NewRepository(client)
	ctx := context.Background()
	seedMirror(t, mirror)

	t1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	storeSubmission(t, mirror, 900, 100, 7, t1, "essay.txt")
	storeSubmission(t, mirror, 901, 100, 8, t1.Add(time.Hour), "essay.txt", "notes.txt")
	storeSubmission(t, mirror, 903, 100, 9, t1.Add(2*time.Hour), "essay.txt")

	adaEssay := cachedFile(t, mirror, 900, "essay.txt")
	bobEssay := cachedFile(t, mirror, 901, "essay.txt")
	bobNotes := cachedFile(t, mirror, 901, "notes.txt")
	caraEssay := cachedFile(t, mirror, 903, "essay.txt")

	require.NoError(t, repo.StoreDigests(ctx, []Record{
		recordFor(adaEssay, "plaintext", []byte("a")),
		recordFor(bobEssay, "plaintext", []byte("b")),
		recordFor(bobNotes, "plaintext", []byte("c")),
		recordFor(caraEssay, "plaintext", []byte("d")),
	}))
	require.NoError(t, repo.StoreComparisons(ctx, []Comparison{
		{OlderFileID: adaEssay.FileID, OlderType: "plaintext", NewerFileID: caraEssay.FileID, NewerType: "plaintext", Score: 0.9},
		// A second digest type scores the same counterpart again.
		{OlderFileID: adaEssay.FileID, OlderType: "ident", NewerFileID: caraEssay.FileID, NewerType: "ident", Score: 0.8},
		{OlderFileID: bobEssay.FileID, OlderType: "plaintext", NewerFileID: caraEssay.FileID, NewerType: "plaintext", Score: 0.7},
		{OlderFileID: bobNotes.FileID, OlderType: "plaintext", NewerFileID: caraEssay.FileID, NewerType: "plaintext", Score: 0.4},
	}))
	require.NoError(t, repo.StoreWarnings(ctx, []Warning{
		{FileID: caraEssay.FileID, Type: "encoding", Message: "replaced 3 bytes"},
	}))

	t.Run("ranks older matches above the threshold", func(t *testing.T) {
		details, err := repo.GetFilesBySubmission(ctx, 903, []string{"essay.txt"}, 0.5, 5, false)
		require.NoError(t, err)

		d := details["essay.txt"]
		assert.True(t, d.Known)
		require.Len(t, d.Older, 2, "the 0.4 match is below the threshold")
		assert.Equal(t, "Ada", d.Older[0].UserName)
		assert.Equal(t, 0.9, d.Older[0].Similarity)
		assert.Equal(t, int64(900), d.Older[0].SubmissionID)
		assert.Equal(t, "essay.txt", d.Older[0].Filename)
		assert.Equal(t, "Bob", d.Older[1].UserName)

		assert.Nil(t, d.Newer, "newer matches only on request")
		require.Len(t, d.Warnings, 1)
		assert.Equal(t, "encoding", d.Warnings[0].Type)
	})

	t.Run("top-K cuts strictly", func(t *testing.T) {
		details, err := repo.GetFilesBySubmission(ctx, 903, []string{"essay.txt"}, 0.0, 1, false)
		require.NoError(t, err)

		d := details["essay.txt"]
		require.Len(t, d.Older, 1)
		assert.Equal(t, "Ada", d.Older[0].UserName)
	})

	t.Run("counterpart counts once toward K", func(t *testing.T) {
		// Ada's file has two comparison rows (plaintext 0.9, ident 0.8);
		// only her best score takes a slot, so Bob still makes the cut.
		details, err := repo.GetFilesBySubmission(ctx, 903, []string{"essay.txt"}, 0.0, 2, false)
		require.NoError(t, err)

		d := details["essay.txt"]
		require.Len(t, d.Older, 2)
		assert.Equal(t, "Ada", d.Older[0].UserName)
		assert.Equal(t, 0.9, d.Older[0].Similarity)
		assert.Equal(t, "Bob", d.Older[1].UserName)
		assert.Equal(t, 0.7, d.Older[1].Similarity)
	})

	t.Run("newer matches on request", func(t *testing.T) {
		details, err := repo.GetFilesBySubmission(ctx, 900, []string{"essay.txt"}, 0.5, 5, true)
		require.NoError(t, err)

		d := details["essay.txt"]
		require.Len(t, d.Newer, 1)
		assert.Equal(t, "Cara", d.Newer[0].UserName)
		assert.Equal(t, 0.9, d.Newer[0].Similarity)
	})

	t.Run("unknown filename", func(t *testing.T) {
		details, err := repo.GetFilesBySubmission(ctx, 903, []string{"missing.txt", "essay.txt"}, 0.5, 5, false)
		require.NoError(t, err)

		require.Contains(t, details, "missing.txt")
		assert.False(t, details["missing.txt"].Known)
		assert.Empty(t, details["missing.txt"].Older)
		assert.True(t, details["essay.txt"].Known, "results never mix across filenames")
	})
}
