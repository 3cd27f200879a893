package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodle-tools/simwatch/pkg/config"
	"github.com/moodle-tools/simwatch/pkg/digest"
	"github.com/moodle-tools/simwatch/pkg/pool"
)

// sliceFileIterator serves a fixed slice through the FileIterator
// interface.
type sliceFileIterator struct {
	files []digest.FileToProcess
	pos   int
}

func (it *sliceFileIterator) Next() (digest.FileToProcess, bool) {
	if it.pos >= len(it.files) {
		return digest.FileToProcess{}, false
	}
	f := it.files[it.pos]
	it.pos++
	return f, true
}

func (it *sliceFileIterator) Err() error   { return nil }
func (it *sliceFileIterator) Close() error { return nil }

type slicePairIterator struct {
	pairs []digest.Pair
	pos   int
}

func (it *slicePairIterator) Next() (digest.Pair, bool) {
	if it.pos >= len(it.pairs) {
		return digest.Pair{}, false
	}
	p := it.pairs[it.pos]
	it.pos++
	return p, true
}

func (it *slicePairIterator) Err() error   { return nil }
func (it *slicePairIterator) Close() error { return nil }

// fakeStore records everything the pipeline persists.
type fakeStore struct {
	mu          sync.Mutex
	files       []digest.FileToProcess
	pairs       []digest.Pair
	records     []digest.Record
	warnings    []digest.Warning
	comparisons []digest.Comparison
}

func (s *fakeStore) StreamFilesWithMissingDigests(_ context.Context, _ []string, _ *time.Duration, _ *int64) (digest.FileIterator, error) {
	return &sliceFileIterator{files: s.files}, nil
}

func (s *fakeStore) StoreDigests(_ context.Context, records []digest.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, records...)
	return nil
}

func (s *fakeStore) StoreWarnings(_ context.Context, warnings []digest.Warning) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnings = append(s.warnings, warnings...)
	return nil
}

func (s *fakeStore) StreamMissingComparisons(context.Context) (digest.PairIterator, error) {
	return &slicePairIterator{pairs: s.pairs}, nil
}

func (s *fakeStore) StoreComparisons(_ context.Context, comparisons []digest.Comparison) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comparisons = append(s.comparisons, comparisons...)
	return nil
}

// fakeDownloader serves canned bodies by URL and fails URLs in the
// failing set.
type fakeDownloader struct {
	mu      sync.Mutex
	bodies  map[string]string
	failing map[string]bool
	served  []string
}

func (d *fakeDownloader) Download(_ context.Context, fileURL string) (io.ReadCloser, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.failing[fileURL] {
		return nil, fmt.Errorf("download of %s failed", fileURL)
	}
	d.served = append(d.served, fileURL)
	return io.NopCloser(bytes.NewReader([]byte(d.bodies[fileURL]))), nil
}

// fakeWorker turns file bytes into an "ident" digest and scores pairs
// by content equality. Filenames in rejected are accepted by no
// extractor.
type fakeWorker struct {
	mu         sync.Mutex
	extractErr error
	compareErr error
	rejected   map[string]bool
	extracted  []string
}

func (w *fakeWorker) ProcessableTypes(file digest.FileToProcess) (processable, unprocessable []string) {
	if w.rejected[file.Filename] {
		return nil, file.MissingTypes
	}
	return file.MissingTypes, nil
}

func (w *fakeWorker) Extract(_ context.Context, file digest.FileToProcess, data []byte) (pool.ExtractResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.extractErr != nil {
		return pool.ExtractResult{}, w.extractErr
	}
	w.extracted = append(w.extracted, file.Filename)
	return pool.ExtractResult{
		Digests: map[string][]byte{"ident": data},
	}, nil
}

func (w *fakeWorker) Compare(_ context.Context, pair digest.Pair) (float64, error) {
	if w.compareErr != nil {
		return 0, w.compareErr
	}
	if bytes.Equal(pair.OlderContent, pair.NewerContent) {
		return 1, nil
	}
	return 0.25, nil
}

func testConfig() *config.Config {
	return &config.Config{
		RefreshInterval: time.Hour,
		Pipeline:        config.PipelineConfig{BatchSize: 2},
	}
}

func file(id int, url string) digest.FileToProcess {
	return digest.FileToProcess{
		FileID:       id,
		Filename:     fmt.Sprintf("file-%d.txt", id),
		URL:          url,
		MissingTypes: []string{"ident"},
	}
}

func TestRunCycleExtractsAndStores(t *testing.T) {
	store := &fakeStore{files: []digest.FileToProcess{
		file(1, "u1"), file(2, "u2"), file(3, "u3"),
	}}
	downloader := &fakeDownloader{bodies: map[string]string{"u1": "a", "u2": "b", "u3": "c"}}
	worker := &fakeWorker{}
	p := New(testConfig(), store, downloader, worker, []string{"ident"})

	require.NoError(t, p.RunCycle(context.Background()))

	require.Len(t, store.records, 3)
	byID := make(map[int][]byte)
	for _, r := range store.records {
		assert.Equal(t, "ident", r.Type)
		byID[r.FileID] = r.Content
	}
	assert.Equal(t, []byte("a"), byID[1])
	assert.Equal(t, []byte("c"), byID[3])
}

func TestFailedDownloadDropsFileFromBatchOnly(t *testing.T) {
	store := &fakeStore{files: []digest.FileToProcess{
		file(1, "u1"), file(2, "u2"),
	}}
	downloader := &fakeDownloader{
		bodies:  map[string]string{"u1": "a", "u2": "b"},
		failing: map[string]bool{"u1": true},
	}
	worker := &fakeWorker{}
	p := New(testConfig(), store, downloader, worker, []string{"ident"})

	require.NoError(t, p.RunCycle(context.Background()), "a failed download is not a cycle error")

	// Only the healthy file was extracted and persisted.
	require.Len(t, store.records, 1)
	assert.Equal(t, 2, store.records[0].FileID)
	assert.Equal(t, []string{"file-2.txt"}, worker.extracted)
}

func TestUnprocessableFileIsRecordedWithoutDownload(t *testing.T) {
	store := &fakeStore{files: []digest.FileToProcess{
		file(1, "u1"), file(2, "u2"),
	}}
	downloader := &fakeDownloader{bodies: map[string]string{"u1": "a", "u2": "b"}}
	worker := &fakeWorker{rejected: map[string]bool{"file-2.txt": true}}
	p := New(testConfig(), store, downloader, worker, []string{"ident"})

	require.NoError(t, p.RunCycle(context.Background()))

	assert.Equal(t, []string{"u1"}, downloader.served, "rejected files are never downloaded")
	assert.Equal(t, []string{"file-1.txt"}, worker.extracted)

	// Both files got a digest row; the rejected one is a null record
	// with a warning so it stays out of future cycles.
	require.Len(t, store.records, 2)
	byID := make(map[int]digest.Record)
	for _, r := range store.records {
		byID[r.FileID] = r
	}
	assert.Equal(t, []byte("a"), byID[1].Content)
	assert.Nil(t, byID[2].Content)
	require.Len(t, store.warnings, 1)
	assert.Equal(t, 2, store.warnings[0].FileID)
	assert.Equal(t, "ident", store.warnings[0].Type)
	assert.Contains(t, store.warnings[0].Message, "no extractor accepts")
}

func TestExtractErrorFailsTheCycle(t *testing.T) {
	store := &fakeStore{files: []digest.FileToProcess{file(1, "u1")}}
	downloader := &fakeDownloader{bodies: map[string]string{"u1": "a"}}
	worker := &fakeWorker{extractErr: errors.New("pool gone")}
	p := New(testConfig(), store, downloader, worker, []string{"ident"})

	err := p.RunCycle(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pool gone")
	assert.Empty(t, store.records)
}

func TestRunCycleComparesAndStores(t *testing.T) {
	store := &fakeStore{pairs: []digest.Pair{
		{OlderFileID: 1, NewerFileID: 2, Type: "ident", OlderContent: []byte("x"), NewerContent: []byte("x")},
		{OlderFileID: 1, NewerFileID: 3, Type: "ident", OlderContent: []byte("x"), NewerContent: []byte("y")},
		{OlderFileID: 2, NewerFileID: 3, Type: "ident", OlderContent: []byte("x"), NewerContent: []byte("y")},
	}}
	p := New(testConfig(), store, &fakeDownloader{}, &fakeWorker{}, []string{"ident"})

	require.NoError(t, p.RunCycle(context.Background()))

	require.Len(t, store.comparisons, 3)
	scores := make(map[[2]int]float64)
	for _, c := range store.comparisons {
		assert.Equal(t, "ident", c.OlderType)
		assert.Equal(t, "ident", c.NewerType)
		scores[[2]int{c.OlderFileID, c.NewerFileID}] = c.Score
	}
	assert.Equal(t, 1.0, scores[[2]int{1, 2}])
	assert.Equal(t, 0.25, scores[[2]int{1, 3}])
}

func TestFailedComparisonIsSkippedNotFatal(t *testing.T) {
	store := &fakeStore{pairs: []digest.Pair{
		{OlderFileID: 1, NewerFileID: 2, Type: "ident"},
	}}
	worker := &fakeWorker{compareErr: errors.New("comparer broke")}
	p := New(testConfig(), store, &fakeDownloader{}, worker, []string{"ident"})

	require.NoError(t, p.RunCycle(context.Background()))
	assert.Empty(t, store.comparisons, "failed pairs are left for the next cycle")
}

func TestStartStop(t *testing.T) {
	store := &fakeStore{}
	p := New(testConfig(), store, &fakeDownloader{}, &fakeWorker{}, []string{"ident"})

	require.NoError(t, p.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, p.Stop(ctx))
}
