package pool

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodle-tools/simwatch/pkg/digest"
	"github.com/moodle-tools/simwatch/pkg/plugin"
)

// upperExtractor uppercases text files into an "upper" digest.
type upperExtractor struct{}

func (upperExtractor) Name() string          { return "upper" }
func (upperExtractor) DigestTypes() []string { return []string{"upper"} }
func (upperExtractor) CanProcess(filename, mimeType string, _ int64) bool {
	return strings.HasSuffix(filename, ".txt")
}

func (upperExtractor) Process(_, _ string, data []byte) (map[string][]byte, map[string]string, error) {
	return map[string][]byte{"upper": []byte(strings.ToUpper(string(data)))}, nil, nil
}

// brokenExtractor fails or panics depending on the filename.
type brokenExtractor struct{}

func (brokenExtractor) Name() string          { return "broken" }
func (brokenExtractor) DigestTypes() []string { return []string{"broken"} }
func (brokenExtractor) CanProcess(filename, _ string, _ int64) bool {
	return strings.HasSuffix(filename, ".txt")
}

func (brokenExtractor) Process(filename, _ string, _ []byte) (map[string][]byte, map[string]string, error) {
	if strings.HasPrefix(filename, "panic") {
		panic("extractor exploded")
	}
	return nil, nil, fmt.Errorf("cannot handle %s", filename)
}

// equalComparer scores 1 for byte-equal digests, 0 otherwise, and
// panics on a magic older id.
type equalComparer struct{}

func (equalComparer) Name() string          { return "equal" }
func (equalComparer) DigestTypes() []string { return []string{"upper"} }
func (equalComparer) Compare(_ string, olderID int, older []byte, _ int, newer []byte) (float64, error) {
	if olderID == 666 {
		panic("comparer exploded")
	}
	if string(older) == string(newer) {
		return 1, nil
	}
	return 0, nil
}

func init() {
	plugin.RegisterExtractor("upper", func(plugin.Settings) (plugin.Extractor, error) {
		return upperExtractor{}, nil
	})
	plugin.RegisterExtractor("broken", func(plugin.Settings) (plugin.Extractor, error) {
		return brokenExtractor{}, nil
	})
	plugin.RegisterComparer("equal", func(plugin.Settings) (plugin.Comparer, error) {
		return equalComparer{}, nil
	})
}

func startPool(t *testing.T) *Pool {
	t.Helper()
	registry, err := plugin.Load(nil)
	require.NoError(t, err)

	p := New(Config{Workers: 2}, registry)
	require.NoError(t, p.Start(context.Background()))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, p.Stop(ctx))
	})
	return p
}

func textFile(name string, missing ...string) digest.FileToProcess {
	return digest.FileToProcess{
		FileID:       1,
		Filename:     name,
		MimeType:     "text/plain",
		MissingTypes: missing,
	}
}

func TestPoolExtractCompressesDigests(t *testing.T) {
	p := startPool(t)

	result, err := p.Extract(context.Background(), textFile("a.txt", "upper"), []byte("hello"))
	require.NoError(t, err)
	require.Contains(t, result.Digests, "upper")

	raw, err := digest.Decompress(result.Digests["upper"])
	require.NoError(t, err)
	assert.Equal(t, "HELLO", string(raw))
	assert.Empty(t, result.Errors)
}

func TestPoolExtractSkipsTypesNotMissing(t *testing.T) {
	p := startPool(t)

	// Only "broken" is missing; the upper extractor does not run, and
	// the broken one reports its failure without sinking the task.
	result, err := p.Extract(context.Background(), textFile("a.txt", "broken"), []byte("hello"))
	require.NoError(t, err)
	assert.NotContains(t, result.Digests, "upper")
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Error(), "broken")
}

func TestPoolSurvivesPanickingExtractor(t *testing.T) {
	p := startPool(t)

	result, err := p.Extract(context.Background(), textFile("panic.txt", "upper", "broken"), []byte("boom"))
	require.NoError(t, err)

	// The panicking extractor becomes an error entry; the healthy one
	// still delivered its digest.
	require.Contains(t, result.Digests, "upper")
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Error(), "panic")

	// The pool is still serving.
	result, err = p.Extract(context.Background(), textFile("ok.txt", "upper"), []byte("fine"))
	require.NoError(t, err)
	assert.Contains(t, result.Digests, "upper")
}

func TestPoolExtractNullDigestsForUnacceptedTypes(t *testing.T) {
	p := startPool(t)

	t.Run("no extractor accepts the file", func(t *testing.T) {
		pdf := digest.FileToProcess{
			FileID:       7,
			Filename:     "report.pdf",
			MimeType:     "application/pdf",
			Size:         512,
			MissingTypes: []string{"upper"},
		}
		result, err := p.Extract(context.Background(), pdf, []byte("%PDF"))
		require.NoError(t, err)

		// A null digest marks the type as attempted, so the file does
		// not come back from the missing-digest scan next cycle.
		require.Contains(t, result.Digests, "upper")
		assert.Nil(t, result.Digests["upper"])
		assert.Contains(t, result.Warnings["upper"], "no extractor accepts")
		assert.Empty(t, result.Errors)
	})

	t.Run("unaccepted type next to a produced one", func(t *testing.T) {
		result, err := p.Extract(context.Background(), textFile("a.txt", "upper", "ast"), []byte("hi"))
		require.NoError(t, err)

		require.Contains(t, result.Digests, "upper")
		assert.NotNil(t, result.Digests["upper"])
		require.Contains(t, result.Digests, "ast")
		assert.Nil(t, result.Digests["ast"])
		assert.Contains(t, result.Warnings["ast"], "no extractor accepts")
	})

	t.Run("failing extractor leaves its type absent", func(t *testing.T) {
		// "broken" is covered by a capable extractor that errors, so the
		// type is neither produced nor nulled and retries next cycle.
		result, err := p.Extract(context.Background(), textFile("a.txt", "broken"), []byte("hi"))
		require.NoError(t, err)
		assert.NotContains(t, result.Digests, "broken")
		require.Len(t, result.Errors, 1)
	})
}

func TestPoolProcessableTypes(t *testing.T) {
	p := startPool(t)

	processable, unprocessable := p.ProcessableTypes(textFile("a.txt", "upper", "ast"))
	assert.Equal(t, []string{"upper"}, processable)
	assert.Equal(t, []string{"ast"}, unprocessable)

	pdf := digest.FileToProcess{Filename: "report.pdf", MimeType: "application/pdf", MissingTypes: []string{"upper"}}
	processable, unprocessable = p.ProcessableTypes(pdf)
	assert.Empty(t, processable)
	assert.Equal(t, []string{"upper"}, unprocessable)
}

func TestUnprocessableResult(t *testing.T) {
	pdf := digest.FileToProcess{Filename: "report.pdf", MimeType: "application/pdf", Size: 9}
	result := Unprocessable(pdf, []string{"upper", "ast"})

	require.Len(t, result.Digests, 2)
	assert.Nil(t, result.Digests["upper"])
	assert.Nil(t, result.Digests["ast"])
	assert.Contains(t, result.Warnings["upper"], "report.pdf")
	assert.Empty(t, result.Errors)
}

func TestPoolCompare(t *testing.T) {
	p := startPool(t)

	older, err := digest.Compress([]byte("SAME"))
	require.NoError(t, err)
	newer, err := digest.Compress([]byte("SAME"))
	require.NoError(t, err)

	score, err := p.Compare(context.Background(), digest.Pair{
		OlderFileID: 1, NewerFileID: 2, Type: "upper",
		OlderContent: older, NewerContent: newer,
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
}

func TestPoolCompareUnknownType(t *testing.T) {
	p := startPool(t)

	content, err := digest.Compress([]byte("x"))
	require.NoError(t, err)

	_, err = p.Compare(context.Background(), digest.Pair{
		OlderFileID: 1, NewerFileID: 2, Type: "ast",
		OlderContent: content, NewerContent: content,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ast")
}

func TestPoolCompareSurvivesPanickingComparer(t *testing.T) {
	p := startPool(t)

	content, err := digest.Compress([]byte("x"))
	require.NoError(t, err)

	_, err = p.Compare(context.Background(), digest.Pair{
		OlderFileID: 666, NewerFileID: 2, Type: "upper",
		OlderContent: content, NewerContent: content,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic")

	// Still alive afterwards.
	score, err := p.Compare(context.Background(), digest.Pair{
		OlderFileID: 1, NewerFileID: 2, Type: "upper",
		OlderContent: content, NewerContent: content,
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
}

func TestPoolStopRejectsNewWork(t *testing.T) {
	registry, err := plugin.Load(nil)
	require.NoError(t, err)

	p := New(Config{Workers: 1}, registry)
	require.NoError(t, p.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, p.Stop(ctx))

	_, err = p.Extract(context.Background(), textFile("a.txt", "upper"), []byte("late"))
	assert.True(t, errors.Is(err, ErrStopped))
}

func TestPoolSubmitsRacingStop(t *testing.T) {
	registry, err := plugin.Load(nil)
	require.NoError(t, err)

	p := New(Config{Workers: 2, QueueSize: 1}, registry)
	require.NoError(t, p.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Hammer the pool from many goroutines while Stop runs. Every call
	// must either complete or report ErrStopped; none may panic or hang.
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				result, err := p.Extract(ctx, textFile("a.txt", "upper"), []byte("hello"))
				if err != nil {
					require.True(t, errors.Is(err, ErrStopped) || errors.Is(err, context.DeadlineExceeded))
					return
				}
				require.Contains(t, result.Digests, "upper")
			}
		}()
	}

	time.Sleep(5 * time.Millisecond)
	require.NoError(t, p.Stop(ctx))
	wg.Wait()

	_, err = p.Extract(ctx, textFile("a.txt", "upper"), []byte("late"))
	assert.True(t, errors.Is(err, ErrStopped))
}
