// Package pipeline is the two-stage comparison pipeline: the extraction
// flow turns cached files into digests, the comparison flow turns
// unpaired digests into similarity rows. One periodic loop drives both
// flows to completion and swallows every error at the loop level, so a
// bad cycle never kills the task.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/moodle-tools/simwatch/pkg/config"
	"github.com/moodle-tools/simwatch/pkg/digest"
	"github.com/moodle-tools/simwatch/pkg/metrics"
	"github.com/moodle-tools/simwatch/pkg/pool"
)

// Downloader fetches submitted file content from the LMS.
type Downloader interface {
	Download(ctx context.Context, fileURL string) (io.ReadCloser, error)
}

// DigestStore is the slice of the digest repository the pipeline uses.
type DigestStore interface {
	StreamFilesWithMissingDigests(ctx context.Context, available []string, maxAge *time.Duration, maxSize *int64) (digest.FileIterator, error)
	StoreDigests(ctx context.Context, records []digest.Record) error
	StoreWarnings(ctx context.Context, warnings []digest.Warning) error
	StreamMissingComparisons(ctx context.Context) (digest.PairIterator, error)
	StoreComparisons(ctx context.Context, comparisons []digest.Comparison) error
}

// Worker is the slice of the worker pool the pipeline uses.
type Worker interface {
	ProcessableTypes(file digest.FileToProcess) (processable, unprocessable []string)
	Extract(ctx context.Context, file digest.FileToProcess, data []byte) (pool.ExtractResult, error)
	Compare(ctx context.Context, pair digest.Pair) (float64, error)
}

// Pipeline runs the extraction and comparison flows.
type Pipeline struct {
	cfg         *config.Config
	store       DigestStore
	downloader  Downloader
	worker      Worker
	digestTypes []string

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// New creates a pipeline. digestTypes is the union of types the loaded
// extractors can emit.
func New(cfg *config.Config, store DigestStore, downloader Downloader, worker Worker, digestTypes []string) *Pipeline {
	return &Pipeline{
		cfg:         cfg,
		store:       store,
		downloader:  downloader,
		worker:      worker,
		digestTypes: digestTypes,
	}
}

// Start launches the periodic loop as a background task.
func (p *Pipeline) Start(ctx context.Context) error {
	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	p.cancel = cancel
	p.done = make(chan struct{})
	go p.loop(loopCtx)
	slog.Info("Comparison pipeline started",
		"refresh_interval", p.cfg.RefreshInterval,
		"batch_size", p.cfg.Pipeline.BatchSize,
		"digest_types", p.digestTypes)
	return nil
}

// Stop cancels the loop and waits for the current cycle to wind down.
func (p *Pipeline) Stop(ctx context.Context) error {
	p.once.Do(func() {
		if p.cancel != nil {
			p.cancel()
		}
	})
	if p.done == nil {
		return nil
	}
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for pipeline shutdown: %w", ctx.Err())
	}
}

func (p *Pipeline) loop(ctx context.Context) {
	defer close(p.done)
	ticker := time.NewTicker(p.cfg.RefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("Comparison pipeline stopped")
			return
		case <-ticker.C:
		}
		if err := p.RunCycle(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				continue
			}
			metrics.CycleErrors.Inc()
			slog.Error("Comparison cycle failed", "error", err)
		}
	}
}

// RunCycle runs the extraction flow to completion, then the comparison
// flow to completion. Exposed so a forced cycle can be driven outside
// the periodic loop.
func (p *Pipeline) RunCycle(ctx context.Context) error {
	if err := p.runExtraction(ctx); err != nil {
		return fmt.Errorf("extraction flow: %w", err)
	}
	if err := p.runComparison(ctx); err != nil {
		return fmt.Errorf("comparison flow: %w", err)
	}
	return nil
}

// runExtraction streams files lacking digests and processes them in
// batches: download, extract on the pool, persist digests and warnings.
// A failed download drops the file from this batch only; it reappears
// next cycle.
func (p *Pipeline) runExtraction(ctx context.Context) error {
	stream, err := p.store.StreamFilesWithMissingDigests(ctx, p.digestTypes, p.cfg.IgnoreFilesOlderThan, p.cfg.IgnoreFilesLargerThan)
	if err != nil {
		return err
	}
	defer func() { _ = stream.Close() }()

	var processed, failed int
	batch := make([]digest.FileToProcess, 0, p.cfg.Pipeline.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		ok, bad, err := p.extractBatch(ctx, batch)
		processed += ok
		failed += bad
		batch = batch[:0]
		return err
	}

	for {
		file, ok := stream.Next()
		if !ok {
			break
		}
		batch = append(batch, file)
		if len(batch) == p.cfg.Pipeline.BatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := stream.Err(); err != nil {
		return err
	}
	if err := flush(); err != nil {
		return err
	}

	if processed > 0 || failed > 0 {
		slog.Info("Extraction flow finished", "files_processed", processed, "files_failed", failed)
	}
	return nil
}

type extracted struct {
	file   digest.FileToProcess
	result pool.ExtractResult
}

// extractBatch downloads and extracts one batch concurrently, then
// persists the results. Returns the per-batch success/failure counts.
func (p *Pipeline) extractBatch(ctx context.Context, batch []digest.FileToProcess) (processed, failed int, err error) {
	results := make([]*extracted, len(batch))
	g, gctx := errgroup.WithContext(ctx)
	for i, file := range batch {
		g.Go(func() error {
			// A file no extractor accepts gets null digests without a
			// download; it must not reappear next cycle.
			if processable, unprocessable := p.worker.ProcessableTypes(file); len(processable) == 0 {
				slog.Warn("No extractor accepts file, recording null digests",
					"file_id", file.FileID, "filename", file.Filename, "mimetype", file.MimeType)
				results[i] = &extracted{file: file, result: pool.Unprocessable(file, unprocessable)}
				return nil
			}
			data, err := p.download(gctx, file)
			if err != nil {
				metrics.DownloadFailures.Inc()
				slog.Warn("Download failed, dropping file from this batch",
					"file_id", file.FileID, "filename", file.Filename, "error", err)
				return nil
			}
			result, err := p.worker.Extract(gctx, file, data)
			if err != nil {
				return fmt.Errorf("extracting %s: %w", file.Filename, err)
			}
			results[i] = &extracted{file: file, result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, len(batch), err
	}

	var records []digest.Record
	var warnings []digest.Warning
	for _, r := range results {
		if r == nil {
			failed++
			continue
		}
		processed++
		for _, e := range r.result.Errors {
			slog.Warn("Extractor failed for file",
				"file_id", r.file.FileID, "filename", r.file.Filename, "error", e)
		}
		for typ, content := range r.result.Digests {
			records = append(records, digest.Record{
				FileID:       r.file.FileID,
				Type:         typ,
				Content:      content,
				AssignmentID: r.file.AssignmentID,
				SubmissionID: r.file.SubmissionID,
				UserID:       r.file.UserID,
				Uploaded:     r.file.Uploaded,
			})
		}
		for typ, msg := range r.result.Warnings {
			warnings = append(warnings, digest.Warning{
				FileID:  r.file.FileID,
				Type:    typ,
				Message: msg,
			})
		}
		metrics.FilesDigested.Inc()
	}

	if err := p.store.StoreDigests(ctx, records); err != nil {
		return processed, failed, err
	}
	if err := p.store.StoreWarnings(ctx, warnings); err != nil {
		return processed, failed, err
	}
	slog.Debug("Extraction batch persisted",
		"files", processed, "digests", len(records), "warnings", len(warnings))
	return processed, failed, nil
}

func (p *Pipeline) download(ctx context.Context, file digest.FileToProcess) ([]byte, error) {
	body, err := p.downloader.Download(ctx, file.URL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = body.Close() }()
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("reading download body: %w", err)
	}
	return data, nil
}

// runComparison streams unpaired digests and scores them in batches. A
// pair that fails on the pool is logged and not persisted, so the next
// cycle retries it.
func (p *Pipeline) runComparison(ctx context.Context) error {
	stream, err := p.store.StreamMissingComparisons(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = stream.Close() }()

	var scored, failed int
	batch := make([]digest.Pair, 0, p.cfg.Pipeline.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		ok, bad, err := p.compareBatch(ctx, batch)
		scored += ok
		failed += bad
		batch = batch[:0]
		return err
	}

	for {
		pair, ok := stream.Next()
		if !ok {
			break
		}
		batch = append(batch, pair)
		if len(batch) == p.cfg.Pipeline.BatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := stream.Err(); err != nil {
		return err
	}
	if err := flush(); err != nil {
		return err
	}

	if scored > 0 || failed > 0 {
		slog.Info("Comparison flow finished", "pairs_scored", scored, "pairs_failed", failed)
	}
	return nil
}

func (p *Pipeline) compareBatch(ctx context.Context, batch []digest.Pair) (scored, failed int, err error) {
	results := make([]*digest.Comparison, len(batch))
	g, gctx := errgroup.WithContext(ctx)
	for i, pair := range batch {
		g.Go(func() error {
			score, err := p.worker.Compare(gctx, pair)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}
				slog.Warn("Comparison failed for pair",
					"older_file_id", pair.OlderFileID,
					"newer_file_id", pair.NewerFileID,
					"digest_type", pair.Type,
					"error", err)
				return nil
			}
			results[i] = &digest.Comparison{
				OlderFileID: pair.OlderFileID,
				OlderType:   pair.Type,
				NewerFileID: pair.NewerFileID,
				NewerType:   pair.Type,
				Score:       score,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, len(batch), err
	}

	var comparisons []digest.Comparison
	for _, r := range results {
		if r == nil {
			failed++
			continue
		}
		scored++
		comparisons = append(comparisons, *r)
	}
	if err := p.store.StoreComparisons(ctx, comparisons); err != nil {
		return scored, failed, err
	}
	metrics.ComparisonsStored.Add(float64(len(comparisons)))
	return scored, failed, nil
}
