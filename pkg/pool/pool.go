// Package pool runs extractor and comparer plugins off the
// orchestration path. A fixed set of workers drains a bounded task
// channel; each worker owns its own plugin instances, built once at
// startup, so plugin state never crosses goroutines.
//
// Digest bytes are gzip-compressed at this boundary: extractors and
// comparers see raw bytes, everything outside the pool sees compressed
// bytes. A nil digest is never compressed.
package pool

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/moodle-tools/simwatch/pkg/digest"
	"github.com/moodle-tools/simwatch/pkg/metrics"
	"github.com/moodle-tools/simwatch/pkg/plugin"
)

// ErrStopped is returned by Submit calls after the pool shut down.
var ErrStopped = errors.New("worker pool stopped")

// Config sizes the pool.
type Config struct {
	Workers   int
	QueueSize int
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = 2
	}
	if c.QueueSize <= 0 {
		c.QueueSize = 2 * c.Workers
	}
	return c
}

// ExtractResult is the outcome of one extraction task. Digests carries
// compressed bytes keyed by digest type; a nil value records "attempted,
// nothing produced". Errors carries per-plugin failures; a failing
// plugin never takes the pool down.
type ExtractResult struct {
	Digests  map[string][]byte
	Warnings map[string]string
	Errors   []error
}

type extractTask struct {
	file  digest.FileToProcess
	data  []byte
	reply chan extractReply
}

type extractReply struct {
	result ExtractResult
	err    error
}

type compareTask struct {
	pair  digest.Pair
	reply chan compareReply
}

type compareReply struct {
	score float64
	err   error
}

type task struct {
	extract *extractTask
	compare *compareTask
}

// Pool is the shared worker pool. Start it once; Submit methods are
// safe for concurrent use.
type Pool struct {
	cfg      Config
	registry *plugin.Registry

	// checkers holds one extractor set used only for CanProcess checks.
	checkers []plugin.Extractor

	tasks chan task
	done  chan struct{}
	wg    sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

// New creates an idle pool; no workers run until Start.
func New(cfg Config, registry *plugin.Registry) *Pool {
	cfg = cfg.withDefaults()
	return &Pool{
		cfg:      cfg,
		registry: registry,
		tasks:    make(chan task, cfg.QueueSize),
		done:     make(chan struct{}),
	}
}

// Start builds each worker's plugin instances and launches the workers.
// A plugin that fails to initialize fails the whole start.
func (p *Pool) Start(ctx context.Context) error {
	checkers, err := p.registry.NewExtractors()
	if err != nil {
		return fmt.Errorf("building plugins: %w", err)
	}
	p.checkers = checkers

	workers := make([]*worker, 0, p.cfg.Workers)
	for i := 0; i < p.cfg.Workers; i++ {
		extractors, err := p.registry.NewExtractors()
		if err != nil {
			return fmt.Errorf("building worker plugins: %w", err)
		}
		comparers, err := p.registry.NewComparers()
		if err != nil {
			return fmt.Errorf("building worker plugins: %w", err)
		}
		workers = append(workers, &worker{
			id:         uuid.NewString(),
			extractors: extractors,
			comparers:  comparers,
		})
	}

	for _, w := range workers {
		p.wg.Add(1)
		go func(w *worker) {
			defer p.wg.Done()
			w.run(p.tasks, p.done)
		}(w)
	}
	slog.Info("Worker pool started", "workers", p.cfg.Workers, "queue_size", p.cfg.QueueSize)
	return nil
}

// Stop signals the workers and waits for queued work to drain. The task
// channel is never closed: submits racing Stop either land before the
// stop flag flips and get drained, or get ErrStopped.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	alreadyStopped := p.stopped
	p.stopped = true
	p.mu.Unlock()
	if !alreadyStopped {
		close(p.done)
	}

	drained := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(drained)
	}()
	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for worker pool shutdown: %w", ctx.Err())
	}
}

// submit holds the stop lock across the send, so every enqueued task is
// in the channel before Stop signals the workers.
func (p *Pool) submit(ctx context.Context, t task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrStopped
	}
	select {
	case p.tasks <- t:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Extract runs every capable extractor over the file's raw bytes and
// returns the compressed digests for the file's missing types.
func (p *Pool) Extract(ctx context.Context, file digest.FileToProcess, data []byte) (ExtractResult, error) {
	t := extractTask{file: file, data: data, reply: make(chan extractReply, 1)}
	if err := p.submit(ctx, task{extract: &t}); err != nil {
		return ExtractResult{}, err
	}
	select {
	case r := <-t.reply:
		return r.result, r.err
	case <-ctx.Done():
		return ExtractResult{}, ctx.Err()
	}
}

// Compare scores one digest pair. Pair contents are compressed; the
// worker decompresses before handing them to the comparer.
func (p *Pool) Compare(ctx context.Context, pair digest.Pair) (float64, error) {
	t := compareTask{pair: pair, reply: make(chan compareReply, 1)}
	if err := p.submit(ctx, task{compare: &t}); err != nil {
		return 0, err
	}
	select {
	case r := <-t.reply:
		return r.score, r.err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

type worker struct {
	id         string
	extractors []plugin.Extractor
	comparers  []plugin.Comparer
}

func (w *worker) run(tasks <-chan task, done <-chan struct{}) {
	log := slog.With("worker_id", w.id)
	log.Debug("Worker started")
	defer log.Debug("Worker stopped")
	for {
		select {
		case t := <-tasks:
			w.handle(t)
		case <-done:
			// Drain work enqueued before the stop signal.
			for {
				select {
				case t := <-tasks:
					w.handle(t)
				default:
					return
				}
			}
		}
	}
}

func (w *worker) handle(t task) {
	switch {
	case t.extract != nil:
		result := w.extract(t.extract.file, t.extract.data)
		t.extract.reply <- extractReply{result: result}
	case t.compare != nil:
		score, err := w.compare(t.compare.pair)
		t.compare.reply <- compareReply{score: score, err: err}
	}
}

// extract runs every extractor that can process the file and emits at
// least one of its missing types. Digests for types outside the missing
// set are discarded. Missing types no extractor accepts become null
// digests, so the file leaves the missing-digest scan instead of being
// re-downloaded every cycle; a failing extractor's types stay absent
// and retry.
func (w *worker) extract(file digest.FileToProcess, data []byte) ExtractResult {
	missing := make(map[string]bool, len(file.MissingTypes))
	for _, t := range file.MissingTypes {
		missing[t] = true
	}

	result := ExtractResult{
		Digests:  make(map[string][]byte),
		Warnings: make(map[string]string),
	}
	accepted := make(map[string]bool, len(missing))
	for _, ex := range w.extractors {
		if !emitsAny(ex.DigestTypes(), missing) {
			continue
		}
		if !ex.CanProcess(file.Filename, file.MimeType, file.Size) {
			continue
		}
		for _, t := range ex.DigestTypes() {
			if missing[t] {
				accepted[t] = true
			}
		}

		digests, warnings, err := safeProcess(ex, file.Filename, file.MimeType, data)
		if err != nil {
			metrics.PluginFailures.WithLabelValues("extractor").Inc()
			result.Errors = append(result.Errors, fmt.Errorf("extractor %q on %s: %w", ex.Name(), file.Filename, err))
			continue
		}
		for typ, raw := range digests {
			if !missing[typ] {
				continue
			}
			compressed, err := digest.Compress(raw)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("compressing %q digest of %s: %w", typ, file.Filename, err))
				continue
			}
			result.Digests[typ] = compressed
		}
		for typ, msg := range warnings {
			result.Warnings[typ] = msg
		}
	}

	for _, t := range file.MissingTypes {
		if accepted[t] {
			continue
		}
		result.Digests[t] = nil
		result.Warnings[t] = unprocessableMessage(file)
	}
	return result
}

// ProcessableTypes splits the file's missing digest types by whether
// any registered extractor accepts the file. The check needs only
// metadata, so callers can decide before downloading content.
func (p *Pool) ProcessableTypes(file digest.FileToProcess) (processable, unprocessable []string) {
	emitted := make(map[string]bool)
	for _, ex := range p.checkers {
		if !ex.CanProcess(file.Filename, file.MimeType, file.Size) {
			continue
		}
		for _, t := range ex.DigestTypes() {
			emitted[t] = true
		}
	}
	for _, t := range file.MissingTypes {
		if emitted[t] {
			processable = append(processable, t)
		} else {
			unprocessable = append(unprocessable, t)
		}
	}
	return processable, unprocessable
}

// Unprocessable is the terminal result for missing types no extractor
// accepts: null digests keep the file out of the next missing-digest
// scan, warnings record why.
func Unprocessable(file digest.FileToProcess, types []string) ExtractResult {
	r := ExtractResult{
		Digests:  make(map[string][]byte, len(types)),
		Warnings: make(map[string]string, len(types)),
	}
	for _, t := range types {
		r.Digests[t] = nil
		r.Warnings[t] = unprocessableMessage(file)
	}
	return r
}

func unprocessableMessage(file digest.FileToProcess) string {
	return fmt.Sprintf("no extractor accepts %s (%s, %d bytes)", file.Filename, file.MimeType, file.Size)
}

func (w *worker) compare(pair digest.Pair) (float64, error) {
	older, err := digest.Decompress(pair.OlderContent)
	if err != nil {
		return 0, fmt.Errorf("decompressing older digest of file %d: %w", pair.OlderFileID, err)
	}
	newer, err := digest.Decompress(pair.NewerContent)
	if err != nil {
		return 0, fmt.Errorf("decompressing newer digest of file %d: %w", pair.NewerFileID, err)
	}

	for _, c := range w.comparers {
		if !contains(c.DigestTypes(), pair.Type) {
			continue
		}
		score, err := safeCompare(c, pair.Type, pair.OlderFileID, older, pair.NewerFileID, newer)
		if err != nil {
			metrics.PluginFailures.WithLabelValues("comparer").Inc()
			return 0, fmt.Errorf("comparer %q on pair (%d, %d): %w", c.Name(), pair.OlderFileID, pair.NewerFileID, err)
		}
		return score, nil
	}
	return 0, fmt.Errorf("no comparer handles digest type %q", pair.Type)
}

// safeProcess shields the worker from a panicking extractor.
func safeProcess(ex plugin.Extractor, filename, mimeType string, data []byte) (d map[string][]byte, w map[string]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return ex.Process(filename, mimeType, data)
}

// safeCompare shields the worker from a panicking comparer.
func safeCompare(c plugin.Comparer, typ string, olderID int, older []byte, newerID int, newer []byte) (score float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return c.Compare(typ, olderID, older, newerID, newer)
}

func emitsAny(types []string, missing map[string]bool) bool {
	for _, t := range types {
		if missing[t] {
			return true
		}
	}
	return false
}

func contains(types []string, want string) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}
