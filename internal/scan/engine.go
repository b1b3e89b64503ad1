package scan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"profilescan/internal/classify"
)

// ErrInterrupted is returned when an external interrupt cancels the scan
// during enumeration or the parallel phase. It maps to its own exit code at
// the CLI boundary and must never carry partial results.
var ErrInterrupted = errors.New("scan interrupted")

// Match records one file whose profile equals a target set member.
type Match struct {
	Path    string
	Profile string
}

// Summary aggregates the outcome of one scan invocation.
type Summary struct {
	FilesScanned int
	Matches      []Match
}

// ProfileReader extracts the video profile for a single file. The boolean
// reports presence; implementations must swallow per-file failures.
type ProfileReader interface {
	Profile(ctx context.Context, path string) (string, bool)
}

// Options configure an Engine.
type Options struct {
	Extractor  ProfileReader
	Classifier *classify.Classifier
	// Workers bounds the pool size; values <= 0 fall back to the host's
	// available parallelism.
	Workers int
	// Extensions filters candidates by lowercase extension including the
	// leading dot, e.g. ".mkv".
	Extensions []string
	Logger     *slog.Logger
}

// Engine runs the enumerate/dispatch/collect pipeline.
type Engine struct {
	extractor  ProfileReader
	classifier *classify.Classifier
	workers    int
	extensions map[string]struct{}
	logger     *slog.Logger
}

// NewEngine validates options and constructs an Engine.
func NewEngine(opts Options) (*Engine, error) {
	if opts.Extractor == nil {
		return nil, errors.New("scan engine: extractor is required")
	}
	if opts.Classifier == nil {
		return nil, errors.New("scan engine: classifier is required")
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	extensions := make(map[string]struct{}, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		extensions[ext] = struct{}{}
	}
	if len(extensions) == 0 {
		return nil, errors.New("scan engine: at least one extension is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		extractor:  opts.Extractor,
		classifier: opts.Classifier,
		workers:    workers,
		extensions: extensions,
		logger:     logger,
	}, nil
}

// Workers returns the effective pool size.
func (e *Engine) Workers() int {
	return e.workers
}

type fileResult struct {
	path    string
	outcome classify.Outcome
}

// Run scans root and returns the gathered summary. A cancelled context
// yields ErrInterrupted; per-file extraction failures never abort the run.
func (e *Engine) Run(ctx context.Context, root string) (Summary, error) {
	runID := uuid.NewString()
	logger := e.logger.With(slog.String("run_id", runID))
	started := time.Now()

	files, err := e.enumerate(ctx, root, logger)
	if err != nil {
		return Summary{}, err
	}

	logger.Info("scan started",
		slog.String("root", root),
		slog.Int("files", len(files)),
		slog.Int("workers", e.workers))

	if len(files) == 0 {
		return Summary{}, nil
	}

	jobs := make(chan string)
	// Buffered to the backlog size so abandoned workers can always finish
	// their current unit without a blocked send.
	results := make(chan fileResult, len(files))

	workers := e.workers
	if workers > len(files) {
		workers = len(files)
	}
	for i := 0; i < workers; i++ {
		go e.worker(jobs, results, logger)
	}

	go func() {
		defer close(jobs)
		for _, path := range files {
			select {
			case jobs <- path:
			case <-ctx.Done():
				return
			}
		}
	}()

	var matches []Match
	for collected := 0; collected < len(files); collected++ {
		select {
		case result := <-results:
			if result.outcome.Kind == classify.Match {
				matches = append(matches, Match{Path: result.path, Profile: result.outcome.Profile})
			}
		case <-ctx.Done():
			return Summary{}, ErrInterrupted
		}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Path < matches[j].Path })

	logger.Info("scan finished",
		slog.Int("files", len(files)),
		slog.Int("matches", len(matches)),
		slog.Duration("elapsed", time.Since(started).Round(time.Millisecond)))

	return Summary{FilesScanned: len(files), Matches: matches}, nil
}

// worker drains the backlog until it closes. Extraction runs against the
// background context: only the coordinator reacts to an interrupt, so a
// worker either finishes its current unit or is abandoned with the process.
func (e *Engine) worker(jobs <-chan string, results chan<- fileResult, logger *slog.Logger) {
	for path := range jobs {
		profile, present := e.extractor.Profile(context.Background(), path)
		outcome := e.classifier.Classify(profile, present)
		switch outcome.Kind {
		case classify.Skip:
			logger.Debug("skip", slog.String("file", path), slog.String("reason", "no video track or unreadable"))
		default:
			logger.Debug("checked", slog.String("file", path), slog.String("profile", profile))
		}
		results <- fileResult{path: path, outcome: outcome}
	}
}

// enumerate walks root and collects candidate files sorted by path. An
// unreadable subdirectory is logged and skipped; an error on the root itself
// is fatal. Cancellation aborts the walk with ErrInterrupted.
func (e *Engine) enumerate(ctx context.Context, root string, logger *slog.Logger) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if ctx.Err() != nil {
			return ErrInterrupted
		}
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			logger.Warn("unreadable entry skipped", slog.String("path", path), slog.Any("error", walkErr))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := e.extensions[strings.ToLower(filepath.Ext(path))]; ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInterrupted) {
			return nil, ErrInterrupted
		}
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(files)
	return files, nil
}
