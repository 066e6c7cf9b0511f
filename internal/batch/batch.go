// Package batch processes collections of text files through a detector
// with a bounded worker pool.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/MeKo-Tech/langid/internal/detect"
	"github.com/MeKo-Tech/langid/internal/language"
	"github.com/google/uuid"
)

// Config holds batch processing settings.
type Config struct {
	Workers    int      // Number of parallel workers (0 = runtime.NumCPU())
	Recursive  bool     // Descend into subdirectories
	Extensions []string // File extensions to include, e.g. [".txt"]
}

// FileResult is the detection outcome for one input file.
type FileResult struct {
	Path       string                   `json:"path"`
	Language   language.Language        `json:"language"`
	Confidence []detect.ConfidenceValue `json:"confidence,omitempty"`
	Err        string                   `json:"error,omitempty"`
}

// Result summarizes one batch run.
type Result struct {
	JobID    string        `json:"job_id"`
	Files    []FileResult  `json:"files"`
	Duration time.Duration `json:"duration_ns"`
	Failed   int           `json:"failed"`
}

// Process discovers text files under the given paths and detects the
// language of each. Per-file read errors are recorded in the result;
// detector errors abort the whole batch.
func Process(d *detect.Detector, paths []string, cfg Config) (*Result, error) {
	return ProcessContext(context.Background(), d, paths, cfg)
}

// ProcessContext is Process with cancellation support.
func ProcessContext(ctx context.Context, d *detect.Detector, paths []string, cfg Config) (*Result, error) {
	files, err := discoverTextFiles(paths, cfg.Recursive, cfg.Extensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("no text files found")
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(files) {
		workers = len(files)
	}

	jobID := uuid.NewString()
	slog.Debug("starting batch job", "job_id", jobID, "files", len(files), "workers", workers)
	start := time.Now()

	results := make([]FileResult, len(files))
	errs := make([]error, len(files))
	jobs := make(chan int, len(files))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					return
				}
				results[i], errs[i] = processFile(d, files[i])
			}
		}()
	}
	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", files[i], err)
		}
	}

	failed := 0
	for _, r := range results {
		if r.Err != "" {
			failed++
		}
	}

	return &Result{
		JobID:    jobID,
		Files:    results,
		Duration: time.Since(start),
		Failed:   failed,
	}, nil
}

// processFile reads one file and detects its language. Read failures are
// per-file data, detector failures are returned.
func processFile(d *detect.Detector, path string) (FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Err: err.Error()}, nil
	}

	text := string(data)
	l, err := d.DetectLanguageOf(text)
	if err != nil {
		return FileResult{}, err
	}
	values, err := d.ComputeLanguageConfidenceValues(text)
	if err != nil {
		return FileResult{}, err
	}

	return FileResult{Path: path, Language: l, Confidence: values}, nil
}
