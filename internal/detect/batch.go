package detect

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/MeKo-Tech/langid/internal/language"
)

// batch runs fn over every text with a bounded worker pool, preserving input
// order. The pool never changes results, it only spreads independent
// detections over the available cores. Batch operations fail as a whole: if
// any text fails, the call returns no results and the error of the failing
// text with the lowest index. With more than one worker, the remaining texts
// are still processed before the call returns.
func batch[T any](ctx context.Context, texts []string, fn func(string) (T, error)) ([]T, error) {
	results := make([]T, len(texts))
	if len(texts) == 0 {
		return results, nil
	}

	workers := runtime.NumCPU()
	if workers > len(texts) {
		workers = len(texts)
	}
	if workers == 1 {
		for i, text := range texts {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			r, err := fn(text)
			if err != nil {
				return nil, fmt.Errorf("text %d: %w", i, err)
			}
			results[i] = r
		}
		return results, nil
	}

	jobs := make(chan int, len(texts))
	errs := make([]error, len(texts))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					return
				}
				results[i], errs[i] = fn(texts[i])
			}
		}()
	}

	for i := range texts {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("text %d: %w", i, err)
		}
	}
	return results, nil
}

// DetectLanguagesOf runs DetectLanguageOf over every text, in input order.
func (d *Detector) DetectLanguagesOf(texts []string) ([]language.Language, error) {
	return d.DetectLanguagesOfContext(context.Background(), texts)
}

// DetectLanguagesOfContext is DetectLanguagesOf with cancellation support.
func (d *Detector) DetectLanguagesOfContext(ctx context.Context, texts []string) ([]language.Language, error) {
	return batch(ctx, texts, d.DetectLanguageOf)
}

// ComputeLanguageConfidenceValuesOf runs ComputeLanguageConfidenceValues
// over every text, in input order.
func (d *Detector) ComputeLanguageConfidenceValuesOf(texts []string) ([][]ConfidenceValue, error) {
	return d.ComputeLanguageConfidenceValuesOfContext(context.Background(), texts)
}

// ComputeLanguageConfidenceValuesOfContext is the context-aware variant.
func (d *Detector) ComputeLanguageConfidenceValuesOfContext(ctx context.Context, texts []string) ([][]ConfidenceValue, error) {
	return batch(ctx, texts, d.ComputeLanguageConfidenceValues)
}

// ComputeLanguageConfidenceOf returns the probability of one language for
// every text, in input order.
func (d *Detector) ComputeLanguageConfidenceOf(texts []string, l language.Language) ([]float64, error) {
	return d.ComputeLanguageConfidenceOfContext(context.Background(), texts, l)
}

// ComputeLanguageConfidenceOfContext is the context-aware variant.
func (d *Detector) ComputeLanguageConfidenceOfContext(ctx context.Context, texts []string, l language.Language) ([]float64, error) {
	return batch(ctx, texts, func(text string) (float64, error) {
		return d.ComputeLanguageConfidence(text, l)
	})
}
