package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/MeKo-Tech/langid/internal/language"
	"github.com/andybalholm/brotli"
)

// ErrModelLoad marks failures to read, decompress or parse a persisted model.
// Callers can match it with errors.Is.
var ErrModelLoad = errors.New("model load failed")

// probabilityPayload is the decompressed JSON shape of a probability model.
// Each ngrams key is a reduced fraction over the group's common denominator
// and its value is a space-separated list of n-grams sharing that probability.
type probabilityPayload struct {
	Language string            `json:"language"`
	Ngrams   map[string]string `json:"ngrams"`
}

// countPayload is the decompressed JSON shape of a count model. Each entry is
// a space-separated list of n-grams.
type countPayload struct {
	Language string   `json:"language"`
	Ngrams   []string `json:"ngrams"`
}

// loadProbabilityModel reads, decompresses and parses one probability model.
func loadProbabilityModel(modelsDir string, lang language.Language, order int) (*ProbabilityModel, error) {
	path := ProbabilityModelPath(modelsDir, lang, order)
	data, err := readCompressed(path)
	if err != nil {
		return nil, err
	}

	var payload probabilityPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrModelLoad, path, err)
	}

	ngrams := make(map[string]float64)
	for fraction, list := range payload.Ngrams {
		logProb, err := parseFraction(fraction)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrModelLoad, path, err)
		}
		for _, ngram := range strings.Fields(list) {
			ngrams[ngram] = logProb
		}
	}

	slog.Debug("loaded probability model",
		"language", lang.String(), "order", order, "ngrams", len(ngrams))
	return &ProbabilityModel{language: lang, order: order, ngrams: ngrams}, nil
}

// loadCountModel reads, decompresses and parses one unique/most-common model.
func loadCountModel(modelsDir string, lang language.Language, order int, kind Kind) (*CountModel, error) {
	path := CountModelPath(modelsDir, lang, order, kind)
	data, err := readCompressed(path)
	if err != nil {
		return nil, err
	}

	var payload countPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrModelLoad, path, err)
	}

	ngrams := make(map[string]struct{})
	for _, list := range payload.Ngrams {
		for _, ngram := range strings.Fields(list) {
			ngrams[ngram] = struct{}{}
		}
	}

	slog.Debug("loaded count model",
		"language", lang.String(), "order", order, "kind", kind.String(), "ngrams", len(ngrams))
	return &CountModel{language: lang, order: order, kind: kind, ngrams: ngrams}, nil
}

// readCompressed reads a Brotli-compressed file and returns its
// decompressed contents.
func readCompressed(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrModelLoad, path, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(brotli.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%w: decompressing %s: %v", ErrModelLoad, path, err)
	}
	return data, nil
}

// parseFraction converts a "num/den" fraction into its natural logarithm.
func parseFraction(s string) (float64, error) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return 0, fmt.Errorf("malformed fraction %q", s)
	}
	n, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed fraction %q: %v", s, err)
	}
	d, err := strconv.ParseUint(den, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed fraction %q: %v", s, err)
	}
	if n == 0 || d == 0 {
		return 0, fmt.Errorf("fraction %q is not in (0, 1]", s)
	}
	return math.Log(float64(n) / float64(d)), nil
}
