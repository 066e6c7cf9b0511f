// Package testutil builds synthetic language model trees for tests. The
// fixtures use the same on-disk layout and compression as production models,
// so loader and detector tests exercise the real read path.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/MeKo-Tech/langid/internal/language"
	"github.com/MeKo-Tech/langid/internal/textproc"
	"github.com/andybalholm/brotli"
)

// Corpus maps each language to the sample sentences its models are
// estimated from.
type Corpus map[language.Language][]string

// WriteModels estimates n-gram models of all orders from the corpus and
// writes them as Brotli-compressed JSON under dir, using the production
// models/<iso1>/models/ layout. It returns dir for convenience.
func WriteModels(t *testing.T, dir string, corpus Corpus) string {
	t.Helper()

	// Per-language, per-order n-gram counts.
	counts := make(map[language.Language][6]map[string]int)
	for lang, sentences := range corpus {
		var perOrder [6]map[string]int
		for n := 1; n <= 5; n++ {
			perOrder[n] = make(map[string]int)
		}
		for _, sentence := range sentences {
			cleaned := textproc.Clean(sentence)
			for n := 1; n <= 5; n++ {
				for _, g := range textproc.TextNgrams(cleaned, n) {
					perOrder[n][g]++
				}
			}
		}
		counts[lang] = perOrder
	}

	for lang, perOrder := range counts {
		modelDir := filepath.Join(dir, lang.IsoCode639_1(), "models")
		if err := os.MkdirAll(modelDir, 0o755); err != nil {
			t.Fatalf("creating model dir: %v", err)
		}

		for n := 1; n <= 5; n++ {
			writeProbabilityFile(t, modelDir, lang, n, perOrder[n], perOrder[n-1])
		}

		writeCountFile(t, modelDir, "unique_trigrams.json.br", lang,
			uniqueTrigrams(lang, counts))
		writeCountFile(t, modelDir, "most_common_trigrams.json.br", lang,
			mostCommonTrigrams(perOrder[3]))
	}
	return dir
}

// writeProbabilityFile groups n-grams by probability and writes the
// fraction-keyed probability payload. Unigrams are relative to the unigram
// total; an n-gram of higher order is relative to the count of its
// (n-1)-gram prefix, taken from lower.
func writeProbabilityFile(t *testing.T, modelDir string, lang language.Language, order int, counts, lower map[string]int) {
	t.Helper()

	total := 0
	for _, c := range counts {
		total += c
	}

	byFraction := make(map[string][]string)
	for g, c := range counts {
		den := total
		if order > 1 {
			den = lower[textproc.Prefix(g, order-1)]
		}
		key := fmt.Sprintf("%d/%d", c, den)
		byFraction[key] = append(byFraction[key], g)
	}

	ngrams := make(map[string]string, len(byFraction))
	for key, grams := range byFraction {
		sort.Strings(grams)
		ngrams[key] = join(grams)
	}

	payload := map[string]any{
		"language": lang.String(),
		"ngrams":   ngrams,
	}
	file := fmt.Sprintf("%ss.json.br", textproc.NgramName(order))
	writeBrotliJSON(t, filepath.Join(modelDir, file), payload)
}

func writeCountFile(t *testing.T, modelDir, file string, lang language.Language, ngrams []string) {
	t.Helper()
	sort.Strings(ngrams)
	payload := map[string]any{
		"language": lang.String(),
		"ngrams":   []string{join(ngrams)},
	}
	writeBrotliJSON(t, filepath.Join(modelDir, file), payload)
}

// uniqueTrigrams returns the trigrams that occur in lang's corpus and no
// other language's.
func uniqueTrigrams(lang language.Language, counts map[language.Language][6]map[string]int) []string {
	var unique []string
	for g := range counts[lang][3] {
		shared := false
		for other, perOrder := range counts {
			if other == lang {
				continue
			}
			if _, ok := perOrder[3][g]; ok {
				shared = true
				break
			}
		}
		if !shared {
			unique = append(unique, g)
		}
	}
	return unique
}

// mostCommonTrigrams returns the ten most frequent trigrams.
func mostCommonTrigrams(counts map[string]int) []string {
	grams := make([]string, 0, len(counts))
	for g := range counts {
		grams = append(grams, g)
	}
	sort.Slice(grams, func(i, j int) bool {
		if counts[grams[i]] != counts[grams[j]] {
			return counts[grams[i]] > counts[grams[j]]
		}
		return grams[i] < grams[j]
	})
	if len(grams) > 10 {
		grams = grams[:10]
	}
	return grams
}

func writeBrotliJSON(t *testing.T, path string, payload any) {
	t.Helper()

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshaling %s: %v", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	w := brotli.NewWriter(f)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("compressing %s: %v", path, err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing brotli writer for %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("closing %s: %v", path, err)
	}
}

func join(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return out
}
