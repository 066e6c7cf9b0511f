package detect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MeKo-Tech/langid/internal/language"
	"github.com/MeKo-Tech/langid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptRuleResolvesWithoutModels(t *testing.T) {
	// Korean has no models on disk; the Hangul rule must short-circuit
	// before any model load is attempted.
	d, err := NewBuilder().
		FromLanguages(language.Korean, language.English).
		WithModelsDir(t.TempDir()).
		Build()
	require.NoError(t, err)

	l, err := d.DetectLanguageOf("안녕하세요")
	require.NoError(t, err)
	assert.Equal(t, language.Korean, l)

	p, err := d.ComputeLanguageConfidence("안녕하세요", language.Korean)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)
}

func TestScriptRuleIgnoresUnconfiguredLanguage(t *testing.T) {
	d := newTrilingualDetector(t)

	// Hebrew script, but Hebrew is not configured: narrowing falls back
	// to the full set and scoring runs on whatever evidence remains.
	values, err := d.ComputeLanguageConfidenceValues("שלום")
	require.NoError(t, err)
	assert.Len(t, values, 3)
}

func TestSingleLanguageScriptVariants(t *testing.T) {
	d, err := NewBuilder().
		FromLanguages(language.Japanese, language.Thai, language.Greek).
		WithModelsDir(t.TempDir()).
		Build()
	require.NoError(t, err)

	tests := []struct {
		text string
		want language.Language
	}{
		{"ひらがな", language.Japanese},
		{"カタカナ", language.Japanese},
		{"สวัสดี", language.Thai},
		{"καλημέρα", language.Greek},
	}
	for _, tt := range tests {
		l, err := d.DetectLanguageOf(tt.text)
		require.NoError(t, err)
		assert.Equal(t, tt.want, l, "text %q", tt.text)
	}
}

func TestUniqueNgramResolution(t *testing.T) {
	d := newTrilingualDetector(t)

	// Every trigram of the sentence is unique to the German corpus.
	values, err := d.ComputeLanguageConfidenceValues("sprachen sind toll")
	require.NoError(t, err)
	require.Equal(t, language.German, values[0].Language)
	assert.Equal(t, 1.0, values[0].Value)
}

func TestUniqueNgramAmbiguityFallsThrough(t *testing.T) {
	d := newTrilingualDetector(t)

	// "langues"/"languages" share trigrams across English and French, so
	// the unique shortcut must not fire and scoring decides.
	l, err := d.DetectLanguageOf("les langues sont géniales")
	require.NoError(t, err)
	assert.Equal(t, language.French, l)
}

func TestMissingCountModelsAreTolerated(t *testing.T) {
	// Write probability models only, then delete the count files: the
	// pre-filter must silently skip them.
	dir := testutil.WriteModels(t, t.TempDir(), testutil.TrilingualCorpus())
	removeCountModels(t, dir)

	d, err := NewBuilder().
		FromLanguages(language.English, language.French, language.German).
		WithModelsDir(dir).
		Build()
	require.NoError(t, err)

	l, err := d.DetectLanguageOf("languages are awesome")
	require.NoError(t, err)
	assert.Equal(t, language.English, l)
}

func removeCountModels(t *testing.T, dir string) {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*", "models", "*_trigrams.json.br"))
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	for _, m := range matches {
		require.NoError(t, os.Remove(m))
	}
}

func TestLowAccuracyMode(t *testing.T) {
	d := newDetector(t, testutil.TrilingualCorpus(), func(b *Builder) *Builder {
		return b.WithLowAccuracyMode()
	})
	require.True(t, d.LowAccuracyMode())

	l, err := d.DetectLanguageOf("languages are awesome and wonderful")
	require.NoError(t, err)
	assert.Equal(t, language.English, l)

	// Words shorter than a trigram carry no evidence in this mode.
	values, err := d.ComputeLanguageConfidenceValues("hi")
	require.NoError(t, err)
	require.Len(t, values, 3)
	for _, v := range values {
		assert.Zero(t, v.Value)
	}
}
