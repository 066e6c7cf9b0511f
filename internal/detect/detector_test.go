package detect

import (
	"math"
	"testing"

	"github.com/MeKo-Tech/langid/internal/language"
	"github.com/MeKo-Tech/langid/internal/testutil"
	"github.com/MeKo-Tech/langid/internal/textproc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newDetector builds a detector over fixture models estimated from the
// given corpus.
func newDetector(t *testing.T, corpus testutil.Corpus, opts func(*Builder) *Builder) *Detector {
	t.Helper()

	dir := testutil.WriteModels(t, t.TempDir(), corpus)
	langs := make([]language.Language, 0, len(corpus))
	for l := range corpus {
		langs = append(langs, l)
	}

	b := NewBuilder().FromLanguages(langs...).WithModelsDir(dir)
	if opts != nil {
		b = opts(b)
	}
	d, err := b.Build()
	require.NoError(t, err)
	return d
}

func newTrilingualDetector(t *testing.T) *Detector {
	return newDetector(t, testutil.TrilingualCorpus(), nil)
}

func TestDetectEnglish(t *testing.T) {
	d := newTrilingualDetector(t)
	l, err := d.DetectLanguageOf("languages are awesome")
	require.NoError(t, err)
	assert.Equal(t, language.English, l)
}

func TestDetectGerman(t *testing.T) {
	d := newTrilingualDetector(t)
	l, err := d.DetectLanguageOf("Sprachen sind toll")
	require.NoError(t, err)
	assert.Equal(t, language.German, l)
}

func TestDetectFrench(t *testing.T) {
	d := newTrilingualDetector(t)
	l, err := d.DetectLanguageOf("les langues sont géniales")
	require.NoError(t, err)
	assert.Equal(t, language.French, l)
}

func TestDetectChineseByScriptNarrowing(t *testing.T) {
	d := newDetector(t, testutil.QuadrilingualCorpus(), nil)

	l, err := d.DetectLanguageOf("互联网逆天新人设")
	require.NoError(t, err)
	assert.Equal(t, language.Chinese, l)

	p, err := d.ComputeLanguageConfidence("互联网逆天新人设", language.Chinese)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, p, 0.95)
}

func TestDetectUndeterminedUnderDistanceGate(t *testing.T) {
	d := newDetector(t, testutil.TrilingualCorpus(), func(b *Builder) *Builder {
		return b.WithMinimumRelativeDistance(0.9)
	})

	l, err := d.DetectLanguageOf("Hi")
	require.NoError(t, err)
	assert.Equal(t, language.Unknown, l)
}

func TestSingleLanguageDetectorAlwaysConfident(t *testing.T) {
	corpus := testutil.Corpus{
		language.English: testutil.TrilingualCorpus()[language.English],
	}
	d := newDetector(t, corpus, nil)

	l, err := d.DetectLanguageOf("anything")
	require.NoError(t, err)
	assert.Equal(t, language.English, l)

	p, err := d.ComputeLanguageConfidence("anything", language.English)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)
}

func TestEmptyText(t *testing.T) {
	d := newTrilingualDetector(t)

	values, err := d.ComputeLanguageConfidenceValues("")
	require.NoError(t, err)
	assert.Empty(t, values)

	l, err := d.DetectLanguageOf("")
	require.NoError(t, err)
	assert.Equal(t, language.Unknown, l)

	p, err := d.ComputeLanguageConfidence("", language.English)
	require.NoError(t, err)
	assert.Zero(t, p)
}

func TestTextWithoutLetters(t *testing.T) {
	d := newTrilingualDetector(t)

	values, err := d.ComputeLanguageConfidenceValues("3 1/2! ...")
	require.NoError(t, err)
	require.Len(t, values, 3)
	for _, v := range values {
		assert.Zero(t, v.Value, "%s", v.Language)
	}

	l, err := d.DetectLanguageOf("3 1/2! ...")
	require.NoError(t, err)
	assert.Equal(t, language.Unknown, l)
}

func TestConfidenceValuesShape(t *testing.T) {
	d := newTrilingualDetector(t)

	values, err := d.ComputeLanguageConfidenceValues("languages are awesome")
	require.NoError(t, err)
	require.Len(t, values, 3, "one entry per configured language")

	sum := 0.0
	for _, v := range values {
		sum += v.Value
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	for i := 1; i < len(values); i++ {
		if values[i-1].Value == values[i].Value {
			assert.Less(t, values[i-1].Language, values[i].Language)
		} else {
			assert.Greater(t, values[i-1].Value, values[i].Value)
		}
	}
	assert.Equal(t, language.English, values[0].Language)
}

func TestConfidenceMatchesValuesEntry(t *testing.T) {
	d := newTrilingualDetector(t)
	text := "les langues sont géniales"

	values, err := d.ComputeLanguageConfidenceValues(text)
	require.NoError(t, err)

	for _, v := range values {
		p, err := d.ComputeLanguageConfidence(text, v.Language)
		require.NoError(t, err)
		assert.Equal(t, v.Value, p, "%s", v.Language)
	}
}

func TestConfidenceOfUnconfiguredLanguage(t *testing.T) {
	d := newTrilingualDetector(t)
	p, err := d.ComputeLanguageConfidence("languages are awesome", language.Spanish)
	require.NoError(t, err)
	assert.Zero(t, p)
}

func TestDetectionIdempotentOverCleaning(t *testing.T) {
	d := newTrilingualDetector(t)
	inputs := []string{
		"Languages ARE awesome!!",
		"  Sprachen   sind toll. 123",
		"les langues sont géniales",
	}
	for _, text := range inputs {
		direct, err := d.DetectLanguageOf(text)
		require.NoError(t, err)

		cleaned, err := d.DetectLanguageOf(textproc.Clean(textproc.Clean(text)))
		require.NoError(t, err)
		assert.Equal(t, direct, cleaned, "input %q", text)
	}
}

func TestMissingModelsSurfaceLoadError(t *testing.T) {
	d, err := NewBuilder().
		FromLanguages(language.English, language.German).
		WithModelsDir(t.TempDir()).
		Build()
	require.NoError(t, err)

	_, err = d.DetectLanguageOf("some text")
	require.Error(t, err)
}

func TestUnloadLanguageModels(t *testing.T) {
	d := newTrilingualDetector(t)

	l, err := d.DetectLanguageOf("languages are awesome")
	require.NoError(t, err)
	require.Equal(t, language.English, l)

	d.UnloadLanguageModels()

	// Models reload on demand.
	l, err = d.DetectLanguageOf("languages are awesome")
	require.NoError(t, err)
	assert.Equal(t, language.English, l)
}

func TestBackoffMonotonicity(t *testing.T) {
	d := newTrilingualDetector(t)

	raw1, evidence, err := d.score("languages", d.Languages())
	require.NoError(t, err)
	require.True(t, evidence)

	raw2, _, err := d.score("languages languages", d.Languages())
	require.NoError(t, err)

	// Duplicating the evidence doubles every raw log-score exactly.
	for _, l := range d.Languages() {
		assert.InDelta(t, 2*raw1[l], raw2[l], math.Abs(raw1[l])*1e-9, "%s", l)
	}

	// In probability space the winner only gets more confident when its
	// supporting evidence repeats.
	p1, err := d.ComputeLanguageConfidence("languages", language.English)
	require.NoError(t, err)
	p2, err := d.ComputeLanguageConfidence("languages languages", language.English)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, p2, p1)
}
