package model

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/MeKo-Tech/langid/internal/language"
	"github.com/MeKo-Tech/langid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureDir(t *testing.T) string {
	t.Helper()
	return testutil.WriteModels(t, t.TempDir(), testutil.TrilingualCorpus())
}

func TestLoadProbabilityModel(t *testing.T) {
	dir := fixtureDir(t)

	m, err := loadProbabilityModel(dir, language.English, 3)
	require.NoError(t, err)
	assert.Equal(t, language.English, m.Language())
	assert.Equal(t, 3, m.Order())
	assert.Positive(t, m.Len())

	// "lan" occurs in "languages"; its log-probability must be negative.
	p, ok := m.Probability("lan")
	require.True(t, ok, "expected trigram lan in English model")
	assert.Negative(t, p)
	assert.False(t, m.Contains("zzz"))
}

func TestLoadProbabilityModelAllOrders(t *testing.T) {
	dir := fixtureDir(t)
	for n := 1; n <= 5; n++ {
		m, err := loadProbabilityModel(dir, language.German, n)
		require.NoError(t, err, "order %d", n)
		assert.Positive(t, m.Len(), "order %d", n)
	}
}

func TestLoadProbabilityValuesNonPositive(t *testing.T) {
	dir := fixtureDir(t)
	m, err := loadProbabilityModel(dir, language.French, 2)
	require.NoError(t, err)
	for _, g := range []string{"le", "la", "es"} {
		if p, ok := m.Probability(g); ok {
			assert.LessOrEqual(t, p, 0.0, "bigram %q", g)
		}
	}
}

func TestLoadCountModel(t *testing.T) {
	dir := fixtureDir(t)

	m, err := loadCountModel(dir, language.German, 3, KindUnique)
	require.NoError(t, err)
	assert.Equal(t, KindUnique, m.Kind())
	// "sch" from "schnelle" never occurs in the English or French corpus.
	assert.True(t, m.Contains("sch"))

	m, err = loadCountModel(dir, language.English, 3, KindMostCommon)
	require.NoError(t, err)
	assert.Equal(t, KindMostCommon, m.Kind())
	assert.Positive(t, m.Len())
}

func TestLoadMissingModel(t *testing.T) {
	_, err := loadProbabilityModel(t.TempDir(), language.English, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrModelLoad)
}

func TestLoadMalformedPayload(t *testing.T) {
	dir := t.TempDir()
	path := ProbabilityModelPath(dir, language.English, 3)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	// Not Brotli, not JSON.
	require.NoError(t, os.WriteFile(path, []byte("not a model"), 0o644))

	_, err := loadProbabilityModel(dir, language.English, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrModelLoad)
}

func TestParseFraction(t *testing.T) {
	v, err := parseFraction("1/2")
	require.NoError(t, err)
	assert.InDelta(t, math.Log(0.5), v, 1e-12)

	v, err = parseFraction("3/100")
	require.NoError(t, err)
	assert.InDelta(t, math.Log(0.03), v, 1e-12)

	for _, bad := range []string{"", "12", "a/b", "1/0", "0/5", "-1/2"} {
		_, err := parseFraction(bad)
		assert.Error(t, err, "fraction %q", bad)
	}
}

func TestModelPaths(t *testing.T) {
	p := ProbabilityModelPath("m", language.English, 3)
	assert.Equal(t, filepath.Join("m", "en", "models", "trigrams.json.br"), p)

	p = CountModelPath("m", language.German, 3, KindUnique)
	assert.Equal(t, filepath.Join("m", "de", "models", "unique_trigrams.json.br"), p)

	p = CountModelPath("m", language.French, 5, KindMostCommon)
	assert.Equal(t, filepath.Join("m", "fr", "models", "most_common_fivegrams.json.br"), p)
}

func TestGetModelsDirPrecedence(t *testing.T) {
	assert.Equal(t, "explicit", GetModelsDir("explicit"))

	t.Setenv(EnvModelsDir, "/from/env")
	assert.Equal(t, "/from/env", GetModelsDir(""))

	t.Setenv(EnvModelsDir, "")
	assert.Equal(t, DefaultModelsDir, GetModelsDir(""))
}
