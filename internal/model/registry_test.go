package model

import (
	"sync"
	"testing"

	"github.com/MeKo-Tech/langid/internal/language"
	"github.com/MeKo-Tech/langid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryReturnsSharedHandle(t *testing.T) {
	dir := fixtureDir(t)
	r := NewRegistry()

	m1, err := r.LoadProbability(dir, language.English, 3)
	require.NoError(t, err)
	m2, err := r.LoadProbability(dir, language.English, 3)
	require.NoError(t, err)
	assert.Same(t, m1, m2, "same key must yield the same handle")

	other, err := r.LoadProbability(dir, language.French, 3)
	require.NoError(t, err)
	assert.NotSame(t, m1, other)
}

func TestRegistryConcurrentLoadsCoalesce(t *testing.T) {
	dir := fixtureDir(t)
	r := NewRegistry()

	const goroutines = 32
	handles := make([]*ProbabilityModel, goroutines)
	errs := make([]error, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i], errs[i] = r.LoadProbability(dir, language.German, 2)
		}(i)
	}
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, handles[0], handles[i], "goroutine %d got a different handle", i)
	}
}

func TestRegistryErrorNotCached(t *testing.T) {
	r := NewRegistry()
	missing := t.TempDir()

	_, err := r.LoadProbability(missing, language.English, 3)
	require.ErrorIs(t, err, ErrModelLoad)

	// Materialize the models, then retry with the same key: the earlier
	// failure must not poison the cache.
	testutil.WriteModels(t, missing, testutil.Corpus{
		language.English: {"languages are awesome"},
	})
	m, err := r.LoadProbability(missing, language.English, 3)
	require.NoError(t, err)
	assert.Positive(t, m.Len())
}

func TestRegistryClear(t *testing.T) {
	dir := fixtureDir(t)
	r := NewRegistry()

	m1, err := r.LoadProbability(dir, language.English, 1)
	require.NoError(t, err)

	r.Clear()

	m2, err := r.LoadProbability(dir, language.English, 1)
	require.NoError(t, err)
	assert.NotSame(t, m1, m2, "Clear must evict cached handles")
}

func TestRegistryCountModels(t *testing.T) {
	dir := fixtureDir(t)
	r := NewRegistry()

	m1, err := r.LoadCounts(dir, language.German, 3, KindUnique)
	require.NoError(t, err)
	m2, err := r.LoadCounts(dir, language.German, 3, KindUnique)
	require.NoError(t, err)
	assert.Same(t, m1, m2)

	mc, err := r.LoadCounts(dir, language.German, 3, KindMostCommon)
	require.NoError(t, err)
	assert.NotSame(t, m1, mc, "kinds must not share cache entries")
}

func TestDefaultRegistryIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}
