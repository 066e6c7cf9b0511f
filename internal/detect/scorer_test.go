package detect

import (
	"math"
	"testing"

	"github.com/MeKo-Tech/langid/internal/language"
	"github.com/MeKo-Tech/langid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	probs := normalize(map[language.Language]float64{
		language.English: -10,
		language.German:  -12,
	})

	sum := probs[language.English] + probs[language.German]
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.Greater(t, probs[language.English], probs[language.German])
}

func TestNormalizeStableOnLargeMagnitudes(t *testing.T) {
	// Raw scores from long inputs are far outside exp range; subtracting
	// the max keeps the winner finite and dominant.
	probs := normalize(map[language.Language]float64{
		language.English: -5000,
		language.German:  -5100,
		language.French:  -5200,
	})

	sum := 0.0
	for _, p := range probs {
		require.False(t, math.IsNaN(p))
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Greater(t, probs[language.English], 0.99)
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Empty(t, normalize(nil))
}

func TestLookupBackoff(t *testing.T) {
	d := newTrilingualDetector(t)

	chain, err := d.backoffChain(language.English, 3)
	require.NoError(t, err)

	// A trigram from the corpus resolves at order 3.
	direct := lookup(chain, "lan", 3)
	assert.Negative(t, direct)

	// "qqq" misses at order 3 and its prefix "qq" misses at order 2, so
	// the chain bottoms out at the unigram "q" from "quick".
	viaUnigram := lookup(chain, "qqq", 3)
	p, ok := chain[1].Probability("q")
	require.True(t, ok, "expected unigram q from the English corpus")
	assert.Equal(t, p, viaUnigram)

	// A gram of unseen characters contributes exactly 0.
	assert.Zero(t, lookup(chain, "ققق", 3))
}

func TestScoreMissingLanguageModels(t *testing.T) {
	d := newTrilingualDetector(t)

	// Spanish has no models in the fixture dir.
	_, _, err := d.score("hola", []language.Language{language.Spanish})
	require.Error(t, err)
}

func TestScoreLowAccuracyUsesOnlyTrigrams(t *testing.T) {
	d := newDetector(t, testutil.TrilingualCorpus(), func(b *Builder) *Builder {
		return b.WithLowAccuracyMode()
	})
	assert.Equal(t, []int{3}, d.orders())

	// A two-letter text yields no trigrams, so no evidence accumulates.
	_, evidence, err := d.score("ab", d.Languages())
	require.NoError(t, err)
	assert.False(t, evidence)
}
