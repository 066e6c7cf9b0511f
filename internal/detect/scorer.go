package detect

import (
	"math"
	"sort"

	"github.com/MeKo-Tech/langid/internal/language"
	"github.com/MeKo-Tech/langid/internal/model"
	"github.com/MeKo-Tech/langid/internal/textproc"
)

// score accumulates raw log-scores per candidate language across the
// detector's n-gram orders. The boolean result reports whether any n-gram
// was extracted at all; with no evidence the raw scores are meaningless.
func (d *Detector) score(cleaned string, candidates []language.Language) (map[language.Language]float64, bool, error) {
	raw := make(map[language.Language]float64, len(candidates))
	evidence := false

	for _, n := range d.orders() {
		ngrams := textproc.TextNgrams(cleaned, n)
		if len(ngrams) == 0 {
			continue
		}
		evidence = true

		for _, l := range candidates {
			chain, err := d.backoffChain(l, n)
			if err != nil {
				return nil, false, err
			}
			sum := 0.0
			for _, g := range ngrams {
				sum += lookup(chain, g, n)
			}
			raw[l] += sum
		}
	}
	return raw, evidence, nil
}

// backoffChain loads the probability models for orders n down to 1 for one
// language. chain[k] holds the order-k model.
func (d *Detector) backoffChain(l language.Language, n int) ([]*model.ProbabilityModel, error) {
	chain := make([]*model.ProbabilityModel, n+1)
	for k := n; k >= 1; k-- {
		m, err := d.registry.LoadProbability(d.modelsDir, l, k)
		if err != nil {
			return nil, err
		}
		chain[k] = m
	}
	return chain, nil
}

// lookup resolves the log-probability of an n-gram with lower-order
// back-off: on a miss the left prefix of the next smaller order is tried,
// and an order-1 miss contributes 0 so a single unknown character cannot
// eliminate a language.
func lookup(chain []*model.ProbabilityModel, ngram string, n int) float64 {
	g := ngram
	for k := n; k >= 1; k-- {
		if p, ok := chain[k].Probability(g); ok {
			return p
		}
		if k > 1 {
			g = textproc.Prefix(g, k-1)
		}
	}
	return 0
}

// normalize converts raw log-scores into a probability distribution. The
// maximum is subtracted before exponentiating so long inputs cannot
// underflow to zero everywhere.
func normalize(raw map[language.Language]float64) map[language.Language]float64 {
	probs := make(map[language.Language]float64, len(raw))
	if len(raw) == 0 {
		return probs
	}

	maxRaw := math.Inf(-1)
	for _, r := range raw {
		if r > maxRaw {
			maxRaw = r
		}
	}

	// Sum in tag order so repeated calls produce bit-identical results.
	langs := make([]language.Language, 0, len(raw))
	for l := range raw {
		langs = append(langs, l)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })

	sum := 0.0
	for _, l := range langs {
		p := math.Exp(raw[l] - maxRaw)
		probs[l] = p
		sum += p
	}
	for l := range probs {
		probs[l] /= sum
	}
	return probs
}
