package detect

import (
	"sort"

	"github.com/MeKo-Tech/langid/internal/language"
	"github.com/MeKo-Tech/langid/internal/model"
	"github.com/MeKo-Tech/langid/internal/script"
	"github.com/MeKo-Tech/langid/internal/textproc"
)

// Detector identifies the language of input text over a fixed candidate set.
// Instances are immutable after construction and safe for concurrent use;
// loaded models live in the shared registry and are shared by reference
// across detectors.
type Detector struct {
	languages   []language.Language // sorted by tag, deduplicated
	minDistance float64
	lowAccuracy bool
	modelsDir   string
	registry    *model.Registry
}

// Languages returns the configured candidate set in tag order.
func (d *Detector) Languages() []language.Language {
	out := make([]language.Language, len(d.languages))
	copy(out, d.languages)
	return out
}

// MinimumRelativeDistance returns the configured confidence gate.
func (d *Detector) MinimumRelativeDistance() float64 { return d.minDistance }

// LowAccuracyMode reports whether scoring is restricted to trigrams.
func (d *Detector) LowAccuracyMode() bool { return d.lowAccuracy }

// DetectLanguageOf returns the most likely language of the text, or
// language.Unknown when the text is empty, the top two probabilities tie,
// or their gap stays under the minimum relative distance.
func (d *Detector) DetectLanguageOf(text string) (language.Language, error) {
	values, err := d.ComputeLanguageConfidenceValues(text)
	if err != nil {
		return language.Unknown, err
	}
	if len(values) == 0 {
		return language.Unknown, nil
	}

	first := values[0]
	second := ConfidenceValue{}
	if len(values) > 1 {
		second = values[1]
	}
	if first.Value == second.Value {
		return language.Unknown, nil
	}
	if first.Value-second.Value < d.minDistance {
		return language.Unknown, nil
	}
	return first.Language, nil
}

// ComputeLanguageConfidenceValues returns the probability distribution over
// the configured languages, sorted by probability descending and by language
// tag ascending within ties. Every configured language appears; an empty
// text yields an empty slice.
func (d *Detector) ComputeLanguageConfidenceValues(text string) ([]ConfidenceValue, error) {
	if text == "" {
		return []ConfidenceValue{}, nil
	}

	values := make([]ConfidenceValue, len(d.languages))
	for i, l := range d.languages {
		values[i] = ConfidenceValue{Language: l}
	}

	cleaned := textproc.Clean(text)
	words := textproc.Words(cleaned)
	if len(words) == 0 {
		return values, nil
	}

	// Rule-based pre-filter: a dominant single-language script decides
	// immediately when its language is a candidate.
	if l := d.detectByScriptRule(cleaned); l != language.Unknown {
		return resolved(values, l), nil
	}

	candidates := script.NarrowCandidates(d.languages, cleaned)
	if len(candidates) == 1 {
		return resolved(values, candidates[0]), nil
	}

	// Unique n-grams pin the language without scoring.
	if l := d.detectByUniqueNgrams(cleaned, candidates); l != language.Unknown {
		return resolved(values, l), nil
	}

	if d.lowAccuracy {
		candidates = d.pruneByMostCommon(cleaned, candidates)
		if len(candidates) == 1 {
			return resolved(values, candidates[0]), nil
		}
	}

	raw, evidence, err := d.score(cleaned, candidates)
	if err != nil {
		return nil, err
	}
	if !evidence {
		return values, nil
	}

	probs := normalize(raw)
	for i := range values {
		values[i].Value = probs[values[i].Language]
	}
	sortValues(values)
	return values, nil
}

// ComputeLanguageConfidence returns the probability of one language for the
// text. Unconfigured languages and empty texts yield 0.
func (d *Detector) ComputeLanguageConfidence(text string, l language.Language) (float64, error) {
	if !d.isConfigured(l) {
		return 0, nil
	}
	values, err := d.ComputeLanguageConfidenceValues(text)
	if err != nil {
		return 0, err
	}
	for _, v := range values {
		if v.Language == l {
			return v.Value, nil
		}
	}
	return 0, nil
}

// UnloadLanguageModels evicts the shared registry's cache. Subsequent
// operations reload models on demand.
func (d *Detector) UnloadLanguageModels() {
	d.registry.Clear()
}

// preloadModels loads every model the detector may need, including the
// lower orders the back-off chain can reach.
func (d *Detector) preloadModels() error {
	maxOrder := 5
	if d.lowAccuracy {
		maxOrder = 3
	}
	for _, l := range d.languages {
		for n := 1; n <= maxOrder; n++ {
			if _, err := d.registry.LoadProbability(d.modelsDir, l, n); err != nil {
				return err
			}
		}
	}
	return nil
}

// orders returns the n-gram orders the detector scores with. Back-off makes
// every order below the highest reachable.
func (d *Detector) orders() []int {
	if d.lowAccuracy {
		return []int{3}
	}
	return []int{1, 2, 3, 4, 5}
}

func (d *Detector) isConfigured(l language.Language) bool {
	for _, candidate := range d.languages {
		if candidate == l {
			return true
		}
	}
	return false
}

// resolved sets one language to probability 1 and sorts the vector.
func resolved(values []ConfidenceValue, l language.Language) []ConfidenceValue {
	for i := range values {
		if values[i].Language == l {
			values[i].Value = 1
		} else {
			values[i].Value = 0
		}
	}
	sortValues(values)
	return values
}

// sortValues orders by probability descending, then by tag ascending. The
// language constants are declared in tag order, so comparing them compares
// tags.
func sortValues(values []ConfidenceValue) {
	sort.SliceStable(values, func(i, j int) bool {
		if values[i].Value != values[j].Value {
			return values[i].Value > values[j].Value
		}
		return values[i].Language < values[j].Language
	})
}
