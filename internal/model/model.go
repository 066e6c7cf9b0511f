package model

import (
	"fmt"

	"github.com/MeKo-Tech/langid/internal/language"
)

// Kind distinguishes the persisted model flavors for one (language, order).
type Kind int

const (
	// KindProbability models map n-grams to log-probabilities.
	KindProbability Kind = iota
	// KindUnique models hold n-grams that appear only in one language's corpus.
	KindUnique
	// KindMostCommon models hold a language's top-frequency n-grams.
	KindMostCommon
)

// String returns the serialized name of the kind. The unique and most-common
// names prefix count model file names; probability file names carry no kind.
func (k Kind) String() string {
	switch k {
	case KindProbability:
		return "probability"
	case KindUnique:
		return "unique"
	case KindMostCommon:
		return "most_common"
	default:
		panic(fmt.Sprintf("unknown model kind %d", int(k)))
	}
}

// ProbabilityModel is an immutable n-gram → log-probability table for one
// (language, order). Values are natural logarithms in (-inf, 0]. Absence of
// an n-gram carries no probability of its own; the scorer's back-off rule
// decides what a miss means.
type ProbabilityModel struct {
	language language.Language
	order    int
	ngrams   map[string]float64
}

// Language returns the language the model was trained for.
func (m *ProbabilityModel) Language() language.Language { return m.language }

// Order returns the n-gram order of the model.
func (m *ProbabilityModel) Order() int { return m.order }

// Probability returns the stored log-probability for an n-gram.
func (m *ProbabilityModel) Probability(ngram string) (float64, bool) {
	p, ok := m.ngrams[ngram]
	return p, ok
}

// Contains reports whether the model has an entry for the n-gram.
func (m *ProbabilityModel) Contains(ngram string) bool {
	_, ok := m.ngrams[ngram]
	return ok
}

// Len returns the number of n-grams in the model.
func (m *ProbabilityModel) Len() int { return len(m.ngrams) }

// CountModel is an immutable n-gram set for one (language, order, kind).
// Only the unique and most-common kinds are count models.
type CountModel struct {
	language language.Language
	order    int
	kind     Kind
	ngrams   map[string]struct{}
}

// Language returns the language the model was built for.
func (m *CountModel) Language() language.Language { return m.language }

// Order returns the n-gram order of the model.
func (m *CountModel) Order() int { return m.order }

// Kind returns whether the set holds unique or most-common n-grams.
func (m *CountModel) Kind() Kind { return m.kind }

// Contains reports whether the n-gram is in the set.
func (m *CountModel) Contains(ngram string) bool {
	_, ok := m.ngrams[ngram]
	return ok
}

// Len returns the number of n-grams in the set.
func (m *CountModel) Len() int { return len(m.ngrams) }
