package detect

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/MeKo-Tech/langid/internal/language"
	"github.com/MeKo-Tech/langid/internal/model"
	"github.com/MeKo-Tech/langid/internal/script"
)

// ErrInvalidConfiguration marks builder validation failures: an empty
// language set, an unknown ISO code, or a relative distance outside [0, 0.99].
var ErrInvalidConfiguration = errors.New("invalid detector configuration")

// Builder assembles an immutable Detector. Methods can be chained; errors
// are collected and reported by Build.
type Builder struct {
	languages   []language.Language
	minDistance float64
	lowAccuracy bool
	preload     bool
	modelsDir   string
	err         error
}

// NewBuilder returns a Builder with no languages selected.
func NewBuilder() *Builder {
	return &Builder{}
}

// FromLanguages selects an explicit candidate set.
func (b *Builder) FromLanguages(langs ...language.Language) *Builder {
	b.languages = append(b.languages[:0], langs...)
	return b
}

// FromAllLanguages selects every supported language.
func (b *Builder) FromAllLanguages() *Builder {
	return b.FromLanguages(language.AllLanguages()...)
}

// FromAllSpokenLanguages selects every supported language except Latin.
func (b *Builder) FromAllSpokenLanguages() *Builder {
	return b.FromLanguages(language.AllSpokenLanguages()...)
}

// FromAllLanguagesWithLatinScript selects the languages written in Latin script.
func (b *Builder) FromAllLanguagesWithLatinScript() *Builder {
	return b.FromLanguages(script.AllWithLatinScript()...)
}

// FromAllLanguagesWithCyrillicScript selects the languages written in Cyrillic script.
func (b *Builder) FromAllLanguagesWithCyrillicScript() *Builder {
	return b.FromLanguages(script.AllWithCyrillicScript()...)
}

// FromAllLanguagesWithArabicScript selects the languages written in Arabic script.
func (b *Builder) FromAllLanguagesWithArabicScript() *Builder {
	return b.FromLanguages(script.AllWithArabicScript()...)
}

// FromAllLanguagesWithDevanagariScript selects the languages written in Devanagari script.
func (b *Builder) FromAllLanguagesWithDevanagariScript() *Builder {
	return b.FromLanguages(script.AllWithDevanagariScript()...)
}

// FromAllLanguagesWithout selects every supported language except the given ones.
func (b *Builder) FromAllLanguagesWithout(excluded ...language.Language) *Builder {
	skip := make(map[language.Language]bool, len(excluded))
	for _, l := range excluded {
		skip[l] = true
	}
	b.languages = b.languages[:0]
	for _, l := range language.AllLanguages() {
		if !skip[l] {
			b.languages = append(b.languages, l)
		}
	}
	return b
}

// FromIsoCodes639_1 selects languages by their two-letter ISO codes.
// Unknown codes fail Build.
func (b *Builder) FromIsoCodes639_1(codes ...string) *Builder {
	b.languages = b.languages[:0]
	for _, code := range codes {
		l, err := language.FromIsoCode639_1(code)
		if err != nil {
			b.err = fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
			return b
		}
		b.languages = append(b.languages, l)
	}
	return b
}

// FromIsoCodes639_3 selects languages by their three-letter ISO codes.
// Unknown codes fail Build.
func (b *Builder) FromIsoCodes639_3(codes ...string) *Builder {
	b.languages = b.languages[:0]
	for _, code := range codes {
		l, err := language.FromIsoCode639_3(code)
		if err != nil {
			b.err = fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
			return b
		}
		b.languages = append(b.languages, l)
	}
	return b
}

// WithMinimumRelativeDistance sets the gap the top probability must have over
// the runner-up for a non-undetermined best-language result. Valid range is
// [0, 0.99].
func (b *Builder) WithMinimumRelativeDistance(d float64) *Builder {
	b.minDistance = d
	return b
}

// WithLowAccuracyMode restricts scoring to trigrams. Faster and smaller, at
// reduced accuracy for short inputs.
func (b *Builder) WithLowAccuracyMode() *Builder {
	b.lowAccuracy = true
	return b
}

// WithPreloadedLanguageModels loads every needed model at Build time instead
// of on first detection.
func (b *Builder) WithPreloadedLanguageModels() *Builder {
	b.preload = true
	return b
}

// WithModelsDir overrides the directory the models are loaded from.
func (b *Builder) WithModelsDir(dir string) *Builder {
	b.modelsDir = dir
	return b
}

// Build validates the configuration and returns an immutable Detector.
func (b *Builder) Build() (*Detector, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.minDistance < 0 || b.minDistance > 0.99 {
		return nil, fmt.Errorf("%w: minimum relative distance %v is not in [0, 0.99]",
			ErrInvalidConfiguration, b.minDistance)
	}

	langs := dedupe(b.languages)
	if len(langs) == 0 {
		return nil, fmt.Errorf("%w: at least one language is required", ErrInvalidConfiguration)
	}

	d := &Detector{
		languages:   langs,
		minDistance: b.minDistance,
		lowAccuracy: b.lowAccuracy,
		modelsDir:   b.modelsDir,
		registry:    model.Default(),
	}

	if b.preload {
		if err := d.preloadModels(); err != nil {
			return nil, err
		}
	}

	slog.Debug("detector built",
		"languages", len(langs),
		"min_relative_distance", b.minDistance,
		"low_accuracy", b.lowAccuracy,
		"preloaded", b.preload)
	return d, nil
}

// dedupe drops duplicates and the Unknown sentinel, and sorts by tag order.
func dedupe(langs []language.Language) []language.Language {
	seen := make(map[language.Language]bool, len(langs))
	out := make([]language.Language, 0, len(langs))
	for _, l := range langs {
		if l == language.Unknown || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
