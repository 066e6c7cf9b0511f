package detect

import (
	"errors"
	"log/slog"

	"github.com/MeKo-Tech/langid/internal/language"
	"github.com/MeKo-Tech/langid/internal/model"
	"github.com/MeKo-Tech/langid/internal/script"
	"github.com/MeKo-Tech/langid/internal/textproc"
)

// detectByScriptRule resolves the text immediately when a detected script
// identifies exactly one language and that language is configured. Hangul
// text with Korean configured needs no n-gram work.
func (d *Detector) detectByScriptRule(cleaned string) language.Language {
	for _, s := range script.DetectedScripts(cleaned) {
		l := script.SingleLanguage(s)
		if l != language.Unknown && d.isConfigured(l) {
			return l
		}
	}
	return language.Unknown
}

// detectByUniqueNgrams resolves the text when every trigram it contains is
// in exactly one candidate's unique set. Candidates without a unique model
// on disk simply cannot win the shortcut; scoring still covers them.
func (d *Detector) detectByUniqueNgrams(cleaned string, candidates []language.Language) language.Language {
	trigrams := textproc.TextNgrams(cleaned, 3)
	if len(trigrams) == 0 {
		return language.Unknown
	}

	winner := language.Unknown
	for _, l := range candidates {
		m, ok := d.loadCounts(l, model.KindUnique)
		if !ok {
			continue
		}
		all := true
		for _, g := range trigrams {
			if !m.Contains(g) {
				all = false
				break
			}
		}
		if !all {
			continue
		}
		if winner != language.Unknown {
			// Two candidates claim the text; the sets are not unique
			// for this input after all.
			return language.Unknown
		}
		winner = l
	}
	return winner
}

// pruneByMostCommon drops low-accuracy candidates whose most-common trigram
// set shares nothing with the text. When the pruning would leave no
// candidate it is discarded.
func (d *Detector) pruneByMostCommon(cleaned string, candidates []language.Language) []language.Language {
	trigrams := textproc.TextNgrams(cleaned, 3)
	if len(trigrams) == 0 {
		return candidates
	}

	var kept []language.Language
	for _, l := range candidates {
		m, ok := d.loadCounts(l, model.KindMostCommon)
		if !ok {
			kept = append(kept, l)
			continue
		}
		for _, g := range trigrams {
			if m.Contains(g) {
				kept = append(kept, l)
				break
			}
		}
	}
	if len(kept) == 0 {
		return candidates
	}
	return kept
}

// loadCounts fetches a count model, treating a missing or unreadable file
// as absent rather than fatal: count models are an optimization, only the
// probability models are required.
func (d *Detector) loadCounts(l language.Language, kind model.Kind) (*model.CountModel, bool) {
	m, err := d.registry.LoadCounts(d.modelsDir, l, 3, kind)
	if err != nil {
		if !errors.Is(err, model.ErrModelLoad) {
			slog.Warn("unexpected count model error",
				"language", l.String(), "kind", kind.String(), "error", err)
		}
		return nil, false
	}
	return m, true
}
