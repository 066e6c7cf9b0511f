package script

import "github.com/MeKo-Tech/langid/internal/language"

// Counts holds per-script code point counts for one text.
type Counts map[Script]int

// CountText tallies the script of every code point in the text.
// Code points outside any known script are counted under Unknown.
func CountText(text string) Counts {
	counts := make(Counts)
	for _, r := range text {
		counts[Of(r)]++
	}
	return counts
}

// Detected returns the scripts that dominate the text: any script covering
// more than half of the classified code points. When no script dominates,
// every script that appears at all is detected, so that mixed-script texts
// (e.g. Japanese with Han, Hiragana and Katakana) keep all their candidates.
func (c Counts) Detected() []Script {
	total := 0
	for s, n := range c {
		if s == Unknown {
			continue
		}
		total += n
	}
	if total == 0 {
		return nil
	}

	var detected []Script
	for s := Arabic; s < scriptCount; s++ {
		if 2*c[s] > total {
			detected = append(detected, s)
		}
	}
	if len(detected) > 0 {
		return detected
	}
	for s := Arabic; s < scriptCount; s++ {
		if c[s] > 0 {
			detected = append(detected, s)
		}
	}
	return detected
}

// DetectedScripts classifies the text and returns its detected scripts.
func DetectedScripts(text string) []Script {
	return CountText(text).Detected()
}

// NarrowCandidates reduces the candidate set to the languages written in at
// least one of the text's detected scripts. If the narrowing would leave no
// candidate it is discarded and the full set is returned.
func NarrowCandidates(candidates []language.Language, text string) []language.Language {
	detected := DetectedScripts(text)
	if len(detected) == 0 {
		return candidates
	}

	var narrowed []language.Language
	for _, l := range candidates {
		for _, s := range detected {
			if Uses(l, s) {
				narrowed = append(narrowed, l)
				break
			}
		}
	}
	if len(narrowed) == 0 {
		return candidates
	}
	return narrowed
}
