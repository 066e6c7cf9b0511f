package script

import (
	"unicode"

	"github.com/MeKo-Tech/langid/internal/language"
)

// Script identifies a writing system the detector recognizes.
type Script int

const (
	Unknown Script = iota
	Arabic
	Armenian
	Bengali
	Cyrillic
	Devanagari
	Georgian
	Greek
	Gujarati
	Gurmukhi
	Han
	Hangul
	Hebrew
	Hiragana
	Katakana
	Latin
	Tamil
	Telugu
	Thai
	scriptCount
)

var names = [...]string{
	Unknown:    "Unknown",
	Arabic:     "Arabic",
	Armenian:   "Armenian",
	Bengali:    "Bengali",
	Cyrillic:   "Cyrillic",
	Devanagari: "Devanagari",
	Georgian:   "Georgian",
	Greek:      "Greek",
	Gujarati:   "Gujarati",
	Gurmukhi:   "Gurmukhi",
	Han:        "Han",
	Hangul:     "Hangul",
	Hebrew:     "Hebrew",
	Hiragana:   "Hiragana",
	Katakana:   "Katakana",
	Latin:      "Latin",
	Tamil:      "Tamil",
	Telugu:     "Telugu",
	Thai:       "Thai",
}

func (s Script) String() string {
	if s <= Unknown || s >= scriptCount {
		return "Unknown"
	}
	return names[s]
}

// rangeTables maps each script to its Unicode range table. The stdlib tables
// track the full Unicode script property, including supplementary blocks.
var rangeTables = map[Script]*unicode.RangeTable{
	Arabic:     unicode.Arabic,
	Armenian:   unicode.Armenian,
	Bengali:    unicode.Bengali,
	Cyrillic:   unicode.Cyrillic,
	Devanagari: unicode.Devanagari,
	Georgian:   unicode.Georgian,
	Greek:      unicode.Greek,
	Gujarati:   unicode.Gujarati,
	Gurmukhi:   unicode.Gurmukhi,
	Han:        unicode.Han,
	Hangul:     unicode.Hangul,
	Hebrew:     unicode.Hebrew,
	Hiragana:   unicode.Hiragana,
	Katakana:   unicode.Katakana,
	Latin:      unicode.Latin,
	Tamil:      unicode.Tamil,
	Telugu:     unicode.Telugu,
	Thai:       unicode.Thai,
}

// singleLanguage maps scripts that unambiguously identify one language.
// Han is absent: both Chinese and Japanese use it.
var singleLanguage = map[Script]language.Language{
	Armenian: language.Armenian,
	Bengali:  language.Bengali,
	Georgian: language.Georgian,
	Greek:    language.Greek,
	Gujarati: language.Gujarati,
	Gurmukhi: language.Punjabi,
	Hangul:   language.Korean,
	Hebrew:   language.Hebrew,
	Hiragana: language.Japanese,
	Katakana: language.Japanese,
	Tamil:    language.Tamil,
	Telugu:   language.Telugu,
	Thai:     language.Thai,
}

// Of returns the script a code point belongs to, or Unknown.
func Of(r rune) Script {
	for s := Arabic; s < scriptCount; s++ {
		if unicode.Is(rangeTables[s], r) {
			return s
		}
	}
	return Unknown
}

// SingleLanguage returns the language a script unambiguously identifies,
// or language.Unknown when the script is shared by several languages.
func SingleLanguage(s Script) language.Language {
	return singleLanguage[s]
}

// All returns every known script.
func All() []Script {
	out := make([]Script, 0, int(scriptCount)-1)
	for s := Arabic; s < scriptCount; s++ {
		out = append(out, s)
	}
	return out
}
