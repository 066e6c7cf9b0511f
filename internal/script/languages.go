package script

import "github.com/MeKo-Tech/langid/internal/language"

// byScript lists the languages written in each script. A language appears
// under every script it uses (Japanese under Han, Hiragana and Katakana).
var byScript = map[Script][]language.Language{
	Arabic: {language.Arabic, language.Persian, language.Urdu},
	Cyrillic: {
		language.Belarusian, language.Bulgarian, language.Kazakh,
		language.Macedonian, language.Mongolian, language.Russian,
		language.Serbian, language.Ukrainian,
	},
	Devanagari: {language.Hindi, language.Marathi},
	Han:        {language.Chinese, language.Japanese},
	Hiragana:   {language.Japanese},
	Katakana:   {language.Japanese},
	Latin: {
		language.Afrikaans, language.Albanian, language.Azerbaijani,
		language.Basque, language.Bokmal, language.Bosnian,
		language.Catalan, language.Croatian, language.Czech,
		language.Danish, language.Dutch, language.English,
		language.Esperanto, language.Estonian, language.Finnish,
		language.French, language.Ganda, language.German,
		language.Hungarian, language.Icelandic, language.Indonesian,
		language.Irish, language.Italian, language.Latin,
		language.Latvian, language.Lithuanian, language.Malay,
		language.Maori, language.Nynorsk, language.Polish,
		language.Portuguese, language.Romanian, language.Shona,
		language.Slovak, language.Slovene, language.Somali,
		language.Sotho, language.Spanish, language.Swahili,
		language.Swedish, language.Tagalog, language.Tsonga,
		language.Tswana, language.Turkish, language.Vietnamese,
		language.Welsh, language.Xhosa, language.Yoruba, language.Zulu,
	},
	Armenian: {language.Armenian},
	Bengali:  {language.Bengali},
	Georgian: {language.Georgian},
	Greek:    {language.Greek},
	Gujarati: {language.Gujarati},
	Gurmukhi: {language.Punjabi},
	Hangul:   {language.Korean},
	Hebrew:   {language.Hebrew},
	Tamil:    {language.Tamil},
	Telugu:   {language.Telugu},
	Thai:     {language.Thai},
}

// scriptsOf is the inverse of byScript, built once at init.
var scriptsOf = func() map[language.Language][]Script {
	m := make(map[language.Language][]Script)
	for s := Arabic; s < scriptCount; s++ {
		for _, l := range byScript[s] {
			m[l] = append(m[l], s)
		}
	}
	return m
}()

// LanguagesWithScript returns the languages written in the given script.
func LanguagesWithScript(s Script) []language.Language {
	langs := byScript[s]
	out := make([]language.Language, len(langs))
	copy(out, langs)
	return out
}

// ScriptsOf returns the scripts a language is written in.
func ScriptsOf(l language.Language) []Script {
	scripts := scriptsOf[l]
	out := make([]Script, len(scripts))
	copy(out, scripts)
	return out
}

// Uses reports whether a language is written in the given script.
func Uses(l language.Language, s Script) bool {
	for _, candidate := range scriptsOf[l] {
		if candidate == s {
			return true
		}
	}
	return false
}

// AllWithLatinScript returns the languages written in Latin script.
func AllWithLatinScript() []language.Language { return LanguagesWithScript(Latin) }

// AllWithCyrillicScript returns the languages written in Cyrillic script.
func AllWithCyrillicScript() []language.Language { return LanguagesWithScript(Cyrillic) }

// AllWithArabicScript returns the languages written in Arabic script.
func AllWithArabicScript() []language.Language { return LanguagesWithScript(Arabic) }

// AllWithDevanagariScript returns the languages written in Devanagari script.
func AllWithDevanagariScript() []language.Language { return LanguagesWithScript(Devanagari) }
