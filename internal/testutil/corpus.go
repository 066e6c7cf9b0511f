package testutil

import "github.com/MeKo-Tech/langid/internal/language"

// TrilingualCorpus returns a small English/French/German corpus whose
// vocabulary separates the three languages cleanly. Detector tests build
// their model fixtures from it.
func TrilingualCorpus() Corpus {
	return Corpus{
		language.English: {
			"languages are awesome",
			"the quick brown fox jumps over the lazy dog",
			"english is spoken in many countries around the world",
			"learning new things is always worthwhile",
			"he said that this would work just fine",
		},
		language.French: {
			"les langues sont géniales",
			"le renard brun saute par dessus le chien paresseux",
			"le français est parlé dans de nombreux pays",
			"apprendre de nouvelles choses vaut toujours la peine",
			"il a dit que cela fonctionnerait très bien",
		},
		language.German: {
			"sprachen sind toll",
			"der schnelle braune fuchs springt über den faulen hund",
			"deutsch wird in vielen ländern gesprochen",
			"neue dinge zu lernen lohnt sich immer",
			"er sagte dass das gut funktionieren würde",
		},
	}
}

// QuadrilingualCorpus extends TrilingualCorpus with Chinese sentences for
// script narrowing tests.
func QuadrilingualCorpus() Corpus {
	corpus := TrilingualCorpus()
	corpus[language.Chinese] = []string{
		"互联网逆天新人设",
		"这是一个测试句子",
		"我们喜欢学习语言",
	}
	return corpus
}
