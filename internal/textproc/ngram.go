package textproc

import "fmt"

// MinNgramLength and MaxNgramLength bound the supported n-gram orders.
const (
	MinNgramLength = 1
	MaxNgramLength = 5
)

var ngramNames = [MaxNgramLength + 1]string{
	1: "unigram",
	2: "bigram",
	3: "trigram",
	4: "quadrigram",
	5: "fivegram",
}

// NgramName returns the conventional name for an n-gram order (unigram,
// bigram, trigram, quadrigram, fivegram). Orders outside 1..5 are a bug.
func NgramName(n int) string {
	if n < MinNgramLength || n > MaxNgramLength {
		panic(fmt.Sprintf("ngram order %d is not in range 1..5", n))
	}
	return ngramNames[n]
}

// Ngrams produces the overlapping character n-grams of the given order from
// a single word. Order is measured in code points, not bytes. A word shorter
// than n yields nothing.
func Ngrams(word string, n int) []string {
	if n < MinNgramLength || n > MaxNgramLength {
		panic(fmt.Sprintf("ngram order %d is not in range 1..5", n))
	}
	runes := []rune(word)
	if len(runes) < n {
		return nil
	}
	out := make([]string, 0, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		out = append(out, string(runes[i:i+n]))
	}
	return out
}

// TextNgrams extracts all n-grams of the given order from every word of a
// cleaned text, with multiplicities.
func TextNgrams(cleaned string, n int) []string {
	var out []string
	for _, word := range Words(cleaned) {
		out = append(out, Ngrams(word, n)...)
	}
	return out
}

// Prefix returns the left prefix of an n-gram with the given code point
// count. It is the step of the lower-order back-off chain.
func Prefix(ngram string, count int) string {
	i := 0
	for pos := range ngram {
		if i == count {
			return ngram[:pos]
		}
		i++
	}
	return ngram
}
