package textproc

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	xlang "golang.org/x/text/language"
)

// Clean prepares raw input text for n-gram extraction. Invalid UTF-8 byte
// sequences are replaced with the substitution code point, the text is
// lowercased with a full-Unicode caser, numeric and punctuation code points
// are removed, and whitespace runs collapse to a single space. The result is
// trimmed; cleaning an already clean string returns it unchanged.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToValidUTF8(text, "�")
	text = cases.Lower(xlang.Und).String(text)

	var b strings.Builder
	b.Grow(len(text))
	lastWasSpace := true // leading whitespace is dropped
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			if !lastWasSpace {
				b.WriteByte(' ')
				lastWasSpace = true
			}
		case unicode.IsNumber(r) || unicode.IsPunct(r):
			// dropped
		default:
			b.WriteRune(r)
			lastWasSpace = false
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Words splits a cleaned text into its words. Clean guarantees single-space
// separation, so this is a plain split.
func Words(cleaned string) []string {
	if cleaned == "" {
		return nil
	}
	return strings.Split(cleaned, " ")
}
