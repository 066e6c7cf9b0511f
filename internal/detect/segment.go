package detect

import (
	"unicode"

	"github.com/MeKo-Tech/langid/internal/language"
)

// segmentWindow is the word window classified per position while segmenting
// mixed-language input.
const segmentWindow = 5

// wordSpan locates one whitespace-delimited word inside the original text.
type wordSpan struct {
	text  string
	start int // byte offset
	end   int // byte offset, exclusive
}

// splitWords returns the whitespace-delimited words of the original input
// with their byte offsets.
func splitWords(text string) []wordSpan {
	var words []wordSpan
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				words = append(words, wordSpan{text: text[start:i], start: start, end: i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, wordSpan{text: text[start:], start: start, end: len(text)})
	}
	return words
}

// DetectMultipleLanguagesOf partitions the input into contiguous
// single-language spans. It classifies a sliding word window at every word
// and opens a new span where the winning language changes; adjacent spans
// with the same language coalesce. Span indices are byte offsets into the
// original input. The segmentation is a best-effort heuristic.
func (d *Detector) DetectMultipleLanguagesOf(text string) ([]DetectionResult, error) {
	if text == "" {
		return []DetectionResult{}, nil
	}

	words := splitWords(text)
	if len(words) == 0 {
		return []DetectionResult{}, nil
	}

	// Short input: one span with the global detection.
	if len(words) <= segmentWindow {
		l, err := d.DetectLanguageOf(text)
		if err != nil {
			return nil, err
		}
		return []DetectionResult{{
			Language:   l,
			StartIndex: words[0].start,
			EndIndex:   words[len(words)-1].end,
			WordCount:  len(words),
		}}, nil
	}

	// Classify each word by the window starting at it. Undetermined
	// windows inherit the previous word's language so noise does not
	// shatter spans.
	langs := make([]language.Language, len(words))
	prev := language.Unknown
	for i := range words {
		hi := i + segmentWindow
		if hi > len(words) {
			hi = len(words)
		}
		window := text[words[i].start:words[hi-1].end]
		l, err := d.DetectLanguageOf(window)
		if err != nil {
			return nil, err
		}
		if l == language.Unknown {
			l = prev
		}
		langs[i] = l
		prev = l
	}

	// Coalesce runs of the same language into spans.
	var spans []DetectionResult
	spanStart := 0
	for i := 1; i <= len(words); i++ {
		if i < len(words) && langs[i] == langs[spanStart] {
			continue
		}
		spans = append(spans, DetectionResult{
			Language:   langs[spanStart],
			StartIndex: words[spanStart].start,
			EndIndex:   words[i-1].end,
			WordCount:  i - spanStart,
		})
		spanStart = i
	}
	return spans, nil
}
