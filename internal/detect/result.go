package detect

import "github.com/MeKo-Tech/langid/internal/language"

// ConfidenceValue pairs a language with its normalized probability for one
// detection. Probabilities over a detector's configured set sum to 1.
type ConfidenceValue struct {
	Language language.Language `json:"language"`
	Value    float64           `json:"value"`
}

// DetectionResult describes one contiguous single-language span found by
// DetectMultipleLanguagesOf. Indices are byte offsets into the original
// input text, with EndIndex exclusive.
type DetectionResult struct {
	Language   language.Language `json:"language"`
	StartIndex int               `json:"start_index"`
	EndIndex   int               `json:"end_index"`
	WordCount  int               `json:"word_count"`
}
