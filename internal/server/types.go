package server

import (
	"github.com/MeKo-Tech/langid/internal/detect"
	"github.com/MeKo-Tech/langid/internal/language"
)

// DetectRequest is the body of POST /detect and POST /confidence. Text and
// Texts are mutually exclusive; setting both is an error. An empty Text is
// accepted and detects as undetermined. POST /confidence reads Text only.
type DetectRequest struct {
	Text  string   `json:"text,omitempty"`
	Texts []string `json:"texts,omitempty"`

	// Language restricts POST /confidence to one language.
	Language string `json:"language,omitempty"`
}

// DetectionResponse is the result for one input text.
type DetectionResponse struct {
	Language   language.Language        `json:"language"`
	Reliable   bool                     `json:"reliable"`
	Confidence []detect.ConfidenceValue `json:"confidence,omitempty"`
}

// BatchDetectionResponse wraps the results for a texts array.
type BatchDetectionResponse struct {
	Results []DetectionResponse `json:"results"`
	Count   int                 `json:"count"`
}

// ConfidenceResponse is the result of POST /confidence for one text.
type ConfidenceResponse struct {
	Language   language.Language `json:"language"`
	Confidence float64           `json:"confidence"`
}

// LanguageInfo describes one supported language.
type LanguageInfo struct {
	Name     string `json:"name"`
	IsoCode1 string `json:"iso_639_1"`
	IsoCode3 string `json:"iso_639_3"`
}

// LanguagesResponse lists the detector's configured languages.
type LanguagesResponse struct {
	Languages []LanguageInfo `json:"languages"`
	Count     int            `json:"count"`
}

// HealthResponse reports server health.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
