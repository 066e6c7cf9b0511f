package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MeKo-Tech/langid/internal/language"
)

// healthHandler returns server health status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status: "healthy",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// languagesHandler lists the detector's configured languages.
func (s *Server) languagesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	langs := s.detector.Languages()
	infos := make([]LanguageInfo, len(langs))
	for i, l := range langs {
		infos[i] = LanguageInfo{
			Name:     l.String(),
			IsoCode1: l.IsoCode639_1(),
			IsoCode3: l.IsoCode639_3(),
		}
	}
	s.writeJSON(w, http.StatusOK, LanguagesResponse{Languages: infos, Count: len(infos)})
}

// parseRequest decodes and validates a detection request body.
func (s *Server) parseRequest(w http.ResponseWriter, r *http.Request) (*DetectRequest, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}

	if s.maxTextKB > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, int64(s.maxTextKB)*1024)
	}

	var req DetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorResponse(w, "invalid request body", http.StatusBadRequest)
		return nil, false
	}
	if req.Text != "" && len(req.Texts) > 0 {
		s.writeErrorResponse(w, "set either text or texts, not both", http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

// detectHandler answers POST /detect for a single text or a texts array.
func (s *Server) detectHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := s.parseRequest(w, r)
	if !ok {
		return
	}

	start := time.Now()
	if len(req.Texts) > 0 {
		results := make([]DetectionResponse, len(req.Texts))
		for i, text := range req.Texts {
			resp, err := s.detectOne(text)
			if err != nil {
				detectionsTotal.WithLabelValues("detect", "error").Inc()
				s.writeErrorResponse(w, err.Error(), http.StatusInternalServerError)
				return
			}
			results[i] = resp
		}
		detectionDuration.WithLabelValues("detect").Observe(time.Since(start).Seconds())
		s.writeJSON(w, http.StatusOK, BatchDetectionResponse{Results: results, Count: len(results)})
		return
	}

	resp, err := s.detectOne(req.Text)
	if err != nil {
		detectionsTotal.WithLabelValues("detect", "error").Inc()
		s.writeErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	detectionDuration.WithLabelValues("detect").Observe(time.Since(start).Seconds())
	s.writeJSON(w, http.StatusOK, resp)
}

// detectOne runs detection for one text and records metrics.
func (s *Server) detectOne(text string) (DetectionResponse, error) {
	detectionTextLength.WithLabelValues("detect").Observe(float64(len(text)))

	best, err := s.detector.DetectLanguageOf(text)
	if err != nil {
		return DetectionResponse{}, err
	}
	values, err := s.detector.ComputeLanguageConfidenceValues(text)
	if err != nil {
		return DetectionResponse{}, err
	}

	status := "ok"
	if best == language.Unknown {
		status = "undetermined"
	}
	detectionsTotal.WithLabelValues("detect", status).Inc()

	return DetectionResponse{
		Language:   best,
		Reliable:   best != language.Unknown,
		Confidence: values,
	}, nil
}

// confidenceHandler answers POST /confidence: the probability of one
// language for one text.
func (s *Server) confidenceHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := s.parseRequest(w, r)
	if !ok {
		return
	}
	if req.Language == "" {
		s.writeErrorResponse(w, "language is required", http.StatusBadRequest)
		return
	}
	l, err := language.Parse(req.Language)
	if err != nil {
		s.writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := s.detector.ComputeLanguageConfidence(req.Text, l)
	if err != nil {
		detectionsTotal.WithLabelValues("confidence", "error").Inc()
		s.writeErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}
	detectionsTotal.WithLabelValues("confidence", "ok").Inc()
	s.writeJSON(w, http.StatusOK, ConfidenceResponse{Language: l, Confidence: p})
}
