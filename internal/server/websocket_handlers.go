package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// CORS is enforced by corsMiddleware on the HTTP endpoints; the
	// websocket endpoint accepts any origin and relies on the same
	// rate limiting.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is one message from a streaming client.
type wsRequest struct {
	Text string `json:"text"`
}

// websocketHandler streams detections: the client sends texts one message
// at a time and receives a DetectionResponse per text.
func (s *Server) websocketHandler(w http.ResponseWriter, r *http.Request) {
	if s.rateLimiter != nil && !s.rateLimiter.Allow(getClientIP(r)) {
		rateLimitHits.Inc()
		s.writeErrorResponse(w, "rate limit exceeded", http.StatusTooManyRequests)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Debug("websocket upgrade failed", "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	websocketConnections.Inc()
	defer websocketConnections.Dec()

	for {
		var req wsRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("websocket read failed", "error", err)
			}
			return
		}
		websocketMessagesTotal.WithLabelValues("received").Inc()

		resp, err := s.detectOne(req.Text)
		if err != nil {
			if writeErr := conn.WriteJSON(ErrorResponse{Error: err.Error()}); writeErr != nil {
				return
			}
			continue
		}
		if err := conn.WriteJSON(resp); err != nil {
			return
		}
		websocketMessagesTotal.WithLabelValues("sent").Inc()
	}
}
