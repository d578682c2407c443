package server

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/meridianpress/concierge/internal/chat"
	"github.com/meridianpress/concierge/internal/llm"
)

// chatRequest is the body of a chat endpoint request.
type chatRequest struct {
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// writeJSON writes a JSON response with proper error handling.
func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// handleHealth reports liveness. It answers 200 whenever the process is up.
func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// handleReady reports readiness: 200 only when the database answers.
func (s *Service) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(); err != nil {
		log.Warn().Err(err).Msg("Readiness check failed")
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, map[string]string{"status": "ready"})
}

func (s *Service) handleResearchChat(w http.ResponseWriter, r *http.Request) {
	s.streamChat(w, r, s.research)
}

func (s *Service) handleSalesChat(w http.ResponseWriter, r *http.Request) {
	s.streamChat(w, r, s.sales)
}

// streamChat decodes the conversation, then hands the connection over to the
// orchestrator as an SSE stream. Errors past this point arrive as stream
// events; the HTTP status is already committed.
func (s *Service) streamChat(w http.ResponseWriter, r *http.Request, orch *chat.Orchestrator) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Messages) == 0 {
		http.Error(w, "messages must not be empty", http.StatusBadRequest)
		return
	}

	history := make([]llm.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case "user", "assistant":
			history = append(history, llm.Message{Role: m.Role, Content: m.Content})
		default:
			http.Error(w, "message roles must be user or assistant", http.StatusBadRequest)
			return
		}
	}

	emitter, err := chat.NewSSEEmitter(w)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := orch.Run(r.Context(), history, emitter); err != nil {
		// Already reported on the stream; log with the request ID context.
		log.Error().Err(err).Str("path", r.URL.Path).Msg("Chat stream ended with error")
	}
}
