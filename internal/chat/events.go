// Package chat runs the tool-calling conversation loop for one HTTP request:
// it relays messages to the model, executes requested database tools, feeds
// results back, and emits the whole exchange as a typed event stream.
package chat

import (
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// Event is one item in the response stream.
type Event struct {
	Type string `json:"type"`
	// ID is set on start events only.
	ID string `json:"id,omitempty"`
	// Delta carries incremental assistant text.
	Delta string `json:"delta,omitempty"`
	// Tool call fields.
	ToolCallID string `json:"toolCallId,omitempty"`
	ToolName   string `json:"toolName,omitempty"`
	Args       any    `json:"args,omitempty"`
	Result     any    `json:"result,omitempty"`
	// Reason is set on finish events ("stop" or "length").
	Reason string `json:"reason,omitempty"`
	// Error is the user-safe message on error events.
	Error string `json:"error,omitempty"`
}

// Event types, in the order a well-formed stream produces them.
const (
	EventStart      = "start"
	EventTextDelta  = "text-delta"
	EventToolCall   = "tool-call"
	EventToolResult = "tool-result"
	EventFinish     = "finish"
	EventError      = "error"
)

// Emitter receives stream events. The orchestrator emits from a single
// goroutine, so implementations need no locking of their own.
type Emitter interface {
	Emit(ev Event)
}

// SSEEmitter writes events to an HTTP response as server-sent events,
// flushing after each one so clients see deltas as they happen.
type SSEEmitter struct {
	w       http.ResponseWriter
	flusher http.Flusher
	failed  bool
}

// NewSSEEmitter prepares w for event streaming and returns the emitter.
// Returns an error if the writer cannot flush.
func NewSSEEmitter(w http.ResponseWriter) (*SSEEmitter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	return &SSEEmitter{w: w, flusher: flusher}, nil
}

// Emit writes one event. After the first write failure the emitter goes
// quiet; the client is gone and the orchestrator will notice via context.
func (e *SSEEmitter) Emit(ev Event) {
	if e.failed {
		return
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		log.Error().Err(err).Str("event", ev.Type).Msg("Failed to encode stream event")
		return
	}
	if _, err := fmt.Fprintf(e.w, "data: %s\n\n", payload); err != nil {
		log.Debug().Err(err).Msg("SSE client write failed, stopping emission")
		e.failed = true
		return
	}
	e.flusher.Flush()
}
