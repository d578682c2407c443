package chat

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/meridianpress/concierge/internal/llm"
	"github.com/meridianpress/concierge/internal/tools"
)

// maxToolRounds caps how many tool-executing rounds a single request may run.
// After the cap the model is asked for a final answer with tool calls
// disabled, so a looping model cannot hold a connection open indefinitely.
const maxToolRounds = 5

// ChunkStream yields completion chunks. *llm.Stream satisfies it.
type ChunkStream interface {
	Recv() (llm.Chunk, error)
	Close() error
}

// Streamer starts streaming completions. It exists so tests can substitute
// a scripted model for the OpenRouter client.
type Streamer interface {
	StreamChat(ctx context.Context, req llm.ChatRequest) (ChunkStream, error)
}

type clientStreamer struct {
	client *llm.Client
}

func (s clientStreamer) StreamChat(ctx context.Context, req llm.ChatRequest) (ChunkStream, error) {
	return s.client.StreamChat(ctx, req)
}

// NewStreamer adapts an OpenRouter client to the Streamer interface.
func NewStreamer(client *llm.Client) Streamer {
	return clientStreamer{client: client}
}

// Orchestrator drives one assistant persona: a system prompt plus its tool
// registry, against a streaming model.
type Orchestrator struct {
	streamer Streamer
	registry *tools.Registry
	system   string
	toolDefs []llm.ToolDef
}

// NewOrchestrator builds an orchestrator for one persona.
func NewOrchestrator(streamer Streamer, registry *tools.Registry, systemPrompt string) *Orchestrator {
	defs := make([]llm.ToolDef, 0, registry.Len())
	for _, t := range registry.All() {
		defs = append(defs, llm.ToolDef{
			Type: "function",
			Function: llm.FunctionDef{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.InputSchema,
			},
		})
	}
	return &Orchestrator{
		streamer: streamer,
		registry: registry,
		system:   systemPrompt,
		toolDefs: defs,
	}
}

// Run executes the conversation loop for one request, emitting the exchange
// to em. The returned error reports transport-level failures only; tool
// failures are soft results the model narrates.
func (o *Orchestrator) Run(ctx context.Context, history []llm.Message, em Emitter) error {
	id := uuid.NewString()
	em.Emit(Event{Type: EventStart, ID: id})

	msgs := make([]llm.Message, 0, len(history)+1)
	msgs = append(msgs, llm.Message{Role: "system", Content: o.system})
	msgs = append(msgs, history...)

	for round := 0; ; round++ {
		req := llm.ChatRequest{Messages: msgs, Tools: o.toolDefs, ToolChoice: "auto"}
		if round >= maxToolRounds {
			// Force a final text answer.
			req.ToolChoice = "none"
		}

		text, calls, err := o.streamRound(ctx, req, em)
		if err != nil {
			log.Error().Err(err).Str("stream_id", id).Int("round", round).Msg("Completion round failed")
			em.Emit(Event{Type: EventError, Error: "The assistant is unavailable right now. Please try again in a moment."})
			return err
		}

		if len(calls) == 0 || round >= maxToolRounds {
			em.Emit(Event{Type: EventFinish, Reason: "stop"})
			return nil
		}

		msgs = append(msgs, llm.Message{Role: "assistant", Content: text, ToolCalls: calls})

		for _, call := range calls {
			var args map[string]any
			if call.Function.Arguments != "" {
				_ = json.Unmarshal([]byte(call.Function.Arguments), &args)
			}
			em.Emit(Event{
				Type:       EventToolCall,
				ToolCallID: call.ID,
				ToolName:   call.Function.Name,
				Args:       args,
			})
		}

		results := o.executeCalls(ctx, calls)

		for i, call := range calls {
			em.Emit(Event{
				Type:       EventToolResult,
				ToolCallID: call.ID,
				ToolName:   call.Function.Name,
				Result:     results[i],
			})
			payload, err := json.Marshal(results[i])
			if err != nil {
				payload = []byte(`{"error":"result encoding failed"}`)
			}
			msgs = append(msgs, llm.Message{
				Role:       "tool",
				ToolCallID: call.ID,
				Content:    string(payload),
			})
		}
	}
}

// streamRound consumes one completion stream, forwarding text deltas and
// assembling any tool calls from their argument fragments.
func (o *Orchestrator) streamRound(ctx context.Context, req llm.ChatRequest, em Emitter) (string, []llm.ToolCall, error) {
	stream, err := o.streamer.StreamChat(ctx, req)
	if err != nil {
		return "", nil, err
	}
	defer stream.Close()

	var text string
	pending := map[int]*llm.ToolCall{}
	maxIndex := -1

	for {
		chunk, err := stream.Recv()
		if err != nil {
			return "", nil, err
		}
		if chunk.Done {
			break
		}
		if chunk.ContentDelta != "" {
			text += chunk.ContentDelta
			em.Emit(Event{Type: EventTextDelta, Delta: chunk.ContentDelta})
		}
		for _, delta := range chunk.ToolCalls {
			call, ok := pending[delta.Index]
			if !ok {
				call = &llm.ToolCall{Index: delta.Index, Type: "function"}
				pending[delta.Index] = call
				if delta.Index > maxIndex {
					maxIndex = delta.Index
				}
			}
			if delta.ID != "" {
				call.ID = delta.ID
			}
			if delta.Function.Name != "" {
				call.Function.Name += delta.Function.Name
			}
			call.Function.Arguments += delta.Function.Arguments
		}
	}

	calls := make([]llm.ToolCall, 0, len(pending))
	for i := 0; i <= maxIndex; i++ {
		if call, ok := pending[i]; ok {
			if call.ID == "" {
				call.ID = fmt.Sprintf("call_%s", uuid.NewString())
			}
			calls = append(calls, *call)
		}
	}
	return text, calls, nil
}

// executeCalls runs sibling tool calls concurrently. Results line up with
// calls by position; every slot is filled because tool execution never
// returns an error.
func (o *Orchestrator) executeCalls(ctx context.Context, calls []llm.ToolCall) []any {
	results := make([]any, len(calls))
	g, gctx := errgroup.WithContext(ctx)

	for i, call := range calls {
		g.Go(func() error {
			args := map[string]any{}
			if call.Function.Arguments != "" {
				if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
					log.Warn().Err(err).Str("tool", call.Function.Name).Msg("Unparseable tool arguments")
					results[i] = map[string]any{
						"error": "I couldn't interpret those parameters. Please adjust the request and try again.",
					}
					return nil
				}
			}
			results[i] = o.registry.Execute(gctx, call.Function.Name, args)
			return nil
		})
	}
	// Tool goroutines never return errors.
	_ = g.Wait()
	return results
}
