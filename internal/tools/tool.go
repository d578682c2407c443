// Package tools defines the database tools exposed to the chat model: their
// JSON schemas, their execution against the catalog and analytics stores, and
// the soft-failure envelopes the model narrates from. A tool never returns a
// Go error to the orchestrator; anything that goes wrong becomes a structured
// result the model can explain to the user.
package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/meridianpress/concierge/internal/query"
)

// Handler executes one tool invocation with decoded arguments.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Tool is one model-callable database operation.
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]any

	handler Handler
	// failure is the user-safe envelope returned when the handler errors.
	failure map[string]any
}

// Registry holds a fixed, ordered set of tools. Order is part of the API
// surface sent to the model, so it is preserved exactly as registered.
type Registry struct {
	order []string
	tools map[string]*Tool
}

// NewRegistry builds a registry from an ordered tool list.
func NewRegistry(tools ...*Tool) *Registry {
	r := &Registry{tools: make(map[string]*Tool, len(tools))}
	for _, t := range tools {
		r.order = append(r.order, t.Name)
		r.tools[t.Name] = t
	}
	return r
}

// Names returns the tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Get returns the named tool, or nil.
func (r *Registry) Get(name string) *Tool {
	return r.tools[name]
}

// Len returns the number of registered tools.
func (r *Registry) Len() int { return len(r.order) }

// All returns the tools in registration order.
func (r *Registry) All() []*Tool {
	out := make([]*Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Execute runs the named tool. The returned value is always a result the
// model can read: unknown tools, invalid arguments, database failures and
// panics all come back as error envelopes, never as Go errors.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (result any) {
	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Str("tool", name).Interface("panic", rec).Msg("Tool panicked")
			result = map[string]any{
				"error": "Something went wrong while processing that request. Please try again.",
			}
		}
	}()

	tool := r.tools[name]
	if tool == nil {
		log.Warn().Str("tool", name).Msg("Unknown tool requested")
		return map[string]any{
			"error": fmt.Sprintf("Unknown tool %q.", name),
		}
	}

	out, err := tool.handler(ctx, args)
	if err != nil {
		var invalidYear *query.InvalidYearError
		if errors.As(err, &invalidYear) {
			log.Warn().Str("tool", name).Str("year", invalidYear.Year).Msg("Rejected out-of-range year")
			return map[string]any{
				"error": fmt.Sprintf("Invalid year: %s. Please use %s, or leave empty for all years.",
					invalidYear.Year, joinYears(invalidYear.Valid)),
			}
		}

		var argErr *ArgumentError
		if errors.As(err, &argErr) {
			log.Warn().Err(err).Str("tool", name).Interface("params", args).Msg("Rejected tool arguments")
			return map[string]any{
				"error": "I couldn't interpret those parameters. Please adjust the request and try again.",
			}
		}

		log.Error().Err(err).Str("tool", name).Interface("params", args).Msg("Tool failed")
		return tool.failure
	}

	log.Info().
		Str("tool", name).
		Interface("params", args).
		Dur("duration", time.Since(start)).
		Msg("Tool executed")
	return out
}

func joinYears(years []string) string {
	switch len(years) {
	case 0:
		return ""
	case 1:
		return years[0]
	}
	out := years[0]
	for _, y := range years[1 : len(years)-1] {
		out += ", " + y
	}
	return out + " or " + years[len(years)-1]
}
