package llm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	// DefaultModel is used when no model is configured.
	DefaultModel = "x-ai/grok-4-fast:free"
)

// Client talks to the OpenRouter chat completions API.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used in tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates an OpenRouter client.
func NewClient(apiKey, model string, opts ...Option) *Client {
	if model == "" {
		model = DefaultModel
	}
	c := &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the configured model identifier.
func (c *Client) Model() string { return c.model }

// StreamChat starts a streaming completion. The returned Stream must be
// closed by the caller. Req.Model and Req.Stream are filled in here.
func (c *Client) StreamChat(ctx context.Context, req ChatRequest) (*Stream, error) {
	req.Model = c.model
	req.Stream = true

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("HTTP-Referer", "https://github.com/meridianpress/concierge")
	httpReq.Header.Set("X-Title", "Meridian Press Concierge")

	log.Debug().
		Str("model", c.model).
		Int("messages", len(req.Messages)).
		Int("tools", len(req.Tools)).
		Str("tool_choice", req.ToolChoice).
		Msg("Starting chat completion stream")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("chat completion request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("chat completion: status %d: %s", resp.StatusCode, string(payload))
	}

	return newStream(resp.Body), nil
}
