package llm

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
)

// Chunk is one increment of a streaming completion. ContentDelta and
// ToolCalls are both deltas: tool-call argument fragments must be
// concatenated per index by the consumer.
type Chunk struct {
	ID           string
	ContentDelta string
	ToolCalls    []ToolCall
	FinishReason string
	Done         bool
}

// Stream reads server-sent events from a chat completion response.
type Stream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
}

func newStream(body io.ReadCloser) *Stream {
	scanner := bufio.NewScanner(body)
	// Tool-call argument deltas can push single events past the default
	// scanner limit.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Stream{body: body, scanner: scanner}
}

// Recv returns the next chunk. After a chunk with Done set, the stream is
// exhausted. Malformed event lines are skipped.
func (s *Stream) Recv() (Chunk, error) {
	for s.scanner.Scan() {
		line := s.scanner.Text()

		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		data := strings.TrimPrefix(line, "data: ")

		if data == "[DONE]" {
			return Chunk{Done: true}, nil
		}

		var resp chatResponse
		if err := json.Unmarshal([]byte(data), &resp); err != nil {
			continue
		}
		if resp.Error != nil {
			return Chunk{}, fmt.Errorf("chat completion: %s", resp.Error.Message)
		}
		if len(resp.Choices) == 0 {
			continue
		}

		c := resp.Choices[0]
		return Chunk{
			ID:           resp.ID,
			ContentDelta: c.Delta.Content,
			ToolCalls:    c.Delta.ToolCalls,
			FinishReason: c.FinishReason,
		}, nil
	}

	if err := s.scanner.Err(); err != nil {
		return Chunk{}, err
	}
	return Chunk{Done: true}, nil
}

// Close releases the underlying response body.
func (s *Stream) Close() error {
	return s.body.Close()
}
