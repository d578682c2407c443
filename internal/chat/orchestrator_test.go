package chat

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/meridianpress/concierge/internal/db"
	"github.com/meridianpress/concierge/internal/llm"
	"github.com/meridianpress/concierge/internal/tools"
)

type fakeStream struct {
	chunks []llm.Chunk
	pos    int
}

func (s *fakeStream) Recv() (llm.Chunk, error) {
	if s.pos >= len(s.chunks) {
		return llm.Chunk{Done: true}, nil
	}
	c := s.chunks[s.pos]
	s.pos++
	return c, nil
}

func (s *fakeStream) Close() error { return nil }

// fakeStreamer replays one scripted chunk sequence per round and records
// every request it receives.
type fakeStreamer struct {
	rounds   [][]llm.Chunk
	requests []llm.ChatRequest
	err      error
}

func (f *fakeStreamer) StreamChat(_ context.Context, req llm.ChatRequest) (ChunkStream, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.requests = append(f.requests, req)
	round := len(f.requests) - 1
	if round >= len(f.rounds) {
		round = len(f.rounds) - 1
	}
	return &fakeStream{chunks: f.rounds[round]}, nil
}

type captureEmitter struct {
	events []Event
}

func (c *captureEmitter) Emit(ev Event) { c.events = append(c.events, ev) }

func (c *captureEmitter) types() []string {
	out := make([]string, len(c.events))
	for i, ev := range c.events {
		out[i] = ev.Type
	}
	return out
}

func textChunks(parts ...string) []llm.Chunk {
	chunks := make([]llm.Chunk, 0, len(parts)+1)
	for _, p := range parts {
		chunks = append(chunks, llm.Chunk{ContentDelta: p})
	}
	return append(chunks, llm.Chunk{FinishReason: "stop"})
}

func toolCallChunks(id, name, args string) []llm.Chunk {
	// Arguments split across deltas, the way real streams arrive.
	half := len(args) / 2
	return []llm.Chunk{
		{ToolCalls: []llm.ToolCall{{Index: 0, ID: id, Type: "function", Function: llm.FunctionCall{Name: name}}}},
		{ToolCalls: []llm.ToolCall{{Index: 0, Function: llm.FunctionCall{Arguments: args[:half]}}}},
		{ToolCalls: []llm.ToolCall{{Index: 0, Function: llm.FunctionCall{Arguments: args[half:]}}}},
		{FinishReason: "tool_calls"},
	}
}

func testResearchRegistry(t *testing.T) *tools.Registry {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.Migrate(gdb))

	store, err := db.NewStoreWithDB(gdb)
	require.NoError(t, err)
	book := &db.Book{BookTitle: "Artificial Intelligence in Medicine", AuthorName: "Chen Wei", Year: 2024}
	require.NoError(t, gdb.Create(book).Error)
	return tools.NewResearchRegistry(db.NewCatalogStore(store))
}

func TestRunTextOnlyConversation(t *testing.T) {
	streamer := &fakeStreamer{rounds: [][]llm.Chunk{textChunks("Hello", " there")}}
	orch := NewOrchestrator(streamer, testResearchRegistry(t), ResearchSystemPrompt)
	em := &captureEmitter{}

	err := orch.Run(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}, em)
	require.NoError(t, err)

	assert.Equal(t, []string{EventStart, EventTextDelta, EventTextDelta, EventFinish}, em.types())
	assert.NotEmpty(t, em.events[0].ID)
	assert.Equal(t, "Hello", em.events[1].Delta)

	// One round, system prompt first.
	require.Len(t, streamer.requests, 1)
	assert.Equal(t, "system", streamer.requests[0].Messages[0].Role)
	assert.Equal(t, "auto", streamer.requests[0].ToolChoice)
	assert.Len(t, streamer.requests[0].Tools, 8)
}

func TestRunToolRoundFeedsResultBack(t *testing.T) {
	streamer := &fakeStreamer{rounds: [][]llm.Chunk{
		toolCallChunks("call_1", "searchBooks", `{"query":"artificial intelligence"}`),
		textChunks("Found one book."),
	}}
	orch := NewOrchestrator(streamer, testResearchRegistry(t), ResearchSystemPrompt)
	em := &captureEmitter{}

	err := orch.Run(context.Background(), []llm.Message{{Role: "user", Content: "find AI books"}}, em)
	require.NoError(t, err)

	assert.Equal(t, []string{EventStart, EventToolCall, EventToolResult, EventTextDelta, EventFinish}, em.types())
	assert.Equal(t, "searchBooks", em.events[1].ToolName)
	assert.Equal(t, "call_1", em.events[1].ToolCallID)

	// Second round carries the assistant tool call and the tool result.
	require.Len(t, streamer.requests, 2)
	msgs := streamer.requests[1].Messages
	assistant := msgs[len(msgs)-2]
	toolMsg := msgs[len(msgs)-1]
	assert.Equal(t, "assistant", assistant.Role)
	require.Len(t, assistant.ToolCalls, 1)
	assert.Equal(t, "tool", toolMsg.Role)
	assert.Equal(t, "call_1", toolMsg.ToolCallID)
	assert.Contains(t, toolMsg.Content, "Artificial Intelligence in Medicine")
}

func TestRunStopsAfterMaxToolRounds(t *testing.T) {
	// The scripted model asks for a tool on every round; the last scripted
	// round repeats forever.
	streamer := &fakeStreamer{rounds: [][]llm.Chunk{
		toolCallChunks("call_a", "getBookData", `{}`),
	}}
	orch := NewOrchestrator(streamer, testResearchRegistry(t), ResearchSystemPrompt)
	em := &captureEmitter{}

	err := orch.Run(context.Background(), []llm.Message{{Role: "user", Content: "loop"}}, em)
	require.NoError(t, err)

	// Five tool rounds plus the forced final completion.
	require.Len(t, streamer.requests, 6)
	for _, req := range streamer.requests[:5] {
		assert.Equal(t, "auto", req.ToolChoice)
	}
	assert.Equal(t, "none", streamer.requests[5].ToolChoice)

	var toolResults int
	for _, ev := range em.events {
		if ev.Type == EventToolResult {
			toolResults++
		}
	}
	assert.Equal(t, 5, toolResults)
	assert.Equal(t, EventFinish, em.events[len(em.events)-1].Type)
}

func TestRunSiblingCallsKeepOrder(t *testing.T) {
	round := []llm.Chunk{
		{ToolCalls: []llm.ToolCall{
			{Index: 0, ID: "call_books", Type: "function", Function: llm.FunctionCall{Name: "getBookData", Arguments: "{}"}},
			{Index: 1, ID: "call_chapters", Type: "function", Function: llm.FunctionCall{Name: "getChapterData", Arguments: "{}"}},
		}},
		{FinishReason: "tool_calls"},
	}
	streamer := &fakeStreamer{rounds: [][]llm.Chunk{round, textChunks("done")}}
	orch := NewOrchestrator(streamer, testResearchRegistry(t), ResearchSystemPrompt)
	em := &captureEmitter{}

	err := orch.Run(context.Background(), []llm.Message{{Role: "user", Content: "stats"}}, em)
	require.NoError(t, err)

	var resultNames []string
	for _, ev := range em.events {
		if ev.Type == EventToolResult {
			resultNames = append(resultNames, ev.ToolName)
		}
	}
	assert.Equal(t, []string{"getBookData", "getChapterData"}, resultNames)
}

func TestRunEmitsErrorOnStreamFailure(t *testing.T) {
	streamer := &fakeStreamer{err: errors.New("connection refused")}
	orch := NewOrchestrator(streamer, testResearchRegistry(t), ResearchSystemPrompt)
	em := &captureEmitter{}

	err := orch.Run(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}, em)
	require.Error(t, err)

	last := em.events[len(em.events)-1]
	assert.Equal(t, EventError, last.Type)
	assert.NotContains(t, last.Error, "connection refused")
}

func TestRunUnparseableArgumentsBecomeSoftError(t *testing.T) {
	streamer := &fakeStreamer{rounds: [][]llm.Chunk{
		{
			{ToolCalls: []llm.ToolCall{{Index: 0, ID: "call_bad", Type: "function", Function: llm.FunctionCall{Name: "searchBooks", Arguments: "{not json"}}}},
			{FinishReason: "tool_calls"},
		},
		textChunks("sorry"),
	}}
	orch := NewOrchestrator(streamer, testResearchRegistry(t), ResearchSystemPrompt)
	em := &captureEmitter{}

	err := orch.Run(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}, em)
	require.NoError(t, err)

	var result map[string]any
	for _, ev := range em.events {
		if ev.Type == EventToolResult {
			var ok bool
			result, ok = ev.Result.(map[string]any)
			require.True(t, ok)
		}
	}
	require.NotNil(t, result)
	assert.Contains(t, fmt.Sprint(result["error"]), "parameters")
}
