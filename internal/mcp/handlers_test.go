// ABOUTME: Tests for the MCP tool handlers using a fake engine
package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/KaranJoshi1208/shivYatra/internal/models"
)

type fakeEngine struct {
	result    models.ChatResult
	health    models.HealthStatus
	lastQuery string
	chatCalls int
}

func (f *fakeEngine) Chat(ctx context.Context, query string) models.ChatResult {
	f.chatCalls++
	f.lastQuery = query
	return f.result
}

func (f *fakeEngine) Health(ctx context.Context) models.HealthStatus {
	return f.health
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("result has %d content items, want 1", len(result.Content))
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Content[0])
	}
	return text.Text
}

func TestAskTravelQuestion(t *testing.T) {
	engine := &fakeEngine{
		result: models.ChatResult{
			Response: "Spiti is best visited June through September.",
			ContextDocs: []models.ContextItem{
				{Content: "Spiti Valley roads open in summer.", Similarity: 0.74, Rank: 1},
			},
			Query: "when to visit Spiti?",
		},
	}
	h := &Handlers{engine: engine, logger: zap.NewNop()}

	result, err := h.AskTravelQuestion(context.Background(), callRequest(map[string]any{
		"question": "when to visit Spiti?",
	}))
	if err != nil {
		t.Fatalf("AskTravelQuestion() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}

	var got models.ChatResult
	if err := json.Unmarshal([]byte(resultText(t, result)), &got); err != nil {
		t.Fatalf("decoding tool result: %v", err)
	}
	if got.Response != engine.result.Response {
		t.Errorf("response = %q", got.Response)
	}
	if len(got.ContextDocs) != 1 || got.ContextDocs[0].Rank != 1 {
		t.Errorf("context docs not carried through: %+v", got.ContextDocs)
	}
	if engine.lastQuery != "when to visit Spiti?" {
		t.Errorf("engine received query %q", engine.lastQuery)
	}
}

func TestAskTravelQuestion_MissingQuestion(t *testing.T) {
	engine := &fakeEngine{}
	h := &Handlers{engine: engine, logger: zap.NewNop()}

	result, err := h.AskTravelQuestion(context.Background(), callRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("AskTravelQuestion() error = %v", err)
	}
	if !result.IsError {
		t.Error("want tool error for missing question")
	}
	if engine.chatCalls != 0 {
		t.Error("engine invoked without a question")
	}
}

func TestAskTravelQuestion_BlankQuestion(t *testing.T) {
	h := &Handlers{engine: &fakeEngine{}, logger: zap.NewNop()}

	result, err := h.AskTravelQuestion(context.Background(), callRequest(map[string]any{
		"question": "   ",
	}))
	if err != nil {
		t.Fatalf("AskTravelQuestion() error = %v", err)
	}
	if !result.IsError {
		t.Error("want tool error for blank question")
	}
}

func TestSystemHealth(t *testing.T) {
	engine := &fakeEngine{
		health: models.HealthStatus{
			Initialized:     true,
			VectorStore:     true,
			TotalEmbeddings: 4160,
		},
	}
	h := &Handlers{engine: engine, logger: zap.NewNop()}

	result, err := h.SystemHealth(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("SystemHealth() error = %v", err)
	}

	var got models.HealthStatus
	if err := json.Unmarshal([]byte(resultText(t, result)), &got); err != nil {
		t.Fatalf("decoding tool result: %v", err)
	}
	if !got.Initialized || !got.VectorStore || got.TotalEmbeddings != 4160 {
		t.Errorf("health = %+v", got)
	}
}
