// ABOUTME: MCP tool handler implementations for the travel assistant
// ABOUTME: Tool failures become tool error results, never transport errors
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

// Handlers contains the handler functions for the MCP tools.
type Handlers struct {
	engine Engine
	logger *zap.Logger
}

// AskTravelQuestion handles the ask_travel_question tool. The full
// chat result is returned as JSON so agents can inspect the retrieved
// context alongside the answer.
func (h *Handlers) AskTravelQuestion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}
	if strings.TrimSpace(question) == "" {
		return mcp.NewToolResultError("question must not be empty"), nil
	}

	result := h.engine.Chat(ctx, question)
	h.logger.Info("mcp chat handled",
		zap.Int("context_docs", len(result.ContextDocs)),
		zap.Float64("processing_time", result.ProcessingTime))

	responseJSON, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// SystemHealth handles the system_health tool.
func (h *Handlers) SystemHealth(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	health := h.engine.Health(ctx)

	responseJSON, err := json.Marshal(health)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}
