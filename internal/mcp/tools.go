// ABOUTME: MCP tool definitions and registration for the travel assistant
// ABOUTME: Exposes the chat pipeline and health aggregation over stdio
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/KaranJoshi1208/shivYatra/internal/models"
)

// Engine is the pipeline surface the MCP tools depend on.
type Engine interface {
	Chat(ctx context.Context, query string) models.ChatResult
	Health(ctx context.Context) models.HealthStatus
}

// RegisterTools registers the travel assistant tools with the server.
func RegisterTools(server *mcpserver.MCPServer, engine Engine, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}

	handlers := &Handlers{
		engine: engine,
		logger: logger,
	}

	server.AddTool(mcp.Tool{
		Name:        "ask_travel_question",
		Description: "Ask the travel assistant a question about destinations, activities, budgets, or trip planning in India. Answers are grounded in the tourism knowledge base.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Travel question to answer",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.AskTravelQuestion)

	server.AddTool(mcp.Tool{
		Name:        "system_health",
		Description: "Check health of the travel assistant's dependencies: vector store, embedding model, and generation backend.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.SystemHealth)

	return handlers
}
