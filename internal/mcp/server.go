package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/semaphore"

	"github.com/rickcrawford/tokenwc/internal/stats"
	"github.com/rickcrawford/tokenwc/internal/tokenizer"
)

// Deps holds dependencies for MCP handlers
type Deps struct {
	Tokenizer tokenizer.Tokenizer
	// MaxConcurrent caps concurrent tool calls; <= 0 means 4.
	MaxConcurrent int64
}

// Handler handles MCP tool calls
type Handler struct {
	tokenizer tokenizer.Tokenizer
	sem       *semaphore.Weighted
}

// New creates an MCP server with registered tools
func New(deps Deps) *server.MCPServer {
	s := server.NewMCPServer(
		"tokenwc",
		"1.0.0",
	)

	limit := deps.MaxConcurrent
	if limit <= 0 {
		limit = 4
	}

	handler := &Handler{
		tokenizer: deps.Tokenizer,
		sem:       semaphore.NewWeighted(limit),
	}

	RegisterTools(s, handler)

	return s
}

// RegisterTools registers count_tokens and count_file tools
func RegisterTools(s *server.MCPServer, handler *Handler) {
	// count_tokens tool
	s.AddTool(
		mcp.Tool{
			Name:        "count_tokens",
			Description: "Count LLM tokens, lines, and bytes in a piece of text",
			InputSchema: mcp.ToolInputSchema(mcp.ToolArgumentsSchema{
				Type: "object",
				Properties: map[string]any{
					"text": map[string]any{
						"type":        "string",
						"description": "The text to count",
					},
				},
				Required: []string{"text"},
			}),
		},
		handler.handleCountTokens,
	)

	// count_file tool
	s.AddTool(
		mcp.Tool{
			Name:        "count_file",
			Description: "Count LLM tokens, lines, and bytes in a file on disk",
			InputSchema: mcp.ToolInputSchema(mcp.ToolArgumentsSchema{
				Type: "object",
				Properties: map[string]any{
					"path": map[string]any{
						"type":        "string",
						"description": "Path to the file to count",
					},
				},
				Required: []string{"path"},
			}),
		},
		handler.handleCountFile,
	)
}

// handleCountTokens implements the count_tokens tool
func (h *Handler) handleCountTokens(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := request.GetString("text", "")

	if err := h.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer h.sem.Release(1)

	st, err := stats.CountBytes([]byte(text), h.tokenizer)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error counting text: %v", err)), nil
	}

	return statsResult(h.tokenizer.Name(), st), nil
}

// handleCountFile implements the count_file tool
func (h *Handler) handleCountFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := request.GetString("path", "")
	if path == "" {
		return mcp.NewToolResultError("path is required"), nil
	}

	if err := h.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer h.sem.Release(1)

	st, err := stats.CountFile(path, h.tokenizer)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error counting %s: %v", path, err)), nil
	}

	return statsResult(h.tokenizer.Name(), st), nil
}

func statsResult(tokenizerName string, st stats.TokenStats) *mcp.CallToolResult {
	result := map[string]interface{}{
		"tokenizer": tokenizerName,
		"tokens":    st.Tokens,
		"lines":     st.Lines,
		"bytes":     st.Bytes,
	}

	resultJSON, _ := json.MarshalIndent(result, "", "  ")

	return mcp.NewToolResultText(string(resultJSON))
}
