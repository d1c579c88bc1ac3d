// MCP server implementation

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/syedazharmbnr1/claude-chatgpt-mcp/internal/config"
	"github.com/syedazharmbnr1/claude-chatgpt-mcp/internal/transport"
	"github.com/syedazharmbnr1/claude-chatgpt-mcp/internal/version"
)

// Engine is the response-extraction engine the chatgpt tool dispatches to.
type Engine interface {
	Ask(ctx context.Context, prompt, conversationHandle string, waitSeconds int) (string, error)
	LastMessage(ctx context.Context) (string, error)
	Conversations(ctx context.Context) ([]string, error)
}

// MCPServer serves MCP tool calls over a JSON-RPC 2.0 transport.
type MCPServer struct {
	engine Engine
	ctx    context.Context
	cfg    *config.Config
	tools  map[string]*Tool
	cancel context.CancelFunc
	mu     sync.RWMutex
}

// Tool represents an MCP tool.
type Tool struct {
	Handler     func(*ToolCall) (*ToolResult, error)
	InputSchema map[string]interface{}
	Name        string
	Description string
}

// ToolCall represents a tool call request.
type ToolCall struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolResult represents a tool call result.
type ToolResult struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

// Content represents a content item in a tool result.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// NewMCPServer creates a new MCP server around the given engine.
func NewMCPServer(cfg *config.Config, engine Engine) *MCPServer {
	ctx, cancel := context.WithCancel(context.Background())

	s := &MCPServer{
		cfg:    cfg,
		engine: engine,
		ctx:    ctx,
		cancel: cancel,
		tools:  make(map[string]*Tool),
	}
	s.registerTools()
	return s
}

// Shutdown cancels any in-flight tool calls and stops the serve loop.
func (s *MCPServer) Shutdown() {
	log.Println("Shutting down MCP server...")
	s.cancel()
}

// registerTools registers all available tools.
func (s *MCPServer) registerTools() {
	s.tools = map[string]*Tool{
		"chatgpt": {
			Name:        "chatgpt",
			Description: "Interact with the ChatGPT desktop app on macOS. Send prompts and read replies via the accessibility layer.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"operation": map[string]interface{}{
						"type":        "string",
						"description": "Operation to perform: ask, get_conversations, or get_last_message",
						"enum":        []string{"ask", "get_conversations", "get_last_message"},
					},
					"prompt": map[string]interface{}{
						"type":        "string",
						"description": "The prompt to send to ChatGPT (required for ask)",
					},
					"conversation_id": map[string]interface{}{
						"type":        "string",
						"description": "Optional conversation label to select before sending the prompt (best effort)",
					},
					"wait_time": map[string]interface{}{
						"type":        "number",
						"description": "Seconds to wait for a response before reading it back (1-30, default 12)",
					},
				},
				"required": []string{"operation"},
			},
			Handler: s.handleChatGPT,
		},
	}
}

// Serve reads and dispatches messages until the transport closes or the
// server shuts down.
func (s *MCPServer) Serve(tr *transport.StdioTransport) error {
	log.Println("MCP server starting...")

	for {
		select {
		case <-s.ctx.Done():
			log.Println("MCP server stopping (context cancelled)")
			return nil
		default:
			msg, err := tr.ReadMessage()
			if err != nil {
				if errors.Is(err, transport.ErrStdinClosed) {
					log.Println("MCP server stopping (stdin closed)")
					return nil
				}
				log.Printf("Error reading message: %v", err)
				continue
			}

			go s.handleMessage(tr, msg)
		}
	}
}

// handleMessage handles a single MCP message.
func (s *MCPServer) handleMessage(tr transport.Transport, msg *transport.Message) {
	// Notifications carry no ID and expect no response.
	if len(msg.ID) == 0 && strings.HasPrefix(msg.Method, "notifications/") {
		return
	}

	switch msg.Method {
	case "initialize":
		s.writeResponse(tr, &transport.Message{
			JSONRPC: "2.0",
			ID:      msg.ID,
			Result: json.RawMessage(fmt.Sprintf(
				`{"protocolVersion":"2024-11-05","capabilities":{"tools":{}},"serverInfo":{"name":"claude-chatgpt-mcp","version":%q}}`,
				version.Current())),
		})

	case "tools/list":
		s.mu.RLock()
		tools := make([]map[string]interface{}, 0, len(s.tools))
		for _, tool := range s.tools {
			tools = append(tools, map[string]interface{}{
				"name":        tool.Name,
				"description": tool.Description,
				"inputSchema": tool.InputSchema,
			})
		}
		s.mu.RUnlock()

		result, _ := json.Marshal(map[string]interface{}{"tools": tools})
		s.writeResponse(tr, &transport.Message{
			JSONRPC: "2.0",
			ID:      msg.ID,
			Result:  result,
		})

	case "tools/call":
		s.handleToolCall(tr, msg)

	default:
		s.writeResponse(tr, &transport.Message{
			JSONRPC: "2.0",
			ID:      msg.ID,
			Error: &transport.ErrorObj{
				Code:    transport.ErrCodeMethodNotFound,
				Message: fmt.Sprintf("Method not found: %s", msg.Method),
			},
		})
	}
}

func (s *MCPServer) handleToolCall(tr transport.Transport, msg *transport.Message) {
	var params struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		s.writeResponse(tr, &transport.Message{
			JSONRPC: "2.0",
			ID:      msg.ID,
			Error: &transport.ErrorObj{
				Code:    transport.ErrCodeInvalidRequest,
				Message: fmt.Sprintf("Invalid request: %v", err),
			},
		})
		return
	}

	s.mu.RLock()
	tool, exists := s.tools[params.Name]
	s.mu.RUnlock()

	if !exists {
		s.writeResponse(tr, &transport.Message{
			JSONRPC: "2.0",
			ID:      msg.ID,
			Error: &transport.ErrorObj{
				Code:    transport.ErrCodeMethodNotFound,
				Message: fmt.Sprintf("Tool not found: %s", params.Name),
			},
		})
		return
	}

	// Validate the arguments against the tool's input schema before the
	// handler sees them.
	if len(params.Arguments) > 0 {
		var args map[string]any
		if err := json.Unmarshal(params.Arguments, &args); err != nil {
			s.writeResponse(tr, &transport.Message{
				JSONRPC: "2.0",
				ID:      msg.ID,
				Error: &transport.ErrorObj{
					Code:    transport.ErrCodeInvalidParams,
					Message: fmt.Sprintf("Invalid arguments: %v", err),
				},
			})
			return
		}
		if errResp := validateToolInput(params.Name, args, s.tools); errResp != nil {
			errResp.ID = msg.ID
			s.writeResponse(tr, errResp)
			return
		}
	} else if errResp := validateToolInput(params.Name, map[string]any{}, s.tools); errResp != nil {
		errResp.ID = msg.ID
		s.writeResponse(tr, errResp)
		return
	}

	result, err := tool.Handler(&ToolCall{
		Name:      params.Name,
		Arguments: params.Arguments,
	})
	if err != nil {
		s.writeResponse(tr, &transport.Message{
			JSONRPC: "2.0",
			ID:      msg.ID,
			Error: &transport.ErrorObj{
				Code:    transport.ErrCodeInternalError,
				Message: err.Error(),
			},
		})
		return
	}

	resultMap := map[string]interface{}{
		"content": result.Content,
	}
	if result.IsError {
		resultMap["isError"] = true
	}

	resultBytes, _ := json.Marshal(resultMap)
	s.writeResponse(tr, &transport.Message{
		JSONRPC: "2.0",
		ID:      msg.ID,
		Result:  resultBytes,
	})
}

func (s *MCPServer) writeResponse(tr transport.Transport, msg *transport.Message) {
	if err := tr.WriteMessage(msg); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
