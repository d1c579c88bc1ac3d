// chatgpt tool handler

package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/syedazharmbnr1/claude-chatgpt-mcp/internal/chatgpt"
)

// Fallback strings returned when an operation completes without content.
const (
	msgNoResponse      = "No response received from ChatGPT."
	msgNoConversations = "No conversations found in ChatGPT."
	msgNoLastMessage   = "No last message found."
	msgWindowNotFound  = "ChatGPT window not found"
)

// handleChatGPT handles the chatgpt tool.
func (s *MCPServer) handleChatGPT(call *ToolCall) (*ToolResult, error) {
	ctx, cancel := context.WithTimeout(s.ctx, time.Duration(s.cfg.RequestTimeout)*time.Second)
	defer cancel()

	var params struct {
		Operation      string   `json:"operation"`
		Prompt         string   `json:"prompt"`
		ConversationID string   `json:"conversation_id"`
		WaitTime       *float64 `json:"wait_time"`
	}

	if err := json.Unmarshal(call.Arguments, &params); err != nil {
		return errorResultf("Invalid parameters: %v", err), nil
	}

	switch params.Operation {
	case "ask":
		return s.handleAsk(ctx, params.Prompt, params.ConversationID, params.WaitTime)
	case "get_last_message":
		return s.handleGetLastMessage(ctx)
	case "get_conversations":
		return s.handleGetConversations(ctx)
	default:
		return errorResultf("Unknown operation: %q (must be ask, get_conversations, or get_last_message)", params.Operation), nil
	}
}

func (s *MCPServer) handleAsk(ctx context.Context, prompt, conversationID string, waitTime *float64) (*ToolResult, error) {
	if prompt == "" {
		return errorResult("prompt parameter is required for the ask operation"), nil
	}

	wait := s.cfg.DefaultWait
	if waitTime != nil {
		wait = int(*waitTime)
	}

	log.Printf("ask: prompt=%q wait=%ds", truncateText(prompt), chatgpt.ClampWait(s.cfg, wait))

	text, err := s.engine.Ask(ctx, prompt, conversationID, wait)
	if err != nil {
		// A missing window is a degraded-but-valid outcome, not a tool error.
		var scrapeErr *chatgpt.ScrapeError
		if errors.As(err, &scrapeErr) {
			return textResult(msgWindowNotFound), nil
		}
		return errorResultf("Failed to get response from ChatGPT: %v", err), nil
	}

	if text == "" {
		return textResult(msgNoResponse), nil
	}
	return textResult(text), nil
}

func (s *MCPServer) handleGetLastMessage(ctx context.Context) (*ToolResult, error) {
	text, err := s.engine.LastMessage(ctx)
	if err != nil {
		var scrapeErr *chatgpt.ScrapeError
		if errors.As(err, &scrapeErr) {
			return textResult(msgWindowNotFound), nil
		}
		return errorResultf("Failed to read last message: %v", err), nil
	}

	if text == "" {
		return textResult(msgNoLastMessage), nil
	}
	return textResult(text), nil
}

func (s *MCPServer) handleGetConversations(ctx context.Context) (*ToolResult, error) {
	handles, err := s.engine.Conversations(ctx)
	if err != nil {
		var scrapeErr *chatgpt.ScrapeError
		if errors.As(err, &scrapeErr) {
			return textResult(msgWindowNotFound), nil
		}
		return errorResultf("Failed to list conversations: %v", err), nil
	}

	if len(handles) == 0 {
		return textResult(msgNoConversations), nil
	}

	return textResultf("Found %d conversation(s):\n%s", len(handles), strings.Join(handles, "\n")), nil
}
