// Helper function unit tests

package server

import (
	"strings"
	"testing"

	"github.com/syedazharmbnr1/claude-chatgpt-mcp/internal/transport"
)

func TestErrorResult(t *testing.T) {
	result := errorResult("test error")
	if !result.IsError {
		t.Error("expected IsError to be true")
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected 1 content item, got %d", len(result.Content))
	}
	if result.Content[0].Type != "text" {
		t.Errorf("expected type 'text', got %q", result.Content[0].Type)
	}
	if result.Content[0].Text != "test error" {
		t.Errorf("expected text 'test error', got %q", result.Content[0].Text)
	}
}

func TestErrorResultf(t *testing.T) {
	result := errorResultf("error %d: %s", 42, "details")
	if !result.IsError {
		t.Error("expected IsError to be true")
	}
	if result.Content[0].Text != "error 42: details" {
		t.Errorf("expected 'error 42: details', got %q", result.Content[0].Text)
	}
}

func TestTextResult(t *testing.T) {
	result := textResult("success message")
	if result.IsError {
		t.Error("expected IsError to be false")
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected 1 content item, got %d", len(result.Content))
	}
	if result.Content[0].Text != "success message" {
		t.Errorf("expected 'success message', got %q", result.Content[0].Text)
	}
}

func TestTextResultf(t *testing.T) {
	result := textResultf("count: %d", 99)
	if result.IsError {
		t.Error("expected IsError to be false")
	}
	if result.Content[0].Text != "count: 99" {
		t.Errorf("expected 'count: 99', got %q", result.Content[0].Text)
	}
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "short text unchanged",
			input: "hello",
			want:  "hello",
		},
		{
			name:  "exactly at limit unchanged",
			input: strings.Repeat("a", maxDisplayTextLen),
			want:  strings.Repeat("a", maxDisplayTextLen),
		},
		{
			name:  "over limit truncated",
			input: strings.Repeat("b", maxDisplayTextLen+10),
			want:  strings.Repeat("b", maxDisplayTextLen) + "...",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateText(tt.input); got != tt.want {
				t.Errorf("truncateText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateToolInput(t *testing.T) {
	tools := map[string]*Tool{
		"chatgpt": {
			Name: "chatgpt",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"operation": map[string]interface{}{
						"type": "string",
						"enum": []string{"ask", "get_conversations", "get_last_message"},
					},
					"prompt": map[string]interface{}{
						"type": "string",
					},
					"wait_time": map[string]interface{}{
						"type": "number",
					},
				},
				"required": []string{"operation"},
			},
		},
		"schemaless": {
			Name: "schemaless",
		},
	}

	tests := []struct {
		name     string
		toolName string
		args     map[string]any
		wantErr  bool
		wantMsg  string
	}{
		{
			name:     "valid minimal args",
			toolName: "chatgpt",
			args:     map[string]any{"operation": "get_conversations"},
		},
		{
			name:     "valid full args",
			toolName: "chatgpt",
			args: map[string]any{
				"operation": "ask",
				"prompt":    "hello",
				"wait_time": float64(5),
			},
		},
		{
			name:     "missing required field",
			toolName: "chatgpt",
			args:     map[string]any{"prompt": "hello"},
			wantErr:  true,
			wantMsg:  "missing required field: operation",
		},
		{
			name:     "enum violation",
			toolName: "chatgpt",
			args:     map[string]any{"operation": "explode"},
			wantErr:  true,
			wantMsg:  "must be one of",
		},
		{
			name:     "wrong type for number",
			toolName: "chatgpt",
			args:     map[string]any{"operation": "ask", "wait_time": "soon"},
			wantErr:  true,
			wantMsg:  "wait_time",
		},
		{
			name:     "wrong type for string",
			toolName: "chatgpt",
			args:     map[string]any{"operation": "ask", "prompt": float64(7)},
			wantErr:  true,
			wantMsg:  "prompt",
		},
		{
			name:     "extra property allowed",
			toolName: "chatgpt",
			args:     map[string]any{"operation": "ask", "extra": true},
		},
		{
			name:     "nil schema passes",
			toolName: "schemaless",
			args:     map[string]any{"anything": "goes"},
		},
		{
			name:     "unknown tool handled by caller",
			toolName: "nonexistent",
			args:     map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errResp := validateToolInput(tt.toolName, tt.args, tools)
			if tt.wantErr {
				if errResp == nil {
					t.Fatal("expected a validation error, got nil")
				}
				if errResp.Error == nil || errResp.Error.Code != transport.ErrCodeInvalidParams {
					t.Errorf("expected invalid-params error, got %+v", errResp.Error)
				}
				if !strings.Contains(errResp.Error.Message, tt.wantMsg) {
					t.Errorf("error message %q does not mention %q", errResp.Error.Message, tt.wantMsg)
				}
			} else if errResp != nil {
				t.Errorf("expected validation to pass, got %+v", errResp.Error)
			}
		})
	}
}

func TestIsNumber(t *testing.T) {
	if !isNumber(float64(1.5)) {
		t.Error("float64 should be a number")
	}
	if !isNumber(int(3)) {
		t.Error("int should be a number")
	}
	if isNumber("3") {
		t.Error("string should not be a number")
	}
	if isNumber(true) {
		t.Error("bool should not be a number")
	}
}

func TestIsInteger(t *testing.T) {
	if !isInteger(float64(4)) {
		t.Error("whole float64 should be an integer")
	}
	if isInteger(float64(4.5)) {
		t.Error("fractional float64 should not be an integer")
	}
	if !isInteger(int64(-2)) {
		t.Error("int64 should be an integer")
	}
	if isInteger("4") {
		t.Error("string should not be an integer")
	}
}
