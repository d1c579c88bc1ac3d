// Package transport provides the JSON-RPC 2.0 message framing used for MCP
// communication over stdio.
package transport

import "encoding/json"

// JSON-RPC 2.0 standard error codes.
// See: https://www.jsonrpc.org/specification#error_object
const (
	// ErrCodeParseError indicates invalid JSON was received by the server.
	ErrCodeParseError = -32700

	// ErrCodeInvalidRequest indicates the JSON sent is not a valid Request object.
	ErrCodeInvalidRequest = -32600

	// ErrCodeMethodNotFound indicates the method does not exist or is not available.
	ErrCodeMethodNotFound = -32601

	// ErrCodeInvalidParams indicates invalid method parameter(s).
	ErrCodeInvalidParams = -32602

	// ErrCodeInternalError indicates an internal JSON-RPC error.
	ErrCodeInternalError = -32603
)

// Message represents a JSON-RPC 2.0 message, either a request or a response.
//
// Request format:
//   - JSONRPC: "2.0" (required)
//   - Method: the method name (required)
//   - Params: method parameters (optional)
//   - ID: request identifier (optional; omit for notifications)
//
// Response format:
//   - JSONRPC: "2.0" (required)
//   - Result: success result (mutually exclusive with Error)
//   - Error: error object (mutually exclusive with Result)
//   - ID: matches the request ID
type Message struct {
	// Error contains error details for failed requests.
	// Present only in error responses; mutually exclusive with Result.
	Error *ErrorObj `json:"error,omitempty"`

	// JSONRPC is always "2.0" per the JSON-RPC specification.
	JSONRPC string `json:"jsonrpc"`

	// Method is the name of the method to invoke. Present only in requests.
	Method string `json:"method,omitempty"`

	// ID is the request identifier: any JSON value for requests, echoed back
	// in responses. Omitted for notifications.
	ID json.RawMessage `json:"id,omitempty"`

	// Params contains the method parameters. Present only in requests.
	Params json.RawMessage `json:"params,omitempty"`

	// Result contains the success response data.
	// Present only in success responses; mutually exclusive with Error.
	Result json.RawMessage `json:"result,omitempty"`
}

// ErrorObj represents a JSON-RPC 2.0 error object.
type ErrorObj struct {
	// Message is a human-readable description of the error.
	Message string `json:"message"`

	// Data contains additional error information; structure is
	// implementation-defined.
	Data json.RawMessage `json:"data,omitempty"`

	// Code is a number indicating the error type.
	Code int `json:"code"`
}

// Transport defines the interface for MCP message transport.
//
// Implementations must be safe for concurrent use from multiple goroutines.
type Transport interface {
	// ReadMessage reads a JSON-RPC 2.0 message from the transport. Blocks
	// until a message is available, an error occurs, or the transport is
	// closed.
	ReadMessage() (*Message, error)

	// WriteMessage writes a JSON-RPC 2.0 message to the transport.
	WriteMessage(msg *Message) error

	// Close closes the transport and releases any resources. Idempotent.
	Close() error

	// IsClosed returns whether the transport has been closed.
	IsClosed() bool
}

// Ensure StdioTransport implements Transport interface
var _ Transport = (*StdioTransport)(nil)
