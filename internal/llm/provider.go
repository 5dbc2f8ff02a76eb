package llm

import (
	"context"
	"encoding/json"
)

// Provider generates model completions. The assist service is the only
// production consumer; tests substitute MockProvider.
type Provider interface {
	// Generate runs one completion. When req.Schema is set the provider
	// asks the model for structured output and validates the result
	// against the schema before returning it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model this provider was configured with.
	ModelID() string
}

// Request is a single generation request.
type Request struct {
	// System sets the model's role. The assist prompts put the tutoring
	// persona and the exam context here.
	System string

	// Messages is the conversation. Assist requests are single turn, so
	// this is normally one user message.
	Messages []Message

	// Schema, when set, constrains the output to a JSON shape. When nil
	// the content comes back as raw text.
	Schema *Schema

	// MaxTokens caps the completion length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON shape a response must take.
type Schema struct {
	// Name identifies the schema, kebab-case ("explanation-payload").
	// Also the cache key for the compiled form.
	Name string

	// Description tells the model what the shape represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the completion. With a request schema this is the
	// validated JSON object.
	Content json.RawMessage

	// Usage is the token count the provider reported.
	Usage Usage

	// Model is the model that actually served the request, which can be
	// more specific than the configured id.
	Model string

	// StopReason is normalized across providers to "end" or "max_tokens".
	StopReason string
}

// Usage is token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
