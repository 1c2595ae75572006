package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts the language model backend. The server talks to a
// local Ollama instance by default, but anything speaking the
// OpenAI-compatible chat API satisfies this.
type Provider interface {
	// Generate sends a prompt and returns structured JSON. When the
	// request carries a Schema the content is validated against it
	// before being returned.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and output constraints.
	System string

	// User is the user-turn prompt. Analysis calls are single-turn.
	User string

	// Schema, when set, is enforced on the response content.
	Schema *Schema

	// MaxTokens caps the response length. Zero means provider default.
	MaxTokens int

	// Temperature controls randomness. Analysis calls run at 0 so that
	// retries see comparable output.
	Temperature float64
}

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	Name       string
	Definition map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is the extracted JSON object from the model's reply.
	Content json.RawMessage

	// Model is the model that actually served the request.
	Model string

	// Usage reports token consumption.
	Usage Usage
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
