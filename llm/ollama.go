package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultBaseURL is the OpenAI-compatible endpoint of a local Ollama.
const DefaultBaseURL = "http://localhost:11434/v1"

// DefaultModel is used when the config names no model.
const DefaultModel = "llama3.2"

// OllamaConfig configures the Ollama-backed provider. APIKey is unused
// by Ollama itself but forwarded for OpenAI-compatible gateways that
// require one.
type OllamaConfig struct {
	BaseURL string
	Model   string
	APIKey  string
}

// OllamaProvider implements Provider against Ollama's OpenAI-compatible
// chat endpoint.
type OllamaProvider struct {
	client *openai.Client
	model  string
}

// NewOllamaProvider builds a provider from config, applying defaults for
// any empty field.
func NewOllamaProvider(cfg OllamaConfig) *OllamaProvider {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = "ollama"
	}
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = DefaultBaseURL
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &OllamaProvider{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (p *OllamaProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	messages := []openai.ChatCompletionMessage{}
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.User,
	})

	chatReq := openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, mapProviderError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("no choices in completion")}
	}

	// Local models often wrap the JSON in prose or code fences; pull out
	// the first complete object before validating.
	content, err := ExtractJSONObject(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, &ErrInvalidResponse{
			Content: []byte(resp.Choices[0].Message.Content),
			Err:     err,
		}
	}

	if req.Schema != nil {
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	}

	return &Response{
		Content: content,
		Model:   resp.Model,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

func (p *OllamaProvider) ModelID() string {
	return p.model
}

func mapProviderError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusBadRequest {
		return &ErrInvalidResponse{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}
