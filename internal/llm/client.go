// ABOUTME: Generation backend client over any OpenAI-compatible API
// ABOUTME: Works against Ollama's /v1 endpoints or api.openai.com
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// BackendError reports a non-success response from the generation
// backend. Carrying the status code as data lets callers branch
// programmatically instead of pattern-matching response text.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("generation backend returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("generation backend error: %s", e.Message)
}

// ClientConfig holds configuration for the generation backend client.
type ClientConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// Client wraps an OpenAI-compatible chat completion API. One outbound
// call per Generate invocation, bounded by the configured timeout, no
// retry: a failed generation degrades that one response.
//
// Client is safe for concurrent use by multiple goroutines.
type Client struct {
	api         *openai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
}

// NewClient creates a generation backend client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("generation backend base URL is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("generation model name is required")
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = cfg.BaseURL

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		api:         openai.NewClientWithConfig(apiCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     timeout,
	}, nil
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// Generate sends one non-streaming completion request with the system
// instruction and user prompt. Backend status failures surface as
// *BackendError; transport and timeout failures are returned wrapped.
func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Stream:      false,
	})
	if err != nil {
		if backendErr := asBackendError(err); backendErr != nil {
			return "", backendErr
		}
		return "", fmt.Errorf("calling generation backend: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", &BackendError{Message: "no completion choices returned"}
	}

	return resp.Choices[0].Message.Content, nil
}

// Models lists the model identifiers installed on the backend. Used as
// a liveness probe and to validate at startup that the configured
// model is actually available.
func (c *Client) Models(ctx context.Context) ([]string, error) {
	list, err := c.api.ListModels(ctx)
	if err != nil {
		if backendErr := asBackendError(err); backendErr != nil {
			return nil, backendErr
		}
		return nil, fmt.Errorf("listing backend models: %w", err)
	}

	ids := make([]string, 0, len(list.Models))
	for _, m := range list.Models {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// asBackendError converts go-openai error types carrying an HTTP status
// into *BackendError. Returns nil for transport-level failures.
func asBackendError(err error) *BackendError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &BackendError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &BackendError{StatusCode: reqErr.HTTPStatusCode, Message: reqErr.Error()}
	}
	return nil
}
