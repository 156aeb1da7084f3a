// ABOUTME: Embedding provider client mapping free text to fixed-length vectors
// ABOUTME: Wraps an OpenAI-compatible embeddings API with retry and backoff
package embed

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/KaranJoshi1208/shivYatra/internal/util"
)

// ClientConfig holds configuration for the embedding client.
type ClientConfig struct {
	BaseURL    string
	APIKey     string
	Model      string
	MaxRetries int
	RetryDelay time.Duration
	Timeout    time.Duration
}

// Client generates query embeddings. Deterministic for a fixed model
// version; failures surface as errors the retriever must catch.
//
// Client is safe for concurrent use by multiple goroutines.
type Client struct {
	api        *openai.Client
	model      openai.EmbeddingModel
	maxRetries int
	retryDelay time.Duration
	timeout    time.Duration
}

// NewClient creates an embedding client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("embedding provider base URL is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("embedding model name is required")
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = cfg.BaseURL

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = 2 * time.Second
	}

	return &Client{
		api:        openai.NewClientWithConfig(apiCfg),
		model:      openai.EmbeddingModel(cfg.Model),
		maxRetries: cfg.MaxRetries,
		retryDelay: retryDelay,
		timeout:    timeout,
	}, nil
}

// Embed maps text to a fixed-length vector. Transient API failures are
// retried with exponential backoff; a persistent failure is returned
// to the caller after the retry budget is spent.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	var vector []float32

	err := util.Retry(ctx, c.maxRetries, c.retryDelay, func() error {
		reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		resp, err := c.api.CreateEmbeddings(reqCtx, openai.EmbeddingRequestStrings{
			Input: []string{text},
			Model: c.model,
		})
		if err != nil {
			return err
		}
		if len(resp.Data) == 0 {
			return fmt.Errorf("no embeddings returned")
		}

		vector = resp.Data[0].Embedding
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("generating embedding: %w", err)
	}

	return vector, nil
}
