// ABOUTME: Centralized configuration for the ShivYatra RAG engine
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the RAG engine and its surfaces.
type Config struct {
	// Postgres / pgvector settings
	DatabaseURL string
	IndexTable  string

	// Generation backend settings (OpenAI-compatible API; Ollama serves /v1)
	LLMBaseURL     string
	APIKey         string
	ChatModel      string
	EmbeddingModel string
	Temperature    float32
	MaxTokens      int

	// Timeouts
	GenerationTimeout time.Duration
	RetrievalTimeout  time.Duration
	ProbeTimeout      time.Duration

	// Retrieval settings
	MaxResults         int
	RelevanceThreshold float64
	MaxContextChunks   int

	// Embedding retry settings
	MaxRetries int
	RetryDelay time.Duration

	// Prompt template overrides (empty string keeps the built-in default)
	SystemPrompt    string
	ContextTemplate string
	FallbackPrompt  string

	// HTTP server
	HTTPAddr string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:        getEnv("YATRI_DATABASE_URL", "postgres://localhost:5432/shivyatra"),
		IndexTable:         getEnv("YATRI_INDEX_TABLE", "tourism_embeddings"),
		LLMBaseURL:         getEnv("YATRI_LLM_BASE_URL", "http://localhost:11434/v1"),
		APIKey:             getEnv("OPENAI_API_KEY", "ollama"),
		ChatModel:          getEnv("YATRI_CHAT_MODEL", "qwen2.5:1.5b"),
		EmbeddingModel:     getEnv("YATRI_EMBEDDING_MODEL", "nomic-embed-text"),
		Temperature:        float32(getEnvFloat("YATRI_TEMPERATURE", 0.7)),
		MaxTokens:          getEnvInt("YATRI_MAX_TOKENS", 1000),
		GenerationTimeout:  getEnvDuration("YATRI_GENERATION_TIMEOUT", 60*time.Second),
		RetrievalTimeout:   getEnvDuration("YATRI_RETRIEVAL_TIMEOUT", 10*time.Second),
		ProbeTimeout:       getEnvDuration("YATRI_PROBE_TIMEOUT", 10*time.Second),
		MaxResults:         getEnvInt("YATRI_MAX_RESULTS", 5),
		RelevanceThreshold: getEnvFloat("YATRI_RELEVANCE_THRESHOLD", 0.3),
		MaxContextChunks:   getEnvInt("YATRI_MAX_CONTEXT_CHUNKS", 5),
		MaxRetries:         getEnvInt("YATRI_EMBED_MAX_RETRIES", 3),
		RetryDelay:         getEnvDuration("YATRI_EMBED_RETRY_DELAY", 2*time.Second),
		SystemPrompt:       os.Getenv("YATRI_SYSTEM_PROMPT"),
		ContextTemplate:    os.Getenv("YATRI_CONTEXT_TEMPLATE"),
		FallbackPrompt:     os.Getenv("YATRI_FALLBACK_PROMPT"),
		HTTPAddr:           getEnv("YATRI_HTTP_ADDR", "127.0.0.1:5000"),
	}

	return cfg, cfg.Validate()
}

// Validate reports configuration values that would break the pipeline.
func (c *Config) Validate() error {
	if c.RelevanceThreshold < 0 || c.RelevanceThreshold > 1 {
		return fmt.Errorf("YATRI_RELEVANCE_THRESHOLD must be 0-1, got %f", c.RelevanceThreshold)
	}
	if c.MaxResults <= 0 {
		return fmt.Errorf("YATRI_MAX_RESULTS must be positive, got %d", c.MaxResults)
	}
	if c.MaxContextChunks <= 0 || c.MaxContextChunks > c.MaxResults {
		return fmt.Errorf("YATRI_MAX_CONTEXT_CHUNKS must be 1-%d, got %d", c.MaxResults, c.MaxContextChunks)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("YATRI_MAX_TOKENS must be positive, got %d", c.MaxTokens)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("YATRI_TEMPERATURE must be 0-2, got %f", c.Temperature)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("YATRI_EMBED_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.ChatModel == "" {
		return fmt.Errorf("YATRI_CHAT_MODEL must not be empty")
	}
	if c.EmbeddingModel == "" {
		return fmt.Errorf("YATRI_EMBEDDING_MODEL must not be empty")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
