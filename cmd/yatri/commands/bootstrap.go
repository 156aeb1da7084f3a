// ABOUTME: Shared construction of the pipeline components and engine
// ABOUTME: Used by the serve, ask, search, health, and mcp commands
package commands

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/KaranJoshi1208/shivYatra/internal/config"
	"github.com/KaranJoshi1208/shivYatra/internal/embed"
	"github.com/KaranJoshi1208/shivYatra/internal/index"
	"github.com/KaranJoshi1208/shivYatra/internal/llm"
	"github.com/KaranJoshi1208/shivYatra/internal/prompt"
	"github.com/KaranJoshi1208/shivYatra/internal/rag"
)

// newLogger builds the CLI logger from the global flags. Logs go to
// stderr so command output on stdout stays machine-readable.
func newLogger() *zap.Logger {
	if quiet {
		return zap.NewNop()
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// app holds the assembled pipeline components shared by commands.
type app struct {
	cfg       *config.Config
	pool      *pgxpool.Pool
	store     *index.Store
	embedder  *embed.Client
	generator *llm.Client
	logger    *zap.Logger
}

// newApp loads config and assembles the Postgres pool, vector index,
// and the embedding and generation clients.
func newApp(ctx context.Context, logger *zap.Logger) (*app, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	store, err := index.NewStore(pool, cfg.IndexTable, logger)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("opening vector index: %w", err)
	}

	embedder, err := embed.NewClient(embed.ClientConfig{
		BaseURL:    cfg.LLMBaseURL,
		APIKey:     cfg.APIKey,
		Model:      cfg.EmbeddingModel,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
		Timeout:    cfg.RetrievalTimeout,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("creating embedding client: %w", err)
	}

	generator, err := llm.NewClient(llm.ClientConfig{
		BaseURL:     cfg.LLMBaseURL,
		APIKey:      cfg.APIKey,
		Model:       cfg.ChatModel,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		Timeout:     cfg.GenerationTimeout,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("creating generation client: %w", err)
	}

	return &app{
		cfg:       cfg,
		pool:      pool,
		store:     store,
		embedder:  embedder,
		generator: generator,
		logger:    logger,
	}, nil
}

// engine constructs the RAG engine, running its startup probes. The
// engine is returned even when probes fail so health reporting still
// works; callers decide how to treat Ready().
func (a *app) engine(ctx context.Context) *rag.Engine {
	templates := prompt.Defaults().WithOverrides(a.cfg.SystemPrompt, a.cfg.ContextTemplate, a.cfg.FallbackPrompt)

	return rag.NewEngine(ctx, rag.Config{
		MaxResults:         a.cfg.MaxResults,
		RelevanceThreshold: a.cfg.RelevanceThreshold,
		MaxContextChunks:   a.cfg.MaxContextChunks,
		RetrievalTimeout:   a.cfg.RetrievalTimeout,
		ProbeTimeout:       a.cfg.ProbeTimeout,
	}, a.embedder, a.store, a.generator, templates, a.logger)
}

// Close releases the database pool.
func (a *app) Close() {
	a.pool.Close()
}
