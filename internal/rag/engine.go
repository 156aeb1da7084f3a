// ABOUTME: Engine orchestrates retrieve → assemble → build prompt → generate
// ABOUTME: Also aggregates dependency health; never propagates an error to callers
package rag

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/KaranJoshi1208/shivYatra/internal/llm"
	"github.com/KaranJoshi1208/shivYatra/internal/models"
	"github.com/KaranJoshi1208/shivYatra/internal/prompt"
)

// Fixed user-visible responses for degraded states.
const (
	notInitializedResponse = "Travel assistant is not initialized. Please restart the service."
	apologyResponse        = "I'm having trouble processing your question right now. Please try again."
)

// Engine sequences the RAG pipeline for one chat turn and reports
// aggregated dependency health. It becomes ready exactly once, during
// construction, after all three dependency probes succeed; a failed
// probe leaves the engine permanently not ready and the caller must
// construct a new one.
//
// Engine is safe for concurrent use by multiple goroutines once
// constructed.
type Engine struct {
	retriever *Retriever
	assembler *Assembler
	builder   *prompt.Builder
	embedder  Embedder
	index     Index
	generator Generator
	logger    *zap.Logger

	probeTimeout time.Duration

	ready   bool
	initErr error
}

// NewEngine constructs the engine and runs the three startup probes:
// a count against the vector index, presence of the embedding client,
// and a model listing from the generation backend that must contain
// the configured model. The engine is returned even when probes fail
// so health checks can still report the degraded state.
func NewEngine(ctx context.Context, cfg Config, embedder Embedder, idx Index, gen Generator, templates prompt.Templates, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Engine{
		retriever:    NewRetriever(embedder, idx, cfg, logger),
		assembler:    NewAssembler(cfg.MaxContextChunks),
		builder:      prompt.NewBuilder(templates),
		embedder:     embedder,
		index:        idx,
		generator:    gen,
		logger:       logger,
		probeTimeout: cfg.ProbeTimeout,
	}

	e.initErr = e.probeDependencies(ctx)
	if e.initErr != nil {
		logger.Error("engine initialization failed", zap.Error(e.initErr))
		return e
	}

	e.ready = true
	logger.Info("engine initialized")
	return e
}

// probeDependencies verifies all three external dependencies once, at
// construction time.
func (e *Engine) probeDependencies(ctx context.Context) error {
	if e.embedder == nil {
		return fmt.Errorf("embedding provider not configured")
	}
	if e.index == nil {
		return fmt.Errorf("vector index not configured")
	}
	if e.generator == nil {
		return fmt.Errorf("generation backend not configured")
	}

	countCtx, cancel := e.probeContext(ctx)
	count, err := e.index.Count(countCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("probing vector index: %w", err)
	}
	e.logger.Info("connected to vector index", zap.Int("total_embeddings", count))

	modelsCtx, cancel := e.probeContext(ctx)
	installed, err := e.generator.Models(modelsCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("probing generation backend: %w", err)
	}
	if model := e.generator.Model(); !slices.Contains(installed, model) {
		return fmt.Errorf("model %q not installed on generation backend (available: %v)", model, installed)
	}

	return nil
}

// Ready reports whether all startup probes succeeded.
func (e *Engine) Ready() bool {
	return e.ready
}

// InitErr returns the startup probe failure, if any.
func (e *Engine) InitErr() error {
	return e.initErr
}

// Chat runs one full pipeline pass for the query and packages the
// outcome. It never returns an error or panics: retrieval failures
// degrade to a fallback answer, generation failures degrade to a
// placeholder response, and anything unexpected is recovered into a
// ChatResult carrying the failure message.
func (e *Engine) Chat(ctx context.Context, query string) (result models.ChatResult) {
	if !e.ready {
		return models.ChatResult{
			Response:    notInitializedResponse,
			ContextDocs: []models.ContextItem{},
			Query:       query,
			Timestamp:   unixSeconds(time.Now()),
			Error:       "not initialized",
		}
	}

	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("chat pipeline panicked", zap.Any("panic", r))
			result = models.ChatResult{
				Response:       apologyResponse,
				ContextDocs:    []models.ContextItem{},
				ProcessingTime: round2(time.Since(start).Seconds()),
				Query:          query,
				Timestamp:      unixSeconds(time.Now()),
				Error:          fmt.Sprintf("%v", r),
			}
		}
	}()

	contextDocs := e.retriever.Retrieve(ctx, query, 0)

	assembled := ""
	if len(contextDocs) > 0 {
		assembled = e.assembler.Assemble(contextDocs)
	}

	system, user := e.builder.Build(query, assembled)
	response := e.generate(ctx, system, user)

	elapsed := round2(time.Since(start).Seconds())
	e.logger.Info("chat completed",
		zap.Int("context_docs", len(contextDocs)),
		zap.Float64("processing_time", elapsed))

	return models.ChatResult{
		Response:       response,
		ContextDocs:    contextDocs,
		ProcessingTime: elapsed,
		Query:          query,
		Timestamp:      unixSeconds(time.Now()),
	}
}

// generate calls the generation backend and fails soft: backend status
// failures and transport errors become a user-visible placeholder
// embedding the status code or message. Callers inside the engine can
// still branch on the typed error; the chat caller only sees text.
func (e *Engine) generate(ctx context.Context, system, user string) string {
	text, err := e.generator.Generate(ctx, system, user)
	if err != nil {
		var backendErr *llm.BackendError
		if errors.As(err, &backendErr) && backendErr.StatusCode != 0 {
			e.logger.Warn("generation backend returned error status", zap.Int("status", backendErr.StatusCode))
			return fmt.Sprintf("LLM Error: %d", backendErr.StatusCode)
		}
		e.logger.Warn("generation failed", zap.Error(err))
		return fmt.Sprintf("LLM Error: %v", err)
	}
	return strings.TrimSpace(text)
}

// Health probes each dependency independently and reports a composite
// status. Probes are failure-isolated: one failing probe never
// prevents the others from running. Results are recomputed on every
// call and never cached. Safe to call before the engine is ready.
func (e *Engine) Health(ctx context.Context) models.HealthStatus {
	status := models.HealthStatus{
		Initialized: e.ready,
	}

	if e.index != nil {
		countCtx, cancel := e.probeContext(ctx)
		if count, err := e.index.Count(countCtx); err == nil {
			status.VectorStore = true
			status.TotalEmbeddings = count
		} else {
			e.logger.Warn("vector index health probe failed", zap.Error(err))
		}
		cancel()
	}

	status.EmbeddingModel = e.embedder != nil

	if e.generator != nil {
		modelsCtx, cancel := e.probeContext(ctx)
		if _, err := e.generator.Models(modelsCtx); err == nil {
			status.GenerationBackend = true
		} else {
			e.logger.Warn("generation backend health probe failed", zap.Error(err))
		}
		cancel()
	}

	return status
}

// probeContext bounds a dependency probe with the configured timeout.
func (e *Engine) probeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.probeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.probeTimeout)
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// unixSeconds returns t as fractional seconds since the Unix epoch.
func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
