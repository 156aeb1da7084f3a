// ABOUTME: Collaborator contracts and configuration for the RAG engine
// ABOUTME: Interfaces are consumer-defined so tests can inject fakes
package rag

import (
	"context"
	"time"

	"github.com/KaranJoshi1208/shivYatra/internal/index"
)

// Embedder maps free text to a fixed-length numeric vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Index is the vector index, queried for nearest neighbors and probed
// with a count for health checks.
type Index interface {
	Query(ctx context.Context, vec []float32, k int) ([]index.Hit, error)
	Count(ctx context.Context) (int, error)
}

// Generator is the generation backend. Models doubles as the liveness
// probe and as startup validation that the configured model exists.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
	Models(ctx context.Context) ([]string, error)
	Model() string
}

// Config holds the retrieval and probe settings for the engine,
// immutable once the engine is constructed.
type Config struct {
	MaxResults         int
	RelevanceThreshold float64
	MaxContextChunks   int
	RetrievalTimeout   time.Duration
	ProbeTimeout       time.Duration
}
