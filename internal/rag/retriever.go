// ABOUTME: Retriever turns a raw query into ranked, threshold-filtered context items
// ABOUTME: Fail-open: any embedding or index failure degrades to an empty result
package rag

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/KaranJoshi1208/shivYatra/internal/models"
)

// Retriever embeds the query and fetches nearest neighbors from the
// vector index, converting distances to similarities and dropping
// items below the relevance threshold.
//
// The index orders results by cosine distance ascending, so the
// returned order is already similarity-descending; the retriever
// assigns ranks from that order without re-sorting.
type Retriever struct {
	embedder  Embedder
	index     Index
	limit     int
	threshold float64
	timeout   time.Duration
	logger    *zap.Logger
}

// NewRetriever creates a Retriever.
func NewRetriever(embedder Embedder, idx Index, cfg Config, logger *zap.Logger) *Retriever {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Retriever{
		embedder:  embedder,
		index:     idx,
		limit:     cfg.MaxResults,
		threshold: cfg.RelevanceThreshold,
		timeout:   cfg.RetrievalTimeout,
		logger:    logger,
	}
}

// Retrieve returns ranked context items for the query. limit <= 0
// falls back to the configured maximum. A query matching nothing, or
// any failure in the embedding or index call, yields an empty slice.
func (r *Retriever) Retrieve(ctx context.Context, query string, limit int) []models.ContextItem {
	if limit <= 0 {
		limit = r.limit
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	vec, err := r.embedder.Embed(ctx, query)
	if err != nil {
		r.logger.Warn("query embedding failed, degrading to no context", zap.Error(err))
		return []models.ContextItem{}
	}

	hits, err := r.index.Query(ctx, vec, limit)
	if err != nil {
		r.logger.Warn("vector index query failed, degrading to no context", zap.Error(err))
		return []models.ContextItem{}
	}

	items := make([]models.ContextItem, 0, len(hits))
	for i, hit := range hits {
		similarity := round3(1 - hit.Distance)
		if similarity < r.threshold {
			continue
		}
		items = append(items, models.ContextItem{
			Content:    hit.Content,
			Metadata:   hit.Metadata,
			Similarity: similarity,
			Rank:       i + 1,
		})
	}

	r.logger.Debug("retrieved context", zap.Int("hits", len(hits)), zap.Int("relevant", len(items)))
	return items
}

// round3 rounds to three decimal places.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
