// ABOUTME: Tests for retrieval ranking, threshold filtering, and fail-open behavior
// ABOUTME: Covers the similarity conversion from index distances
package rag

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/KaranJoshi1208/shivYatra/internal/index"
)

func testConfig() Config {
	return Config{
		MaxResults:         5,
		RelevanceThreshold: 0.3,
		MaxContextChunks:   5,
		RetrievalTimeout:   5 * time.Second,
		ProbeTimeout:       5 * time.Second,
	}
}

func TestRetrieve_ThresholdAndRanks(t *testing.T) {
	// Distances convert to similarities [0.81, 0.55, 0.20] with a 0.3
	// threshold: only the first two survive, ranked 1 and 2.
	idx := &fakeIndex{hits: []index.Hit{
		{Content: "Manali paragliding at Solang Valley", Metadata: map[string]string{"city": "Manali"}, Distance: 0.19},
		{Content: "River rafting on the Beas", Metadata: map[string]string{"city": "Kullu"}, Distance: 0.45},
		{Content: "Beach shacks in Goa", Metadata: map[string]string{"city": "Goa"}, Distance: 0.80},
	}}
	r := NewRetriever(&fakeEmbedder{}, idx, testConfig(), zap.NewNop())

	items := r.Retrieve(context.Background(), "best adventure activities in Manali", 0)

	if len(items) != 2 {
		t.Fatalf("Retrieve() returned %d items, want 2", len(items))
	}
	if items[0].Similarity != 0.81 || items[1].Similarity != 0.55 {
		t.Errorf("similarities = [%v, %v], want [0.81, 0.55]", items[0].Similarity, items[1].Similarity)
	}
	if items[0].Rank != 1 || items[1].Rank != 2 {
		t.Errorf("ranks = [%d, %d], want [1, 2]", items[0].Rank, items[1].Rank)
	}

	for _, item := range items {
		if item.Similarity < 0.3 {
			t.Errorf("item %d similarity %v below threshold", item.Rank, item.Similarity)
		}
	}
}

func TestRetrieve_RankMonotonicity(t *testing.T) {
	idx := &fakeIndex{hits: []index.Hit{
		{Content: "a", Distance: 0.10},
		{Content: "b", Distance: 0.20},
		{Content: "c", Distance: 0.30},
		{Content: "d", Distance: 0.40},
	}}
	r := NewRetriever(&fakeEmbedder{}, idx, testConfig(), zap.NewNop())

	items := r.Retrieve(context.Background(), "query", 0)

	for i := 1; i < len(items); i++ {
		if items[i-1].Rank >= items[i].Rank {
			t.Errorf("rank[%d]=%d not < rank[%d]=%d", i-1, items[i-1].Rank, i, items[i].Rank)
		}
		if items[i-1].Similarity < items[i].Similarity {
			t.Errorf("similarity[%d]=%v < similarity[%d]=%v", i-1, items[i-1].Similarity, i, items[i].Similarity)
		}
	}
}

func TestRetrieve_FailOpenOnEmbedError(t *testing.T) {
	idx := &fakeIndex{hits: []index.Hit{{Content: "a", Distance: 0.1}}}
	r := NewRetriever(&fakeEmbedder{err: errBoom}, idx, testConfig(), zap.NewNop())

	items := r.Retrieve(context.Background(), "query", 0)

	if len(items) != 0 {
		t.Errorf("Retrieve() with failing embedder = %d items, want 0", len(items))
	}
	if idx.queryCalls.Load() != 0 {
		t.Error("index should not be queried when embedding fails")
	}
}

func TestRetrieve_FailOpenOnIndexError(t *testing.T) {
	idx := &fakeIndex{queryErr: errBoom}
	r := NewRetriever(&fakeEmbedder{}, idx, testConfig(), zap.NewNop())

	items := r.Retrieve(context.Background(), "query", 0)

	if items == nil {
		t.Fatal("Retrieve() should return an empty slice, not nil")
	}
	if len(items) != 0 {
		t.Errorf("Retrieve() with failing index = %d items, want 0", len(items))
	}
}

func TestRetrieve_LimitDefaultsToMaxResults(t *testing.T) {
	idx := &fakeIndex{}
	r := NewRetriever(&fakeEmbedder{}, idx, testConfig(), zap.NewNop())

	r.Retrieve(context.Background(), "query", 0)
	if idx.lastK != 5 {
		t.Errorf("index queried with k=%d, want config default 5", idx.lastK)
	}

	r.Retrieve(context.Background(), "query", 2)
	if idx.lastK != 2 {
		t.Errorf("index queried with k=%d, want explicit 2", idx.lastK)
	}
}

func TestRetrieve_NoMatches(t *testing.T) {
	r := NewRetriever(&fakeEmbedder{}, &fakeIndex{}, testConfig(), zap.NewNop())

	items := r.Retrieve(context.Background(), "query about nothing", 0)
	if len(items) != 0 {
		t.Errorf("Retrieve() = %d items, want 0", len(items))
	}
}

func TestRetrieve_SimilarityRounded(t *testing.T) {
	idx := &fakeIndex{hits: []index.Hit{{Content: "a", Distance: 0.1234}}}
	r := NewRetriever(&fakeEmbedder{}, idx, testConfig(), zap.NewNop())

	items := r.Retrieve(context.Background(), "query", 0)
	if len(items) != 1 {
		t.Fatalf("Retrieve() = %d items, want 1", len(items))
	}
	if items[0].Similarity != 0.877 {
		t.Errorf("Similarity = %v, want 0.877 (rounded to 3 decimals)", items[0].Similarity)
	}
}
