// ABOUTME: Vector index client backed by PostgreSQL + pgvector
// ABOUTME: Supports nearest-neighbor queries with cosine distance and count probes
package index

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
)

// Hit is one nearest-neighbor result: the stored document, its
// metadata, and the cosine distance from the query vector.
type Hit struct {
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata"`
	Distance float64           `json:"distance"`
}

// querier is the common interface satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// validTable restricts the configured table name to a plain SQL
// identifier; the name is interpolated into query text.
var validTable = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Store is a read-only client for the tourism embeddings table. The
// table uses pgvector's `<=>` cosine distance operator, so results
// come back distance-ascending (similarity-descending).
//
// Store is safe for concurrent use by multiple goroutines.
type Store struct {
	db     querier
	table  string
	logger *zap.Logger
}

// NewStore creates an index client over the given pool.
func NewStore(pool *pgxpool.Pool, table string, logger *zap.Logger) (*Store, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is required")
	}
	if !validTable.MatchString(table) {
		return nil, fmt.Errorf("invalid index table name %q", table)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: pool, table: table, logger: logger}, nil
}

// Query returns up to k nearest neighbors for the given vector,
// ordered by cosine distance ascending.
func (s *Store) Query(ctx context.Context, vec []float32, k int) ([]Hit, error) {
	if k <= 0 {
		return nil, fmt.Errorf("k must be positive, got %d", k)
	}

	sql := fmt.Sprintf(
		`SELECT content, metadata, embedding <=> $1 AS distance
		 FROM %s
		 ORDER BY embedding <=> $1
		 LIMIT $2`, s.table)

	rows, err := s.db.Query(ctx, sql, pgvector.NewVector(vec), k)
	if err != nil {
		return nil, fmt.Errorf("querying vector index: %w", err)
	}
	defer rows.Close()

	return s.scanHits(rows)
}

// QueryFiltered returns up to k nearest neighbors whose metadata
// contains all entries of filter (jsonb containment).
func (s *Store) QueryFiltered(ctx context.Context, vec []float32, k int, filter map[string]string) ([]Hit, error) {
	if len(filter) == 0 {
		return s.Query(ctx, vec, k)
	}
	if k <= 0 {
		return nil, fmt.Errorf("k must be positive, got %d", k)
	}

	filterJSON, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("marshaling metadata filter: %w", err)
	}

	sql := fmt.Sprintf(
		`SELECT content, metadata, embedding <=> $1 AS distance
		 FROM %s
		 WHERE metadata @> $3
		 ORDER BY embedding <=> $1
		 LIMIT $2`, s.table)

	rows, err := s.db.Query(ctx, sql, pgvector.NewVector(vec), k, filterJSON)
	if err != nil {
		return nil, fmt.Errorf("querying vector index with filter: %w", err)
	}
	defer rows.Close()

	return s.scanHits(rows)
}

// Count returns the number of embeddings stored in the index.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int64
	sql := fmt.Sprintf(`SELECT count(*) FROM %s`, s.table)
	if err := s.db.QueryRow(ctx, sql).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting embeddings: %w", err)
	}
	if count > math.MaxInt {
		return 0, fmt.Errorf("embedding count %d exceeds platform int capacity", count)
	}
	return int(count), nil
}

// scanHits converts result rows into Hits. A row with unparseable
// metadata keeps its content and distance with empty metadata rather
// than failing the whole query.
func (s *Store) scanHits(rows pgx.Rows) ([]Hit, error) {
	var hits []Hit
	for rows.Next() {
		var content string
		var metadataJSON []byte
		var distance float64
		if err := rows.Scan(&content, &metadataJSON, &distance); err != nil {
			return nil, fmt.Errorf("scanning index row: %w", err)
		}
		hits = append(hits, newHit(content, metadataJSON, distance, s.logger))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading index rows: %w", err)
	}
	return hits, nil
}

// newHit builds a Hit from raw column values.
func newHit(content string, metadataJSON []byte, distance float64, logger *zap.Logger) Hit {
	metadata := make(map[string]string)
	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &metadata); err != nil {
			logger.Warn("failed to parse document metadata", zap.Error(err))
			metadata = make(map[string]string)
		}
	}
	return Hit{Content: content, Metadata: metadata, Distance: distance}
}
