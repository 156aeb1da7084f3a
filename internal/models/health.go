// ABOUTME: Health status reported by the engine's dependency probes
// ABOUTME: Recomputed on every health check, never cached across calls
package models

// HealthStatus aggregates the live status of the engine and its three
// external dependencies. Each field reflects an independent probe.
type HealthStatus struct {
	Initialized       bool `json:"initialized"`
	VectorStore       bool `json:"vector_store"`
	EmbeddingModel    bool `json:"embedding_model"`
	GenerationBackend bool `json:"generation_backend"`
	TotalEmbeddings   int  `json:"total_embeddings"`
}
