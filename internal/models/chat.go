// ABOUTME: Core data types for one chat turn through the RAG pipeline
// ABOUTME: Defines ContextItem and ChatResult returned by the engine
package models

// ContextItem is a single retrieved document with its metadata and
// computed relevance score. Items are created per query, never mutated,
// and discarded after one chat turn.
type ContextItem struct {
	Content    string            `json:"content"`
	Metadata   map[string]string `json:"metadata"`
	Similarity float64           `json:"similarity"`
	Rank       int               `json:"rank"`
}

// ChatResult packages the outcome of one chat call: the generated
// response, the context documents that informed it, and timing metadata.
type ChatResult struct {
	Response       string        `json:"response"`
	ContextDocs    []ContextItem `json:"context_docs"`
	ProcessingTime float64       `json:"processing_time"`
	Query          string        `json:"query"`
	Timestamp      float64       `json:"timestamp"`
	Error          string        `json:"error,omitempty"`
}
