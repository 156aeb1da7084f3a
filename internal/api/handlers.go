// ABOUTME: Request handlers for the chat and health endpoints
// ABOUTME: Chat returns 503 before initialization and 400 on empty messages
package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// chatRequest is the POST /api/chat body.
type chatRequest struct {
	Message string `json:"message"`
}

// chatResponse is the POST /api/chat reply. Error is null on success.
type chatResponse struct {
	Response string  `json:"response"`
	Error    *string `json:"error"`
}

// healthResponse is the GET /api/health reply.
type healthResponse struct {
	Status            string `json:"status"`
	VectorStore       bool   `json:"vector_store"`
	EmbeddingModel    bool   `json:"embedding_model"`
	GenerationBackend bool   `json:"generation_backend"`
	TotalEmbeddings   int    `json:"total_embeddings"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if !s.engine.Ready() {
		writeChatError(w, http.StatusServiceUnavailable, "Service unavailable")
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeChatError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeChatError(w, http.StatusBadRequest, "Empty message")
		return
	}

	result := s.engine.Chat(r.Context(), message)
	writeJSON(w, http.StatusOK, chatResponse{Response: result.Response})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := s.engine.Health(r.Context())

	status := "ok"
	if !health.Initialized {
		status = "error"
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:            status,
		VectorStore:       health.VectorStore,
		EmbeddingModel:    health.EmbeddingModel,
		GenerationBackend: health.GenerationBackend,
		TotalEmbeddings:   health.TotalEmbeddings,
	})
}

func writeChatError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, chatResponse{Response: "", Error: &message})
}

// writeJSON writes a JSON response with the given status code. Encoding
// failures after WriteHeader cannot reach the client and are dropped.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
