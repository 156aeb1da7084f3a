// ABOUTME: Tests for the chat and health HTTP handlers
// ABOUTME: Uses a fake engine; exercises the full middleware chain
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/KaranJoshi1208/shivYatra/internal/models"
)

type fakeEngine struct {
	ready     bool
	result    models.ChatResult
	health    models.HealthStatus
	lastQuery string
	chatCalls int
	panicChat bool
}

func (f *fakeEngine) Ready() bool { return f.ready }

func (f *fakeEngine) Chat(ctx context.Context, query string) models.ChatResult {
	f.chatCalls++
	f.lastQuery = query
	if f.panicChat {
		panic("handler blew up")
	}
	return f.result
}

func (f *fakeEngine) Health(ctx context.Context) models.HealthStatus {
	return f.health
}

func serve(t *testing.T, engine Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	NewServer(engine, zap.NewNop()).Handler().ServeHTTP(w, req)
	return w
}

func TestHandleChat_Success(t *testing.T) {
	engine := &fakeEngine{
		ready:  true,
		result: models.ChatResult{Response: "Visit Rohtang Pass in summer."},
	}

	w := serve(t, engine, http.MethodPost, "/api/chat", `{"message": "when to visit Manali?"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp chatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Response != "Visit Rohtang Pass in summer." {
		t.Errorf("response = %q", resp.Response)
	}
	if resp.Error != nil {
		t.Errorf("error = %q, want null", *resp.Error)
	}
	if engine.lastQuery != "when to visit Manali?" {
		t.Errorf("engine received query %q", engine.lastQuery)
	}
}

func TestHandleChat_EmptyMessage(t *testing.T) {
	for _, body := range []string{`{"message": ""}`, `{"message": "   "}`, `{}`} {
		engine := &fakeEngine{ready: true}
		w := serve(t, engine, http.MethodPost, "/api/chat", body)

		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, w.Code)
		}
		if engine.chatCalls != 0 {
			t.Errorf("body %s: engine invoked on empty message", body)
		}
	}
}

func TestHandleChat_InvalidJSON(t *testing.T) {
	w := serve(t, &fakeEngine{ready: true}, http.MethodPost, "/api/chat", "{not json")

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleChat_NotReady(t *testing.T) {
	engine := &fakeEngine{ready: false}
	w := serve(t, engine, http.MethodPost, "/api/chat", `{"message": "hello"}`)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
	if engine.chatCalls != 0 {
		t.Error("engine invoked before initialization")
	}

	var resp chatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Error == nil || *resp.Error != "Service unavailable" {
		t.Errorf("error = %v, want Service unavailable", resp.Error)
	}
}

func TestHandleChat_MethodNotAllowed(t *testing.T) {
	w := serve(t, &fakeEngine{ready: true}, http.MethodGet, "/api/chat", "")

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}

func TestHandleHealth_OK(t *testing.T) {
	engine := &fakeEngine{
		health: models.HealthStatus{
			Initialized:       true,
			VectorStore:       true,
			EmbeddingModel:    true,
			GenerationBackend: true,
			TotalEmbeddings:   4160,
		},
	}

	w := serve(t, engine, http.MethodGet, "/api/health", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp healthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q, want ok", resp.Status)
	}
	if resp.TotalEmbeddings != 4160 {
		t.Errorf("total_embeddings = %d, want 4160", resp.TotalEmbeddings)
	}
}

func TestHandleHealth_Degraded(t *testing.T) {
	engine := &fakeEngine{
		health: models.HealthStatus{
			Initialized:       false,
			VectorStore:       true,
			TotalEmbeddings:   4160,
			GenerationBackend: false,
		},
	}

	w := serve(t, engine, http.MethodGet, "/api/health", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: health endpoint always reports", w.Code)
	}

	var resp healthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Status != "error" {
		t.Errorf("status = %q, want error", resp.Status)
	}
	if !resp.VectorStore || resp.GenerationBackend {
		t.Errorf("probe fields not passed through: %+v", resp)
	}
}
