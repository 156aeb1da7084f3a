// ABOUTME: Tests for the deterministic RAGAS-style metrics

package ragas

import (
	"testing"

	"github.com/KaranJoshi1208/shivYatra/internal/models"
)

func TestCalculateFaithfulness(t *testing.T) {
	m := NewMetricsCalculator()

	tests := []struct {
		name      string
		response  string
		expected  []string
		forbidden []string
		want      float64
	}{
		{
			name:     "all expected present",
			response: "Manali offers paragliding at Solang Valley.",
			expected: []string{"Manali", "paragliding"},
			want:     1.0,
		},
		{
			name:     "case insensitive matching",
			response: "MANALI is great.",
			expected: []string{"manali"},
			want:     1.0,
		},
		{
			name:     "missing expected item",
			response: "Goa has beaches.",
			expected: []string{"Manali"},
			want:     0.5,
		},
		{
			name:      "forbidden item present",
			response:  "LLM Error: 500",
			forbidden: []string{"LLM Error"},
			want:      0.5,
		},
		{
			name:      "missing and forbidden",
			response:  "LLM Error: 500",
			expected:  []string{"Manali"},
			forbidden: []string{"LLM Error"},
			want:      0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := m.CalculateFaithfulness(tt.response, tt.expected, tt.forbidden)
			if got != tt.want {
				t.Errorf("CalculateFaithfulness() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalculateContextRecall(t *testing.T) {
	m := NewMetricsCalculator()

	docs := []models.ContextItem{
		{Content: "Solang Valley paragliding", Metadata: map[string]string{"city": "Manali"}},
		{Content: "River rafting on the Beas"},
	}

	t.Run("full recall across content and metadata", func(t *testing.T) {
		got, _ := m.CalculateContextRecall(docs, []string{"Manali", "rafting"})
		if got != 1.0 {
			t.Errorf("recall = %v, want 1.0", got)
		}
	})

	t.Run("partial recall", func(t *testing.T) {
		got, _ := m.CalculateContextRecall(docs, []string{"Manali", "Jaipur"})
		if got != 0.5 {
			t.Errorf("recall = %v, want 0.5", got)
		}
	})

	t.Run("no expectations is full recall", func(t *testing.T) {
		got, _ := m.CalculateContextRecall(nil, nil)
		if got != 1.0 {
			t.Errorf("recall = %v, want 1.0", got)
		}
	})
}

func TestEvaluateScenario(t *testing.T) {
	m := NewMetricsCalculator()
	scenario, ok := ScenarioByID("adventure_manali")
	if !ok {
		t.Fatal("scenario not found")
	}

	t.Run("pass", func(t *testing.T) {
		result := m.EvaluateScenario(scenario, models.ChatResult{
			Response: "Try paragliding in Manali.",
			ContextDocs: []models.ContextItem{
				{Content: "Manali adventure sports", Rank: 1},
			},
		})
		if result.Status != "PASS" {
			t.Errorf("status = %q, want PASS: %+v", result.Status, result.Details)
		}
	})

	t.Run("fail on empty retrieval", func(t *testing.T) {
		result := m.EvaluateScenario(scenario, models.ChatResult{
			Response: "Try paragliding in Manali.",
		})
		if result.Status != "FAIL" {
			t.Errorf("status = %q, want FAIL when below MinContextDocs", result.Status)
		}
	})

	t.Run("fail on backend error text", func(t *testing.T) {
		result := m.EvaluateScenario(scenario, models.ChatResult{
			Response: "LLM Error: 500",
			ContextDocs: []models.ContextItem{
				{Content: "Manali adventure sports", Rank: 1},
			},
		})
		if result.Status != "FAIL" {
			t.Errorf("status = %q, want FAIL on forbidden text", result.Status)
		}
	})
}
