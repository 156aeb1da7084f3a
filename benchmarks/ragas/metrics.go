// ABOUTME: RAGAS-style metrics: faithfulness and context recall
// ABOUTME: Deterministic substring evaluation against scenario ground truth

package ragas

import (
	"fmt"
	"strings"

	"github.com/KaranJoshi1208/shivYatra/internal/models"
)

// passThreshold is the minimum per-metric score for a PASS status.
const passThreshold = 0.9

// MetricsCalculator computes benchmark scores for scenario results.
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator.
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateFaithfulness scores the response against ground truth
// (0.0-1.0): all expected strings present, no forbidden strings.
func (m *MetricsCalculator) CalculateFaithfulness(
	response string,
	expectedInResponse []string,
	forbiddenInResponse []string,
) (float64, string) {
	responseUpper := strings.ToUpper(response)

	missing := []string{}
	for _, expected := range expectedInResponse {
		if !strings.Contains(responseUpper, strings.ToUpper(expected)) {
			missing = append(missing, expected)
		}
	}

	forbidden := []string{}
	for _, f := range forbiddenInResponse {
		if strings.Contains(responseUpper, strings.ToUpper(f)) {
			forbidden = append(forbidden, f)
		}
	}

	switch {
	case len(missing) == 0 && len(forbidden) == 0:
		return 1.0, "Response matches ground truth"
	case len(missing) > 0 && len(forbidden) > 0:
		return 0.0, fmt.Sprintf("Missing expected items: %v, forbidden items found: %v", missing, forbidden)
	case len(missing) > 0:
		return 0.5, fmt.Sprintf("Missing expected items: %v", missing)
	default:
		return 0.5, fmt.Sprintf("Forbidden items found: %v", forbidden)
	}
}

// CalculateContextRecall scores retrieval (0.0-1.0): the proportion of
// expected facts present in the retrieved context documents.
func (m *MetricsCalculator) CalculateContextRecall(
	contextDocs []models.ContextItem,
	expectedContextItems []string,
) (float64, string) {
	if len(expectedContextItems) == 0 {
		return 1.0, "No context retrieval required"
	}

	parts := make([]string, 0, len(contextDocs))
	for _, doc := range contextDocs {
		parts = append(parts, doc.Content)
		for _, v := range doc.Metadata {
			parts = append(parts, v)
		}
	}
	allContext := strings.ToUpper(strings.Join(parts, " "))

	found := 0
	missing := []string{}
	for _, expected := range expectedContextItems {
		if strings.Contains(allContext, strings.ToUpper(expected)) {
			found++
		} else {
			missing = append(missing, expected)
		}
	}

	recall := float64(found) / float64(len(expectedContextItems))
	if recall == 1.0 {
		return 1.0, "All expected facts retrieved"
	}
	return recall, fmt.Sprintf("Partial context recall (%.2f), missing: %v", recall, missing)
}

// EvaluateScenario runs the full evaluation of one chat result.
func (m *MetricsCalculator) EvaluateScenario(scenario Scenario, result models.ChatResult) Result {
	faithfulness, faithfulnessDetail := m.CalculateFaithfulness(
		result.Response,
		scenario.GroundTruth.ExpectedInResponse,
		scenario.GroundTruth.ForbiddenInResponse,
	)

	recall, recallDetail := m.CalculateContextRecall(
		result.ContextDocs,
		scenario.GroundTruth.ExpectedContextItems,
	)

	status := "PASS"
	if faithfulness < passThreshold || recall < passThreshold {
		status = "FAIL"
	}
	if len(result.ContextDocs) < scenario.GroundTruth.MinContextDocs {
		status = "FAIL"
	}

	preview := result.Response
	if len(preview) > 200 {
		preview = preview[:200]
	}

	return Result{
		ScenarioID:         scenario.ID,
		ScenarioName:       scenario.Name,
		FaithfulnessScore:  faithfulness,
		ContextRecallScore: recall,
		OverallScore:       (faithfulness + recall) / 2.0,
		Status:             status,
		Details: map[string]any{
			"faithfulness_detail": faithfulnessDetail,
			"recall_detail":       recallDetail,
			"response_preview":    preview,
			"context_docs":        len(result.ContextDocs),
			"processing_time":     result.ProcessingTime,
		},
		ErrorMessage: result.Error,
	}
}
