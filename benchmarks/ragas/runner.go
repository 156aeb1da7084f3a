// ABOUTME: Benchmark runner: executes scenarios against the live pipeline
// ABOUTME: Collects results and exports them as a JSON report

package ragas

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/KaranJoshi1208/shivYatra/internal/models"
)

// Chatter is the pipeline surface the runner drives.
type Chatter interface {
	Chat(ctx context.Context, query string) models.ChatResult
}

// Runner executes benchmark scenarios against a live pipeline.
type Runner struct {
	engine  Chatter
	metrics *MetricsCalculator
	verbose bool
}

// NewRunner creates a benchmark runner for the given pipeline.
func NewRunner(engine Chatter, verbose bool) *Runner {
	return &Runner{
		engine:  engine,
		metrics: NewMetricsCalculator(),
		verbose: verbose,
	}
}

// RunScenario executes one scenario and evaluates the outcome.
func (r *Runner) RunScenario(ctx context.Context, scenario Scenario) Result {
	if r.verbose {
		fmt.Printf("\n========================================\n")
		fmt.Printf("RUNNING: %s\n", scenario.Name)
		fmt.Printf("========================================\n")
		fmt.Printf("Question: %s\n\n", scenario.Question)
	}

	result := r.engine.Chat(ctx, scenario.Question)

	evaluated := r.metrics.EvaluateScenario(scenario, result)
	if r.verbose {
		fmt.Printf("Faithfulness:   %.2f\n", evaluated.FaithfulnessScore)
		fmt.Printf("Context recall: %.2f\n", evaluated.ContextRecallScore)
		fmt.Printf("Status:         %s\n", evaluated.Status)
	}
	return evaluated
}

// RunAll executes the full scenario suite.
func (r *Runner) RunAll(ctx context.Context) []Result {
	scenarios := Scenarios()
	results := make([]Result, 0, len(scenarios))
	for _, scenario := range scenarios {
		results = append(results, r.RunScenario(ctx, scenario))
	}
	return results
}

// report is the exported JSON document.
type report struct {
	Timestamp string   `json:"timestamp"`
	Total     int      `json:"total"`
	Passed    int      `json:"passed"`
	Failed    int      `json:"failed"`
	Results   []Result `json:"results"`
}

// ExportResults writes results as a JSON report to outputPath.
func ExportResults(results []Result, outputPath string) error {
	rep := report{
		Timestamp: time.Now().Format(time.RFC3339),
		Total:     len(results),
		Results:   results,
	}
	for _, result := range results {
		if result.Status == "PASS" {
			rep.Passed++
		} else {
			rep.Failed++
		}
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
