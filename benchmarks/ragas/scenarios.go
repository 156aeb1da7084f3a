// ABOUTME: Benchmark scenario definitions with ground truth for evaluation
// ABOUTME: Each scenario is one travel question plus expected response/context facts

package ragas

// Scenario represents one benchmark question with its ground truth.
type Scenario struct {
	ID          string
	Name        string
	Description string
	Question    string
	GroundTruth GroundTruth
}

// GroundTruth defines the expected outcome for a scenario.
type GroundTruth struct {
	// Strings that MUST appear in the response
	ExpectedInResponse []string

	// Strings that MUST NOT appear in the response (hallucination guard)
	ForbiddenInResponse []string

	// Facts that should appear in the retrieved context
	ExpectedContextItems []string

	// MinContextDocs is the minimum number of documents retrieval
	// should surface. Zero means the scenario expects no context
	// (out-of-domain question answered via the fallback prompt).
	MinContextDocs int
}

// Result represents the outcome of one benchmark scenario.
type Result struct {
	ScenarioID         string         `json:"scenario_id"`
	ScenarioName       string         `json:"scenario_name"`
	FaithfulnessScore  float64        `json:"faithfulness_score"`
	ContextRecallScore float64        `json:"context_recall_score"`
	OverallScore       float64        `json:"overall_score"`
	Status             string         `json:"status"`
	Details            map[string]any `json:"details"`
	ErrorMessage       string         `json:"error_message,omitempty"`
}

// Scenarios returns the full benchmark suite.
func Scenarios() []Scenario {
	return []Scenario{
		adventureScenario(),
		budgetScenario(),
		outOfDomainScenario(),
	}
}

// ScenarioByID returns the named scenario, or false when unknown.
func ScenarioByID(id string) (Scenario, bool) {
	for _, s := range Scenarios() {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}

func adventureScenario() Scenario {
	return Scenario{
		ID:          "adventure_manali",
		Name:        "Adventure activities in Manali",
		Description: "Checks that adventure documents for Manali are retrieved and cited",
		Question:    "What adventure activities can I do in Manali?",
		GroundTruth: GroundTruth{
			ExpectedInResponse:   []string{"Manali"},
			ForbiddenInResponse:  []string{"LLM Error"},
			ExpectedContextItems: []string{"Manali"},
			MinContextDocs:       1,
		},
	}
}

func budgetScenario() Scenario {
	return Scenario{
		ID:          "budget_goa",
		Name:        "Budget stay in Goa",
		Description: "Checks that budget accommodation documents for Goa are retrieved",
		Question:    "Where can I stay in Goa on a tight budget?",
		GroundTruth: GroundTruth{
			ExpectedInResponse:   []string{"Goa"},
			ForbiddenInResponse:  []string{"LLM Error"},
			ExpectedContextItems: []string{"Goa"},
			MinContextDocs:       1,
		},
	}
}

func outOfDomainScenario() Scenario {
	return Scenario{
		ID:          "out_of_domain",
		Name:        "Out-of-domain question",
		Description: "Checks that unrelated questions degrade to the fallback prompt without errors",
		Question:    "How do I configure a Kubernetes ingress controller?",
		GroundTruth: GroundTruth{
			ForbiddenInResponse: []string{"LLM Error"},
			MinContextDocs:      0,
		},
	}
}
