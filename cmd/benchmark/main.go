// ABOUTME: Command-line benchmark runner for retrieval quality scenarios
// ABOUTME: Executes scenarios against the live pipeline and outputs JSON results

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/KaranJoshi1208/shivYatra/benchmarks/ragas"
	"github.com/KaranJoshi1208/shivYatra/internal/config"
	"github.com/KaranJoshi1208/shivYatra/internal/embed"
	"github.com/KaranJoshi1208/shivYatra/internal/index"
	"github.com/KaranJoshi1208/shivYatra/internal/llm"
	"github.com/KaranJoshi1208/shivYatra/internal/prompt"
	"github.com/KaranJoshi1208/shivYatra/internal/rag"
)

func main() {
	scenarioID := flag.String("scenario", "", "Run a specific scenario by ID. If empty, runs all scenarios.")
	outputPath := flag.String("output", "benchmark_results.json", "Output path for JSON results")
	verbose := flag.Bool("verbose", false, "Enable verbose output")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (continuing anyway): %v", err)
	}

	ctx := context.Background()

	engine, pool, err := buildEngine(ctx, *verbose)
	if err != nil {
		log.Fatalf("Failed to build pipeline: %v", err)
	}
	defer pool.Close()

	if !engine.Ready() {
		log.Fatalf("Pipeline not initialized: %v", engine.InitErr())
	}

	fmt.Println("========================================")
	fmt.Println("Yatri Retrieval Quality Benchmarks")
	fmt.Println("========================================")

	runner := ragas.NewRunner(engine, *verbose)

	var results []ragas.Result
	if *scenarioID == "" {
		results = runner.RunAll(ctx)
	} else {
		scenario, ok := ragas.ScenarioByID(*scenarioID)
		if !ok {
			log.Fatalf("Unknown scenario ID: %s", *scenarioID)
		}
		results = []ragas.Result{runner.RunScenario(ctx, scenario)}
	}

	fmt.Println("\n========================================")
	fmt.Println("BENCHMARK SUMMARY")
	fmt.Println("========================================")

	passed, failed := 0, 0
	for _, result := range results {
		fmt.Printf("\n%s: %s\n", result.ScenarioID, result.ScenarioName)
		fmt.Printf("  Faithfulness: %.2f\n", result.FaithfulnessScore)
		fmt.Printf("  Context Recall: %.2f\n", result.ContextRecallScore)
		fmt.Printf("  Overall: %.2f\n", result.OverallScore)
		fmt.Printf("  Status: %s\n", result.Status)

		if result.Status == "PASS" {
			passed++
		} else {
			failed++
		}
	}

	fmt.Println("\n========================================")
	fmt.Printf("Total Scenarios: %d\n", len(results))
	fmt.Printf("Passed: %d\n", passed)
	fmt.Printf("Failed: %d\n", failed)
	fmt.Println("========================================")

	if err := ragas.ExportResults(results, *outputPath); err != nil {
		log.Fatalf("Failed to export results: %v", err)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// buildEngine assembles the full pipeline from environment config.
func buildEngine(ctx context.Context, verbose bool) (*rag.Engine, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	logger := zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, nil, fmt.Errorf("building logger: %w", err)
		}
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	store, err := index.NewStore(pool, cfg.IndexTable, logger)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("opening vector index: %w", err)
	}

	embedder, err := embed.NewClient(embed.ClientConfig{
		BaseURL:    cfg.LLMBaseURL,
		APIKey:     cfg.APIKey,
		Model:      cfg.EmbeddingModel,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
		Timeout:    cfg.RetrievalTimeout,
	})
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("creating embedding client: %w", err)
	}

	generator, err := llm.NewClient(llm.ClientConfig{
		BaseURL:     cfg.LLMBaseURL,
		APIKey:      cfg.APIKey,
		Model:       cfg.ChatModel,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		Timeout:     cfg.GenerationTimeout,
	})
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("creating generation client: %w", err)
	}

	templates := prompt.Defaults().WithOverrides(cfg.SystemPrompt, cfg.ContextTemplate, cfg.FallbackPrompt)

	engine := rag.NewEngine(ctx, rag.Config{
		MaxResults:         cfg.MaxResults,
		RelevanceThreshold: cfg.RelevanceThreshold,
		MaxContextChunks:   cfg.MaxContextChunks,
		RetrievalTimeout:   cfg.RetrievalTimeout,
		ProbeTimeout:       cfg.ProbeTimeout,
	}, embedder, store, generator, templates, logger)

	return engine, pool, nil
}
