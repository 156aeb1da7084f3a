// ABOUTME: Health command reports dependency status from the aggregator
// ABOUTME: Exit code is non-zero when the pipeline is not initialized
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewHealthCmd creates the health command.
func NewHealthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check dependency health",
		Long: `Check health of the assistant's dependencies.

Probes the vector store, embedding model, and generation backend
independently and reports each status plus the embedding count.`,
		RunE: runHealth,
		Example: `  yatri health
  yatri health --format json`,
	}

	return cmd
}

func runHealth(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp(ctx, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	engine := a.engine(ctx)
	health := engine.Health(ctx)

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(health, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
	} else {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "COMPONENT\tSTATUS\n")
		fmt.Fprintf(w, "---------\t------\n")
		fmt.Fprintf(w, "initialized\t%s\n", statusMark(health.Initialized))
		fmt.Fprintf(w, "vector_store\t%s\n", statusMark(health.VectorStore))
		fmt.Fprintf(w, "embedding_model\t%s\n", statusMark(health.EmbeddingModel))
		fmt.Fprintf(w, "generation_backend\t%s\n", statusMark(health.GenerationBackend))
		fmt.Fprintf(w, "total_embeddings\t%d\n", health.TotalEmbeddings)
		_ = w.Flush()
	}

	if !health.Initialized {
		return fmt.Errorf("pipeline not initialized: %v", engine.InitErr())
	}
	return nil
}
