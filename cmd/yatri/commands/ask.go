// ABOUTME: Ask command runs a one-shot travel question through the pipeline
// ABOUTME: Prints the answer plus retrieved context in table or JSON format
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KaranJoshi1208/shivYatra/internal/models"
)

// NewAskCmd creates the ask command.
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a travel question",
		Long: `Ask a one-shot travel question.

Retrieves matching destination documents from the knowledge base and
generates an answer. Multiple arguments are joined into one question.

Examples:
  yatri ask "best time to visit Ladakh"
  yatri ask --format json "budget trek near Manali"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAsk,
	}

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
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

	question := strings.Join(args, " ")
	result := a.engine(ctx).Chat(ctx, question)

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	printChatResult(cmd, result)
	return nil
}

func printChatResult(cmd *cobra.Command, result models.ChatResult) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, result.Response)

	if quiet || len(result.ContextDocs) == 0 {
		return
	}

	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "RANK\tSIMILARITY\tSOURCE\n")
	fmt.Fprintf(w, "----\t----------\t------\n")
	for _, doc := range result.ContextDocs {
		fmt.Fprintf(w, "%d\t%.3f\t%s\n", doc.Rank, doc.Similarity, truncate(doc.Content, 60))
	}
	_ = w.Flush()

	fmt.Fprintf(out, "\nAnswered in %.2fs\n", result.ProcessingTime)
}
