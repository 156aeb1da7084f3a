// ABOUTME: Search command queries the vector index directly, skipping generation
// ABOUTME: Supports metadata filters for city, state, and price range
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	searchLimit  int
	searchCity   string
	searchState  string
	searchBudget string
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the tourism knowledge base",
		Long: `Search the tourism knowledge base by semantic similarity.

Embeds the query and returns the nearest destination documents
without running generation. Metadata filters narrow results to a
city, state, or price range.

Examples:
  yatri search "trekking routes"
  yatri search --state "Himachal Pradesh" "snow activities"
  yatri search --city Goa --budget "₹500-1500" "beach shack"
  yatri search --format json "wildlife safari"`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().IntVar(&searchLimit, "limit", 5, "Maximum results to return")
	cmd.Flags().StringVar(&searchCity, "city", "", "Filter by city")
	cmd.Flags().StringVar(&searchState, "state", "", "Filter by state")
	cmd.Flags().StringVar(&searchBudget, "budget", "", "Filter by price range")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchLimit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", searchLimit)
	}

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

	query := args[0]

	vec, err := a.embedder.Embed(ctx, query)
	if err != nil {
		return fmt.Errorf("embedding query: %w", err)
	}

	filter := map[string]string{}
	if searchCity != "" {
		filter["city"] = searchCity
	}
	if searchState != "" {
		filter["state"] = searchState
	}
	if searchBudget != "" {
		filter["price_range"] = searchBudget
	}

	hits, err := a.store.QueryFiltered(ctx, vec, searchLimit, filter)
	if err != nil {
		return fmt.Errorf("searching index: %w", err)
	}

	if len(hits) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No documents found for query: %s\n", query)
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(hits, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SIMILARITY\tCITY\tSTATE\tPREVIEW\n")
	fmt.Fprintf(w, "----------\t----\t-----\t-------\n")
	for _, hit := range hits {
		fmt.Fprintf(w, "%.3f\t%s\t%s\t%s\n",
			1-hit.Distance,
			metaOrDash(hit.Metadata, "city"),
			metaOrDash(hit.Metadata, "state"),
			truncate(hit.Content, 60))
	}
	return w.Flush()
}

// metaOrDash returns the metadata value or a dash for table output
func metaOrDash(metadata map[string]string, key string) string {
	if v := metadata[key]; v != "" {
		return v
	}
	return "-"
}
