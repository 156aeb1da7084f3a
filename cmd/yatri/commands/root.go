// ABOUTME: Root CLI command with global flags shared by all subcommands
// ABOUTME: Wires verbose/quiet/format flags and registers subcommands
package commands

import (
	"github.com/spf13/cobra"
)

// Global flag values shared across commands.
var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
██╗   ██╗ █████╗ ████████╗██████╗ ██╗
╚██╗ ██╔╝██╔══██╗╚══██╔══╝██╔══██╗██║
 ╚████╔╝ ███████║   ██║   ██████╔╝██║
  ╚██╔╝  ██╔══██║   ██║   ██╔══██╗██║
   ██║   ██║  ██║   ██║   ██║  ██║██║
   ╚═╝   ╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝╚═╝
`

// NewRootCmd creates the root command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yatri",
		Short: "AI travel assistant for exploring India",
		Long: banner + `
Yatri answers travel questions grounded in a tourism knowledge base.
Questions are matched against embedded destination documents in
Postgres/pgvector, and answers are generated by a local LLM.

Run 'yatri serve' to expose the HTTP API, 'yatri ask' for one-shot
questions, or 'yatri mcp' to serve tools to LLM agents over stdio.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, table, json")

	cmd.AddCommand(
		NewServeCmd(),
		NewAskCmd(),
		NewSearchCmd(),
		NewHealthCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
