package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slidecraft",
		Short: "AI presentation generator: topic or document in, slide deck out",
		Long: `Slidecraft turns a topic, pasted article, or uploaded document into a
multi-slide visual presentation.

It synthesizes a slide outline with a text model, renders every slide as an
image concurrently, and exports the assembled deck as PNG, PDF, or PPTX.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newGenerateCmd())

	return cmd
}
