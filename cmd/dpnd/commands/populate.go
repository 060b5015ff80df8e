package commands

import (
	"github.com/spf13/cobra"

	"github.com/scribibble/dpnd/internal/app"
)

func (c *CLI) newPopulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "populate",
		Short: "Fetch the full dependency tree of the current component",
		Long: "Reads the bill of materials of the current component and recursively " +
			"fetches every dependency into sibling directories next to the component.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			jsonLogs, _ := cmd.Flags().GetBool("json")

			return c.app.Populate(cmd.Context(), app.PopulateOptions{
				DryRun:   dryRun,
				JSONLogs: jsonLogs,
			})
		},
	}
	cmd.Flags().Bool("dry-run", false, "Log the fetches that would happen without performing them")
	cmd.Flags().Bool("json", false, "Emit logs as JSON")
	return cmd
}
