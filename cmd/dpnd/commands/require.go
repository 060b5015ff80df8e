package commands

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/scribibble/dpnd/internal/app"
	"github.com/scribibble/dpnd/internal/core/domain"
)

func (c *CLI) newRequireCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "require <component> <url> <ref> <dir> <depth>",
		Short: "Pin a dependency in the current component's bill of materials",
		Long: "Records a dependency requirement in the bill of materials of the current " +
			"component, creating the file if it does not exist yet. The depth argument " +
			"controls shallow cloning; 0 means a full history fetch.",
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			depth, err := strconv.Atoi(args[4])
			if err != nil {
				return zerr.With(errors.Join(domain.ErrUsage, domain.ErrInvalidDepth), "depth", args[4])
			}

			jsonLogs, _ := cmd.Flags().GetBool("json")

			return c.app.Require(cmd.Context(), app.RequireOptions{
				Component: args[0],
				URL:       args[1],
				Ref:       args[2],
				Dir:       args[3],
				Depth:     depth,
				JSONLogs:  jsonLogs,
			})
		},
	}
	cmd.Flags().Bool("json", false, "Emit logs as JSON")
	return cmd
}
