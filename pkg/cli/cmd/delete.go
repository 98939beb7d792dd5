package cmd

import (
	"context"

	"github.com/devantler-tech/kindlab/pkg/svc/orchestrator"
	"github.com/spf13/cobra"
)

func newDeleteCmd(app *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a cluster and release its IP alias",
		Long:  "Delete the kind cluster and remove its host IP alias. The cluster directory is kept.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, func(ctx context.Context, orch *orchestrator.Orchestrator) error {
				return orch.Delete(ctx, argAt(args, 0))
			})
		},
	}
}
