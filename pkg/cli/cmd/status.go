package cmd

import (
	"context"

	"github.com/devantler-tech/kindlab/pkg/svc/orchestrator"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status [name]",
		Short: "Report on one cluster, or on every cluster",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, func(ctx context.Context, orch *orchestrator.Orchestrator) error {
				_, err := orch.Status(ctx, argAt(args, 0))

				return err
			})
		},
	}
}

func newListCmd(app *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List cluster directories with their IP and state",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, func(ctx context.Context, orch *orchestrator.Orchestrator) error {
				_, err := orch.List(ctx)

				return err
			})
		},
	}
}
