package cmd

import (
	"context"

	"github.com/devantler-tech/kindlab/pkg/svc/orchestrator"
	"github.com/spf13/cobra"
)

func newCreateCmd(app *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a cluster from its directory",
		Long: "Add the cluster's host IP alias, create the kind cluster, install MetalLB with\n" +
			"the cluster's address pool and apply every manifest in its manifests folder.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd, func(ctx context.Context, orch *orchestrator.Orchestrator) error {
				return orch.Create(ctx, argAt(args, 0))
			})
		},
	}
}
