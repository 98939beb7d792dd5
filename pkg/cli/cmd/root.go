package cmd

import (
	"context"
	"fmt"

	"github.com/devantler-tech/kindlab/pkg/cli/ui/errorhandler"
	"github.com/devantler-tech/kindlab/pkg/di"
	"github.com/devantler-tech/kindlab/pkg/io/configmanager"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command with version info and subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	return NewRootCmdWithRuntime(version, commit, date, di.NewRuntime())
}

// NewRootCmdWithRuntime is NewRootCmd resolving its services from runtime.
func NewRootCmdWithRuntime(version, commit, date string, runtime *di.Runtime) *cobra.Command {
	app := newCommandContext(runtime)

	cmd := &cobra.Command{
		Use:   "kindlab",
		Short: "Run several local kind clusters side by side",
		Long: "kindlab runs several local kind clusters side by side. Each cluster gets its own\n" +
			"host IP alias, a MetalLB load balancer pool and a folder of manifests applied on create.",
		RunE:              handleRootRunE,
		PersistentPreRunE: app.preRun,
		SilenceUsage:      true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	configmanager.AddFlags(cmd.PersistentFlags(), app.viper)

	cmd.AddCommand(
		newInitCmd(app),
		newCreateCmd(app),
		newDeleteCmd(app),
		newStatusCmd(app),
		newListCmd(app),
	)

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(ctx context.Context, cmd *cobra.Command) error {
	err := errorhandler.NewExecutor().Execute(ctx, cmd)
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func handleRootRunE(cmd *cobra.Command, _ []string) error {
	// Help only fails when the output writer does.
	_ = cmd.Help()

	return nil
}
