package cmd

import (
	"context"

	"github.com/devantler-tech/kindlab/pkg/di"
	"github.com/devantler-tech/kindlab/pkg/io/configmanager"
	"github.com/devantler-tech/kindlab/pkg/svc/orchestrator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// commandContext is shared by the subcommands of one root command.
type commandContext struct {
	runtime *di.Runtime
	viper   *viper.Viper
}

func newCommandContext(runtime *di.Runtime) *commandContext {
	return &commandContext{runtime: runtime, viper: configmanager.NewViper()}
}

func (c *commandContext) preRun(cmd *cobra.Command, _ []string) error {
	settings, err := configmanager.LoadSettings(c.viper)
	if err != nil {
		return err
	}

	configureLogging(settings.Verbose, cmd.ErrOrStderr())

	return nil
}

// run resolves the orchestrator for this invocation and hands it to handler.
func (c *commandContext) run(
	cmd *cobra.Command,
	handler func(ctx context.Context, orch *orchestrator.Orchestrator) error,
) error {
	settings, err := configmanager.LoadSettings(c.viper)
	if err != nil {
		return err
	}

	streams := di.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}

	return c.runtime.Invoke(
		di.WithOrchestrator(func(_ di.Injector, orch *orchestrator.Orchestrator) error {
			return handler(cmd.Context(), orch)
		}),
		di.WithInvocation(settings, streams),
	)
}

// argAt returns args[index], or "" so that missing positionals surface as
// missing-argument errors from the orchestrator rather than cobra usage errors.
func argAt(args []string, index int) string {
	if index < len(args) {
		return args[index]
	}

	return ""
}
