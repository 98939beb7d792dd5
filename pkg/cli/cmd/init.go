package cmd

import (
	"context"

	"github.com/devantler-tech/kindlab/pkg/svc/orchestrator"
	"github.com/spf13/cobra"
)

const initArgs = 2

func newInitCmd(app *commandContext) *cobra.Command {
	var opts orchestrator.InitOptions

	cmd := &cobra.Command{
		Use:   "init <name> <ip>",
		Short: "Generate the directory of a new cluster",
		Long: "Generate <root>/<name> with the cluster's env file, kind config, MetalLB pool,\n" +
			"an empty manifests folder and a README. Nothing is created on the host or in docker.",
		Example: "  kindlab init demo 192.168.1.240\n" +
			"  kindlab init demo 192.168.1.240 --interface eth0 --pool-range 172.18.255.200-172.18.255.250",
		Args: cobra.MaximumNArgs(initArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Name = argAt(args, 0)
			opts.IP = argAt(args, 1)

			return app.run(cmd, func(ctx context.Context, orch *orchestrator.Orchestrator) error {
				return orch.Init(ctx, opts)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Subnet, "subnet", "", "subnet of the host IP alias, e.g. 192.168.1.0/24")
	flags.StringVar(&opts.Gateway, "gateway", "", "gateway recorded with the cluster")
	flags.StringVar(&opts.Interface, "interface", "", "host interface for the IP alias (detected when empty)")
	flags.StringVar(&opts.PoolRange, "pool-range", "",
		"MetalLB address range, e.g. 172.18.255.200-172.18.255.250 (derived when empty)")

	return cmd
}
