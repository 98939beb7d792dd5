package orchestrator

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/devantler-tech/kindlab/pkg/apis/cluster/v1alpha1"
	"github.com/devantler-tech/kindlab/pkg/client/docker"
	"github.com/devantler-tech/kindlab/pkg/fsutil"
	metallbgenerator "github.com/devantler-tech/kindlab/pkg/io/generator/metallb"
	"github.com/devantler-tech/kindlab/pkg/io/scaffolder"
	"github.com/devantler-tech/kindlab/pkg/svc/clustererr"
	"github.com/devantler-tech/kindlab/pkg/utils/notify"
)

// InitOptions describe a new cluster. Empty optional fields are derived from IP.
type InitOptions struct {
	Name      string
	IP        string
	Subnet    string
	Gateway   string
	Interface string
	PoolRange string
}

// Init writes the directory of a new cluster.
//
// An existing directory is only overwritten after confirmation. Declining
// leaves every file untouched and is not an error.
func (o *Orchestrator) Init(ctx context.Context, opts InitOptions) error {
	if opts.Name == "" {
		return fmt.Errorf("%w: cluster name", clustererr.ErrMissingArgument)
	}

	if opts.IP == "" {
		return fmt.Errorf("%w: cluster ip", clustererr.ErrMissingArgument)
	}

	cfg, poolRange, err := o.resolveInit(ctx, opts)
	if err != nil {
		return err
	}

	notify.Titlef(o.Writer, "📝", "Initializing cluster %s...", cfg.Name)

	layout := v1alpha1.NewLayout(o.Root, cfg.Name)

	exists, err := fsutil.DirExists(layout.Dir())
	if err != nil {
		return fmt.Errorf("check cluster directory: %w", err)
	}

	if exists && !o.Decider.Confirm(fmt.Sprintf("Overwrite generated files in %s?", layout.Dir())) {
		notify.Infof(o.Writer, "kept existing files in %s", layout.Dir())

		return nil
	}

	err = scaffolder.NewScaffolder(o.Root, o.Writer).Scaffold(cfg, poolRange)
	if err != nil {
		return fmt.Errorf("initialize cluster %s: %w", cfg.Name, err)
	}

	notify.Successf(o.Writer, "initialized cluster %s with ip %s on %s", cfg.Name, cfg.IP, cfg.Interface)
	notify.Infof(o.Writer, "next: kindlab create %s", cfg.Name)

	return nil
}

// resolveInit validates opts and fills in the derived values before anything is written.
func (o *Orchestrator) resolveInit(
	ctx context.Context,
	opts InitOptions,
) (*v1alpha1.ClusterConfig, string, error) {
	err := v1alpha1.ValidateClusterName(opts.Name)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", clustererr.ErrInvalidConfig, err)
	}

	ip, err := v1alpha1.ParseIPv4(opts.IP)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", clustererr.ErrInvalidConfig, err)
	}

	if opts.Subnet != "" {
		_, err = netip.ParsePrefix(opts.Subnet)
		if err != nil {
			return nil, "", fmt.Errorf("%w: subnet: %w", clustererr.ErrInvalidConfig, err)
		}
	}

	if opts.Gateway != "" {
		_, err = v1alpha1.ParseIPv4(opts.Gateway)
		if err != nil {
			return nil, "", fmt.Errorf("%w: gateway: %w", clustererr.ErrInvalidConfig, err)
		}
	}

	iface := opts.Interface
	if iface == "" {
		iface = o.Aliaser.DetectInterface(ctx)
	}

	poolRange := opts.PoolRange
	if poolRange == "" {
		poolRange = o.defaultPoolRange(ctx, ip)
	}

	err = metallbgenerator.ValidateRange(poolRange)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", clustererr.ErrInvalidConfig, err)
	}

	return v1alpha1.NewClusterConfig(opts.Name, ip, opts.Subnet, opts.Gateway, iface), poolRange, nil
}

func (o *Orchestrator) defaultPoolRange(ctx context.Context, ip netip.Addr) string {
	if o.Networks == nil {
		return v1alpha1.DefaultPoolRange(ip)
	}

	subnet, err := o.Networks.NetworkSubnet(ctx, docker.KindNetworkName)
	if err != nil {
		o.Logger.WithError(err).Debug("kind network not inspectable, using default pool range")

		return v1alpha1.DefaultPoolRange(ip)
	}

	return v1alpha1.PoolRangeIn(subnet, ip)
}
