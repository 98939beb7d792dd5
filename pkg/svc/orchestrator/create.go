package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/devantler-tech/kindlab/pkg/apis/cluster/v1alpha1"
	"github.com/devantler-tech/kindlab/pkg/io/configmanager"
	kindgenerator "github.com/devantler-tech/kindlab/pkg/io/generator/kind"
	"github.com/devantler-tech/kindlab/pkg/k8s"
	"github.com/devantler-tech/kindlab/pkg/svc/clustererr"
	kindprovisioner "github.com/devantler-tech/kindlab/pkg/svc/provisioner/cluster/kind"
	"github.com/devantler-tech/kindlab/pkg/utils/notify"
)

// Create brings a configured cluster up: prerequisites, configuration, the
// recreate decision, the IP alias, the kind cluster, MetalLB and the manifests.
//
// Keeping an existing cluster when asked to recreate it ends the workflow
// successfully without touching anything.
func (o *Orchestrator) Create(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("%w: cluster name", clustererr.ErrMissingArgument)
	}

	log := o.log(name)

	notify.Titlef(o.Writer, "🚀", "Creating cluster %s...", name)

	notify.Activityf(o.Writer, "checking prerequisites")

	err := o.Checker.Run(ctx)
	if err != nil {
		return err
	}

	cfg, err := configmanager.Load(o.Root, name)
	if err != nil {
		return err
	}

	layout := v1alpha1.NewLayout(o.Root, name)

	pool, err := os.ReadFile(layout.MetalLBConfig())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", clustererr.ErrConfigNotFound, layout.MetalLBConfig())
		}

		return fmt.Errorf("read address pool: %w", err)
	}

	state, err := o.Provisioner.PrepareRecreate(ctx, name, o.Decider)
	if err != nil {
		return err
	}

	log.WithField("state", state).Debug("resolved existing cluster")

	if !state.ShouldCreate() {
		notify.Infof(o.Writer, "kept existing cluster %s", name)

		return nil
	}

	notify.Activityf(o.Writer, "adding %s to %s", cfg.IP, cfg.Interface)

	err = o.Aliaser.Add(ctx, cfg)
	if err != nil {
		return err
	}

	notify.Activityf(o.Writer, "creating kind cluster %s", name)

	err = o.Provisioner.Create(ctx, name, layout.KindConfig(), layout.Kubeconfig())
	if err != nil {
		return err
	}

	state = kindprovisioner.StateCreated
	log.WithField("state", state).Debug("kind cluster ready")

	target := k8s.Target{Kubeconfig: layout.Kubeconfig(), Context: cfg.KubeContext()}

	err = o.Installer.Install(ctx, target, pool)
	if err != nil {
		return err
	}

	notify.Successf(o.Writer, "MetalLB ready")

	applied, err := o.Applier.Apply(ctx, target, layout.ManifestsDir())
	if err != nil {
		return err
	}

	o.printAccess(cfg, layout, applied)

	return nil
}

func (o *Orchestrator) printAccess(cfg *v1alpha1.ClusterConfig, layout v1alpha1.Layout, applied int) {
	notify.Successf(o.Writer, "cluster %s created", cfg.Name)
	notify.Infof(o.Writer, "API server: https://%s:%d\nkubeconfig: %s\ncontext:    %s\nmanifests:  %d applied",
		cfg.IP, kindgenerator.APIServerPort, layout.Kubeconfig(), cfg.KubeContext(), applied)
	notify.Infof(o.Writer, "kubectl --kubeconfig %s get nodes", layout.Kubeconfig())
}
