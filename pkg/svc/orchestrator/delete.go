package orchestrator

import (
	"context"
	"fmt"

	"github.com/devantler-tech/kindlab/pkg/io/configmanager"
	"github.com/devantler-tech/kindlab/pkg/svc/clustererr"
	"github.com/devantler-tech/kindlab/pkg/utils/notify"
)

// Delete removes the kind cluster and releases its IP alias. Both steps are
// best-effort. The configuration must load, since the IP to release is never guessed.
// The cluster directory and its kubeconfig stay on disk.
func (o *Orchestrator) Delete(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("%w: cluster name", clustererr.ErrMissingArgument)
	}

	cfg, err := configmanager.Load(o.Root, name)
	if err != nil {
		return err
	}

	notify.Titlef(o.Writer, "🗑️", "Deleting cluster %s...", name)

	notify.Activityf(o.Writer, "deleting kind cluster %s", name)

	err = o.Provisioner.Delete(ctx, name)
	if err != nil {
		notify.Warningf(o.Writer, "%v", fmt.Errorf("%w: %w", clustererr.ErrBestEffortFailure, err))
	}

	notify.Activityf(o.Writer, "releasing %s from %s", cfg.IP, cfg.Interface)
	o.Aliaser.Remove(ctx, cfg)

	notify.Successf(o.Writer, "cluster %s deleted", name)

	return nil
}
