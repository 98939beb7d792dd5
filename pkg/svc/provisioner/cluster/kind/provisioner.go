package kindprovisioner

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/devantler-tech/kindlab/pkg/apis/cluster/v1alpha1"
	"github.com/devantler-tech/kindlab/pkg/fsutil"
	"github.com/devantler-tech/kindlab/pkg/k8s"
	"github.com/devantler-tech/kindlab/pkg/svc/clustererr"
	"github.com/devantler-tech/kindlab/pkg/utils/notify"
)

// RecreateState is a step of the create workflow's handling of an existing cluster.
type RecreateState int

const (
	// StateAbsent means no cluster with the name exists.
	StateAbsent RecreateState = iota
	// StateExistsUnconfirmed means the cluster exists and the operator kept it.
	StateExistsUnconfirmed
	// StateRecreating means the existing cluster was deleted and must be created again.
	StateRecreating
	// StateCreated means the cluster was created.
	StateCreated
)

func (s RecreateState) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateExistsUnconfirmed:
		return "exists-unconfirmed"
	case StateRecreating:
		return "recreating"
	case StateCreated:
		return "created"
	default:
		return fmt.Sprintf("RecreateState(%d)", int(s))
	}
}

// ShouldCreate reports whether the workflow continues with cluster creation.
func (s RecreateState) ShouldCreate() bool {
	return s == StateAbsent || s == StateRecreating
}

// Decider answers yes/no questions asked before destructive actions.
type Decider interface {
	Confirm(prompt string) bool
}

// Provisioner manages the kind side of a cluster's lifecycle.
type Provisioner struct {
	tool   ClusterTool
	writer io.Writer
}

// NewProvisioner creates a Provisioner using tool.
func NewProvisioner(tool ClusterTool, writer io.Writer) *Provisioner {
	return &Provisioner{tool: tool, writer: writer}
}

// Exists reports whether kind knows a cluster called name.
func (p *Provisioner) Exists(ctx context.Context, name string) (bool, error) {
	clusters, err := p.tool.List(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list kind clusters: %w", err)
	}

	return slices.Contains(clusters, name), nil
}

// Create creates cluster name from configPath and writes its kubeconfig to kubeconfigPath.
//
// Creation is never retried. A failed create may leave a partial cluster behind.
func (p *Provisioner) Create(ctx context.Context, name, configPath, kubeconfigPath string) error {
	exists, err := fsutil.FileExists(configPath)
	if err != nil {
		return fmt.Errorf("check kind configuration: %w", err)
	}

	if !exists {
		return fmt.Errorf("%w: %s", clustererr.ErrKindConfigMissing, configPath)
	}

	err = p.tool.Create(ctx, name, configPath)
	if err != nil {
		return fmt.Errorf("%w: create kind cluster %q: %w", clustererr.ErrExternalCommandFailed, name, err)
	}

	raw, err := p.tool.KubeConfig(ctx, name)
	if err != nil {
		return fmt.Errorf("%w: export kubeconfig of %q: %w", clustererr.ErrExternalCommandFailed, name, err)
	}

	kubeconfig, err := k8s.PrepareKubeconfig([]byte(raw), v1alpha1.KubeContextName(name))
	if err != nil {
		return fmt.Errorf("prepare kubeconfig of %q: %w", name, err)
	}

	_, err = fsutil.TryWriteFile(string(kubeconfig), kubeconfigPath, true)
	if err != nil {
		return fmt.Errorf("write kubeconfig: %w", err)
	}

	return nil
}

// Delete deletes cluster name. Callers decide whether a failure is fatal.
func (p *Provisioner) Delete(ctx context.Context, name string) error {
	err := p.tool.Delete(ctx, name)
	if err != nil {
		return fmt.Errorf("delete kind cluster %q: %w", name, err)
	}

	return nil
}

// PrepareRecreate resolves what create should do about an existing cluster.
//
// When the cluster exists the decider is asked whether to delete it. Declining
// yields StateExistsUnconfirmed and nothing is deleted. A failed delete is fatal
// because the new cluster cannot be created over the old one.
func (p *Provisioner) PrepareRecreate(
	ctx context.Context,
	name string,
	decider Decider,
) (RecreateState, error) {
	exists, err := p.Exists(ctx, name)
	if err != nil {
		return StateAbsent, fmt.Errorf("%w: %w", clustererr.ErrExternalCommandFailed, err)
	}

	if !exists {
		return StateAbsent, nil
	}

	notify.Warningf(p.writer, "cluster %q already exists", name)

	if !decider.Confirm(fmt.Sprintf("Delete and recreate cluster %q?", name)) {
		return StateExistsUnconfirmed, nil
	}

	notify.Activityf(p.writer, "deleting existing cluster %q", name)

	err = p.Delete(ctx, name)
	if err != nil {
		return StateRecreating, fmt.Errorf("%w: %w", clustererr.ErrExternalCommandFailed, err)
	}

	return StateRecreating, nil
}
