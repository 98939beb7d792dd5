// Package kindprovisioner creates and deletes kind clusters and drives the recreate decision.
package kindprovisioner

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/devantler-tech/kindlab/pkg/cmd/runner"
	"github.com/sirupsen/logrus"
	"sigs.k8s.io/kind/pkg/cluster"
	kindcmd "sigs.k8s.io/kind/pkg/cmd"
	createcluster "sigs.k8s.io/kind/pkg/cmd/kind/create/cluster"
	deletecluster "sigs.k8s.io/kind/pkg/cmd/kind/delete/cluster"
	"sigs.k8s.io/kind/pkg/log"
)

// ClusterTool is the subset of kind the provisioner needs.
type ClusterTool interface {
	List(ctx context.Context) ([]string, error)
	Create(ctx context.Context, name, configPath string) error
	Delete(ctx context.Context, name string) error
	KubeConfig(ctx context.Context, name string) (string, error)
}

// KindProvider describes the methods used from kind's cluster.Provider.
type KindProvider interface {
	List() ([]string, error)
	KubeConfig(name string, internal bool) (string, error)
}

// KindTool implements ClusterTool with the kind SDK.
//
// Listing and kubeconfig export go through the provider. Create and delete run
// kind's own cobra commands so their progress output is streamed to the operator.
type KindTool struct {
	provider KindProvider
	runner   runner.CommandRunner
	logger   log.Logger
	streams  kindcmd.IOStreams
}

var _ ClusterTool = (*KindTool)(nil)

// NewKindTool creates a KindTool streaming kind output to stdout and stderr.
func NewKindTool(entry *logrus.Entry) *KindTool {
	logger := NewLogger(os.Stdout, entry)

	return NewKindToolWithDeps(
		cluster.NewProvider(cluster.ProviderWithLogger(logger)),
		runner.NewCobraCommandRunner(os.Stdout, os.Stderr),
		logger,
		kindcmd.IOStreams{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr},
	)
}

// NewKindToolWithDeps creates a KindTool with explicit dependencies.
func NewKindToolWithDeps(
	provider KindProvider,
	commandRunner runner.CommandRunner,
	logger log.Logger,
	streams kindcmd.IOStreams,
) *KindTool {
	if streams.Out == nil {
		streams.Out = io.Discard
	}

	if streams.ErrOut == nil {
		streams.ErrOut = io.Discard
	}

	return &KindTool{
		provider: provider,
		runner:   commandRunner,
		logger:   logger,
		streams:  streams,
	}
}

// List returns the names of all kind clusters.
func (k *KindTool) List(_ context.Context) ([]string, error) {
	clusters, err := k.provider.List()
	if err != nil {
		return nil, fmt.Errorf("kind list: %w", err)
	}

	return clusters, nil
}

// Create runs `kind create cluster --name <name> --config <configPath>`.
func (k *KindTool) Create(ctx context.Context, name, configPath string) error {
	cmd := createcluster.NewCommand(k.logger, k.streams)

	result, err := k.runner.Run(ctx, cmd, []string{"--name", name, "--config", configPath})
	if err != nil {
		return withLastLine(err, result)
	}

	return nil
}

// Delete runs `kind delete cluster --name <name>`.
func (k *KindTool) Delete(ctx context.Context, name string) error {
	cmd := deletecluster.NewCommand(k.logger, k.streams)

	result, err := k.runner.Run(ctx, cmd, []string{"--name", name})
	if err != nil {
		return withLastLine(err, result)
	}

	return nil
}

// KubeConfig returns the external kubeconfig of cluster name.
func (k *KindTool) KubeConfig(_ context.Context, name string) (string, error) {
	kubeconfig, err := k.provider.KubeConfig(name, false)
	if err != nil {
		return "", fmt.Errorf("kind get kubeconfig: %w", err)
	}

	return kubeconfig, nil
}

func withLastLine(err error, result runner.CommandResult) error {
	if line := result.LastLine(); line != "" {
		return fmt.Errorf("%w (%s)", err, line)
	}

	return err
}
