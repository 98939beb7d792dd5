// Package orchestrator composes the cluster components into the init, create,
// delete, status and list workflows.
//
// Workflows are fail-fast. A failed step aborts the rest of the workflow and
// steps that already completed are not undone.
package orchestrator

import (
	"context"
	"io"
	"net/netip"
	"os"

	"github.com/devantler-tech/kindlab/pkg/cmd/parallel"
	"github.com/devantler-tech/kindlab/pkg/svc/applier"
	metallbinstaller "github.com/devantler-tech/kindlab/pkg/svc/installer/metallb"
	"github.com/devantler-tech/kindlab/pkg/svc/network"
	"github.com/devantler-tech/kindlab/pkg/svc/prereq"
	kindprovisioner "github.com/devantler-tech/kindlab/pkg/svc/provisioner/cluster/kind"
	"github.com/devantler-tech/kindlab/pkg/svc/status"
	"github.com/sirupsen/logrus"
)

// NetworkInspector resolves the subnet of a docker network.
type NetworkInspector interface {
	NetworkSubnet(ctx context.Context, name string) (netip.Prefix, error)
}

// Deps are the collaborators of an Orchestrator.
type Deps struct {
	Root        string
	Decider     kindprovisioner.Decider
	Aliaser     *network.Aliaser
	Provisioner *kindprovisioner.Provisioner
	Installer   *metallbinstaller.Installer
	Applier     *applier.Applier
	Reporter    *status.Reporter
	Checker     *prereq.Checker
	// Networks is optional. Without it init uses the default kind network for pool ranges.
	Networks NetworkInspector
	Writer   io.Writer
	Logger   *logrus.Entry
}

// Orchestrator runs the cluster workflows.
type Orchestrator struct {
	Deps

	executor *parallel.Executor
}

// New creates an Orchestrator.
func New(deps Deps) *Orchestrator {
	if deps.Writer == nil {
		deps.Writer = os.Stdout
	}

	if deps.Logger == nil {
		deps.Logger = logrus.NewEntry(logrus.StandardLogger())
	}

	return &Orchestrator{
		Deps:     deps,
		executor: parallel.NewExecutor(parallel.DefaultMaxConcurrency()),
	}
}

func (o *Orchestrator) log(name string) *logrus.Entry {
	return o.Logger.WithField("cluster", name)
}
