// Package status reports what is known about local clusters without changing anything.
package status

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/devantler-tech/kindlab/pkg/apis/cluster/v1alpha1"
	"github.com/devantler-tech/kindlab/pkg/client/docker"
	"github.com/devantler-tech/kindlab/pkg/client/kubectl"
	"github.com/devantler-tech/kindlab/pkg/cmd/parallel"
	"github.com/devantler-tech/kindlab/pkg/fsutil"
	"github.com/devantler-tech/kindlab/pkg/io/configmanager"
	"github.com/devantler-tech/kindlab/pkg/k8s"
	"github.com/devantler-tech/kindlab/pkg/k8s/readiness"
	"github.com/devantler-tech/kindlab/pkg/svc/applier"
)

// Registry tells whether kind knows a cluster.
type Registry interface {
	Exists(ctx context.Context, name string) (bool, error)
}

// ContainerInspector resolves the address of a container on a docker network.
type ContainerInspector interface {
	ContainerIP(ctx context.Context, containerName, networkName string) (string, error)
}

// ClusterReport is the result of every independent check on one cluster.
// Error fields hold the reason a check could not answer.
type ClusterReport struct {
	Name string

	Config      *v1alpha1.ClusterConfig
	ConfigError string

	Registered        bool
	RegistrationError string

	Reachable         bool
	ReachabilityError string
	Nodes             readiness.NodeCount

	ContainerIP string

	ManifestsDirPresent bool
	ManifestCount       int
	ManifestsError      string
}

// ConfigLoaded reports whether cluster.env was loaded.
func (r ClusterReport) ConfigLoaded() bool {
	return r.Config != nil
}

// Reporter runs the status checks.
type Reporter struct {
	root      string
	registry  Registry
	client    kubectl.Interface
	inspector ContainerInspector
	executor  *parallel.Executor
}

// NewReporter creates a Reporter for clusters under root. A nil inspector skips the container IP lookup.
func NewReporter(
	root string,
	registry Registry,
	client kubectl.Interface,
	inspector ContainerInspector,
) *Reporter {
	return &Reporter{
		root:      root,
		registry:  registry,
		client:    client,
		inspector: inspector,
		executor:  parallel.NewExecutor(parallel.DefaultMaxConcurrency()),
	}
}

// ClusterNames lists the cluster directories under root, sorted. A missing root has no
// clusters and hidden directories are skipped.
func ClusterNames(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("read clusters root: %w", err)
	}

	var names []string

	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

// Report checks one cluster. Every check tolerates the absence of the others' dependencies.
func (r *Reporter) Report(ctx context.Context, name string) ClusterReport {
	layout := v1alpha1.NewLayout(r.root, name)
	report := ClusterReport{Name: name}

	cfg, err := configmanager.Load(r.root, name)
	if err != nil {
		report.ConfigError = err.Error()
	} else {
		report.Config = cfg
	}

	registered, err := r.registry.Exists(ctx, name)
	if err != nil {
		report.RegistrationError = err.Error()
	} else {
		report.Registered = registered
	}

	r.checkAPIServer(ctx, layout, &report)

	if report.Registered && r.inspector != nil {
		ip, err := r.inspector.ContainerIP(ctx, name+"-control-plane", docker.KindNetworkName)
		if err == nil {
			report.ContainerIP = ip
		}
	}

	present, err := fsutil.DirExists(layout.ManifestsDir())
	if err != nil {
		report.ManifestsError = err.Error()

		return report
	}

	report.ManifestsDirPresent = present

	files, err := applier.List(layout.ManifestsDir())
	if err != nil {
		report.ManifestsError = err.Error()
	} else {
		report.ManifestCount = len(files)
	}

	return report
}

func (r *Reporter) checkAPIServer(ctx context.Context, layout v1alpha1.Layout, report *ClusterReport) {
	exists, err := fsutil.FileExists(layout.Kubeconfig())
	if err != nil {
		report.ReachabilityError = err.Error()

		return
	}

	if !exists {
		report.ReachabilityError = "kubeconfig not found"

		return
	}

	target := k8s.Target{
		Kubeconfig: layout.Kubeconfig(),
		Context:    v1alpha1.KubeContextName(layout.Name),
		Timeout:    kubectl.ReachabilityTimeout,
	}

	err = r.client.Reachable(ctx, target)
	if err != nil {
		report.ReachabilityError = err.Error()

		return
	}

	report.Reachable = true

	nodes, err := r.client.Nodes(ctx, target)
	if err != nil {
		report.ReachabilityError = err.Error()

		return
	}

	report.Nodes = nodes
}

// ReportAll checks every cluster under the root concurrently. Reports are sorted by name.
func (r *Reporter) ReportAll(ctx context.Context) ([]ClusterReport, error) {
	names, err := ClusterNames(r.root)
	if err != nil {
		return nil, err
	}

	reports, err := parallel.Map(ctx, r.executor, names, r.Report)
	if err != nil {
		return nil, fmt.Errorf("check clusters: %w", err)
	}

	return reports, nil
}
