package orchestrator

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/devantler-tech/kindlab/pkg/cmd/parallel"
	"github.com/devantler-tech/kindlab/pkg/io/configmanager"
	"github.com/devantler-tech/kindlab/pkg/svc/status"
	"github.com/devantler-tech/kindlab/pkg/utils/notify"
)

// Cluster states shown by List.
const (
	StateRunning       = "running"
	StateAbsent        = "absent"
	StateUnknown       = "unknown"
	StateInvalidConfig = "invalid config"
)

// ListEntry is one line of List.
type ListEntry struct {
	Name      string
	IP        string
	Interface string
	State     string
}

// Status prints the report of cluster name, or of every cluster when name is empty.
func (o *Orchestrator) Status(ctx context.Context, name string) ([]status.ClusterReport, error) {
	var reports []status.ClusterReport

	if name != "" {
		reports = []status.ClusterReport{o.Reporter.Report(ctx, name)}
	} else {
		all, err := o.Reporter.ReportAll(ctx)
		if err != nil {
			return nil, err
		}

		reports = all
	}

	status.Render(o.Writer, reports)

	return reports, nil
}

// List prints one line per cluster directory. A cluster that cannot be
// inspected is listed with state unknown or invalid config.
func (o *Orchestrator) List(ctx context.Context) ([]ListEntry, error) {
	names, err := status.ClusterNames(o.Root)
	if err != nil {
		return nil, err
	}

	entries, err := parallel.Map(ctx, o.executor, names, o.listEntry)
	if err != nil {
		return nil, fmt.Errorf("list clusters: %w", err)
	}

	if len(entries) == 0 {
		notify.Infof(o.Writer, "no clusters found in %s", o.Root)

		return entries, nil
	}

	table := tabwriter.NewWriter(o.Writer, 0, 0, 2, ' ', 0) //nolint:mnd
	_, _ = fmt.Fprintln(table, "NAME\tIP\tINTERFACE\tSTATE")

	for _, entry := range entries {
		_, _ = fmt.Fprintf(table, "%s\t%s\t%s\t%s\n", entry.Name, entry.IP, entry.Interface, entry.State)
	}

	_ = table.Flush()

	return entries, nil
}

func (o *Orchestrator) listEntry(ctx context.Context, name string) ListEntry {
	entry := ListEntry{Name: name, IP: "-", Interface: "-"}

	cfg, err := configmanager.Load(o.Root, name)
	if err != nil {
		o.log(name).WithError(err).Debug("configuration not loadable")

		entry.State = StateInvalidConfig

		return entry
	}

	entry.IP = cfg.IP
	entry.Interface = cfg.Interface

	exists, err := o.Provisioner.Exists(ctx, name)

	switch {
	case err != nil:
		o.log(name).WithError(err).Debug("registration unknown")

		entry.State = StateUnknown
	case exists:
		entry.State = StateRunning
	default:
		entry.State = StateAbsent
	}

	return entry
}
