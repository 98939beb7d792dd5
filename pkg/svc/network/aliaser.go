package network

import (
	"context"
	"fmt"
	"io"
	"net/netip"

	"github.com/devantler-tech/kindlab/pkg/apis/cluster/v1alpha1"
	"github.com/devantler-tech/kindlab/pkg/svc/clustererr"
	"github.com/devantler-tech/kindlab/pkg/utils/notify"
)

// HostPrefix renders ip as a single-host prefix, for example "10.0.0.5/32".
func HostPrefix(ip netip.Addr) string {
	return netip.PrefixFrom(ip, ip.BitLen()).String()
}

// Aliaser adds and removes the IP alias of a cluster.
type Aliaser struct {
	tool   Tool
	writer io.Writer
}

// NewAliaser creates an Aliaser reporting warnings to writer.
func NewAliaser(tool Tool, writer io.Writer) *Aliaser {
	return &Aliaser{tool: tool, writer: writer}
}

// Add binds the cluster IP to its interface.
//
// A missing interface is fatal and returns ErrInterfaceNotFound. A failed bind,
// most often because the address is already present, is reported as a warning.
func (a *Aliaser) Add(ctx context.Context, cfg *v1alpha1.ClusterConfig) error {
	ip, err := v1alpha1.ParseIPv4(cfg.IP)
	if err != nil {
		return fmt.Errorf("%w: %w", clustererr.ErrInvalidConfig, err)
	}

	exists, err := a.tool.InterfaceExists(ctx, cfg.Interface)
	if err != nil {
		return fmt.Errorf("check interface %s: %w", cfg.Interface, err)
	}

	if !exists {
		return fmt.Errorf("%w: %s", clustererr.ErrInterfaceNotFound, cfg.Interface)
	}

	err = a.tool.AddAddress(ctx, ip, cfg.Interface)
	if err != nil {
		a.warn("could not add %s to %s (it may already be present): %v",
			HostPrefix(ip), cfg.Interface, err)

		return nil
	}

	notify.Successf(a.writer, "bound %s to %s", HostPrefix(ip), cfg.Interface)

	return nil
}

// Remove releases the cluster IP. Every failure is reported as a warning.
func (a *Aliaser) Remove(ctx context.Context, cfg *v1alpha1.ClusterConfig) {
	ip, err := v1alpha1.ParseIPv4(cfg.IP)
	if err != nil {
		a.warn("%v", err)

		return
	}

	err = a.tool.RemoveAddress(ctx, ip, cfg.Interface)
	if err != nil {
		a.warn("could not remove %s from %s (it may already be gone): %v",
			HostPrefix(ip), cfg.Interface, err)

		return
	}

	notify.Successf(a.writer, "released %s from %s", HostPrefix(ip), cfg.Interface)
}

// DetectInterface returns the default-route interface, or DefaultInterface when
// it cannot be detected.
func (a *Aliaser) DetectInterface(ctx context.Context) string {
	iface, err := a.tool.DefaultInterface(ctx)
	if err != nil || iface == "" {
		return v1alpha1.DefaultInterface
	}

	return iface
}

func (a *Aliaser) warn(format string, args ...any) {
	notify.Warningf(a.writer, "%s: %s", clustererr.ErrBestEffortFailure, fmt.Sprintf(format, args...))
}
