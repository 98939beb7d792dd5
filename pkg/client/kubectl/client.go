// Package kubectl talks to the API server of one cluster the way the kubectl
// binary would: server-side apply, pod readiness waits and node listing.
package kubectl

import (
	"context"
	"fmt"
	"time"

	"github.com/devantler-tech/kindlab/pkg/k8s"
	"github.com/devantler-tech/kindlab/pkg/k8s/readiness"
	"k8s.io/client-go/kubernetes"
)

// ReachabilityTimeout bounds the API server query used by Reachable.
const ReachabilityTimeout = 5 * time.Second

// Interface is the API client capability used by the installer, the manifest
// applier and the status reporter. Every call addresses target explicitly.
type Interface interface {
	// Apply server-side applies every object in data and returns how many were applied.
	Apply(ctx context.Context, target k8s.Target, data []byte) (int, error)
	// WaitForPodsReady blocks until every pod in namespace is Ready or timeout passes.
	WaitForPodsReady(ctx context.Context, target k8s.Target, namespace string, timeout time.Duration) error
	// Reachable returns nil when the API server answers a version query.
	Reachable(ctx context.Context, target k8s.Target) error
	// Nodes counts the cluster nodes.
	Nodes(ctx context.Context, target k8s.Target) (readiness.NodeCount, error)
}

// ClientsetFactory builds a typed clientset for a target.
type ClientsetFactory func(target k8s.Target) (kubernetes.Interface, error)

// ApplierFactory builds a manifest applier for a target.
type ApplierFactory func(target k8s.Target) (*k8s.Applier, error)

// Client implements Interface with client-go. Clients are built per call and
// never cached, so every query reflects the cluster as it is now.
type Client struct {
	newClientset ClientsetFactory
	newApplier   ApplierFactory
}

var _ Interface = (*Client)(nil)

// NewClient returns a Client backed by real client-go clients.
func NewClient() *Client {
	return NewClientWithFactories(
		func(target k8s.Target) (kubernetes.Interface, error) {
			return k8s.NewClientset(target)
		},
		k8s.NewApplierForTarget,
	)
}

// NewClientWithFactories returns a Client using the given factories.
func NewClientWithFactories(clientsets ClientsetFactory, appliers ApplierFactory) *Client {
	return &Client{newClientset: clientsets, newApplier: appliers}
}

// Apply implements Interface.
func (c *Client) Apply(ctx context.Context, target k8s.Target, data []byte) (int, error) {
	applier, err := c.newApplier(target)
	if err != nil {
		return 0, err
	}

	count, err := applier.Apply(ctx, data)
	if err != nil {
		return count, fmt.Errorf("apply manifests: %w", err)
	}

	return count, nil
}

// WaitForPodsReady implements Interface.
func (c *Client) WaitForPodsReady(
	ctx context.Context,
	target k8s.Target,
	namespace string,
	timeout time.Duration,
) error {
	clientset, err := c.newClientset(target)
	if err != nil {
		return err
	}

	err = readiness.WaitForPodsReady(ctx, clientset, namespace, timeout)
	if err != nil {
		return fmt.Errorf("wait for pods in %s: %w", namespace, err)
	}

	return nil
}

// Reachable implements Interface.
func (c *Client) Reachable(ctx context.Context, target k8s.Target) error {
	if target.Timeout == 0 {
		target.Timeout = ReachabilityTimeout
	}

	clientset, err := c.newClientset(target)
	if err != nil {
		return err
	}

	err = readiness.WaitForAPIServerReady(ctx, clientset, target.Timeout)
	if err != nil {
		return fmt.Errorf("api server: %w", err)
	}

	return nil
}

// Nodes implements Interface.
func (c *Client) Nodes(ctx context.Context, target k8s.Target) (readiness.NodeCount, error) {
	clientset, err := c.newClientset(target)
	if err != nil {
		return readiness.NodeCount{}, err
	}

	return readiness.CountNodes(ctx, clientset)
}
