package docker

import (
	"context"
	"errors"
	"fmt"
	"net/netip"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/network"
)

// Errors for network and container address lookups.
var (
	// ErrNetworkNotFound is returned when the daemon does not know the network.
	ErrNetworkNotFound = errors.New("docker network not found")
	// ErrContainerNotFound is returned when the daemon does not know the container.
	ErrContainerNotFound = errors.New("container not found")
	// ErrNoIPv4Subnet is returned when a network has no IPv4 IPAM subnet.
	ErrNoIPv4Subnet = errors.New("network has no IPv4 subnet")
	// ErrNoNetworkSettings is returned when a container has no network configuration.
	ErrNoNetworkSettings = errors.New("container has no network settings")
	// ErrNotConnectedToNetwork is returned when a container is not attached to the network.
	ErrNotConnectedToNetwork = errors.New("container is not connected to network")
	// ErrNoIPAddress is returned when a container has no IP address on the network.
	ErrNoIPAddress = errors.New("container has no IP address on network")
)

// NetworkSubnet returns the first IPv4 subnet of the named docker network.
func (e *Engine) NetworkSubnet(ctx context.Context, name string) (netip.Prefix, error) {
	inspect, err := e.client.NetworkInspect(ctx, name, network.InspectOptions{})
	if cerrdefs.IsNotFound(err) {
		return netip.Prefix{}, fmt.Errorf("%w: %s", ErrNetworkNotFound, name)
	}

	if err != nil {
		return netip.Prefix{}, fmt.Errorf("inspect network %s: %w", name, err)
	}

	for _, cfg := range inspect.IPAM.Config {
		prefix, parseErr := netip.ParsePrefix(cfg.Subnet)
		if parseErr == nil && prefix.Addr().Is4() {
			return prefix.Masked(), nil
		}
	}

	return netip.Prefix{}, fmt.Errorf("%w: %s", ErrNoIPv4Subnet, name)
}

// ContainerIP returns the address of a container on the named network.
func (e *Engine) ContainerIP(ctx context.Context, containerName, networkName string) (string, error) {
	inspect, err := e.client.ContainerInspect(ctx, containerName)
	if cerrdefs.IsNotFound(err) {
		return "", fmt.Errorf("%w: %s", ErrContainerNotFound, containerName)
	}

	if err != nil {
		return "", fmt.Errorf("inspect container %s: %w", containerName, err)
	}

	if inspect.NetworkSettings == nil || inspect.NetworkSettings.Networks == nil {
		return "", fmt.Errorf("%w: %s", ErrNoNetworkSettings, containerName)
	}

	endpoint, ok := inspect.NetworkSettings.Networks[networkName]
	if !ok || endpoint == nil {
		return "", fmt.Errorf(
			"%w: container %s, network %s", ErrNotConnectedToNetwork, containerName, networkName,
		)
	}

	if endpoint.IPAddress == "" {
		return "", fmt.Errorf(
			"%w: container %s, network %s", ErrNoIPAddress, containerName, networkName,
		)
	}

	return endpoint.IPAddress, nil
}
