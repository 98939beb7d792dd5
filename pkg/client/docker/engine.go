// Package docker wraps the docker engine API for the checks kindlab makes
// against the daemon that hosts kind nodes.
package docker

import (
	"context"
	"errors"
	"fmt"

	"github.com/docker/docker/client"
)

// KindNetworkName is the docker network kind attaches cluster nodes to.
const KindNetworkName = "kind"

// ErrAPIClientNil is returned when apiClient is nil.
var ErrAPIClientNil = errors.New("apiClient cannot be nil")

// Engine answers questions about the docker daemon.
type Engine struct {
	client client.APIClient
}

// NewEngine wraps an existing API client.
func NewEngine(apiClient client.APIClient) (*Engine, error) {
	if apiClient == nil {
		return nil, ErrAPIClientNil
	}

	return &Engine{client: apiClient}, nil
}

// GetDockerClient creates a docker client from DOCKER_HOST and friends.
func GetDockerClient() (client.APIClient, error) {
	dockerClient, err := client.NewClientWithOpts(
		client.FromEnv,
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return dockerClient, nil
}

// NewEngineFromEnv creates an Engine backed by a client configured from the environment.
// Callers must Close it.
func NewEngineFromEnv() (*Engine, error) {
	apiClient, err := GetDockerClient()
	if err != nil {
		return nil, err
	}

	return NewEngine(apiClient)
}

// Ping checks that the daemon answers.
func (e *Engine) Ping(ctx context.Context) error {
	_, err := e.client.Ping(ctx)
	if err != nil {
		return fmt.Errorf("ping docker daemon: %w", err)
	}

	return nil
}

// Close releases the underlying client.
func (e *Engine) Close() error {
	err := e.client.Close()
	if err != nil {
		return fmt.Errorf("close docker client: %w", err)
	}

	return nil
}

// Shutdown closes the engine when its DI scope ends.
func (e *Engine) Shutdown() error {
	return e.Close()
}
