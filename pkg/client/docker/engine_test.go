package docker_test

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/devantler-tech/kindlab/pkg/client/docker"
	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errDaemonDown = errors.New("Cannot connect to the Docker daemon")

// mockAPIClient overrides the API calls the engine makes.
type mockAPIClient struct {
	client.APIClient
	mock.Mock
}

func (m *mockAPIClient) Ping(ctx context.Context) (types.Ping, error) {
	args := m.Called(ctx)

	return args.Get(0).(types.Ping), args.Error(1)
}

func (m *mockAPIClient) NetworkInspect(
	ctx context.Context,
	name string,
	options network.InspectOptions,
) (network.Inspect, error) {
	args := m.Called(ctx, name, options)

	return args.Get(0).(network.Inspect), args.Error(1)
}

func (m *mockAPIClient) ContainerInspect(
	ctx context.Context,
	name string,
) (container.InspectResponse, error) {
	args := m.Called(ctx, name)

	return args.Get(0).(container.InspectResponse), args.Error(1)
}

func (m *mockAPIClient) Close() error {
	return m.Called().Error(0)
}

func newEngine(t *testing.T, apiClient *mockAPIClient) *docker.Engine {
	t.Helper()

	engine, err := docker.NewEngine(apiClient)
	require.NoError(t, err)

	return engine
}

func TestNewEngine_NilClient(t *testing.T) {
	t.Parallel()

	_, err := docker.NewEngine(nil)

	require.ErrorIs(t, err, docker.ErrAPIClientNil)
}

func TestGetDockerClient_InvalidEnv(t *testing.T) {
	t.Setenv("DOCKER_HOST", "://")
	t.Setenv("DOCKER_TLS_VERIFY", "")
	t.Setenv("DOCKER_CERT_PATH", "")

	apiClient, err := docker.GetDockerClient()

	require.Error(t, err)
	assert.Nil(t, apiClient)
}

func TestEngine_Ping(t *testing.T) {
	t.Parallel()

	apiClient := &mockAPIClient{}
	apiClient.On("Ping", mock.Anything).Return(types.Ping{}, nil).Once()
	apiClient.On("Ping", mock.Anything).Return(types.Ping{}, errDaemonDown).Once()

	engine := newEngine(t, apiClient)

	require.NoError(t, engine.Ping(context.Background()))
	require.ErrorIs(t, engine.Ping(context.Background()), errDaemonDown)
	apiClient.AssertExpectations(t)
}

func TestEngine_NetworkSubnet(t *testing.T) {
	t.Parallel()

	apiClient := &mockAPIClient{}
	apiClient.On("NetworkInspect", mock.Anything, docker.KindNetworkName, mock.Anything).
		Return(network.Inspect{
			IPAM: network.IPAM{Config: []network.IPAMConfig{
				{Subnet: "fc00:f853:ccd:e793::/64"},
				{Subnet: "172.19.0.0/16"},
			}},
		}, nil)

	subnet, err := newEngine(t, apiClient).NetworkSubnet(context.Background(), docker.KindNetworkName)

	require.NoError(t, err)
	assert.Equal(t, netip.MustParsePrefix("172.19.0.0/16"), subnet)
}

func TestEngine_NetworkSubnet_NoIPv4(t *testing.T) {
	t.Parallel()

	apiClient := &mockAPIClient{}
	apiClient.On("NetworkInspect", mock.Anything, "kind", mock.Anything).
		Return(network.Inspect{}, nil)

	_, err := newEngine(t, apiClient).NetworkSubnet(context.Background(), "kind")

	require.ErrorIs(t, err, docker.ErrNoIPv4Subnet)
}

func TestEngine_ContainerIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		response container.InspectResponse
		want     string
		wantErr  error
	}{
		{
			name: "connected",
			response: container.InspectResponse{
				NetworkSettings: &container.NetworkSettings{
					Networks: map[string]*network.EndpointSettings{
						"kind": {IPAddress: "172.18.0.2"},
					},
				},
			},
			want: "172.18.0.2",
		},
		{
			name:     "no network settings",
			response: container.InspectResponse{},
			wantErr:  docker.ErrNoNetworkSettings,
		},
		{
			name: "other network",
			response: container.InspectResponse{
				NetworkSettings: &container.NetworkSettings{
					Networks: map[string]*network.EndpointSettings{
						"bridge": {IPAddress: "172.17.0.2"},
					},
				},
			},
			wantErr: docker.ErrNotConnectedToNetwork,
		},
		{
			name: "no address",
			response: container.InspectResponse{
				NetworkSettings: &container.NetworkSettings{
					Networks: map[string]*network.EndpointSettings{"kind": {}},
				},
			},
			wantErr: docker.ErrNoIPAddress,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			apiClient := &mockAPIClient{}
			apiClient.On("ContainerInspect", mock.Anything, "demo-control-plane").
				Return(tc.response, nil)

			got, err := newEngine(t, apiClient).ContainerIP(
				context.Background(), "demo-control-plane", "kind",
			)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEngine_NotFound(t *testing.T) {
	t.Parallel()

	apiClient := &mockAPIClient{}
	apiClient.On("NetworkInspect", mock.Anything, "kind", mock.Anything).
		Return(network.Inspect{}, fmt.Errorf("network kind: %w", cerrdefs.ErrNotFound))
	apiClient.On("ContainerInspect", mock.Anything, "demo-control-plane").
		Return(container.InspectResponse{}, fmt.Errorf("no such container: %w", cerrdefs.ErrNotFound))

	engine := newEngine(t, apiClient)

	_, err := engine.NetworkSubnet(context.Background(), "kind")
	require.ErrorIs(t, err, docker.ErrNetworkNotFound)

	_, err = engine.ContainerIP(context.Background(), "demo-control-plane", "kind")
	require.ErrorIs(t, err, docker.ErrContainerNotFound)
}
