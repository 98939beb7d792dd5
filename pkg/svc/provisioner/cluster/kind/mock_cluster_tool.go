package kindprovisioner

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClusterTool is a mock implementation of the ClusterTool interface for testing.
type MockClusterTool struct {
	mock.Mock
}

var _ ClusterTool = (*MockClusterTool)(nil)

// NewMockClusterTool creates a new MockClusterTool instance.
func NewMockClusterTool() *MockClusterTool {
	return &MockClusterTool{}
}

// List mocks listing clusters.
func (m *MockClusterTool) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	clusters, _ := args.Get(0).([]string)

	return clusters, args.Error(1)
}

// Create mocks cluster creation.
func (m *MockClusterTool) Create(ctx context.Context, name, configPath string) error {
	args := m.Called(ctx, name, configPath)

	return args.Error(0) //nolint:wrapcheck // Mock function, wrapping not needed
}

// Delete mocks cluster deletion.
func (m *MockClusterTool) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)

	return args.Error(0) //nolint:wrapcheck // Mock function, wrapping not needed
}

// KubeConfig mocks kubeconfig export.
func (m *MockClusterTool) KubeConfig(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)

	return args.String(0), args.Error(1)
}
