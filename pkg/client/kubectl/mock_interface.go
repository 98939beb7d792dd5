package kubectl

import (
	"context"
	"time"

	"github.com/devantler-tech/kindlab/pkg/k8s"
	"github.com/devantler-tech/kindlab/pkg/k8s/readiness"
	"github.com/stretchr/testify/mock"
)

// MockInterface is a mock implementation of Interface for testing.
type MockInterface struct {
	mock.Mock
}

var _ Interface = (*MockInterface)(nil)

// NewMockInterface creates a MockInterface that asserts its expectations when the test ends.
func NewMockInterface(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockInterface {
	m := &MockInterface{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Apply mocks a server-side apply.
func (m *MockInterface) Apply(ctx context.Context, target k8s.Target, data []byte) (int, error) {
	args := m.Called(ctx, target, data)

	return args.Int(0), args.Error(1)
}

// WaitForPodsReady mocks waiting for pods.
func (m *MockInterface) WaitForPodsReady(
	ctx context.Context,
	target k8s.Target,
	namespace string,
	timeout time.Duration,
) error {
	args := m.Called(ctx, target, namespace, timeout)

	return args.Error(0) //nolint:wrapcheck // Mock function, wrapping not needed
}

// Reachable mocks the reachability probe.
func (m *MockInterface) Reachable(ctx context.Context, target k8s.Target) error {
	args := m.Called(ctx, target)

	return args.Error(0) //nolint:wrapcheck // Mock function, wrapping not needed
}

// Nodes mocks node counting.
func (m *MockInterface) Nodes(ctx context.Context, target k8s.Target) (readiness.NodeCount, error) {
	args := m.Called(ctx, target)

	count, _ := args.Get(0).(readiness.NodeCount)

	return count, args.Error(1)
}
