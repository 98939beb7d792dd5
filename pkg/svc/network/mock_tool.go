package network

import (
	"context"
	"net/netip"

	"github.com/stretchr/testify/mock"
)

// MockTool is a mock implementation of the Tool interface for testing.
type MockTool struct {
	mock.Mock
}

var _ Tool = (*MockTool)(nil)

// NewMockTool creates a new MockTool instance.
func NewMockTool() *MockTool {
	return &MockTool{}
}

// InterfaceExists mocks the interface lookup.
func (m *MockTool) InterfaceExists(ctx context.Context, iface string) (bool, error) {
	args := m.Called(ctx, iface)

	return args.Bool(0), args.Error(1)
}

// AddAddress mocks binding an address.
func (m *MockTool) AddAddress(ctx context.Context, ip netip.Addr, iface string) error {
	args := m.Called(ctx, ip, iface)

	return args.Error(0) //nolint:wrapcheck // Mock function, wrapping not needed
}

// RemoveAddress mocks releasing an address.
func (m *MockTool) RemoveAddress(ctx context.Context, ip netip.Addr, iface string) error {
	args := m.Called(ctx, ip, iface)

	return args.Error(0) //nolint:wrapcheck // Mock function, wrapping not needed
}

// DefaultInterface mocks default route detection.
func (m *MockTool) DefaultInterface(ctx context.Context) (string, error) {
	args := m.Called(ctx)

	return args.String(0), args.Error(1)
}
