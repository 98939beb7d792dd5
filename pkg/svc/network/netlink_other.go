//go:build !linux

package network

import (
	"context"
	"net/netip"
)

// NetlinkTool reports ErrUnsupportedPlatform from every call.
type NetlinkTool struct{}

var _ Tool = (*NetlinkTool)(nil)

// NewNetlinkTool creates a NetlinkTool.
func NewNetlinkTool() *NetlinkTool {
	return &NetlinkTool{}
}

// InterfaceExists implements Tool.
func (t *NetlinkTool) InterfaceExists(context.Context, string) (bool, error) {
	return false, ErrUnsupportedPlatform
}

// AddAddress implements Tool.
func (t *NetlinkTool) AddAddress(context.Context, netip.Addr, string) error {
	return ErrUnsupportedPlatform
}

// RemoveAddress implements Tool.
func (t *NetlinkTool) RemoveAddress(context.Context, netip.Addr, string) error {
	return ErrUnsupportedPlatform
}

// DefaultInterface implements Tool.
func (t *NetlinkTool) DefaultInterface(context.Context) (string, error) {
	return "", ErrUnsupportedPlatform
}
