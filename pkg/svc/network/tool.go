package network

import (
	"context"
	"errors"
	"net/netip"
)

// ErrUnsupportedPlatform is returned by the netlink tool on platforms without netlink.
var ErrUnsupportedPlatform = errors.New("host networking is only supported on linux")

// Tool is the host networking capability.
type Tool interface {
	// InterfaceExists reports whether a link with the given name exists.
	InterfaceExists(ctx context.Context, iface string) (bool, error)
	// AddAddress binds ip/32 to iface.
	AddAddress(ctx context.Context, ip netip.Addr, iface string) error
	// RemoveAddress releases ip/32 from iface.
	RemoveAddress(ctx context.Context, ip netip.Addr, iface string) error
	// DefaultInterface returns the interface of the IPv4 default route.
	DefaultInterface(ctx context.Context) (string, error)
}
