package v1alpha1

import (
	"fmt"
	"net/netip"
)

const (
	// DefaultInterface is used when the host default route cannot be detected.
	DefaultInterface = "eth0"

	poolFirstHost = 200
	poolLastHost  = 250
)

// DefaultKindNetwork is the subnet docker usually assigns to the kind network.
var DefaultKindNetwork = netip.MustParsePrefix("172.18.0.0/16") //nolint:gochecknoglobals // constant value

// DefaultSubnet returns the /24 network containing ip.
func DefaultSubnet(ip netip.Addr) string {
	prefix, _ := ip.Prefix(24) //nolint:mnd

	return prefix.String()
}

// DefaultGateway returns the first host address of the /24 network containing ip.
func DefaultGateway(ip netip.Addr) string {
	prefix, _ := ip.Prefix(24) //nolint:mnd

	return prefix.Addr().Next().String()
}

// DefaultPoolRange returns the MetalLB address range for a cluster inside DefaultKindNetwork.
func DefaultPoolRange(ip netip.Addr) string {
	return PoolRangeIn(DefaultKindNetwork, ip)
}

// PoolRangeIn returns <a>.<b>.<n>.200-<a>.<b>.<n>.250 where a.b are the first two
// octets of network and n is the last octet of the cluster IP, so clusters
// sharing the kind network do not hand out the same addresses. Networks smaller
// than a /16 fall back to DefaultKindNetwork.
func PoolRangeIn(network netip.Prefix, ip netip.Addr) string {
	if !network.Addr().Is4() || network.Bits() > 16 { //nolint:mnd
		network = DefaultKindNetwork
	}

	base := network.Masked().Addr().As4()
	last := ip.As4()[3]

	return fmt.Sprintf("%d.%d.%d.%d-%d.%d.%d.%d",
		base[0], base[1], last, poolFirstHost,
		base[0], base[1], last, poolLastHost,
	)
}

// NewClusterConfig builds a config for name and ip, filling empty network fields with defaults.
func NewClusterConfig(name string, ip netip.Addr, subnet, gateway, iface string) *ClusterConfig {
	if subnet == "" {
		subnet = DefaultSubnet(ip)
	}

	if gateway == "" {
		gateway = DefaultGateway(ip)
	}

	if iface == "" {
		iface = DefaultInterface
	}

	return &ClusterConfig{
		Name:      name,
		IP:        ip.String(),
		Subnet:    subnet,
		Gateway:   gateway,
		Interface: iface,
	}
}
