//go:build linux

package network

import (
	"context"
	"errors"
	"fmt"
	"net/netip"

	"github.com/vishvananda/netlink"
)

// ErrNoDefaultRoute is returned when the host has no IPv4 default route.
var ErrNoDefaultRoute = errors.New("no IPv4 default route")

// NetlinkTool implements Tool with rtnetlink. Address changes need CAP_NET_ADMIN.
type NetlinkTool struct{}

var _ Tool = (*NetlinkTool)(nil)

// NewNetlinkTool creates a NetlinkTool.
func NewNetlinkTool() *NetlinkTool {
	return &NetlinkTool{}
}

// InterfaceExists implements Tool.
func (t *NetlinkTool) InterfaceExists(_ context.Context, iface string) (bool, error) {
	_, err := netlink.LinkByName(iface)
	if err == nil {
		return true, nil
	}

	var notFound netlink.LinkNotFoundError
	if errors.As(err, &notFound) {
		return false, nil
	}

	return false, fmt.Errorf("lookup interface %s: %w", iface, err)
}

// AddAddress implements Tool.
func (t *NetlinkTool) AddAddress(_ context.Context, ip netip.Addr, iface string) error {
	link, addr, err := resolve(ip, iface)
	if err != nil {
		return err
	}

	err = netlink.AddrAdd(link, addr)
	if err != nil {
		return fmt.Errorf("add %s to %s: %w", addr.IPNet, iface, err)
	}

	return nil
}

// RemoveAddress implements Tool.
func (t *NetlinkTool) RemoveAddress(_ context.Context, ip netip.Addr, iface string) error {
	link, addr, err := resolve(ip, iface)
	if err != nil {
		return err
	}

	err = netlink.AddrDel(link, addr)
	if err != nil {
		return fmt.Errorf("remove %s from %s: %w", addr.IPNet, iface, err)
	}

	return nil
}

// DefaultInterface implements Tool.
func (t *NetlinkTool) DefaultInterface(_ context.Context) (string, error) {
	routes, err := netlink.RouteList(nil, netlink.FAMILY_V4)
	if err != nil {
		return "", fmt.Errorf("list routes: %w", err)
	}

	for _, route := range routes {
		if route.Dst != nil {
			if ones, _ := route.Dst.Mask.Size(); ones != 0 {
				continue
			}
		}

		link, err := netlink.LinkByIndex(route.LinkIndex)
		if err != nil {
			return "", fmt.Errorf("lookup default route link: %w", err)
		}

		return link.Attrs().Name, nil
	}

	return "", ErrNoDefaultRoute
}

func resolve(ip netip.Addr, iface string) (netlink.Link, *netlink.Addr, error) {
	link, err := netlink.LinkByName(iface)
	if err != nil {
		return nil, nil, fmt.Errorf("lookup interface %s: %w", iface, err)
	}

	addr, err := netlink.ParseAddr(HostPrefix(ip))
	if err != nil {
		return nil, nil, fmt.Errorf("parse address %s: %w", ip, err)
	}

	return link, addr, nil
}
