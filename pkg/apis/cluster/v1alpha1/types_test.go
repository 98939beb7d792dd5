package v1alpha1_test

import (
	"net/netip"
	"path/filepath"
	"testing"

	"github.com/devantler-tech/kindlab/pkg/apis/cluster/v1alpha1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config v1alpha1.ClusterConfig
		want   []string
	}{
		{
			name: "complete",
			config: v1alpha1.ClusterConfig{
				IP: "10.0.0.5", Subnet: "10.0.0.0/24", Gateway: "10.0.0.1", Interface: "eth0",
			},
			want: nil,
		},
		{
			name:   "empty",
			config: v1alpha1.ClusterConfig{},
			want: []string{
				v1alpha1.EnvClusterIP,
				v1alpha1.EnvClusterSubnet,
				v1alpha1.EnvClusterGateway,
				v1alpha1.EnvClusterInterface,
			},
		},
		{
			name:   "gateway only missing",
			config: v1alpha1.ClusterConfig{IP: "10.0.0.5", Subnet: "10.0.0.0/24", Interface: "eth0"},
			want:   []string{v1alpha1.EnvClusterGateway},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.config.MissingFields())
		})
	}
}

func TestKubeContext(t *testing.T) {
	t.Parallel()

	cfg := v1alpha1.ClusterConfig{Name: "demo"}

	assert.Equal(t, "kind-demo", cfg.KubeContext())
}

func TestLayoutPaths(t *testing.T) {
	t.Parallel()

	layout := v1alpha1.NewLayout("", "demo")

	assert.Equal(t, filepath.Join("clusters", "demo"), layout.Dir())
	assert.Equal(t, filepath.Join("clusters", "demo", "config", "cluster.env"), layout.EnvFile())
	assert.Equal(t, filepath.Join("clusters", "demo", "config", "kind-config.yaml"), layout.KindConfig())
	assert.Equal(t, filepath.Join("clusters", "demo", "config", "kubeconfig"), layout.Kubeconfig())
	assert.Equal(t, filepath.Join("clusters", "demo", "config", "metallb-config.yaml"), layout.MetalLBConfig())
	assert.Equal(t, filepath.Join("clusters", "demo", "manifests"), layout.ManifestsDir())
	assert.Equal(t, filepath.Join("clusters", "demo", "README.md"), layout.Readme())
}

func TestNewClusterConfigDefaults(t *testing.T) {
	t.Parallel()

	ip := netip.MustParseAddr("10.0.0.5")

	cfg := v1alpha1.NewClusterConfig("demo", ip, "", "", "")

	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, "10.0.0.5", cfg.IP)
	assert.Equal(t, "10.0.0.0/24", cfg.Subnet)
	assert.Equal(t, "10.0.0.1", cfg.Gateway)
	assert.Equal(t, v1alpha1.DefaultInterface, cfg.Interface)
}

func TestNewClusterConfigKeepsExplicitValues(t *testing.T) {
	t.Parallel()

	ip := netip.MustParseAddr("192.168.1.40")

	cfg := v1alpha1.NewClusterConfig("demo", ip, "192.168.0.0/16", "192.168.0.254", "wlan0")

	assert.Equal(t, "192.168.0.0/16", cfg.Subnet)
	assert.Equal(t, "192.168.0.254", cfg.Gateway)
	assert.Equal(t, "wlan0", cfg.Interface)
}

func TestDefaultPoolRange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "172.18.5.200-172.18.5.250", v1alpha1.DefaultPoolRange(netip.MustParseAddr("10.0.0.5")))
}

func TestParseIPv4(t *testing.T) {
	t.Parallel()

	addr, err := v1alpha1.ParseIPv4("10.0.0.5")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", addr.String())

	for _, invalid := range []string{"", "not-an-ip", "::1", "10.0.0"} {
		_, err := v1alpha1.ParseIPv4(invalid)
		require.ErrorIs(t, err, v1alpha1.ErrInvalidIP, invalid)
	}
}

func TestPoolRangeIn(t *testing.T) {
	t.Parallel()

	ip := netip.MustParseAddr("10.0.0.7")

	tests := []struct {
		name    string
		network netip.Prefix
		want    string
	}{
		{name: "custom kind network", network: netip.MustParsePrefix("172.19.0.0/16"), want: "172.19.7.200-172.19.7.250"},
		{name: "unmasked prefix", network: netip.MustParsePrefix("172.20.3.1/16"), want: "172.20.7.200-172.20.7.250"},
		{name: "too small falls back", network: netip.MustParsePrefix("192.168.5.0/24"), want: "172.18.7.200-172.18.7.250"},
		{name: "zero prefix falls back", network: netip.Prefix{}, want: "172.18.7.200-172.18.7.250"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, v1alpha1.PoolRangeIn(tc.network, ip))
		})
	}
}
