package kindgenerator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/devantler-tech/kindlab/pkg/apis/cluster/v1alpha1"
	"github.com/devantler-tech/kindlab/pkg/io/generator"
	kindgenerator "github.com/devantler-tech/kindlab/pkg/io/generator/kind"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/kind/pkg/apis/config/v1alpha4"
	"sigs.k8s.io/yaml"
)

func TestMain(m *testing.M) {
	exitCode := m.Run()

	_, err := snaps.Clean(m, snaps.CleanOpts{Sort: true})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to clean snapshots: " + err.Error() + "\n")

		os.Exit(1)
	}

	os.Exit(exitCode)
}

func demoConfig() *v1alpha1.ClusterConfig {
	return &v1alpha1.ClusterConfig{
		Name:      "demo",
		IP:        "10.0.0.5",
		Subnet:    "10.0.0.0/24",
		Gateway:   "10.0.0.1",
		Interface: "eth0",
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	cluster := kindgenerator.Build(demoConfig())

	assert.Equal(t, "demo", cluster.Name)
	assert.Equal(t, "10.0.0.5", cluster.Networking.APIServerAddress)
	assert.Equal(t, int32(6443), cluster.Networking.APIServerPort)
	require.Len(t, cluster.Nodes, 1)
	assert.Equal(t, v1alpha4.ControlPlaneRole, cluster.Nodes[0].Role)

	mappings := cluster.Nodes[0].ExtraPortMappings
	require.Len(t, mappings, 2)

	for i, port := range []int32{80, 443} {
		assert.Equal(t, port, mappings[i].ContainerPort)
		assert.Equal(t, port, mappings[i].HostPort)
		assert.Equal(t, "10.0.0.5", mappings[i].ListenAddress)
	}
}

func TestGenerate_WritesParsableConfig(t *testing.T) {
	t.Parallel()

	output := filepath.Join(t.TempDir(), "config", "kind-config.yaml")

	out, err := kindgenerator.NewKindGenerator().Generate(
		demoConfig(),
		generator.Options{Output: output, Force: true},
	)
	require.NoError(t, err)

	assert.Contains(t, out, "apiVersion: kind.x-k8s.io/v1alpha4")
	assert.Contains(t, out, "kind: Cluster")
	snaps.MatchSnapshot(t, out)

	data, err := os.ReadFile(output) //nolint:gosec // test temp path
	require.NoError(t, err)
	assert.Equal(t, out, string(data))

	var parsed v1alpha4.Cluster
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	assert.Equal(t, "demo", parsed.Name)
	require.Len(t, parsed.Nodes, 1)
	assert.Len(t, parsed.Nodes[0].ExtraPortMappings, 2)
}
