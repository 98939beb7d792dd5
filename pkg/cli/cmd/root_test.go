package cmd_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devantler-tech/kindlab/pkg/cli/cmd"
	"github.com/devantler-tech/kindlab/pkg/di"
	"github.com/devantler-tech/kindlab/pkg/fsutil"
	"github.com/devantler-tech/kindlab/pkg/svc/clustererr"
	"github.com/devantler-tech/kindlab/pkg/svc/network"
	kindprovisioner "github.com/devantler-tech/kindlab/pkg/svc/provisioner/cluster/kind"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const poolRange = "172.18.255.200-172.18.255.250"

// newTestRoot returns a root command whose host and kind access are mocked.
func newTestRoot(t *testing.T, clusters []string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	clusterTool := kindprovisioner.NewMockClusterTool()
	clusterTool.On("List", mock.Anything).Return(clusters, nil).Maybe()

	runtime := di.NewRuntime().With(func(i di.Injector) error {
		do.OverrideValue[kindprovisioner.ClusterTool](i, clusterTool)
		do.OverrideValue[network.Tool](i, network.NewMockTool())

		return nil
	})

	var out bytes.Buffer

	root := cmd.NewRootCmdWithRuntime("1.2.3", "abc123", "2026-01-02", runtime)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(""))

	return root, &out
}

func execute(t *testing.T, root *cobra.Command, args ...string) error {
	t.Helper()

	root.SetArgs(args)

	return cmd.Execute(context.Background(), root)
}

func TestNewRootCmdVersionFormatting(t *testing.T) {
	t.Parallel()

	root := cmd.NewRootCmd("1.2.3", "abc123", "2025-08-17")

	assert.Equal(t, "1.2.3 (Built on 2025-08-17 from Git SHA abc123)", root.Version)
}

func TestExecuteShowsHelp(t *testing.T) {
	t.Parallel()

	root, out := newTestRoot(t, nil)

	require.NoError(t, execute(t, root))

	for _, sub := range []string{"init", "create", "delete", "status", "list"} {
		assert.Contains(t, out.String(), sub)
	}

	assert.Contains(t, out.String(), "--non-interactive")
}

func TestExecuteShowsVersion(t *testing.T) {
	t.Parallel()

	root, out := newTestRoot(t, nil)

	require.NoError(t, execute(t, root, "--version"))
	assert.Contains(t, out.String(), "1.2.3 (Built on 2026-01-02 from Git SHA abc123)")
}

func TestExecuteUnknownCommand(t *testing.T) {
	t.Parallel()

	root, out := newTestRoot(t, nil)

	err := execute(t, root, "frobnicate")

	require.ErrorIs(t, err, clustererr.ErrUnknownCommand)
	assert.Contains(t, out.String(), "Usage:")
}

func TestExecuteMissingArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "init without ip", args: []string{"init", "demo"}},
		{name: "init without name", args: []string{"init"}},
		{name: "create without name", args: []string{"create"}},
		{name: "delete without name", args: []string{"delete"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			root, _ := newTestRoot(t, nil)

			err := execute(t, root, append(tc.args, "--root", t.TempDir())...)

			require.ErrorIs(t, err, clustererr.ErrMissingArgument)
		})
	}
}

func TestExecuteRejectsInvalidMetalLBVersion(t *testing.T) {
	t.Parallel()

	root, _ := newTestRoot(t, nil)

	err := execute(t, root, "list", "--root", t.TempDir(), "--metallb-version", "latest")

	require.ErrorIs(t, err, clustererr.ErrInvalidConfig)
}

func TestExecuteInitThenList(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	initCmd, initOut := newTestRoot(t, nil)

	err := execute(t, initCmd, "init", "demo", "10.0.0.5",
		"--root", root, "--interface", "eth0", "--pool-range", poolRange)
	require.NoError(t, err)
	assert.Contains(t, initOut.String(), "initialized cluster demo with ip 10.0.0.5 on eth0")

	exists, err := fsutil.FileExists(filepath.Join(root, "demo", "config", "metallb-config.yaml"))
	require.NoError(t, err)
	assert.True(t, exists)

	listCmd, listOut := newTestRoot(t, []string{"demo"})

	require.NoError(t, execute(t, listCmd, "list", "--root", root))

	lines := strings.Split(strings.TrimSpace(listOut.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"NAME", "IP", "INTERFACE", "STATE"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"demo", "10.0.0.5", "eth0", "running"}, strings.Fields(lines[1]))
}

func TestExecuteInitInvalidIPWritesNothing(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "clusters")

	rootCmd, _ := newTestRoot(t, nil)

	err := execute(t, rootCmd, "init", "demo", "10.0.0.300",
		"--root", root, "--interface", "eth0", "--pool-range", poolRange)

	require.ErrorIs(t, err, clustererr.ErrInvalidConfig)

	exists, err := fsutil.DirExists(root)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExecuteListWithoutClusters(t *testing.T) {
	t.Parallel()

	rootCmd, out := newTestRoot(t, nil)

	require.NoError(t, execute(t, rootCmd, "list", "--root", filepath.Join(t.TempDir(), "missing")))
	assert.Contains(t, out.String(), "no clusters found")
}
