package kindprovisioner_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/devantler-tech/kindlab/pkg/cmd/runner"
	kindprovisioner "github.com/devantler-tech/kindlab/pkg/svc/provisioner/cluster/kind"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	kindcmd "sigs.k8s.io/kind/pkg/cmd"
)

var errKindFailed = errors.New("kind failed")

type mockCommandRunner struct {
	mock.Mock
}

func (m *mockCommandRunner) Run(
	_ context.Context,
	cmd *cobra.Command,
	args []string,
) (runner.CommandResult, error) {
	callArgs := m.Called(cmd.Name(), args)

	result, _ := callArgs.Get(0).(runner.CommandResult)

	return result, callArgs.Error(1) //nolint:wrapcheck // Mock function, wrapping not needed
}

type fakeProvider struct {
	clusters   []string
	kubeconfig string
	err        error
}

func (f fakeProvider) List() ([]string, error) { return f.clusters, f.err }

func (f fakeProvider) KubeConfig(string, bool) (string, error) { return f.kubeconfig, f.err }

func newKindTool(provider kindprovisioner.KindProvider, commandRunner runner.CommandRunner) *kindprovisioner.KindTool {
	logger := kindprovisioner.NewLogger(&bytes.Buffer{}, nil)

	return kindprovisioner.NewKindToolWithDeps(provider, commandRunner, logger, kindcmd.IOStreams{})
}

func TestKindTool_Create(t *testing.T) {
	t.Parallel()

	commandRunner := &mockCommandRunner{}
	commandRunner.On("Run", "cluster", []string{"--name", "demo", "--config", "/tmp/kind.yaml"}).
		Return(runner.CommandResult{}, nil).Once()

	err := newKindTool(fakeProvider{}, commandRunner).Create(t.Context(), "demo", "/tmp/kind.yaml")

	require.NoError(t, err)
	commandRunner.AssertExpectations(t)
}

func TestKindTool_CreateFailureKeepsLastLine(t *testing.T) {
	t.Parallel()

	commandRunner := &mockCommandRunner{}
	commandRunner.On("Run", "cluster", mock.Anything).
		Return(runner.CommandResult{Stderr: "Creating cluster\nport is already allocated\n"}, errKindFailed)

	err := newKindTool(fakeProvider{}, commandRunner).Create(t.Context(), "demo", "/tmp/kind.yaml")

	require.ErrorIs(t, err, errKindFailed)
	assert.Contains(t, err.Error(), "port is already allocated")
}

func TestKindTool_Delete(t *testing.T) {
	t.Parallel()

	commandRunner := &mockCommandRunner{}
	commandRunner.On("Run", "cluster", []string{"--name", "demo"}).
		Return(runner.CommandResult{}, nil).Once()

	err := newKindTool(fakeProvider{}, commandRunner).Delete(t.Context(), "demo")

	require.NoError(t, err)
	commandRunner.AssertExpectations(t)
}

func TestKindTool_ProviderCalls(t *testing.T) {
	t.Parallel()

	tool := newKindTool(fakeProvider{clusters: []string{"demo"}, kubeconfig: "kind: Config"}, &mockCommandRunner{})

	clusters, err := tool.List(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{"demo"}, clusters)

	kubeconfig, err := tool.KubeConfig(t.Context(), "demo")
	require.NoError(t, err)
	assert.Equal(t, "kind: Config", kubeconfig)

	_, err = newKindTool(fakeProvider{err: errKindFailed}, &mockCommandRunner{}).List(t.Context())
	require.ErrorIs(t, err, errKindFailed)
}

func TestLogger(t *testing.T) {
	t.Parallel()

	var out, debug bytes.Buffer

	base := logrus.New()
	base.SetOutput(&debug)
	base.SetLevel(logrus.DebugLevel)

	logger := kindprovisioner.NewLogger(&out, logrus.NewEntry(base))

	logger.Warn("warning")
	logger.V(0).Infof("Creating cluster %q ...", "demo")
	logger.V(1).Info("pulling image")

	assert.Equal(t, "warning\nCreating cluster \"demo\" ...\n", out.String())
	assert.Contains(t, debug.String(), "pulling image")
	assert.Contains(t, debug.String(), "component=kind")
	assert.True(t, logger.V(1).Enabled())

	base.SetLevel(logrus.InfoLevel)
	assert.False(t, logger.V(1).Enabled())
}
