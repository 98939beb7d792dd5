package configmanager_test

import (
	"testing"
	"time"

	"github.com/devantler-tech/kindlab/pkg/io/configmanager"
	"github.com/devantler-tech/kindlab/pkg/svc/clustererr"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *configmanager.Settings {
	t.Helper()

	viperInstance := configmanager.NewViper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	configmanager.AddFlags(flags, viperInstance)
	require.NoError(t, flags.Parse(args))

	settings, err := configmanager.LoadSettings(viperInstance)
	require.NoError(t, err)

	return &settings
}

func TestLoadSettings_Defaults(t *testing.T) {
	t.Parallel()

	settings := newFlags(t)

	assert.True(t, len(settings.Root) > len("clusters"))
	assert.Equal(t, "0.14.9", settings.MetalLBVersion)
	assert.Equal(t, 10*time.Minute, settings.LBWaitTimeout)
	assert.Equal(t, 15*time.Second, settings.PoolRetryBackoff)
	assert.False(t, settings.Yes)
	assert.False(t, settings.NonInteractive)
	assert.False(t, settings.Verbose)
}

func TestLoadSettings_Flags(t *testing.T) {
	t.Parallel()

	settings := newFlags(t,
		"--root", "/srv/clusters",
		"--yes",
		"--metallb-version", "v0.15.2",
		"--lb-wait-timeout", "2m",
		"--pool-retry-backoff", "0s",
	)

	assert.Equal(t, "/srv/clusters", settings.Root)
	assert.True(t, settings.Yes)
	assert.Equal(t, "0.15.2", settings.MetalLBVersion)
	assert.Equal(t, 2*time.Minute, settings.LBWaitTimeout)
	assert.Equal(t, time.Duration(0), settings.PoolRetryBackoff)
}

func TestLoadSettings_Environment(t *testing.T) {
	t.Setenv("KINDLAB_NON_INTERACTIVE", "true")
	t.Setenv("KINDLAB_POOL_RETRY_BACKOFF", "3s")

	settings := newFlags(t)

	assert.True(t, settings.NonInteractive)
	assert.Equal(t, 3*time.Second, settings.PoolRetryBackoff)
}

func TestLoadSettings_FlagBeatsEnvironment(t *testing.T) {
	t.Setenv("KINDLAB_METALLB_VERSION", "0.13.12")

	settings := newFlags(t, "--metallb-version", "0.14.8")

	assert.Equal(t, "0.14.8", settings.MetalLBVersion)
}

func TestLoadSettings_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "bad version", args: []string{"--metallb-version", "latest"}},
		{name: "zero wait", args: []string{"--lb-wait-timeout", "0s"}},
		{name: "negative backoff", args: []string{"--pool-retry-backoff", "-1s"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			viperInstance := configmanager.NewViper()
			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			configmanager.AddFlags(flags, viperInstance)
			require.NoError(t, flags.Parse(tc.args))

			_, err := configmanager.LoadSettings(viperInstance)

			require.ErrorIs(t, err, clustererr.ErrInvalidConfig)
		})
	}
}
