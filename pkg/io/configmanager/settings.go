package configmanager

import (
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/devantler-tech/kindlab/pkg/apis/cluster/v1alpha1"
	"github.com/devantler-tech/kindlab/pkg/fsutil"
	"github.com/devantler-tech/kindlab/pkg/svc/clustererr"
	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override global flags.
const EnvPrefix = "KINDLAB"

// Setting keys. Flags carry the same names.
const (
	KeyRoot             = "root"
	KeyYes              = "yes"
	KeyNonInteractive   = "non-interactive"
	KeyVerbose          = "verbose"
	KeyMetalLBVersion   = "metallb-version"
	KeyLBWaitTimeout    = "lb-wait-timeout"
	KeyPoolRetryBackoff = "pool-retry-backoff"
)

// Defaults for global settings.
const (
	DefaultMetalLBVersion   = "0.14.9"
	DefaultLBWaitTimeout    = 10 * time.Minute
	DefaultPoolRetryBackoff = 15 * time.Second
)

// Settings are the resolved global options shared by every command.
type Settings struct {
	Root             string        `mapstructure:"root"`
	Yes              bool          `mapstructure:"yes"`
	NonInteractive   bool          `mapstructure:"non-interactive"`
	Verbose          bool          `mapstructure:"verbose"`
	MetalLBVersion   string        `mapstructure:"metallb-version"`
	LBWaitTimeout    time.Duration `mapstructure:"lb-wait-timeout"`
	PoolRetryBackoff time.Duration `mapstructure:"pool-retry-backoff"`
}

// NewViper returns a viper instance with defaults and KINDLAB_* environment lookup.
// KINDLAB_NON_INTERACTIVE maps to the non-interactive key.
func NewViper() *viper.Viper {
	viperInstance := viper.New()
	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viperInstance.AutomaticEnv()

	viperInstance.SetDefault(KeyRoot, v1alpha1.DefaultRoot)
	viperInstance.SetDefault(KeyMetalLBVersion, DefaultMetalLBVersion)
	viperInstance.SetDefault(KeyLBWaitTimeout, DefaultLBWaitTimeout)
	viperInstance.SetDefault(KeyPoolRetryBackoff, DefaultPoolRetryBackoff)

	return viperInstance
}

// AddFlags registers the global flags on flags and binds them to viperInstance.
func AddFlags(flags *pflag.FlagSet, viperInstance *viper.Viper) {
	flags.String(KeyRoot, v1alpha1.DefaultRoot, "directory holding one sub-directory per cluster")
	flags.BoolP(KeyYes, "y", false, "answer yes to every confirmation prompt")
	flags.Bool(KeyNonInteractive, false, "never prompt; destructive confirmations default to no")
	flags.BoolP(KeyVerbose, "v", false, "enable debug logging")
	flags.String(KeyMetalLBVersion, DefaultMetalLBVersion, "MetalLB release to install")
	flags.Duration(KeyLBWaitTimeout, DefaultLBWaitTimeout,
		"how long to wait for MetalLB pods to become ready")
	flags.Duration(KeyPoolRetryBackoff, DefaultPoolRetryBackoff,
		"delay before the single retry of the MetalLB pool apply")

	flags.VisitAll(func(flag *pflag.Flag) {
		_ = viperInstance.BindPFlag(flag.Name, flag)
	})
}

// LoadSettings resolves Settings from viperInstance (flags > env > defaults).
func LoadSettings(viperInstance *viper.Viper) (Settings, error) {
	var settings Settings

	err := viperInstance.Unmarshal(&settings, func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err != nil {
		return Settings{}, fmt.Errorf("%w: decode settings: %w", clustererr.ErrInvalidConfig, err)
	}

	settings.Root, err = fsutil.ExpandHomePath(settings.Root)
	if err != nil {
		return Settings{}, fmt.Errorf("resolve root: %w", err)
	}

	version, err := semver.NewVersion(settings.MetalLBVersion)
	if err != nil {
		return Settings{}, fmt.Errorf(
			"%w: metallb version %q: %w",
			clustererr.ErrInvalidConfig,
			settings.MetalLBVersion,
			err,
		)
	}

	settings.MetalLBVersion = version.String()

	if settings.LBWaitTimeout <= 0 {
		return Settings{}, fmt.Errorf("%w: %s must be positive", clustererr.ErrInvalidConfig, KeyLBWaitTimeout)
	}

	if settings.PoolRetryBackoff < 0 {
		return Settings{}, fmt.Errorf(
			"%w: %s must not be negative", clustererr.ErrInvalidConfig, KeyPoolRetryBackoff,
		)
	}

	return settings, nil
}
