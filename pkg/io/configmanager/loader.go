package configmanager

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/devantler-tech/kindlab/pkg/apis/cluster/v1alpha1"
	"github.com/devantler-tech/kindlab/pkg/fsutil"
	"github.com/devantler-tech/kindlab/pkg/svc/clustererr"
	"github.com/spf13/viper"
)

// envConfigType is the viper codec used for cluster.env files.
const envConfigType = "dotenv"

// Load reads <root>/<name>/config/cluster.env into a ClusterConfig.
//
// Each call parses into its own viper instance, so nothing leaks into the
// process environment or into later loads.
func Load(root, name string) (*v1alpha1.ClusterConfig, error) {
	layout := v1alpha1.NewLayout(root, name)

	data, err := os.ReadFile(layout.EnvFile())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", clustererr.ErrConfigNotFound, layout.EnvFile())
		}

		return nil, fmt.Errorf("read %s: %w", layout.EnvFile(), err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", layout.EnvFile(), err)
	}

	cfg.Name = name

	return cfg, nil
}

// Parse decodes cluster.env content and checks that every required key has a value.
func Parse(data []byte) (*v1alpha1.ClusterConfig, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigType(envConfigType)

	err := viperInstance.ReadConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", clustererr.ErrInvalidConfig, err)
	}

	cfg := &v1alpha1.ClusterConfig{}

	err = viperInstance.Unmarshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", clustererr.ErrInvalidConfig, err)
	}

	if missing := cfg.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf(
			"%w: missing or empty %s",
			clustererr.ErrInvalidConfig,
			strings.Join(missing, ", "),
		)
	}

	return cfg, nil
}

// Render formats cfg as cluster.env content.
func Render(cfg *v1alpha1.ClusterConfig) string {
	var builder strings.Builder

	for _, entry := range []struct{ key, value string }{
		{v1alpha1.EnvClusterIP, cfg.IP},
		{v1alpha1.EnvClusterSubnet, cfg.Subnet},
		{v1alpha1.EnvClusterGateway, cfg.Gateway},
		{v1alpha1.EnvClusterInterface, cfg.Interface},
	} {
		fmt.Fprintf(&builder, "%s=%q\n", entry.key, entry.value)
	}

	return builder.String()
}

// Write renders cfg to <root>/<cfg.Name>/config/cluster.env, replacing any existing file.
func Write(root string, cfg *v1alpha1.ClusterConfig) error {
	layout := v1alpha1.NewLayout(root, cfg.Name)

	_, err := fsutil.TryWriteFile(Render(cfg), layout.EnvFile(), true)
	if err != nil {
		return fmt.Errorf("write cluster config: %w", err)
	}

	return nil
}
