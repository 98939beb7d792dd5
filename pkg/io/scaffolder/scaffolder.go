// Package scaffolder lays out a new cluster directory.
package scaffolder

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/devantler-tech/kindlab/pkg/apis/cluster/v1alpha1"
	"github.com/devantler-tech/kindlab/pkg/fsutil"
	"github.com/devantler-tech/kindlab/pkg/io/configmanager"
	"github.com/devantler-tech/kindlab/pkg/io/generator"
	kindgenerator "github.com/devantler-tech/kindlab/pkg/io/generator/kind"
	metallbgenerator "github.com/devantler-tech/kindlab/pkg/io/generator/metallb"
	workloadgenerator "github.com/devantler-tech/kindlab/pkg/io/generator/workload"
	"github.com/devantler-tech/kindlab/pkg/utils/notify"
)

var (
	// ErrEnvConfigGeneration wraps failures when writing cluster.env.
	ErrEnvConfigGeneration = errors.New("failed to generate cluster.env")

	// ErrKindConfigGeneration wraps failures when writing the kind configuration.
	ErrKindConfigGeneration = errors.New("failed to generate kind configuration")

	// ErrMetalLBConfigGeneration wraps failures when writing the address pool manifest.
	ErrMetalLBConfigGeneration = errors.New("failed to generate metallb configuration")

	// ErrSampleManifestGeneration wraps failures when writing the sample manifest.
	ErrSampleManifestGeneration = errors.New("failed to generate sample manifest")

	// ErrReadmeGeneration wraps failures when writing the README.
	ErrReadmeGeneration = errors.New("failed to generate README")
)

// Scaffolder writes every generated file of a cluster directory.
type Scaffolder struct {
	Root              string
	KindGenerator     generator.Generator[*v1alpha1.ClusterConfig]
	MetalLBGenerator  generator.Generator[metallbgenerator.Pool]
	WorkloadGenerator generator.Generator[workloadgenerator.App]
	Writer            io.Writer
}

// NewScaffolder creates a Scaffolder for clusters under root.
func NewScaffolder(root string, writer io.Writer) *Scaffolder {
	return &Scaffolder{
		Root:              root,
		KindGenerator:     kindgenerator.NewKindGenerator(),
		MetalLBGenerator:  metallbgenerator.NewMetalLBGenerator(),
		WorkloadGenerator: workloadgenerator.NewWorkloadGenerator(),
		Writer:            writer,
	}
}

// Scaffold generates cluster.env, the kind configuration, the MetalLB pool
// manifest, the sample manifest and the README for cfg.
//
// Existing generated files are replaced. Other files in the manifests folder
// are never touched.
func (s *Scaffolder) Scaffold(cfg *v1alpha1.ClusterConfig, poolRange string) error {
	layout := v1alpha1.NewLayout(s.Root, cfg.Name)
	overwrite := func(path string) generator.Options {
		return generator.Options{Output: path, Force: true}
	}

	err := configmanager.Write(s.Root, cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEnvConfigGeneration, err)
	}

	s.notifyGenerated(layout.EnvFile())

	_, err = s.KindGenerator.Generate(cfg, overwrite(layout.KindConfig()))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKindConfigGeneration, err)
	}

	s.notifyGenerated(layout.KindConfig())

	pool := metallbgenerator.Pool{ClusterName: cfg.Name, Range: poolRange}

	_, err = s.MetalLBGenerator.Generate(pool, overwrite(layout.MetalLBConfig()))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMetalLBConfigGeneration, err)
	}

	s.notifyGenerated(layout.MetalLBConfig())

	sample := filepath.Join(layout.ManifestsDir(), v1alpha1.SampleManifest)

	_, err = s.WorkloadGenerator.Generate(workloadgenerator.DefaultApp(), overwrite(sample))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSampleManifestGeneration, err)
	}

	s.notifyGenerated(sample)

	readme, err := RenderReadme(ReadmeData{
		Name:       cfg.Name,
		IP:         cfg.IP,
		Interface:  cfg.Interface,
		PoolRange:  poolRange,
		Context:    cfg.KubeContext(),
		APIPort:    kindgenerator.APIServerPort,
		Kubeconfig: filepath.Join(v1alpha1.ConfigDirName, v1alpha1.KubeconfigName),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadmeGeneration, err)
	}

	_, err = fsutil.TryWriteFile(readme, layout.Readme(), true)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadmeGeneration, err)
	}

	s.notifyGenerated(layout.Readme())

	return nil
}

func (s *Scaffolder) notifyGenerated(path string) {
	notify.Generatef(s.Writer, "%s", path)
}
