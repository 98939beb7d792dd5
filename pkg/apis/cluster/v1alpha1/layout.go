package v1alpha1

import "path/filepath"

// File and directory names inside a cluster directory.
const (
	ConfigDirName     = "config"
	ManifestsDirName  = "manifests"
	EnvFileName       = "cluster.env"
	KindConfigName    = "kind-config.yaml"
	KubeconfigName    = "kubeconfig"
	MetalLBConfigName = "metallb-config.yaml"
	ReadmeName        = "README.md"
	SampleManifest    = "test-app.yaml"

	// DefaultRoot is the directory holding one subdirectory per cluster.
	DefaultRoot = "clusters"
)

// Layout resolves the paths of a single cluster directory.
type Layout struct {
	Root string
	Name string
}

// NewLayout returns the layout of cluster name under root. An empty root means DefaultRoot.
func NewLayout(root, name string) Layout {
	if root == "" {
		root = DefaultRoot
	}

	return Layout{Root: root, Name: name}
}

// Dir is the cluster directory.
func (l Layout) Dir() string { return filepath.Join(l.Root, l.Name) }

// ConfigDir holds the generated configuration files.
func (l Layout) ConfigDir() string { return filepath.Join(l.Dir(), ConfigDirName) }

// EnvFile is the cluster.env path.
func (l Layout) EnvFile() string { return filepath.Join(l.ConfigDir(), EnvFileName) }

// KindConfig is the generated kind cluster configuration path.
func (l Layout) KindConfig() string { return filepath.Join(l.ConfigDir(), KindConfigName) }

// Kubeconfig is where the kubeconfig is persisted after creation.
func (l Layout) Kubeconfig() string { return filepath.Join(l.ConfigDir(), KubeconfigName) }

// MetalLBConfig is the generated address pool manifest path.
func (l Layout) MetalLBConfig() string { return filepath.Join(l.ConfigDir(), MetalLBConfigName) }

// ManifestsDir holds operator-managed manifests.
func (l Layout) ManifestsDir() string { return filepath.Join(l.Dir(), ManifestsDirName) }

// Readme is the generated README path.
func (l Layout) Readme() string { return filepath.Join(l.Dir(), ReadmeName) }
