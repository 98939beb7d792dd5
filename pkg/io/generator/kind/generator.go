// Package kindgenerator renders the kind cluster configuration of a cluster directory.
package kindgenerator

import (
	"fmt"

	"github.com/devantler-tech/kindlab/pkg/apis/cluster/v1alpha1"
	"github.com/devantler-tech/kindlab/pkg/io/generator"
	"sigs.k8s.io/kind/pkg/apis/config/v1alpha4"
)

// APIServerPort is the port the API server listens on at the cluster IP.
const APIServerPort = 6443

// ingressPorts are published on the cluster IP from the control-plane node.
var ingressPorts = []int32{80, 443}

// KindGenerator generates a kind Cluster YAML.
type KindGenerator struct{}

var _ generator.Generator[*v1alpha1.ClusterConfig] = (*KindGenerator)(nil)

// NewKindGenerator creates a KindGenerator.
func NewKindGenerator() *KindGenerator {
	return &KindGenerator{}
}

// Build returns the kind configuration for cfg: a single control-plane node whose
// API server and ingress ports are bound to the cluster IP.
func Build(cfg *v1alpha1.ClusterConfig) *v1alpha4.Cluster {
	mappings := make([]v1alpha4.PortMapping, 0, len(ingressPorts))
	for _, port := range ingressPorts {
		mappings = append(mappings, v1alpha4.PortMapping{
			ContainerPort: port,
			HostPort:      port,
			ListenAddress: cfg.IP,
			Protocol:      v1alpha4.PortMappingProtocolTCP,
		})
	}

	return &v1alpha4.Cluster{
		TypeMeta: v1alpha4.TypeMeta{
			Kind:       "Cluster",
			APIVersion: "kind.x-k8s.io/v1alpha4",
		},
		Name: cfg.Name,
		Networking: v1alpha4.Networking{
			APIServerAddress: cfg.IP,
			APIServerPort:    APIServerPort,
		},
		Nodes: []v1alpha4.Node{
			{
				Role:              v1alpha4.ControlPlaneRole,
				ExtraPortMappings: mappings,
			},
		},
	}
}

// Generate renders the kind configuration for cfg.
func (g *KindGenerator) Generate(cfg *v1alpha1.ClusterConfig, opts generator.Options) (string, error) {
	out, err := generator.MarshalDocuments(Build(cfg))
	if err != nil {
		return "", fmt.Errorf("marshal kind config: %w", err)
	}

	out, err = generator.Write(out, opts)
	if err != nil {
		return "", fmt.Errorf("write kind config: %w", err)
	}

	return out, nil
}
