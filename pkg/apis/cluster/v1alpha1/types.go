package v1alpha1

// Keys written to and read from a cluster.env file.
const (
	EnvClusterIP        = "CLUSTER_IP"
	EnvClusterSubnet    = "CLUSTER_SUBNET"
	EnvClusterGateway   = "CLUSTER_GATEWAY"
	EnvClusterInterface = "CLUSTER_INTERFACE"
)

// ClusterConfig is the network identity of one local cluster.
//
// Name doubles as the directory key under the clusters root and as the kind cluster name.
// The remaining fields are all required; a config with any of them empty is invalid.
type ClusterConfig struct {
	Name      string `json:"name"      mapstructure:"-"`
	IP        string `json:"ip"        mapstructure:"cluster_ip"`
	Subnet    string `json:"subnet"    mapstructure:"cluster_subnet"`
	Gateway   string `json:"gateway"   mapstructure:"cluster_gateway"`
	Interface string `json:"interface" mapstructure:"cluster_interface"`
}

// KubeContext returns the kubeconfig context kind registers for the cluster.
func (c *ClusterConfig) KubeContext() string {
	return KubeContextName(c.Name)
}

// KubeContextName returns the kind context name for a cluster name.
func KubeContextName(name string) string {
	return "kind-" + name
}

// MissingFields returns the cluster.env keys whose values are empty, in file order.
func (c *ClusterConfig) MissingFields() []string {
	var missing []string

	for _, field := range []struct {
		key   string
		value string
	}{
		{EnvClusterIP, c.IP},
		{EnvClusterSubnet, c.Subnet},
		{EnvClusterGateway, c.Gateway},
		{EnvClusterInterface, c.Interface},
	} {
		if field.value == "" {
			missing = append(missing, field.key)
		}
	}

	return missing
}
