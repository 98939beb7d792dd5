package k8s

import (
	"fmt"
	"time"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// Target selects a cluster: a kubeconfig file and one of its contexts.
type Target struct {
	Kubeconfig string
	Context    string
	// Timeout bounds every request; zero means no client-side timeout.
	Timeout time.Duration
}

// BuildRESTConfig builds a REST config for target.
//
// An empty Context uses the kubeconfig's current context.
func BuildRESTConfig(target Target) (*rest.Config, error) {
	if target.Kubeconfig == "" {
		return nil, ErrKubeconfigPathEmpty
	}

	loadingRules := &clientcmd.ClientConfigLoadingRules{ExplicitPath: target.Kubeconfig}
	overrides := &clientcmd.ConfigOverrides{CurrentContext: target.Context}

	restConfig, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		loadingRules,
		overrides,
	).ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	restConfig.Timeout = target.Timeout

	return restConfig, nil
}

// NewClientset creates a typed clientset for target.
func NewClientset(target Target) (*kubernetes.Clientset, error) {
	restConfig, err := BuildRESTConfig(target)
	if err != nil {
		return nil, fmt.Errorf("failed to build rest config: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return clientset, nil
}
