package k8s

import (
	"fmt"

	"k8s.io/client-go/tools/clientcmd"
)

// PrepareKubeconfig parses a kubeconfig, checks that it has contextName and
// makes that context current. It returns the serialized result.
func PrepareKubeconfig(data []byte, contextName string) ([]byte, error) {
	kubeConfig, err := clientcmd.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse kubeconfig: %w", err)
	}

	if _, ok := kubeConfig.Contexts[contextName]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrContextNotFound, contextName)
	}

	kubeConfig.CurrentContext = contextName

	out, err := clientcmd.Write(*kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize kubeconfig: %w", err)
	}

	return out, nil
}
