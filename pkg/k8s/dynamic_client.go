package k8s

import (
	"fmt"

	"k8s.io/client-go/discovery"
	"k8s.io/client-go/discovery/cached/memory"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/restmapper"
)

// NewApplierForTarget creates an Applier backed by a dynamic client and a
// discovery-based REST mapper for target. The mapper caches discovery for the
// lifetime of the Applier only.
func NewApplierForTarget(target Target) (*Applier, error) {
	restConfig, err := BuildRESTConfig(target)
	if err != nil {
		return nil, fmt.Errorf("failed to build rest config: %w", err)
	}

	dynamicClient, err := dynamic.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamic client: %w", err)
	}

	discoveryClient, err := discovery.NewDiscoveryClientForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create discovery client: %w", err)
	}

	mapper := restmapper.NewDeferredDiscoveryRESTMapper(memory.NewMemCacheClient(discoveryClient))

	return NewApplier(dynamicClient, mapper), nil
}
