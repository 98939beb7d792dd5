// Package metallbgenerator renders the per-cluster MetalLB address pool manifest.
package metallbgenerator

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"

	"github.com/devantler-tech/kindlab/pkg/io/generator"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

const (
	// Namespace is where the MetalLB controller and its custom resources live.
	Namespace = "metallb-system"

	apiVersion = "metallb.io/v1beta1"
)

// ErrInvalidPoolRange is returned for address ranges MetalLB would reject.
var ErrInvalidPoolRange = errors.New("invalid address pool range")

// Pool describes the address pool of one cluster.
type Pool struct {
	// ClusterName prefixes the resource names.
	ClusterName string
	// Range is either "<start>-<end>" or a CIDR.
	Range string
}

// PoolName is the name of the IPAddressPool resource.
func (p Pool) PoolName() string { return p.ClusterName + "-pool" }

// AdvertisementName is the name of the L2Advertisement resource.
func (p Pool) AdvertisementName() string { return p.ClusterName + "-l2" }

// MetalLBGenerator generates the IPAddressPool and L2Advertisement manifest.
type MetalLBGenerator struct{}

var _ generator.Generator[Pool] = (*MetalLBGenerator)(nil)

// NewMetalLBGenerator creates a MetalLBGenerator.
func NewMetalLBGenerator() *MetalLBGenerator {
	return &MetalLBGenerator{}
}

// ValidateRange accepts "<start>-<end>" IPv4 ranges with start <= end, or an IPv4 CIDR.
func ValidateRange(value string) error {
	if start, end, found := strings.Cut(value, "-"); found {
		first, err := netip.ParseAddr(strings.TrimSpace(start))
		if err != nil || !first.Is4() {
			return fmt.Errorf("%w: %q: bad start address", ErrInvalidPoolRange, value)
		}

		last, err := netip.ParseAddr(strings.TrimSpace(end))
		if err != nil || !last.Is4() {
			return fmt.Errorf("%w: %q: bad end address", ErrInvalidPoolRange, value)
		}

		if last.Less(first) {
			return fmt.Errorf("%w: %q: end before start", ErrInvalidPoolRange, value)
		}

		return nil
	}

	prefix, err := netip.ParsePrefix(value)
	if err != nil || !prefix.Addr().Is4() {
		return fmt.Errorf("%w: %q", ErrInvalidPoolRange, value)
	}

	return nil
}

// Build returns the pool and its L2 advertisement as unstructured objects.
func Build(pool Pool) []*unstructured.Unstructured {
	ipAddressPool := newObject("IPAddressPool", pool.PoolName())
	ipAddressPool.Object["spec"] = map[string]any{
		"addresses": []any{pool.Range},
	}

	advertisement := newObject("L2Advertisement", pool.AdvertisementName())
	advertisement.Object["spec"] = map[string]any{
		"ipAddressPools": []any{pool.PoolName()},
	}

	return []*unstructured.Unstructured{ipAddressPool, advertisement}
}

func newObject(kind, name string) *unstructured.Unstructured {
	obj := &unstructured.Unstructured{Object: map[string]any{}}
	obj.SetAPIVersion(apiVersion)
	obj.SetKind(kind)
	obj.SetName(name)
	obj.SetNamespace(Namespace)

	return obj
}

// Generate renders the manifest for pool after validating its range.
func (g *MetalLBGenerator) Generate(pool Pool, opts generator.Options) (string, error) {
	err := ValidateRange(pool.Range)
	if err != nil {
		return "", err
	}

	objects := Build(pool)

	docs := make([]any, 0, len(objects))
	for _, obj := range objects {
		docs = append(docs, obj.Object)
	}

	out, err := generator.MarshalDocuments(docs...)
	if err != nil {
		return "", fmt.Errorf("marshal metallb config: %w", err)
	}

	out, err = generator.Write(out, opts)
	if err != nil {
		return "", fmt.Errorf("write metallb config: %w", err)
	}

	return out, nil
}
