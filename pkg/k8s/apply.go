package k8s

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	utilyaml "k8s.io/apimachinery/pkg/util/yaml"
	"k8s.io/client-go/dynamic"
)

const (
	// FieldManager owns the fields kindlab applies.
	FieldManager = "kindlab"

	defaultNamespace = "default"
	decodeBufferSize = 4096
)

// Applier server-side applies manifests.
type Applier struct {
	client dynamic.Interface
	mapper meta.RESTMapper
}

// NewApplier creates an Applier from a dynamic client and a REST mapper.
func NewApplier(client dynamic.Interface, mapper meta.RESTMapper) *Applier {
	return &Applier{client: client, mapper: mapper}
}

// DecodeManifests splits a YAML or JSON stream into objects. Empty documents are
// skipped and List kinds are flattened into their items.
func DecodeManifests(data []byte) ([]*unstructured.Unstructured, error) {
	decoder := utilyaml.NewYAMLOrJSONDecoder(bytes.NewReader(data), decodeBufferSize)

	var objects []*unstructured.Unstructured

	for {
		raw := map[string]any{}

		err := decoder.Decode(&raw)
		if errors.Is(err, io.EOF) {
			return objects, nil
		}

		if err != nil {
			return nil, fmt.Errorf("decode manifest: %w", err)
		}

		if len(raw) == 0 {
			continue
		}

		obj := &unstructured.Unstructured{Object: raw}
		if !obj.IsList() {
			objects = append(objects, obj)

			continue
		}

		err = obj.EachListItem(func(item runtime.Object) error {
			itemObj, ok := item.(*unstructured.Unstructured)
			if ok {
				objects = append(objects, itemObj)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("flatten %s: %w", obj.GetKind(), err)
		}
	}
}

// Apply decodes data and applies every object in order, stopping at the first
// failure. It returns the number of objects applied.
func (a *Applier) Apply(ctx context.Context, data []byte) (int, error) {
	objects, err := DecodeManifests(data)
	if err != nil {
		return 0, err
	}

	for i, obj := range objects {
		err = a.applyObject(ctx, obj)
		if err != nil {
			return i, err
		}
	}

	return len(objects), nil
}

func (a *Applier) applyObject(ctx context.Context, obj *unstructured.Unstructured) error {
	gvk := obj.GroupVersionKind()
	if gvk.Kind == "" || gvk.Version == "" || obj.GetName() == "" {
		return fmt.Errorf("%w: %v %q", ErrObjectIncomplete, gvk, obj.GetName())
	}

	mapping, err := a.mapper.RESTMapping(gvk.GroupKind(), gvk.Version)
	if err != nil {
		return fmt.Errorf("map %s: %w", gvk.Kind, err)
	}

	var resource dynamic.ResourceInterface = a.client.Resource(mapping.Resource)

	if mapping.Scope.Name() == meta.RESTScopeNameNamespace {
		namespace := obj.GetNamespace()
		if namespace == "" {
			namespace = defaultNamespace
			obj.SetNamespace(namespace)
		}

		resource = a.client.Resource(mapping.Resource).Namespace(namespace)
	}

	_, err = resource.Apply(ctx, obj.GetName(), obj, metav1.ApplyOptions{
		FieldManager: FieldManager,
		Force:        true,
	})
	if err != nil {
		return fmt.Errorf("apply %s %s: %w", gvk.Kind, describe(obj), err)
	}

	return nil
}

func describe(obj *unstructured.Unstructured) string {
	if obj.GetNamespace() == "" {
		return obj.GetName()
	}

	return obj.GetNamespace() + "/" + obj.GetName()
}
