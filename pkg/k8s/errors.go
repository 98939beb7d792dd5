package k8s

import "errors"

// ErrKubeconfigPathEmpty is returned when kubeconfig path is empty.
var ErrKubeconfigPathEmpty = errors.New("kubeconfig path is empty")

// ErrContextNotFound is returned when a kubeconfig lacks the expected context.
var ErrContextNotFound = errors.New("kubeconfig context not found")

// ErrObjectIncomplete is returned for manifest documents without kind, version or name.
var ErrObjectIncomplete = errors.New("manifest object is missing apiVersion, kind or name")
