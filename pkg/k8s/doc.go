// Package k8s builds client-go clients from the per-cluster kubeconfig and
// applies multi-document manifests with server-side apply.
//
// For readiness polling, see the [readiness] sub-package.
package k8s
