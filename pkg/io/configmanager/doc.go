// Package configmanager loads per-cluster configuration from cluster.env files
// and resolves global settings from flags and KINDLAB_* environment variables.
package configmanager
