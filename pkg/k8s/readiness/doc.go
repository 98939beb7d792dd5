// Package readiness polls a cluster until pods, nodes or the API server are ready.
package readiness
