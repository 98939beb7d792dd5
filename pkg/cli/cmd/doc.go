// Package cmd provides the command-line interface for kindlab.
//
// The root command carries the global flags and these subcommands:
//   - init: generate the directory of a new cluster
//   - create: bring a cluster up with its IP alias, MetalLB and manifests
//   - delete: tear a cluster down and release its IP alias
//   - status: report on one or every cluster
//   - list: one line per cluster directory
package cmd
