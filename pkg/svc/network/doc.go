// Package network binds and releases the per-cluster IP alias on a host interface.
//
// Binding is repeatable: an address that is already present, or already gone
// on removal, produces a warning rather than an error.
package network
