// Package metallbinstaller installs MetalLB from its upstream native manifest
// and configures the per-cluster address pool once the controller is ready.
package metallbinstaller
