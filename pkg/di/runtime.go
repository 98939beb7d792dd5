// Package di wires the kindlab components with samber/do.
package di

import (
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Injector is the dependency container handed to modules and handlers.
type Injector = do.Injector

// Module registers providers on an injector.
type Module func(Injector) error

// Runtime creates a fresh injector for every invocation.
type Runtime struct {
	modules []Module
}

// New creates a Runtime running modules, in order, before every handler.
func New(modules ...Module) *Runtime {
	return &Runtime{modules: modules}
}

// With returns a copy of r that also runs modules after the base modules.
func (r *Runtime) With(modules ...Module) *Runtime {
	combined := make([]Module, 0, len(r.modules)+len(modules))
	combined = append(combined, r.modules...)

	return &Runtime{modules: append(combined, modules...)}
}

// Invoke runs the base modules, then extra, then handler on a new injector.
// The injector is shut down afterwards. Nil modules are skipped.
func (r *Runtime) Invoke(handler func(Injector) error, extra ...Module) error {
	injector := do.New()
	defer injector.Shutdown()

	for _, module := range append(append([]Module{}, r.modules...), extra...) {
		if module == nil {
			continue
		}

		err := module(injector)
		if err != nil {
			return err
		}
	}

	return handler(injector)
}

// RunEWithRuntime adapts a handler needing an injector to cobra's RunE.
func RunEWithRuntime(
	runtime *Runtime,
	handler func(cmd *cobra.Command, injector Injector) error,
	extra ...Module,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return runtime.Invoke(func(injector Injector) error {
			return handler(cmd, injector)
		}, extra...)
	}
}
