package di

import (
	"fmt"

	"github.com/devantler-tech/kindlab/pkg/svc/orchestrator"
	"github.com/samber/do/v2"
)

// ResolveOrchestrator retrieves the orchestrator from the injector.
func ResolveOrchestrator(injector Injector) (*orchestrator.Orchestrator, error) {
	orch, err := do.Invoke[*orchestrator.Orchestrator](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve orchestrator dependency: %w", err)
	}

	return orch, nil
}

// WithOrchestrator decorates a handler to resolve the orchestrator first.
func WithOrchestrator(
	handler func(injector Injector, orch *orchestrator.Orchestrator) error,
) func(injector Injector) error {
	return func(injector Injector) error {
		orch, err := ResolveOrchestrator(injector)
		if err != nil {
			return err
		}

		return handler(injector, orch)
	}
}
