package clustererr_test

import (
	"fmt"
	"testing"

	"github.com/devantler-tech/kindlab/pkg/svc/clustererr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allErrors() []error {
	return []error{
		clustererr.ErrConfigNotFound,
		clustererr.ErrInvalidConfig,
		clustererr.ErrInterfaceNotFound,
		clustererr.ErrKindConfigMissing,
		clustererr.ErrToolMissing,
		clustererr.ErrExternalCommandFailed,
		clustererr.ErrBestEffortFailure,
		clustererr.ErrMissingArgument,
		clustererr.ErrUnknownCommand,
	}
}

func TestErrorVariables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{name: "ErrConfigNotFound", err: clustererr.ErrConfigNotFound, contains: "configuration not found"},
		{name: "ErrInvalidConfig", err: clustererr.ErrInvalidConfig, contains: "invalid cluster configuration"},
		{name: "ErrInterfaceNotFound", err: clustererr.ErrInterfaceNotFound, contains: "interface not found"},
		{name: "ErrKindConfigMissing", err: clustererr.ErrKindConfigMissing, contains: "kind configuration"},
		{name: "ErrToolMissing", err: clustererr.ErrToolMissing, contains: "tool missing"},
		{name: "ErrExternalCommandFailed", err: clustererr.ErrExternalCommandFailed, contains: "external command"},
		{name: "ErrBestEffortFailure", err: clustererr.ErrBestEffortFailure, contains: "best-effort"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Error(t, tc.err)
			assert.Contains(t, tc.err.Error(), tc.contains)
		})
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	t.Parallel()

	errs := allErrors()

	for i, err1 := range errs {
		for j, err2 := range errs {
			if i != j {
				assert.NotErrorIs(t, err1, err2, "error %q should not match %q", err1, err2)
			}
		}
	}
}

func TestErrorsSurviveWrapping(t *testing.T) {
	t.Parallel()

	for _, sentinel := range allErrors() {
		wrapped := fmt.Errorf("step: %w", fmt.Errorf("inner: %w", sentinel))

		assert.ErrorIs(t, wrapped, sentinel)
	}
}
