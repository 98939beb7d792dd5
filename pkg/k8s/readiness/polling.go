package readiness

import (
	"context"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"
)

// PollInterval is the delay between readiness checks.
var PollInterval = 500 * time.Millisecond //nolint:gochecknoglobals // overridden in tests

// PollForReadiness calls check until it reports true, returns an error, or deadline passes.
// Running out of time yields ErrTimeoutExceeded; a cancelled ctx yields the context error.
func PollForReadiness(
	ctx context.Context,
	deadline time.Duration,
	check wait.ConditionWithContextFunc,
) error {
	err := wait.PollUntilContextTimeout(ctx, PollInterval, deadline, true, check)
	if err == nil {
		return nil
	}

	if ctx.Err() != nil {
		return fmt.Errorf("readiness polling: %w", ctx.Err())
	}

	if wait.Interrupted(err) {
		return fmt.Errorf("%w after %s", ErrTimeoutExceeded, deadline)
	}

	return fmt.Errorf("readiness polling: %w", err)
}
