package readiness

import "errors"

// ErrTimeoutExceeded is returned when a resource is not ready before the deadline.
var ErrTimeoutExceeded = errors.New("timeout exceeded")
