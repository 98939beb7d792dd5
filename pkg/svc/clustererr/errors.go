package clustererr

import "errors"

var (
	// ErrConfigNotFound is returned when a cluster directory or its cluster.env file is absent.
	ErrConfigNotFound = errors.New("cluster configuration not found")

	// ErrInvalidConfig is returned when a cluster configuration is missing required values.
	ErrInvalidConfig = errors.New("invalid cluster configuration")

	// ErrInterfaceNotFound is returned when the host network interface does not exist.
	ErrInterfaceNotFound = errors.New("network interface not found")

	// ErrKindConfigMissing is returned when the generated kind configuration file is absent.
	ErrKindConfigMissing = errors.New("kind configuration file not found")

	// ErrToolMissing is returned when a required external tool is unavailable.
	ErrToolMissing = errors.New("required tool missing")

	// ErrExternalCommandFailed is returned when a side-effecting external step fails.
	ErrExternalCommandFailed = errors.New("external command failed")

	// ErrBestEffortFailure marks failures that are reported as warnings only.
	ErrBestEffortFailure = errors.New("best-effort step failed")

	// ErrMissingArgument is returned when a required command argument is empty.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrUnknownCommand is returned when the CLI receives a command it does not know.
	ErrUnknownCommand = errors.New("unknown command")
)
