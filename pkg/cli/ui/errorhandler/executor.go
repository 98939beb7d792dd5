// Package errorhandler runs the root command and turns cobra's error output
// into a single error value for main to print.
package errorhandler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/devantler-tech/kindlab/pkg/svc/clustererr"
	"github.com/spf13/cobra"
)

const unknownCommandPrefix = "unknown command"

// Executor runs a cobra command while intercepting its error stream.
type Executor struct {
	normalizer DefaultNormalizer
}

// NewExecutor constructs an Executor.
func NewExecutor() *Executor {
	return &Executor{normalizer: DefaultNormalizer{}}
}

// Execute runs cmd with ctx. It returns nil on success, or a *CommandError
// holding the normalized message and the original error.
//
// An unknown command prints the usage of cmd and wraps ErrUnknownCommand.
func (e *Executor) Execute(ctx context.Context, cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}

	var errBuf bytes.Buffer

	originalErrWriter := cmd.ErrOrStderr()

	cmd.SetErr(&errBuf)
	defer cmd.SetErr(originalErrWriter)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	message := e.normalizer.Normalize(errBuf.String())

	if strings.HasPrefix(err.Error(), unknownCommandPrefix) {
		_, _ = io.WriteString(originalErrWriter, cmd.UsageString())

		err = fmt.Errorf("%w: %w", clustererr.ErrUnknownCommand, err)
	}

	return &CommandError{
		message: message,
		cause:   err,
	}
}

// CommandError is a cobra failure augmented with its normalized stderr output.
type CommandError struct {
	message string
	cause   error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.cause == nil:
		return e.message
	case e.message != "":
		if strings.Contains(e.message, e.cause.Error()) {
			return e.message
		}

		if strings.Contains(e.cause.Error(), e.message) {
			return e.cause.Error()
		}

		return e.message + ": " + e.cause.Error()
	default:
		return e.cause.Error()
	}
}

// Unwrap exposes the cause for errors.Is and errors.As.
func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// DefaultNormalizer cleans up what cobra writes to stderr on failure.
type DefaultNormalizer struct{}

// Normalize trims whitespace, drops the "Error: " prefix of the first line
// and keeps multi-line usage hints.
func (DefaultNormalizer) Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	lines := strings.Split(trimmed, "\n")
	lines[0] = strings.TrimPrefix(strings.TrimSpace(lines[0]), "Error: ")

	return strings.Join(lines, "\n")
}
