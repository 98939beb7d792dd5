// Package runner executes cobra commands in-process, mirroring their output to
// the console while keeping a copy for error reporting.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// CommandResult holds everything a command wrote, including output produced
// before a failure.
type CommandResult struct {
	Stdout string
	Stderr string
}

// LastLine returns the last non-empty line of stderr, falling back to stdout.
func (r CommandResult) LastLine() string {
	for _, stream := range []string{r.Stderr, r.Stdout} {
		lines := strings.Split(strings.TrimSpace(stream), "\n")
		if last := strings.TrimSpace(lines[len(lines)-1]); last != "" {
			return last
		}
	}

	return ""
}

// CommandRunner executes a cobra command with arguments.
type CommandRunner interface {
	Run(ctx context.Context, cmd *cobra.Command, args []string) (CommandResult, error)
}

// CobraCommandRunner streams command output to the configured writers.
type CobraCommandRunner struct {
	stdout io.Writer
	stderr io.Writer
}

// NewCobraCommandRunner creates a runner. Nil writers default to os.Stdout and os.Stderr.
func NewCobraCommandRunner(stdout, stderr io.Writer) *CobraCommandRunner {
	if stdout == nil {
		stdout = os.Stdout
	}

	if stderr == nil {
		stderr = os.Stderr
	}

	return &CobraCommandRunner{stdout: stdout, stderr: stderr}
}

// Run executes cmd with args. Usage and error printing are silenced; the error
// is returned wrapped with the command name.
func (r *CobraCommandRunner) Run(
	ctx context.Context,
	cmd *cobra.Command,
	args []string,
) (CommandResult, error) {
	var outBuf, errBuf bytes.Buffer

	cmd.SetOut(io.MultiWriter(&outBuf, r.stdout))
	cmd.SetErr(io.MultiWriter(&errBuf, r.stderr))
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(ctx)

	result := CommandResult{Stdout: outBuf.String(), Stderr: errBuf.String()}
	if err != nil {
		return result, fmt.Errorf("%s: %w", cmd.Name(), err)
	}

	return result, nil
}
