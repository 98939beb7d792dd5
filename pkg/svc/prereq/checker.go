// Package prereq checks the external tools a workflow depends on.
package prereq

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/devantler-tech/kindlab/pkg/svc/clustererr"
	"github.com/devantler-tech/kindlab/pkg/utils/notify"
)

// Pinger reaches the container runtime daemon.
type Pinger interface {
	Ping(ctx context.Context) error
}

// LookPathFunc resolves a binary on PATH.
type LookPathFunc func(file string) (string, error)

// Check is one tool requirement.
type Check struct {
	Name     string
	Required bool
	Probe    func(ctx context.Context) error
}

// Checker runs prerequisite checks.
type Checker struct {
	checks []Check
	writer io.Writer
}

// NewChecker returns the default checks: a reachable docker daemon (required)
// and kubectl on PATH (optional, only used in the printed hints).
func NewChecker(docker Pinger, lookPath LookPathFunc, writer io.Writer) *Checker {
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	return NewCheckerWithChecks(writer,
		Check{
			Name:     "docker",
			Required: true,
			Probe: func(ctx context.Context) error {
				if docker == nil {
					return fmt.Errorf("%w: docker client unavailable", clustererr.ErrToolMissing)
				}

				return docker.Ping(ctx)
			},
		},
		Check{
			Name: "kubectl",
			Probe: func(context.Context) error {
				_, err := lookPath("kubectl")

				return err
			},
		},
	)
}

// NewCheckerWithChecks creates a Checker running checks in order.
func NewCheckerWithChecks(writer io.Writer, checks ...Check) *Checker {
	return &Checker{checks: checks, writer: writer}
}

// Run stops at the first missing required tool. Missing optional tools only warn.
func (c *Checker) Run(ctx context.Context) error {
	for _, check := range c.checks {
		err := check.Probe(ctx)
		if err == nil {
			continue
		}

		if check.Required {
			return fmt.Errorf("%w: %s: %w", clustererr.ErrToolMissing, check.Name, err)
		}

		notify.Warningf(c.writer, "optional tool %s not available: %v", check.Name, err)
	}

	return nil
}
