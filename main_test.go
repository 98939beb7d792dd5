package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSafelyReturnsRunnerExitCode(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer

	code := runSafely([]string{"list"}, func(args []string) int {
		assert.Equal(t, []string{"list"}, args)

		return 3
	}, &errOut)

	assert.Equal(t, 3, code)
	assert.Empty(t, errOut.String())
}

func TestRunSafelyRecoversPanics(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer

	code := runSafely(nil, func([]string) int {
		panic("boom")
	}, &errOut)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "panic recovered: boom")
}

func TestRunWithArgsVersion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, runWithArgs([]string{"--version"}))
}

func TestRunWithArgsUnknownCommand(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, runWithArgs([]string{"frobnicate"}))
}
