package di_test

import (
	"errors"
	"testing"

	"github.com/devantler-tech/kindlab/pkg/di"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errHandler = errors.New("handler error")
	errModule  = errors.New("module error")
)

func TestRuntime_Invoke_Success(t *testing.T) {
	t.Parallel()

	handlerCalled := false

	err := di.New().Invoke(func(di.Injector) error {
		handlerCalled = true

		return nil
	})

	require.NoError(t, err)
	assert.True(t, handlerCalled)
}

func TestRuntime_Invoke_HandlerError(t *testing.T) {
	t.Parallel()

	err := di.New().Invoke(func(di.Injector) error {
		return errHandler
	})

	require.ErrorIs(t, err, errHandler)
}

func TestRuntime_Invoke_ModuleError(t *testing.T) {
	t.Parallel()

	runtime := di.New(func(di.Injector) error { return errModule })

	err := runtime.Invoke(func(di.Injector) error {
		t.Fatal("handler should not be called when module fails")

		return nil
	})

	require.ErrorIs(t, err, errModule)
}

func TestRuntime_Invoke_ModuleOrder(t *testing.T) {
	t.Parallel()

	var order []int

	record := func(n int) di.Module {
		return func(di.Injector) error {
			order = append(order, n)

			return nil
		}
	}

	runtime := di.New(record(1), nil)

	err := runtime.Invoke(func(di.Injector) error {
		order = append(order, 4)

		return nil
	}, record(2), nil, record(3))

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, order)
}

func TestRuntime_Invoke_FreshInjectorPerCall(t *testing.T) {
	t.Parallel()

	type counter struct{ calls int }

	runtime := di.New(func(i di.Injector) error {
		do.Provide(i, func(di.Injector) (*counter, error) {
			return &counter{}, nil
		})

		return nil
	})

	for range 2 {
		err := runtime.Invoke(func(i di.Injector) error {
			c, err := do.Invoke[*counter](i)
			if err != nil {
				return err
			}

			c.calls++
			assert.Equal(t, 1, c.calls)

			return nil
		})
		require.NoError(t, err)
	}
}

func TestRunEWithRuntime(t *testing.T) {
	t.Parallel()

	type config struct{ value string }

	runtime := di.New(func(i di.Injector) error {
		do.ProvideValue(i, &config{value: "configured"})

		return nil
	})

	var (
		received *cobra.Command
		resolved *config
	)

	runE := di.RunEWithRuntime(runtime, func(cmd *cobra.Command, injector di.Injector) error {
		received = cmd

		var err error

		resolved, err = do.Invoke[*config](injector)

		return err
	})

	cmd := &cobra.Command{Use: "test"}

	require.NoError(t, runE(cmd, nil))
	assert.Equal(t, cmd, received)
	assert.Equal(t, "configured", resolved.value)
}

func TestRuntime_With_DoesNotMutateBase(t *testing.T) {
	t.Parallel()

	var calls []string

	record := func(name string) di.Module {
		return func(di.Injector) error {
			calls = append(calls, name)

			return nil
		}
	}

	base := di.New(record("base"))
	extended := base.With(record("override"))

	require.NoError(t, base.Invoke(func(di.Injector) error { return nil }))
	require.NoError(t, extended.Invoke(func(di.Injector) error { return nil }))

	assert.Equal(t, []string{"base", "base", "override"}, calls)
}
