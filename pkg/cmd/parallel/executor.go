// Package parallel fans per-cluster checks out over a bounded number of goroutines.
package parallel

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

const (
	minConcurrency = 2
	// maxConcurrencyCap keeps concurrent docker and API server queries modest.
	maxConcurrencyCap = 8
)

// DefaultMaxConcurrency returns the default concurrency based on available CPUs.
func DefaultMaxConcurrency() int64 {
	numCPU := int64(runtime.NumCPU())

	return min(max(numCPU, minConcurrency), maxConcurrencyCap)
}

// Executor runs tasks with bounded parallelism.
type Executor struct {
	maxConcurrency int64
}

// NewExecutor creates an executor. If maxConcurrency <= 0, DefaultMaxConcurrency() is used.
func NewExecutor(maxConcurrency int64) *Executor {
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency()
	}

	return &Executor{maxConcurrency: maxConcurrency}
}

// Task is a unit of work run by the executor.
type Task func(ctx context.Context) error

// Execute runs every task and waits for all of them.
//
// A failing task does not cancel its siblings; the first error is returned once
// all tasks have finished.
func (executor *Executor) Execute(ctx context.Context, tasks ...Task) error {
	switch len(tasks) {
	case 0:
		return nil
	case 1:
		return tasks[0](ctx)
	}

	sem := semaphore.NewWeighted(executor.maxConcurrency)

	var group errgroup.Group

	for _, task := range tasks {
		group.Go(func() error {
			err := sem.Acquire(ctx, 1)
			if err != nil {
				return fmt.Errorf("acquire semaphore: %w", err)
			}

			defer sem.Release(1)

			return task(ctx)
		})
	}

	err := group.Wait()
	if err != nil {
		return fmt.Errorf("parallel execution: %w", err)
	}

	return nil
}

// Map applies fn to every item concurrently and returns the results in input order.
// Each result is produced independently of the others.
func Map[T, R any](
	ctx context.Context,
	executor *Executor,
	items []T,
	fn func(ctx context.Context, item T) R,
) ([]R, error) {
	results := make([]R, len(items))
	tasks := make([]Task, 0, len(items))

	for index, item := range items {
		tasks = append(tasks, func(ctx context.Context) error {
			results[index] = fn(ctx, item)

			return nil
		})
	}

	err := executor.Execute(ctx, tasks...)
	if err != nil {
		return nil, err
	}

	return results, nil
}
