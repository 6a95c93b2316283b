// Package worker runs independent tasks concurrently with an upper bound on the number
// of tasks in flight.
//
// Every task result flows into one mutex-guarded MultiError owned by the Pool, so callers
// read all failures in one place after Wait returns. Wait is a barrier: it never returns
// while a submitted task is still running.
package worker

import (
	"sync"

	"github.com/gruntwork-io/text-tailor/internal/errors"
)

// Task represents a unit of work that can be executed
type Task func() error

// Pool manages concurrent task execution with a configurable number of workers
type Pool struct {
	semaphore  chan struct{}
	errs       *errors.MultiError
	wg         sync.WaitGroup
	errsMu     sync.Mutex
	maxWorkers int
}

// NewWorkerPool creates a new worker pool with the specified maximum number of concurrent workers.
// A non-positive maxWorkers is treated as 1.
func NewWorkerPool(maxWorkers int) *Pool {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	return &Pool{
		maxWorkers: maxWorkers,
		semaphore:  make(chan struct{}, maxWorkers),
		errs:       &errors.MultiError{},
	}
}

// MaxWorkers returns the concurrency limit of the pool.
func (wp *Pool) MaxWorkers() int {
	return wp.maxWorkers
}

// Submit starts task on its own goroutine as soon as a worker slot is free.
func (wp *Pool) Submit(task Task) {
	wp.wg.Add(1)

	go func() {
		defer wp.wg.Done()

		wp.semaphore <- struct{}{}

		defer func() { <-wp.semaphore }()

		wp.appendError(wp.run(task))
	}()
}

// Wait blocks until all tasks are completed and returns the collected errors.
func (wp *Pool) Wait() error {
	wp.wg.Wait()

	wp.errsMu.Lock()
	defer wp.errsMu.Unlock()

	return wp.errs.ErrorOrNil()
}

// run executes task, turning a panic into a returned error.
func (wp *Pool) run(task Task) (err error) {
	defer errors.Recover(func(cause error) {
		err = cause
	})

	return task()
}

func (wp *Pool) appendError(err error) {
	if err == nil {
		return
	}

	wp.errsMu.Lock()
	wp.errs = wp.errs.Append(err)
	wp.errsMu.Unlock()
}
