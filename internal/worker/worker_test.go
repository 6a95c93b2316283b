package worker_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/gruntwork-io/text-tailor/internal/errors"
	"github.com/gruntwork-io/text-tailor/internal/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllTasksCompleteWithoutErrors(t *testing.T) {
	t.Parallel()

	wp := worker.NewWorkerPool(5)

	var counter int32

	for range 10 {
		wp.Submit(func() error {
			atomic.AddInt32(&counter, 1)
			return nil
		})
	}

	require.NoError(t, wp.Wait())
	assert.Equal(t, int32(10), atomic.LoadInt32(&counter))
}

func TestSomeTasksReturnErrors(t *testing.T) {
	t.Parallel()

	wp := worker.NewWorkerPool(3)

	var successCount int32

	for i := range 10 {
		wp.Submit(func() error {
			if i%2 == 0 {
				return errors.Errorf("task %d failed", i)
			}

			atomic.AddInt32(&successCount, 1)

			return nil
		})
	}

	err := wp.Wait()
	require.Error(t, err)

	assert.Len(t, errors.UnwrapMultiErrors(err), 5)
	assert.Equal(t, int32(5), atomic.LoadInt32(&successCount))
}

func TestConcurrencyIsCapped(t *testing.T) {
	t.Parallel()

	const maxWorkers = 2

	wp := worker.NewWorkerPool(maxWorkers)

	var running, peak int32

	for range 8 {
		wp.Submit(func() error {
			cur := atomic.AddInt32(&running, 1)

			for {
				old := atomic.LoadInt32(&peak)
				if cur <= old || atomic.CompareAndSwapInt32(&peak, old, cur) {
					break
				}
			}

			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&running, -1)

			return nil
		})
	}

	require.NoError(t, wp.Wait())
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(maxWorkers))
}

func TestNonPositiveMaxWorkers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, worker.NewWorkerPool(0).MaxWorkers())
	assert.Equal(t, 1, worker.NewWorkerPool(-3).MaxWorkers())
}

func TestPanicBecomesError(t *testing.T) {
	t.Parallel()

	wp := worker.NewWorkerPool(2)

	var finished int32

	wp.Submit(func() error {
		panic("unexpected")
	})
	wp.Submit(func() error {
		atomic.AddInt32(&finished, 1)
		return nil
	})

	err := wp.Wait()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected")
	assert.Equal(t, int32(1), atomic.LoadInt32(&finished))
}

func TestWaitIsABarrier(t *testing.T) {
	t.Parallel()

	wp := worker.NewWorkerPool(2)

	var finished int32

	for range 4 {
		wp.Submit(func() error {
			time.Sleep(20 * time.Millisecond)
			atomic.AddInt32(&finished, 1)

			return nil
		})
	}

	require.NoError(t, wp.Wait())
	assert.Equal(t, int32(4), atomic.LoadInt32(&finished))
}
