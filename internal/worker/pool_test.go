package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// countingJob counts how many times it was processed
type countingJob struct {
	count atomic.Int64
	done  chan struct{}
}

func (j *countingJob) Process(ctx context.Context) error {
	j.count.Add(1)
	select {
	case j.done <- struct{}{}:
	default:
	}
	return nil
}

// failingJob always errors; the pool must keep running
type failingJob struct {
	done chan struct{}
}

func (j *failingJob) Process(ctx context.Context) error {
	select {
	case j.done <- struct{}{}:
	default:
	}
	return errors.New("boom")
}

func waitDone(t *testing.T, done chan struct{}, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for jobs")
		}
	}
}

func TestPool_ProcessesJobs(t *testing.T) {
	pool := NewPool(2, 10)
	pool.Start()
	defer pool.Stop()

	job := &countingJob{done: make(chan struct{}, 10)}
	pool.Enqueue(job)
	pool.Enqueue(job)

	waitDone(t, job.done, 2)
	assert.Equal(t, int64(2), job.count.Load())
}

func TestPool_SurvivesJobErrors(t *testing.T) {
	pool := NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	bad := &failingJob{done: make(chan struct{}, 1)}
	good := &countingJob{done: make(chan struct{}, 1)}

	pool.Enqueue(bad)
	waitDone(t, bad.done, 1)

	pool.Enqueue(good)
	waitDone(t, good.done, 1)
	assert.Equal(t, int64(1), good.count.Load())
}

func TestPool_TryEnqueue(t *testing.T) {
	// No workers started: the queue fills and TryEnqueue must not block
	pool := NewPool(1, 1)

	job := &countingJob{done: make(chan struct{}, 1)}
	assert.True(t, pool.TryEnqueue(job))
	assert.False(t, pool.TryEnqueue(job))
}
