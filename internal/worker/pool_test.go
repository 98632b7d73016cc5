package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

type blockingJob struct {
	release chan struct{}
}

func (j *blockingJob) Process(ctx context.Context) error {
	<-j.release
	return nil
}

func (j *blockingJob) Name() string { return "blocking" }

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(job))

	// Wait a bit for workers to process
	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	if atomic.LoadInt32(&executed) != TestExpectedJobCount {
		t.Errorf("Expected %d jobs executed, got %d", TestExpectedJobCount, executed)
	}
}

func TestPool_EnqueueDropsWhenFull(t *testing.T) {
	// not started: nothing drains the queue
	pool := NewPool(1, 1)

	var executed int32
	assert.True(t, pool.Enqueue(&testJob{executed: &executed}))
	assert.False(t, pool.Enqueue(&testJob{executed: &executed}))
}

func TestPool_JobsGetDeadline(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	defer pool.Stop()

	got := make(chan bool, 1)
	pool.Enqueue(jobFunc(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		got <- ok
		return nil
	}))

	select {
	case ok := <-got:
		assert.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("job did not run")
	}
}

func TestJobName(t *testing.T) {
	assert.Equal(t, "blocking", jobName(&blockingJob{}))
	assert.Equal(t, "unnamed", jobName(&testJob{}))
	assert.Equal(t, "pending_tick", jobName(&PendingTickJob{}))
	assert.Equal(t, "resync", jobName(&ResyncJob{}))
}

type jobFunc func(ctx context.Context) error

func (f jobFunc) Process(ctx context.Context) error { return f(ctx) }
