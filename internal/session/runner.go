package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/educonnect/educonnect-api/pkg/jobs"
)

// QueueRunner executes session work on the shared background queue.
type QueueRunner struct {
	queue *jobs.Queue
}

// NewQueueRunner wraps an already-started queue.
func NewQueueRunner(queue *jobs.Queue) *QueueRunner {
	return &QueueRunner{queue: queue}
}

// Submit implements Runner.
func (r *QueueRunner) Submit(taskType string, fn func(context.Context)) error {
	return r.queue.Enqueue(jobs.Task{
		ID:      uuid.NewString(),
		Type:    taskType,
		Payload: fn,
	})
}

// TaskHandler adapts queued tasks back into their closures. Wire this as
// the queue handler when constructing the queue for a QueueRunner.
func TaskHandler(ctx context.Context, task jobs.Task) error {
	if fn, ok := task.Payload.(func(context.Context)); ok {
		fn(ctx)
	}
	return nil
}

// InlineRunner runs submitted work synchronously on the calling
// goroutine. Used in tests to make asynchronous transitions
// deterministic.
type InlineRunner struct{}

// Submit implements Runner.
func (InlineRunner) Submit(taskType string, fn func(context.Context)) error {
	fn(context.Background())
	return nil
}
