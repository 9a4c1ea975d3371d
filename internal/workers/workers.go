package workers

import "context"

// Workers aggregates background workers and starts each one in its own
// goroutine.
type Workers struct {
	workers []Worker
}

// NewWorkers builds a Workers aggregate over the given workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and returns immediately.
// Workers stop when ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		go worker.Run(ctx)
	}
}
