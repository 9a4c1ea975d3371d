// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that runs multiple
// workers in a unified way, and the counter-reconciliation job that keeps
// the citizen id counter file in step with the citizens table.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
