package workers

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"

	"github.com/aidcore/go-aid-registry/internal/config"
	"github.com/aidcore/go-aid-registry/internal/logger"
	"github.com/aidcore/go-aid-registry/internal/store"
)

func TestCounterSyncJob_ReconcilesOnTick(t *testing.T) {
	log := logger.Nop()
	ctx, cancel := context.WithCancel(log.WithContext(context.Background()))
	defer cancel()

	rowStore := store.NewRowStore(config.Storage{Files: config.Files{DataDir: t.TempDir()}}, log)
	require.NoError(t, rowStore.AppendRow(ctx, store.CitizensTable, store.Record{"id": "4", "national_id": "a"}))

	// Leave the counter stale; the job must heal it on its first tick.
	require.NoError(t, rowStore.WriteCounter(ctx, 1))

	mockClock := clock.NewMock()
	job := NewCounterSyncJob(rowStore, config.Workers{CounterSyncInterval: time.Minute}, mockClock, log)

	done := make(chan struct{})
	go func() {
		defer close(done)
		job.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		mockClock.Add(time.Minute)
		raw, err := os.ReadFile(rowStore.CounterPath())
		return err == nil && string(raw) == "5"
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop on context cancellation")
	}
}

func TestCounterSyncJob_DisabledWithoutInterval(t *testing.T) {
	log := logger.Nop()
	rowStore := store.NewRowStore(config.Storage{Files: config.Files{DataDir: t.TempDir()}}, log)

	job := NewCounterSyncJob(rowStore, config.Workers{}, clock.NewMock(), log)

	done := make(chan struct{})
	go func() {
		defer close(done)
		job.Run(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled job should return immediately")
	}
}

func TestWorkers_RunStartsEveryWorker(t *testing.T) {
	started := make(chan string, 2)

	w := NewWorkers(
		workerFunc(func(context.Context) { started <- "first" }),
		workerFunc(func(context.Context) { started <- "second" }),
	)
	w.Run(context.Background())

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case name := <-started:
			seen[name] = true
		case <-time.After(time.Second):
			t.Fatal("worker did not start")
		}
	}
	require.True(t, seen["first"] && seen["second"])
}

type workerFunc func(ctx context.Context)

func (f workerFunc) Run(ctx context.Context) { f(ctx) }
