package workers

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/aidcore/go-aid-registry/internal/config"
	"github.com/aidcore/go-aid-registry/internal/logger"
	"github.com/aidcore/go-aid-registry/internal/store"
)

// counterSyncJob periodically reconciles the citizen id counter file with
// the citizens table's current maximum id, so a counter left stale, missing,
// or corrupt by a crash or manual edit heals without operator intervention.
//
// Failures are logged and the job keeps running: the counter is a cache and
// the scan-based allocator stays correct without it.
type counterSyncJob struct {
	store    *store.RowStore
	interval time.Duration
	clock    clock.Clock
	logger   *logger.Logger
}

// NewCounterSyncJob builds the reconciliation worker from the workers
// configuration. A zero or negative interval disables the periodic job.
func NewCounterSyncJob(rowStore *store.RowStore, cfg config.Workers, clk clock.Clock, logger *logger.Logger) Worker {
	return &counterSyncJob{
		store:    rowStore,
		interval: cfg.CounterSyncInterval,
		clock:    clk,
		logger:   logger,
	}
}

// Run blocks, reconciling the counter once per interval until ctx is
// cancelled. Returns immediately when the job is disabled.
func (j *counterSyncJob) Run(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Debug().Msg("counter sync job disabled")
		return
	}

	ctx = j.logger.WithContext(ctx)

	ticker := j.clock.Ticker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := j.store.SyncCitizenCounter(ctx, store.CitizensTable); err != nil {
				j.logger.Warn().Err(err).Msg("could not sync citizen id counter")
				continue
			}
			j.logger.Debug().Msg("citizen id counter synced")
		}
	}
}
