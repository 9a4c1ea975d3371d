package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aidcore/go-aid-registry/internal/logger"
)

// counterFileName is the side-car cache of the next citizen id to allocate.
// It is informational only and never the source of truth: the scan-based
// maximum over the citizens table always wins when the table has rows.
const counterFileName = "citizen_id_counter.txt"

// CounterPath returns the full path of the citizen id counter file.
func (s *RowStore) CounterPath() string {
	return filepath.Join(s.dir, counterFileName)
}

// readCounter reads the counter file and parses it as an integer.
// A missing, empty, or corrupt counter yields (0, false); the counter is a
// cache, so none of those conditions is an error.
func (s *RowStore) readCounter(ctx context.Context) (int64, bool) {
	log := logger.FromContext(ctx)

	raw, err := os.ReadFile(s.CounterPath())
	if err != nil {
		log.Debug().Err(err).Msg("citizen id counter file not readable")
		return 0, false
	}

	content := strings.TrimSpace(string(raw))
	if content == "" {
		return 0, false
	}

	value, err := strconv.ParseInt(content, 10, 64)
	if err != nil {
		log.Warn().Str("content", content).Msg("citizen id counter file is corrupt, ignoring")
		return 0, false
	}

	return value, true
}

// WriteCounter persists value as the next citizen id to allocate.
func (s *RowStore) WriteCounter(ctx context.Context, value int64) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingCounter, err)
	}

	if err := os.WriteFile(s.CounterPath(), []byte(strconv.FormatInt(value, 10)), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingCounter, err)
	}

	return nil
}

// NextCitizenID allocates the next citizen id.
//
// The id is 1 + the maximum existing id found by a full scan of the citizens
// table. When the table holds no parseable ids (first-run bootstrap, or a
// wiped table), the counter file serves as a fallback so allocation resumes
// from where it left off instead of restarting at 1. The freshly allocated id
// is persisted back into the counter file; a failure there is logged and
// ignored, since the counter is only a cache.
func (s *RowStore) NextCitizenID(ctx context.Context, citizens Table) int64 {
	log := logger.FromContext(ctx)

	maxID, found := s.maxID(ctx, citizens)
	if !found {
		if counter, ok := s.readCounter(ctx); ok && counter > 0 {
			maxID = counter - 1
		}
	}

	nextID := maxID + 1
	if err := s.WriteCounter(ctx, nextID); err != nil {
		log.Warn().Err(err).Int64("next_id", nextID).Msg("could not update citizen id counter")
	}

	return nextID
}

// SyncCitizenCounter reconciles the counter file with the citizens table,
// setting it to max(id)+1. Nothing is written when the table holds no
// parseable ids, so a populated counter survives a missing table.
//
// Called at setup time and periodically by the counter-sync worker; callers
// treat a failure as a logged warning, never as fatal.
func (s *RowStore) SyncCitizenCounter(ctx context.Context, citizens Table) error {
	maxID, found := s.maxID(ctx, citizens)
	if !found {
		return nil
	}

	return s.WriteCounter(ctx, maxID+1)
}
