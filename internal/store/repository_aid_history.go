package store

import (
	"context"
	"strconv"

	"github.com/aidcore/go-aid-registry/internal/logger"
	"github.com/aidcore/go-aid-registry/models"
)

// aidHistoryRepository is the CSV-backed implementation of
// [AidHistoryRepository]. History rows are append-only and immutable.
type aidHistoryRepository struct {
	logger *logger.Logger
	store  *RowStore
	table  Table
}

// NewAidHistoryRepository constructs an [AidHistoryRepository] backed by the
// provided row store and logger.
func NewAidHistoryRepository(store *RowStore, logger *logger.Logger) AidHistoryRepository {
	logger.Debug().Msg("creating aid history repository")
	return &aidHistoryRepository{
		logger: logger,
		store:  store,
		table:  AidHistoryTable,
	}
}

// AppendAidEntry persists one aid-history row with a freshly allocated id
// and returns the stored entry. The referenced citizen id is not checked
// here; referential integrity is the caller's responsibility.
func (r *aidHistoryRepository) AppendAidEntry(ctx context.Context, entry models.AidHistoryEntry) (models.AidHistoryEntry, error) {
	log := logger.FromContext(ctx)

	entry.ID = r.store.NextID(ctx, r.table)

	if err := r.store.AppendRow(ctx, r.table, encodeAidEntry(entry)); err != nil {
		log.Err(err).Int64("citizen_id", entry.CitizenInternalID).Msg("error persisting aid history entry")
		return models.AidHistoryEntry{}, err
	}

	return entry, nil
}

// ListAidHistory returns history rows in file (insertion) order, optionally
// restricted to one citizen. A citizenID of 0 lists every row.
func (r *aidHistoryRepository) ListAidHistory(ctx context.Context, citizenID int64) ([]models.AidHistoryEntry, error) {
	want := strconv.FormatInt(citizenID, 10)

	var entries []models.AidHistoryEntry
	for _, rec := range r.store.ReadAll(ctx, r.table) {
		if citizenID != 0 && rec["citizen_internal_id"] != want {
			continue
		}
		entries = append(entries, decodeAidEntry(ctx, rec))
	}

	return entries, nil
}

// HasCompletedEntry reports whether any history row for the citizen has an
// empty next_date, i.e. a completed aid action with no follow-up scheduled.
// This is the history-based "received aid" definition, distinct from the
// priority-score proxy used by citizen listing.
func (r *aidHistoryRepository) HasCompletedEntry(ctx context.Context, citizenID int64) (bool, error) {
	want := strconv.FormatInt(citizenID, 10)

	for _, rec := range r.store.ReadAll(ctx, r.table) {
		if rec["citizen_internal_id"] == want && rec["next_date"] == "" {
			return true, nil
		}
	}

	return false, nil
}

func encodeAidEntry(e models.AidHistoryEntry) Record {
	return Record{
		"id":                  strconv.FormatInt(e.ID, 10),
		"citizen_internal_id": strconv.FormatInt(e.CitizenInternalID, 10),
		"entry_type":          e.EntryType,
		"date":                e.Date,
		"next_date":           e.NextDate,
		"timestamp":           e.Timestamp,
	}
}

func decodeAidEntry(ctx context.Context, rec Record) models.AidHistoryEntry {
	log := logger.FromContext(ctx)

	return models.AidHistoryEntry{
		ID:                parseIntLenientLog(log, "id", rec["id"]),
		CitizenInternalID: parseIntLenientLog(log, "citizen_internal_id", rec["citizen_internal_id"]),
		EntryType:         rec["entry_type"],
		Date:              rec["date"],
		NextDate:          rec["next_date"],
		Timestamp:         rec["timestamp"],
	}
}
