package store

import (
	"context"
	"strconv"

	"github.com/aidcore/go-aid-registry/internal/logger"
	"github.com/aidcore/go-aid-registry/models"
)

// messageRepository is the CSV-backed implementation of [MessageRepository].
// Message rows are append-only and immutable.
type messageRepository struct {
	logger *logger.Logger
	store  *RowStore
	table  Table
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided row store and logger.
func NewMessageRepository(store *RowStore, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		logger: logger,
		store:  store,
		table:  MessagesTable,
	}
}

// AppendMessage persists one message row with a freshly allocated id and
// returns the stored entry.
func (r *messageRepository) AppendMessage(ctx context.Context, message models.MessageEntry) (models.MessageEntry, error) {
	log := logger.FromContext(ctx)

	message.ID = r.store.NextID(ctx, r.table)

	if err := r.store.AppendRow(ctx, r.table, encodeMessage(message)); err != nil {
		log.Err(err).Int64("citizen_id", message.CitizenInternalID).Msg("error persisting message")
		return models.MessageEntry{}, err
	}

	return message, nil
}

// ListMessages returns message rows in file (insertion) order, optionally
// restricted to one citizen. A citizenID of 0 lists every row.
func (r *messageRepository) ListMessages(ctx context.Context, citizenID int64) ([]models.MessageEntry, error) {
	want := strconv.FormatInt(citizenID, 10)

	var messages []models.MessageEntry
	for _, rec := range r.store.ReadAll(ctx, r.table) {
		if citizenID != 0 && rec["citizen_internal_id"] != want {
			continue
		}
		messages = append(messages, decodeMessage(ctx, rec))
	}

	return messages, nil
}

func encodeMessage(m models.MessageEntry) Record {
	return Record{
		"id":                  strconv.FormatInt(m.ID, 10),
		"citizen_internal_id": strconv.FormatInt(m.CitizenInternalID, 10),
		"message":             m.Message,
		"timestamp":           m.Timestamp,
	}
}

func decodeMessage(ctx context.Context, rec Record) models.MessageEntry {
	log := logger.FromContext(ctx)

	return models.MessageEntry{
		ID:                parseIntLenientLog(log, "id", rec["id"]),
		CitizenInternalID: parseIntLenientLog(log, "citizen_internal_id", rec["citizen_internal_id"]),
		Message:           rec["message"],
		Timestamp:         rec["timestamp"],
	}
}
