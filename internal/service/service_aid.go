package service

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"

	"github.com/aidcore/go-aid-registry/internal/logger"
	"github.com/aidcore/go-aid-registry/internal/metrics"
	"github.com/aidcore/go-aid-registry/internal/store"
	"github.com/aidcore/go-aid-registry/models"
)

// aidService is the concrete implementation of AidService: aid-history and
// message recording plus the history-based "received aid" check.
type aidService struct {
	aidHistoryRepository store.AidHistoryRepository
	messageRepository    store.MessageRepository
	clock                clock.Clock
	metrics              *metrics.Metrics
	logger               *logger.Logger
}

// NewAidService constructs an AidService over the history and message
// repositories. clk stamps the row timestamps.
func NewAidService(storages *store.Storages, clk clock.Clock, m *metrics.Metrics, logger *logger.Logger) AidService {
	return &aidService{
		aidHistoryRepository: storages.AidHistoryRepository,
		messageRepository:    storages.MessageRepository,
		clock:                clk,
		metrics:              m,
		logger:               logger,
	}
}

// RecordAidEvent appends one aid-history entry for the citizen.
//
// An empty nextDate marks a completed aid action; a non-empty nextDate marks
// a scheduled future action. The citizen id must be positive; whether it
// references an existing citizen is the caller's responsibility.
func (a *aidService) RecordAidEvent(ctx context.Context, citizenID int64, entryType, date, nextDate string) error {
	ctx, log := withOperation(ctx, "record_aid_event")

	if citizenID <= 0 {
		log.Error().Int64("citizen_id", citizenID).Msg("invalid citizen id")
		return ErrInvalidDataProvided
	}

	entry := models.AidHistoryEntry{
		CitizenInternalID: citizenID,
		EntryType:         entryType,
		Date:              date,
		NextDate:          nextDate,
		Timestamp:         a.clock.Now().Format(models.TimeLayout),
	}

	if _, err := a.aidHistoryRepository.AppendAidEntry(ctx, entry); err != nil {
		return fmt.Errorf("recording aid event failed: %w", err)
	}

	a.metrics.IncrementRowsAppended("aid_history")
	return nil
}

// HasReceivedAid reports whether the citizen has at least one history row
// with an empty next_date, i.e. a completed aid action.
//
// This is the history-based definition of "received aid". The citizen
// listing filter uses a priority-score proxy instead; the two definitions
// are deliberately kept distinct and can disagree.
func (a *aidService) HasReceivedAid(ctx context.Context, citizenID int64) (bool, error) {
	ctx, _ = withOperation(ctx, "has_received_aid")

	return a.aidHistoryRepository.HasCompletedEntry(ctx, citizenID)
}

// ListAidHistory returns aid-history rows in insertion order, restricted to
// one citizen when citizenID is positive; 0 lists every row.
func (a *aidService) ListAidHistory(ctx context.Context, citizenID int64) ([]models.AidHistoryEntry, error) {
	ctx, _ = withOperation(ctx, "list_aid_history")

	return a.aidHistoryRepository.ListAidHistory(ctx, citizenID)
}

// RecordMessage appends one free-text message row for the citizen with a
// fresh id and the current timestamp.
func (a *aidService) RecordMessage(ctx context.Context, citizenID int64, text string) error {
	ctx, log := withOperation(ctx, "record_message")

	if citizenID <= 0 {
		log.Error().Int64("citizen_id", citizenID).Msg("invalid citizen id")
		return ErrInvalidDataProvided
	}

	message := models.MessageEntry{
		CitizenInternalID: citizenID,
		Message:           text,
		Timestamp:         a.clock.Now().Format(models.TimeLayout),
	}

	if _, err := a.messageRepository.AppendMessage(ctx, message); err != nil {
		return fmt.Errorf("recording message failed: %w", err)
	}

	a.metrics.IncrementRowsAppended("messages")
	return nil
}

// ListMessages returns message rows in insertion order, restricted to one
// citizen when citizenID is positive; 0 lists every row.
func (a *aidService) ListMessages(ctx context.Context, citizenID int64) ([]models.MessageEntry, error) {
	ctx, _ = withOperation(ctx, "list_messages")

	return a.messageRepository.ListMessages(ctx, citizenID)
}
