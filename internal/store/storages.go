package store

import (
	"context"

	"github.com/aidcore/go-aid-registry/internal/config"
	"github.com/aidcore/go-aid-registry/internal/logger"
)

// Storages aggregates the row store and the typed repositories built on it.
type Storages struct {
	RowStore *RowStore

	CitizenRepository    CitizenRepository
	AdminRepository      AdminRepository
	AidHistoryRepository AidHistoryRepository
	MessageRepository    MessageRepository
}

// NewStorages wires the row store and all repositories from the storage
// configuration.
func NewStorages(cfg config.Storage, logger *logger.Logger) *Storages {
	rowStore := NewRowStore(cfg, logger)

	return &Storages{
		RowStore:             rowStore,
		CitizenRepository:    NewCitizenRepository(rowStore, logger),
		AdminRepository:      NewAdminRepository(rowStore, logger),
		AidHistoryRepository: NewAidHistoryRepository(rowStore, logger),
		MessageRepository:    NewMessageRepository(rowStore, logger),
	}
}

// Setup initializes the data directory: every table file gets created with
// its header if absent, the counter file gets created with 0 if absent, and
// the counter is reconciled from the citizens table's current maximum id.
//
// Idempotent; a counter reconcile failure is logged and tolerated because
// the counter is a cache, never the source of truth.
func (s *Storages) Setup(ctx context.Context) error {
	if err := s.RowStore.Setup(ctx, CitizensTable, AdminsTable, AidHistoryTable, MessagesTable); err != nil {
		return err
	}

	if err := s.RowStore.SyncCitizenCounter(ctx, CitizensTable); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("could not sync citizen id counter")
	}

	return nil
}
