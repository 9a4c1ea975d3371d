package store

import (
	"context"
	"strconv"

	"github.com/aidcore/go-aid-registry/internal/logger"
	"github.com/aidcore/go-aid-registry/models"
)

// adminRepository is the CSV-backed implementation of [AdminRepository].
// Admin rows are append-only; there is no update or delete.
type adminRepository struct {
	logger *logger.Logger
	store  *RowStore
	table  Table
}

// NewAdminRepository constructs an [AdminRepository] backed by the provided
// row store and logger.
func NewAdminRepository(store *RowStore, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		logger: logger,
		store:  store,
		table:  AdminsTable,
	}
}

// CreateAdmin persists a new admin row and returns the admin with its
// server-assigned ID.
//
// Error handling:
//   - duplicate username → [ErrUsernameExists];
//   - append failure → wrapped [ErrAppendingRow].
func (r *adminRepository) CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	for _, rec := range r.store.ReadAll(ctx, r.table) {
		if rec["username"] == admin.Username {
			log.Error().Str("username", admin.Username).Msg("admin already exists")
			return models.Admin{}, ErrUsernameExists
		}
	}

	admin.ID = r.store.NextID(ctx, r.table)

	if err := r.store.AppendRow(ctx, r.table, encodeAdmin(admin)); err != nil {
		log.Err(err).Str("username", admin.Username).Msg("error persisting admin")
		return models.Admin{}, err
	}

	log.Info().Int64("id", admin.ID).Str("username", admin.Username).Msg("admin registered")
	return admin, nil
}

// FindAdminByUsername retrieves one admin by username.
// Returns [ErrAdminNotFound] when no row matches.
func (r *adminRepository) FindAdminByUsername(ctx context.Context, username string) (models.Admin, error) {
	for _, rec := range r.store.ReadAll(ctx, r.table) {
		if rec["username"] == username {
			return decodeAdmin(ctx, rec), nil
		}
	}

	return models.Admin{}, ErrAdminNotFound
}

func encodeAdmin(a models.Admin) Record {
	return Record{
		"id":              strconv.FormatInt(a.ID, 10),
		"username":        a.Username,
		"password_hash":   a.PasswordHash,
		"full_name":       a.FullName,
		"organization_id": a.OrganizationID,
		"role":            a.Role,
	}
}

func decodeAdmin(ctx context.Context, rec Record) models.Admin {
	log := logger.FromContext(ctx)

	return models.Admin{
		ID:             parseIntLenientLog(log, "id", rec["id"]),
		Username:       rec["username"],
		PasswordHash:   rec["password_hash"],
		FullName:       rec["full_name"],
		OrganizationID: rec["organization_id"],
		Role:           rec["role"],
	}
}
