package service

import (
	"context"
	"fmt"

	"github.com/aidcore/go-aid-registry/internal/logger"
	"github.com/aidcore/go-aid-registry/internal/metrics"
	"github.com/aidcore/go-aid-registry/internal/store"
	"github.com/aidcore/go-aid-registry/models"
)

// citizenService is the concrete implementation of CitizenService: listing,
// point lookup, and point update of citizen records.
type citizenService struct {
	citizenRepository store.CitizenRepository
	metrics           *metrics.Metrics
	logger            *logger.Logger
}

// NewCitizenService constructs a CitizenService over the given repository.
func NewCitizenService(citizenRepository store.CitizenRepository, m *metrics.Metrics, logger *logger.Logger) CitizenService {
	return &citizenService{
		citizenRepository: citizenRepository,
		metrics:           m,
		logger:            logger,
	}
}

// ListCitizens loads every citizen into memory, optionally filtered by the
// score-based "received aid" proxy and sorted by a declared column.
//
// Note that the filter keys on priority_score, not on aid history; it is a
// distinct concept from AidService.HasReceivedAid and the two can disagree
// for the same citizen. Records are returned as stored, hashes included:
// listing is a trusted back-office operation.
func (c *citizenService) ListCitizens(ctx context.Context, filter models.CitizenFilter, sortBy string) ([]models.Citizen, error) {
	ctx, _ = withOperation(ctx, "list_citizens")

	return c.citizenRepository.ListCitizens(ctx, filter, sortBy)
}

// GetCitizen retrieves one citizen by internal id with SecretCodeHash
// stripped. Returns store.ErrCitizenNotFound when no row matches.
func (c *citizenService) GetCitizen(ctx context.Context, id int64) (models.Citizen, error) {
	ctx, _ = withOperation(ctx, "get_citizen")

	citizen, err := c.citizenRepository.FindCitizenByID(ctx, id)
	if err != nil {
		return models.Citizen{}, err
	}

	citizen.SecretCodeHash = ""
	return citizen, nil
}

// UpdateCitizen applies the given field values to one citizen row via an
// atomic full-table rewrite and returns the updated record.
//
// The "id" column and undeclared keys are silently skipped; malformed
// numeric values return an error wrapping store.ErrValidation and persist
// nothing. This write path is strict where the read path is tolerant.
func (c *citizenService) UpdateCitizen(ctx context.Context, id int64, fields map[string]string) (models.Citizen, error) {
	ctx, log := withOperation(ctx, "update_citizen")

	updated, err := c.citizenRepository.UpdateCitizen(ctx, id, fields)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("citizen update failed")
		return models.Citizen{}, fmt.Errorf("citizen update failed: %w", err)
	}

	return updated, nil
}
