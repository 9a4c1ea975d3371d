package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/benbjohnson/clock"

	"github.com/aidcore/go-aid-registry/internal/config"
	"github.com/aidcore/go-aid-registry/internal/logger"
	"github.com/aidcore/go-aid-registry/internal/metrics"
	"github.com/aidcore/go-aid-registry/internal/store"
	"github.com/aidcore/go-aid-registry/internal/utils"
	"github.com/aidcore/go-aid-registry/models"
)

// authService is the concrete implementation of AuthService.
// It handles citizen and admin registration and credential verification
// using the typed repositories for persistence and the fixed-salt SHA-256
// scheme for credential hashing.
//
// There is no lockout, rate limiting, or timing-attack mitigation: every
// check is a plain full-table scan, acceptable only for the stated
// single-instance, non-adversarial scope.
type authService struct {
	// citizenRepository and adminRepository are the data-access layers used
	// to create and look up accounts.
	citizenRepository store.CitizenRepository
	adminRepository   store.AdminRepository

	// hashSalt is the global salt concatenated with plaintext secrets
	// before hashing. Must match the value used when existing rows were
	// written.
	hashSalt string

	// clock supplies the registration timestamp; injectable for tests.
	clock clock.Clock

	// metrics counts registration and authentication outcomes; may be nil.
	metrics *metrics.Metrics

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the citizen and admin
// repositories and populated with the hash salt from cfg.
//
// The returned service holds no mutable state after construction.
func NewAuthService(storages *store.Storages, cfg config.App, clk clock.Clock, m *metrics.Metrics, logger *logger.Logger) AuthService {
	return &authService{
		citizenRepository: storages.CitizenRepository,
		adminRepository:   storages.AdminRepository,
		hashSalt:          cfg.HashSalt,
		clock:             clk,
		metrics:           m,
		logger:            logger,
	}
}

// AuthenticateAdmin verifies an admin login.
//
// The supplied password is hashed with the configured salt and compared
// against the stored hash of the row matching username. Unknown usernames
// and wrong passwords are indistinguishable to the caller: both return
// ErrInvalidCredentials. The error is never a panic and carries no hint
// about which check failed.
func (a *authService) AuthenticateAdmin(ctx context.Context, username, password string) (models.Admin, error) {
	ctx, log := withOperation(ctx, "authenticate_admin")

	admin, err := a.adminRepository.FindAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrAdminNotFound) {
			log.Debug().Str("username", username).Msg("admin login rejected")
			a.metrics.IncrementAuthAttempt("admin", "rejected")
			return models.Admin{}, ErrInvalidCredentials
		}
		a.metrics.IncrementAuthAttempt("admin", "error")
		return models.Admin{}, fmt.Errorf("admin lookup failed: %w", err)
	}

	if admin.PasswordHash != utils.HashSecret(password, a.hashSalt) {
		log.Debug().Str("username", username).Msg("admin login rejected")
		a.metrics.IncrementAuthAttempt("admin", "rejected")
		return models.Admin{}, ErrInvalidCredentials
	}

	a.metrics.IncrementAuthAttempt("admin", "ok")
	return admin, nil
}

// AuthenticateCitizen verifies a citizen login by national id and secret
// code.
//
// A row matches only when the national id, the salted hash of the secret
// code, and is_active == true all hold; a wrong secret, an unknown national
// id, and a deactivated row each independently produce ErrInvalidCredentials.
// On success the returned record has SecretCodeHash stripped.
func (a *authService) AuthenticateCitizen(ctx context.Context, nationalID, secretCode string) (models.Citizen, error) {
	ctx, log := withOperation(ctx, "authenticate_citizen")

	citizen, err := a.citizenRepository.FindCitizenByNationalID(ctx, nationalID)
	if err != nil {
		if errors.Is(err, store.ErrCitizenNotFound) {
			log.Debug().Str("national_id", nationalID).Msg("citizen login rejected")
			a.metrics.IncrementAuthAttempt("citizen", "rejected")
			return models.Citizen{}, ErrInvalidCredentials
		}
		a.metrics.IncrementAuthAttempt("citizen", "error")
		return models.Citizen{}, fmt.Errorf("citizen lookup failed: %w", err)
	}

	if citizen.SecretCodeHash != utils.HashSecret(secretCode, a.hashSalt) || !citizen.IsActive {
		log.Debug().Str("national_id", nationalID).Msg("citizen login rejected")
		a.metrics.IncrementAuthAttempt("citizen", "rejected")
		return models.Citizen{}, ErrInvalidCredentials
	}

	citizen.SecretCodeHash = ""
	a.metrics.IncrementAuthAttempt("citizen", "ok")
	return citizen, nil
}

// RegisterCitizen creates a new citizen account.
//
// NationalID, SecretCode, and FullName are required; a missing one returns
// ErrInvalidDataProvided. The secret code is hashed before anything is
// persisted, the registration date is stamped from the injected clock,
// is_active defaults to true, and numeric fields default to zero.
//
// Returns the created record with the hash stripped, or:
//   - ErrInvalidDataProvided if a required field is empty;
//   - store.ErrNationalIDExists if the national id is already registered
//     (the existing row is left untouched);
//   - a wrapped storage error if the append fails.
func (a *authService) RegisterCitizen(ctx context.Context, reg models.CitizenRegistration) (models.Citizen, error) {
	ctx, log := withOperation(ctx, "register_citizen")

	if reg.NationalID == "" || reg.SecretCode == "" || reg.FullName == "" {
		log.Error().Str("national_id", reg.NationalID).Msg("required citizen fields missing")
		a.metrics.IncrementRegistration("citizen", "invalid")
		return models.Citizen{}, ErrInvalidDataProvided
	}

	citizen := models.Citizen{
		NationalID:       reg.NationalID,
		FullName:         reg.FullName,
		DateOfBirth:      reg.DateOfBirth,
		PhoneNumber:      reg.PhoneNumber,
		Address:          reg.Address,
		HouseholdMembers: reg.HouseholdMembers,
		Dependents:       reg.Dependents,
		NeedsDescription: reg.NeedsDescription,
		PriorityScore:    reg.PriorityScore,
		IsActive:         true,
		RegistrationDate: a.clock.Now().Format(models.TimeLayout),
		SecretCodeHash:   utils.HashSecret(reg.SecretCode, a.hashSalt),
	}

	created, err := a.citizenRepository.CreateCitizen(ctx, citizen)
	if err != nil {
		if errors.Is(err, store.ErrNationalIDExists) {
			a.metrics.IncrementRegistration("citizen", "duplicate")
			return models.Citizen{}, err
		}
		a.metrics.IncrementRegistration("citizen", "error")
		return models.Citizen{}, fmt.Errorf("citizen creation ended with error: %w", err)
	}

	created.SecretCodeHash = ""
	a.metrics.IncrementRegistration("citizen", "ok")
	return created, nil
}

// RegisterAdmin creates a new admin account. Unlike citizen registration it
// reports success only, not the created record.
//
// Returns:
//   - ErrInvalidDataProvided if username or password is empty;
//   - store.ErrUsernameExists if the username is already taken;
//   - a wrapped storage error if the append fails.
func (a *authService) RegisterAdmin(ctx context.Context, username, password, fullName, organizationID, role string) error {
	ctx, log := withOperation(ctx, "register_admin")

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("required admin fields missing")
		a.metrics.IncrementRegistration("admin", "invalid")
		return ErrInvalidDataProvided
	}

	admin := models.Admin{
		Username:       username,
		PasswordHash:   utils.HashSecret(password, a.hashSalt),
		FullName:       fullName,
		OrganizationID: organizationID,
		Role:           role,
	}

	if _, err := a.adminRepository.CreateAdmin(ctx, admin); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			a.metrics.IncrementRegistration("admin", "duplicate")
			return err
		}
		a.metrics.IncrementRegistration("admin", "error")
		return fmt.Errorf("admin creation ended with error: %w", err)
	}

	a.metrics.IncrementRegistration("admin", "ok")
	return nil
}
