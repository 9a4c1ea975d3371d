package store

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aidcore/go-aid-registry/internal/logger"
	"github.com/aidcore/go-aid-registry/models"
)

// citizenRepository is the CSV-backed implementation of [CitizenRepository].
// It handles citizen creation, lookup, listing, and in-place updates against
// the "citizens" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, operation-level tracing of file interactions.
type citizenRepository struct {
	logger *logger.Logger
	store  *RowStore
	table  Table
}

// NewCitizenRepository constructs a [CitizenRepository] backed by the
// provided row store and logger.
func NewCitizenRepository(store *RowStore, logger *logger.Logger) CitizenRepository {
	logger.Debug().Msg("creating citizen repository")
	return &citizenRepository{
		logger: logger,
		store:  store,
		table:  CitizensTable,
	}
}

// CreateCitizen persists a new citizen row and returns the citizen with its
// server-assigned ID.
//
// The national id is checked for uniqueness by a full-table scan covering
// active and inactive rows alike. The id comes from the citizen-specific
// allocator, which also refreshes the side-car counter file.
//
// Error handling:
//   - duplicate national id → [ErrNationalIDExists];
//   - append failure → wrapped [ErrAppendingRow].
func (r *citizenRepository) CreateCitizen(ctx context.Context, citizen models.Citizen) (models.Citizen, error) {
	log := logger.FromContext(ctx)

	for _, rec := range r.store.ReadAll(ctx, r.table) {
		if rec["national_id"] == citizen.NationalID {
			log.Error().Str("national_id", citizen.NationalID).Msg("citizen already exists")
			return models.Citizen{}, ErrNationalIDExists
		}
	}

	citizen.ID = r.store.NextCitizenID(ctx, r.table)

	if err := r.store.AppendRow(ctx, r.table, encodeCitizen(citizen)); err != nil {
		log.Err(err).Int64("id", citizen.ID).Msg("error persisting citizen")
		return models.Citizen{}, err
	}

	log.Info().Int64("id", citizen.ID).Msg("citizen registered")
	return citizen, nil
}

// FindCitizenByID retrieves one citizen by internal id.
// Returns [ErrCitizenNotFound] when no row matches.
func (r *citizenRepository) FindCitizenByID(ctx context.Context, id int64) (models.Citizen, error) {
	want := strconv.FormatInt(id, 10)

	for _, rec := range r.store.ReadAll(ctx, r.table) {
		if rec["id"] == want {
			return decodeCitizen(ctx, rec), nil
		}
	}

	return models.Citizen{}, ErrCitizenNotFound
}

// FindCitizenByNationalID retrieves one citizen by national id, regardless
// of the is_active flag. Returns [ErrCitizenNotFound] when no row matches.
func (r *citizenRepository) FindCitizenByNationalID(ctx context.Context, nationalID string) (models.Citizen, error) {
	for _, rec := range r.store.ReadAll(ctx, r.table) {
		if rec["national_id"] == nationalID {
			return decodeCitizen(ctx, rec), nil
		}
	}

	return models.Citizen{}, ErrCitizenNotFound
}

// ListCitizens loads the whole table, optionally filters it by the
// score-based "received aid" proxy, and optionally sorts it.
//
// The filter compares the parsed priority score: [models.FilterReceived]
// keeps scores greater than zero, [models.FilterNotReceived] keeps scores
// exactly zero. A malformed score reads as zero under the tolerant read
// policy and therefore lands in the "not received" bucket.
//
// Sorting compares the raw serialized string values of the requested column,
// stable over scan order. An undeclared sort column is logged and ignored,
// leaving the list in scan order.
func (r *citizenRepository) ListCitizens(ctx context.Context, filter models.CitizenFilter, sortBy string) ([]models.Citizen, error) {
	log := logger.FromContext(ctx)

	records := r.store.ReadAll(ctx, r.table)

	switch filter {
	case models.FilterReceived:
		records = filterRecords(records, func(rec Record) bool {
			return parseFloatLenient(rec["priority_score"]) > 0
		})
	case models.FilterNotReceived:
		records = filterRecords(records, func(rec Record) bool {
			return parseFloatLenient(rec["priority_score"]) == 0
		})
	case models.FilterNone:
		// keep all
	default:
		log.Warn().Str("filter", string(filter)).Msg("unknown citizen filter, listing all")
	}

	if sortBy != "" {
		if !r.table.HasColumn(sortBy) {
			log.Warn().Str("sort_by", sortBy).Msg("unknown sort column, keeping scan order")
		} else {
			sort.SliceStable(records, func(i, j int) bool {
				return records[i][sortBy] < records[j][sortBy]
			})
		}
	}

	citizens := make([]models.Citizen, 0, len(records))
	for _, rec := range records {
		citizens = append(citizens, decodeCitizen(ctx, rec))
	}

	return citizens, nil
}

// UpdateCitizen applies fields to the citizen row with the given id and
// rewrites the whole table atomically, so readers never observe a
// half-written file.
//
// Only declared columns are applied; the "id" column and unknown keys are
// silently skipped. Numeric fields are validated strictly on this write
// path: a malformed priority_score, household_members, or dependents value
// returns an error wrapping [ErrValidation] and nothing is persisted.
func (r *citizenRepository) UpdateCitizen(ctx context.Context, id int64, fields map[string]string) (models.Citizen, error) {
	log := logger.FromContext(ctx)

	records := r.store.ReadAll(ctx, r.table)
	want := strconv.FormatInt(id, 10)

	target := -1
	for i, rec := range records {
		if rec["id"] == want {
			target = i
			break
		}
	}
	if target == -1 {
		return models.Citizen{}, ErrCitizenNotFound
	}

	for key, value := range fields {
		if key == "id" || !r.table.HasColumn(key) {
			continue
		}

		switch key {
		case "priority_score":
			score, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil {
				return models.Citizen{}, fmt.Errorf("%w: priority_score %q", ErrValidation, value)
			}
			records[target][key] = strconv.FormatFloat(score, 'g', -1, 64)
		case "household_members", "dependents":
			n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
			if err != nil {
				return models.Citizen{}, fmt.Errorf("%w: %s %q", ErrValidation, key, value)
			}
			records[target][key] = strconv.FormatInt(n, 10)
		default:
			records[target][key] = value
		}
	}

	if err := r.store.OverwriteAll(ctx, r.table, records); err != nil {
		log.Err(err).Int64("id", id).Msg("error rewriting citizens table")
		return models.Citizen{}, err
	}

	log.Info().Int64("id", id).Msg("citizen updated")
	return decodeCitizen(ctx, records[target]), nil
}

// encodeCitizen serializes a citizen into its on-disk column values.
func encodeCitizen(c models.Citizen) Record {
	return Record{
		"id":                strconv.FormatInt(c.ID, 10),
		"national_id":       c.NationalID,
		"full_name":         c.FullName,
		"date_of_birth":     c.DateOfBirth,
		"phone_number":      c.PhoneNumber,
		"address":           c.Address,
		"household_members": strconv.FormatInt(c.HouseholdMembers, 10),
		"dependents":        strconv.FormatInt(c.Dependents, 10),
		"needs_description": c.NeedsDescription,
		"priority_score":    strconv.FormatFloat(c.PriorityScore, 'g', -1, 64),
		"is_active":         models.FormatBool(c.IsActive),
		"registration_date": c.RegistrationDate,
		"secret_code_hash":  c.SecretCodeHash,
	}
}

// decodeCitizen deserializes a row into a citizen under the tolerant read
// policy: malformed numerics are logged and become zero values, never an
// error. Historical rows written by older or buggy writers must stay
// readable.
func decodeCitizen(ctx context.Context, rec Record) models.Citizen {
	log := logger.FromContext(ctx)

	return models.Citizen{
		ID:               parseIntLenientLog(log, "id", rec["id"]),
		NationalID:       rec["national_id"],
		FullName:         rec["full_name"],
		DateOfBirth:      rec["date_of_birth"],
		PhoneNumber:      rec["phone_number"],
		Address:          rec["address"],
		HouseholdMembers: parseIntLenientLog(log, "household_members", rec["household_members"]),
		Dependents:       parseIntLenientLog(log, "dependents", rec["dependents"]),
		NeedsDescription: rec["needs_description"],
		PriorityScore:    parseFloatLenientLog(log, "priority_score", rec["priority_score"]),
		IsActive:         parseBool(rec["is_active"]),
		RegistrationDate: rec["registration_date"],
		SecretCodeHash:   rec["secret_code_hash"],
	}
}

// parseBool parses the on-disk is_active literal case-insensitively.
// Anything other than "true" — including the empty string substituted for a
// missing column — reads as false.
func parseBool(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "true")
}

func parseFloatLenient(value string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return f
}

func parseFloatLenientLog(log *logger.Logger, column, value string) float64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		log.Warn().Str("column", column).Str("value", value).Msg("malformed numeric value, reading as zero")
		return 0
	}
	return f
}

func parseIntLenientLog(log *logger.Logger, column, value string) int64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0
	}

	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		log.Warn().Str("column", column).Str("value", value).Msg("malformed numeric value, reading as zero")
		return 0
	}
	return n
}

func filterRecords(records []Record, keep func(Record) bool) []Record {
	filtered := records[:0:0]
	for _, rec := range records {
		if keep(rec) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
