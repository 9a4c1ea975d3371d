package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/benbjohnson/clock"

	"github.com/aidcore/go-aid-registry/internal/config"
	"github.com/aidcore/go-aid-registry/internal/logger"
	"github.com/aidcore/go-aid-registry/internal/metrics"
	"github.com/aidcore/go-aid-registry/internal/service"
	"github.com/aidcore/go-aid-registry/internal/store"
	"github.com/aidcore/go-aid-registry/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// seed creates the data directory with every table file and loads a fixture
// data set: a few admin accounts, citizens with priority scores on both sides
// of the listing filter, and aid-history rows both completed and scheduled.
// Running it twice is safe: duplicate admins and citizens are skipped.
func main() {
	printBuildInfo()

	log := logger.NewLogger("aid-registry-seed")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := log.WithContext(context.Background())

	storages := store.NewStorages(cfg.Storage, log)
	if err := storages.Setup(ctx); err != nil {
		log.Fatal().Err(err).Msg("error setting up data directory")
	}

	services := service.NewServices(storages, cfg, clock.New(), metrics.New(), log)

	if err := seed(ctx, services, log); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Str("data_dir", cfg.Storage.Files.DataDir).Msg("fixture data loaded")
}

func seed(ctx context.Context, services *service.Services, log *logger.Logger) error {
	admins := []struct {
		username, password, fullName, organizationID, role string
	}{
		{"admin", "admin2024", "System Administrator", "ORG-001", "admin"},
		{"supervisor", "super2024", "Field Supervisor", "ORG-001", "supervisor"},
		{"operator1", "oper2024", "Intake Operator", "ORG-002", "operator"},
	}

	for _, a := range admins {
		err := services.AuthService.RegisterAdmin(ctx, a.username, a.password, a.fullName, a.organizationID, a.role)
		if errors.Is(err, store.ErrUsernameExists) {
			log.Debug().Str("username", a.username).Msg("admin already seeded")
			continue
		}
		if err != nil {
			return fmt.Errorf("seeding admin %s: %w", a.username, err)
		}
	}

	citizens := []models.CitizenRegistration{
		{
			NationalID:       "1001001001",
			FullName:         "Layla Hassan",
			SecretCode:       "1234",
			DateOfBirth:      "1985-03-14",
			PhoneNumber:      "0590000001",
			Address:          "12 Harbor Street, North District",
			HouseholdMembers: 6,
			Dependents:       4,
			NeedsDescription: "Food parcels and infant formula",
			PriorityScore:    7,
		},
		{
			NationalID:       "1001001002",
			FullName:         "Omar Khalil",
			SecretCode:       "2345",
			DateOfBirth:      "1978-11-02",
			PhoneNumber:      "0590000002",
			Address:          "4 Olive Road, Old Town",
			HouseholdMembers: 3,
			Dependents:       1,
			NeedsDescription: "Chronic medication refill",
			PriorityScore:    5,
		},
		{
			NationalID:       "1001001003",
			FullName:         "Mariam Odeh",
			SecretCode:       "3456",
			DateOfBirth:      "1992-07-21",
			PhoneNumber:      "0590000003",
			Address:          "Block C, Camp Two",
			HouseholdMembers: 8,
			Dependents:       6,
			NeedsDescription: "Shelter repair and blankets",
			PriorityScore:    6.5,
		},
		{
			NationalID:       "1001001004",
			FullName:         "Yousef Barakat",
			SecretCode:       "4567",
			DateOfBirth:      "1969-01-30",
			PhoneNumber:      "0590000004",
			Address:          "22 Market Lane, East Quarter",
			HouseholdMembers: 2,
			Dependents:       0,
			NeedsDescription: "Mobility aid",
			PriorityScore:    3,
		},
		{
			NationalID:       "1001001005",
			FullName:         "Huda Mansour",
			SecretCode:       "5678",
			DateOfBirth:      "1988-09-09",
			PhoneNumber:      "0590000005",
			Address:          "7 School Street, West Quarter",
			HouseholdMembers: 5,
			Dependents:       3,
			NeedsDescription: "Cash assistance",
			PriorityScore:    4,
		},
		{
			NationalID:       "1001001006",
			FullName:         "Sami Nassar",
			SecretCode:       "6789",
			DateOfBirth:      "1995-05-17",
			PhoneNumber:      "0590000006",
			Address:          "Block A, Camp One",
			HouseholdMembers: 4,
			Dependents:       2,
			NeedsDescription: "Newly displaced, pending assessment",
			PriorityScore:    0,
		},
		{
			NationalID:       "1001001007",
			FullName:         "Rania Saleh",
			SecretCode:       "7890",
			DateOfBirth:      "1983-12-25",
			PhoneNumber:      "0590000007",
			Address:          "9 River Road, South District",
			HouseholdMembers: 7,
			Dependents:       5,
			NeedsDescription: "Awaiting first distribution",
			PriorityScore:    0,
		},
		{
			NationalID:       "1001001008",
			FullName:         "Khaled Amer",
			SecretCode:       "8901",
			DateOfBirth:      "2000-04-06",
			PhoneNumber:      "0590000008",
			Address:          "31 Hill Street, North District",
			HouseholdMembers: 1,
			Dependents:       0,
			NeedsDescription: "Job placement support",
			PriorityScore:    1.5,
		},
	}

	ids := make(map[string]int64, len(citizens))
	for _, reg := range citizens {
		citizen, err := services.AuthService.RegisterCitizen(ctx, reg)
		if errors.Is(err, store.ErrNationalIDExists) {
			log.Debug().Str("national_id", reg.NationalID).Msg("citizen already seeded")
			existing, findErr := services.CitizenService.ListCitizens(ctx, models.FilterNone, "")
			if findErr != nil {
				return fmt.Errorf("listing citizens: %w", findErr)
			}
			for _, c := range existing {
				if c.NationalID == reg.NationalID {
					ids[reg.NationalID] = c.ID
					break
				}
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("seeding citizen %s: %w", reg.NationalID, err)
		}
		ids[reg.NationalID] = citizen.ID
	}

	aidEvents := []struct {
		nationalID string
		entryType  string
		date       string
		nextDate   string
	}{
		{"1001001001", "food_parcel", "2024-01-10", ""},
		{"1001001001", "food_parcel", "2024-02-10", "2024-03-10"},
		{"1001001002", "medication", "2024-01-15", ""},
		{"1001001003", "shelter_kit", "2024-01-20", ""},
		{"1001001004", "assessment", "2024-02-01", "2024-04-01"},
		{"1001001005", "cash_assistance", "2024-02-05", ""},
		{"1001001008", "assessment", "2024-02-12", "2024-05-12"},
	}

	for _, e := range aidEvents {
		id, ok := ids[e.nationalID]
		if !ok {
			continue
		}
		if err := services.AidService.RecordAidEvent(ctx, id, e.entryType, e.date, e.nextDate); err != nil {
			return fmt.Errorf("seeding aid event for %s: %w", e.nationalID, err)
		}
	}

	texts := []struct {
		nationalID string
		text       string
	}{
		{"1001001001", "Please bring your ration card to the next distribution."},
		{"1001001002", "Your medication refill is ready for pickup at the clinic."},
		{"1001001006", "Your registration was received; an assessment visit will be scheduled."},
	}

	for _, m := range texts {
		id, ok := ids[m.nationalID]
		if !ok {
			continue
		}
		if err := services.AidService.RecordMessage(ctx, id, m.text); err != nil {
			return fmt.Errorf("seeding message for %s: %w", m.nationalID, err)
		}
	}

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
