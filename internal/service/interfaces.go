package service

import (
	"context"

	"github.com/aidcore/go-aid-registry/models"
)

type AuthService interface {
	AuthenticateAdmin(ctx context.Context, username, password string) (models.Admin, error)
	AuthenticateCitizen(ctx context.Context, nationalID, secretCode string) (models.Citizen, error)
	RegisterCitizen(ctx context.Context, reg models.CitizenRegistration) (models.Citizen, error)
	RegisterAdmin(ctx context.Context, username, password, fullName, organizationID, role string) error
}

type CitizenService interface {
	ListCitizens(ctx context.Context, filter models.CitizenFilter, sortBy string) ([]models.Citizen, error)
	GetCitizen(ctx context.Context, id int64) (models.Citizen, error)
	UpdateCitizen(ctx context.Context, id int64, fields map[string]string) (models.Citizen, error)
}

type AidService interface {
	RecordAidEvent(ctx context.Context, citizenID int64, entryType, date, nextDate string) error
	HasReceivedAid(ctx context.Context, citizenID int64) (bool, error)
	ListAidHistory(ctx context.Context, citizenID int64) ([]models.AidHistoryEntry, error)
	RecordMessage(ctx context.Context, citizenID int64, text string) error
	ListMessages(ctx context.Context, citizenID int64) ([]models.MessageEntry, error)
}
