package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/aidcore/go-aid-registry/models"
)

type CitizenRepository interface {
	CreateCitizen(ctx context.Context, citizen models.Citizen) (models.Citizen, error)
	FindCitizenByID(ctx context.Context, id int64) (models.Citizen, error)
	FindCitizenByNationalID(ctx context.Context, nationalID string) (models.Citizen, error)
	ListCitizens(ctx context.Context, filter models.CitizenFilter, sortBy string) ([]models.Citizen, error)
	UpdateCitizen(ctx context.Context, id int64, fields map[string]string) (models.Citizen, error)
}

type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error)
	FindAdminByUsername(ctx context.Context, username string) (models.Admin, error)
}

type AidHistoryRepository interface {
	AppendAidEntry(ctx context.Context, entry models.AidHistoryEntry) (models.AidHistoryEntry, error)
	ListAidHistory(ctx context.Context, citizenID int64) ([]models.AidHistoryEntry, error)
	HasCompletedEntry(ctx context.Context, citizenID int64) (bool, error)
}

type MessageRepository interface {
	AppendMessage(ctx context.Context, message models.MessageEntry) (models.MessageEntry, error)
	ListMessages(ctx context.Context, citizenID int64) ([]models.MessageEntry, error)
}
