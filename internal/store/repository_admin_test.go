package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidcore/go-aid-registry/internal/logger"
	"github.com/aidcore/go-aid-registry/models"
)

func TestCreateAdmin(t *testing.T) {
	s, ctx := newTestStore(t)
	repo := NewAdminRepository(s, logger.Nop())

	created, err := repo.CreateAdmin(ctx, models.Admin{
		Username:       "admin",
		PasswordHash:   "abc123",
		FullName:       "System Administrator",
		OrganizationID: "ORG-001",
		Role:           "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	t.Run("duplicate username rejected", func(t *testing.T) {
		_, err := repo.CreateAdmin(ctx, models.Admin{Username: "admin", PasswordHash: "other"})
		require.ErrorIs(t, err, ErrUsernameExists)

		records := s.ReadAll(ctx, AdminsTable)
		assert.Len(t, records, 1)
	})

	t.Run("second admin gets next id", func(t *testing.T) {
		second, err := repo.CreateAdmin(ctx, models.Admin{Username: "operator", PasswordHash: "def456"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), second.ID)
	})
}

func TestFindAdminByUsername(t *testing.T) {
	s, ctx := newTestStore(t)
	repo := NewAdminRepository(s, logger.Nop())

	want := models.Admin{
		Username:       "supervisor",
		PasswordHash:   "feedface",
		FullName:       "Field Supervisor",
		OrganizationID: "ORG-002",
		Role:           "supervisor",
	}
	created, err := repo.CreateAdmin(ctx, want)
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		got, err := repo.FindAdminByUsername(ctx, "supervisor")
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.FindAdminByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, ErrAdminNotFound)
	})
}
