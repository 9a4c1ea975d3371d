package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aidcore/go-aid-registry/internal/logger"
	"github.com/aidcore/go-aid-registry/internal/mock"
	"github.com/aidcore/go-aid-registry/internal/store"
	"github.com/aidcore/go-aid-registry/models"
)

func newCitizenFixture(t *testing.T) (*mock.MockCitizenRepository, CitizenService, context.Context) {
	t.Helper()

	ctrl := gomock.NewController(t)
	citizens := mock.NewMockCitizenRepository(ctrl)

	return citizens, NewCitizenService(citizens, nil, logger.Nop()), context.Background()
}

func TestListCitizens_Delegates(t *testing.T) {
	citizens, svc, ctx := newCitizenFixture(t)

	want := []models.Citizen{{ID: 1, FullName: "Alpha"}, {ID: 2, FullName: "Bravo"}}
	citizens.EXPECT().
		ListCitizens(gomock.Any(), models.FilterReceived, "full_name").
		Return(want, nil)

	got, err := svc.ListCitizens(ctx, models.FilterReceived, "full_name")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetCitizen(t *testing.T) {
	t.Run("strips credential hash", func(t *testing.T) {
		citizens, svc, ctx := newCitizenFixture(t)

		citizens.EXPECT().
			FindCitizenByID(gomock.Any(), int64(4)).
			Return(models.Citizen{ID: 4, FullName: "Target", SecretCodeHash: "deadbeef"}, nil)

		got, err := svc.GetCitizen(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, "Target", got.FullName)
		assert.Empty(t, got.SecretCodeHash)
	})

	t.Run("not found passed through", func(t *testing.T) {
		citizens, svc, ctx := newCitizenFixture(t)

		citizens.EXPECT().
			FindCitizenByID(gomock.Any(), int64(999)).
			Return(models.Citizen{}, store.ErrCitizenNotFound)

		_, err := svc.GetCitizen(ctx, 999)
		assert.ErrorIs(t, err, store.ErrCitizenNotFound)
	})
}

func TestUpdateCitizen(t *testing.T) {
	t.Run("returns updated record", func(t *testing.T) {
		citizens, svc, ctx := newCitizenFixture(t)

		fields := map[string]string{"priority_score": "4.5"}
		citizens.EXPECT().
			UpdateCitizen(gomock.Any(), int64(4), fields).
			Return(models.Citizen{ID: 4, PriorityScore: 4.5}, nil)

		got, err := svc.UpdateCitizen(ctx, 4, fields)
		require.NoError(t, err)
		assert.Equal(t, 4.5, got.PriorityScore)
	})

	t.Run("wraps validation errors", func(t *testing.T) {
		citizens, svc, ctx := newCitizenFixture(t)

		citizens.EXPECT().
			UpdateCitizen(gomock.Any(), int64(4), gomock.Any()).
			Return(models.Citizen{}, store.ErrValidation)

		_, err := svc.UpdateCitizen(ctx, 4, map[string]string{"priority_score": "junk"})
		assert.ErrorIs(t, err, store.ErrValidation)
	})
}
