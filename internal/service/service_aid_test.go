package service

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aidcore/go-aid-registry/internal/config"
	"github.com/aidcore/go-aid-registry/internal/logger"
	"github.com/aidcore/go-aid-registry/internal/mock"
	"github.com/aidcore/go-aid-registry/internal/store"
	"github.com/aidcore/go-aid-registry/models"
)

type aidFixture struct {
	history  *mock.MockAidHistoryRepository
	messages *mock.MockMessageRepository
	clock    *clock.Mock
	service  AidService
}

func newAidFixture(t *testing.T) (*aidFixture, context.Context) {
	t.Helper()

	ctrl := gomock.NewController(t)
	history := mock.NewMockAidHistoryRepository(ctrl)
	messages := mock.NewMockMessageRepository(ctrl)

	mockClock := clock.NewMock()
	mockClock.Set(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	storages := &store.Storages{
		AidHistoryRepository: history,
		MessageRepository:    messages,
	}
	svc := NewAidService(storages, mockClock, nil, logger.Nop())

	return &aidFixture{
		history:  history,
		messages: messages,
		clock:    mockClock,
		service:  svc,
	}, context.Background()
}

func TestRecordAidEvent(t *testing.T) {
	t.Run("success stamps timestamp from clock", func(t *testing.T) {
		f, ctx := newAidFixture(t)

		f.history.EXPECT().
			AppendAidEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e models.AidHistoryEntry) (models.AidHistoryEntry, error) {
				assert.Equal(t, int64(3), e.CitizenInternalID)
				assert.Equal(t, "food_parcel", e.EntryType)
				assert.Equal(t, "2024-03-01", e.Date)
				assert.Equal(t, "2024-04-01", e.NextDate)
				assert.Equal(t, "2024-03-01T12:00:00", e.Timestamp)
				e.ID = 1
				return e, nil
			})

		err := f.service.RecordAidEvent(ctx, 3, "food_parcel", "2024-03-01", "2024-04-01")
		require.NoError(t, err)
	})

	t.Run("non-positive citizen id rejected", func(t *testing.T) {
		f, ctx := newAidFixture(t)

		assert.ErrorIs(t, f.service.RecordAidEvent(ctx, 0, "x", "", ""), ErrInvalidDataProvided)
		assert.ErrorIs(t, f.service.RecordAidEvent(ctx, -1, "x", "", ""), ErrInvalidDataProvided)
	})
}

func TestRecordMessage(t *testing.T) {
	t.Run("success stamps timestamp from clock", func(t *testing.T) {
		f, ctx := newAidFixture(t)

		f.messages.EXPECT().
			AppendMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m models.MessageEntry) (models.MessageEntry, error) {
				assert.Equal(t, int64(5), m.CitizenInternalID)
				assert.Equal(t, "refill is ready", m.Message)
				assert.Equal(t, "2024-03-01T12:00:00", m.Timestamp)
				m.ID = 1
				return m, nil
			})

		err := f.service.RecordMessage(ctx, 5, "refill is ready")
		require.NoError(t, err)
	})

	t.Run("non-positive citizen id rejected", func(t *testing.T) {
		f, ctx := newAidFixture(t)

		assert.ErrorIs(t, f.service.RecordMessage(ctx, 0, "x"), ErrInvalidDataProvided)
	})
}

func TestHasReceivedAid_Delegates(t *testing.T) {
	f, ctx := newAidFixture(t)

	f.history.EXPECT().HasCompletedEntry(gomock.Any(), int64(9)).Return(true, nil)

	got, err := f.service.HasReceivedAid(ctx, 9)
	require.NoError(t, err)
	assert.True(t, got)
}

// TestReceivedAidDefinitionsDiverge pins down that the listing filter
// (priority-score proxy) and HasReceivedAid (aid-history check) are different
// definitions that can disagree for the same citizen, end to end against the
// real flat-file store.
func TestReceivedAidDefinitionsDiverge(t *testing.T) {
	log := logger.Nop()
	ctx := log.WithContext(context.Background())

	cfg := &config.StructuredConfig{
		App:     config.App{HashSalt: config.DefaultHashSalt},
		Storage: config.Storage{Files: config.Files{DataDir: t.TempDir()}},
	}

	storages := store.NewStorages(cfg.Storage, log)
	require.NoError(t, storages.Setup(ctx))

	mockClock := clock.NewMock()
	mockClock.Set(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	services := NewServices(storages, cfg, mockClock, nil, log)

	// Scored citizen with no completed aid history.
	scored, err := services.AuthService.RegisterCitizen(ctx, models.CitizenRegistration{
		NationalID: "100", FullName: "Scored", SecretCode: "1", PriorityScore: 5,
	})
	require.NoError(t, err)

	// Unscored citizen with a completed aid action on record.
	unscored, err := services.AuthService.RegisterCitizen(ctx, models.CitizenRegistration{
		NationalID: "200", FullName: "Unscored", SecretCode: "2", PriorityScore: 0,
	})
	require.NoError(t, err)
	require.NoError(t, services.AidService.RecordAidEvent(ctx, unscored.ID, "food_parcel", "2024-02-01", ""))

	// The listing filter counts the scored citizen as "received"...
	received, err := services.CitizenService.ListCitizens(ctx, models.FilterReceived, "")
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, scored.ID, received[0].ID)

	// ...while the history check says the opposite for both citizens.
	gotScored, err := services.AidService.HasReceivedAid(ctx, scored.ID)
	require.NoError(t, err)
	assert.False(t, gotScored)

	gotUnscored, err := services.AidService.HasReceivedAid(ctx, unscored.ID)
	require.NoError(t, err)
	assert.True(t, gotUnscored)
}
