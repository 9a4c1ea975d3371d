package store

import (
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCounterFile(t *testing.T, s *RowStore) string {
	t.Helper()

	raw, err := os.ReadFile(s.CounterPath())
	require.NoError(t, err)
	return string(raw)
}

func TestNextCitizenID_FirstAllocation(t *testing.T) {
	s, ctx := newTestStore(t)

	assert.Equal(t, int64(1), s.NextCitizenID(ctx, CitizensTable))
	assert.Equal(t, "1", readCounterFile(t, s))
}

func TestNextCitizenID_TableMaxWinsOverCounter(t *testing.T) {
	s, ctx := newTestStore(t)

	require.NoError(t, s.AppendRow(ctx, CitizensTable, Record{"id": "2", "national_id": "a"}))
	require.NoError(t, s.AppendRow(ctx, CitizensTable, Record{"id": "5", "national_id": "b"}))
	require.NoError(t, s.WriteCounter(ctx, 99))

	assert.Equal(t, int64(6), s.NextCitizenID(ctx, CitizensTable))
	assert.Equal(t, "6", readCounterFile(t, s))
}

func TestNextCitizenID_CounterFallbackOnEmptyTable(t *testing.T) {
	s, ctx := newTestStore(t)

	require.NoError(t, s.WriteCounter(ctx, 41))

	assert.Equal(t, int64(41), s.NextCitizenID(ctx, CitizensTable))
}

func TestNextCitizenID_CorruptCounterIgnored(t *testing.T) {
	s, ctx := newTestStore(t)

	require.NoError(t, os.MkdirAll(s.dir, 0o755))
	require.NoError(t, os.WriteFile(s.CounterPath(), []byte("not-a-number"), 0o644))

	assert.Equal(t, int64(1), s.NextCitizenID(ctx, CitizensTable))
}

func TestNextCitizenID_SequentialAllocation(t *testing.T) {
	s, ctx := newTestStore(t)

	for want := int64(1); want <= 5; want++ {
		id := s.NextCitizenID(ctx, CitizensTable)
		require.Equal(t, want, id)
		require.NoError(t, s.AppendRow(ctx, CitizensTable, Record{"id": strconv.FormatInt(id, 10)}))
		require.Equal(t, strconv.FormatInt(id, 10), readCounterFile(t, s))

		// Losing the counter mid-sequence must not break monotonicity: the
		// table scan is the source of truth.
		if want == 3 {
			require.NoError(t, os.Remove(s.CounterPath()))
		}
	}
}

func TestSyncCitizenCounter_WritesMaxPlusOne(t *testing.T) {
	s, ctx := newTestStore(t)

	require.NoError(t, s.AppendRow(ctx, CitizensTable, Record{"id": "9", "national_id": "a"}))
	require.NoError(t, s.AppendRow(ctx, CitizensTable, Record{"id": "4", "national_id": "b"}))

	require.NoError(t, s.SyncCitizenCounter(ctx, CitizensTable))
	assert.Equal(t, "10", readCounterFile(t, s))
}

func TestSyncCitizenCounter_EmptyTablePreservesCounter(t *testing.T) {
	s, ctx := newTestStore(t)

	require.NoError(t, s.WriteCounter(ctx, 7))

	require.NoError(t, s.SyncCitizenCounter(ctx, CitizensTable))
	assert.Equal(t, "7", readCounterFile(t, s))
}
