package store

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_CreatesTableFilesAndCounter(t *testing.T) {
	s, ctx := newTestStore(t)

	require.NoError(t, s.Setup(ctx, CitizensTable, AdminsTable, AidHistoryTable, MessagesTable))

	for _, table := range []Table{CitizensTable, AdminsTable, AidHistoryTable, MessagesTable} {
		raw, err := os.ReadFile(s.Path(table))
		require.NoError(t, err, table.Name)
		assert.Equal(t, strings.Join(table.Columns, ","), strings.TrimSpace(string(raw)), table.Name)
	}

	assert.Equal(t, "0", readCounterFile(t, s))
}

func TestSetup_Idempotent(t *testing.T) {
	s, ctx := newTestStore(t)

	require.NoError(t, s.Setup(ctx, CitizensTable))
	require.NoError(t, s.AppendRow(ctx, CitizensTable, Record{"id": "1", "national_id": "a", "full_name": "Existing"}))
	require.NoError(t, s.WriteCounter(ctx, 2))

	require.NoError(t, s.Setup(ctx, CitizensTable))

	records := s.ReadAll(ctx, CitizensTable)
	require.Len(t, records, 1)
	assert.Equal(t, "Existing", records[0]["full_name"])
	assert.Equal(t, "2", readCounterFile(t, s))
}
