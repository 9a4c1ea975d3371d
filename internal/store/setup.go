package store

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/aidcore/go-aid-registry/internal/logger"
)

// Setup ensures every given table file exists with its header row and that
// the counter file exists, initialized to 0.
//
// The routine is idempotent: existing files and their contents are left
// untouched, so running it twice duplicates no headers and loses no data.
func (s *RowStore) Setup(ctx context.Context, tables ...Table) error {
	log := logger.FromContext(ctx)

	for _, t := range tables {
		_, err := os.Stat(s.Path(t))
		if err == nil {
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		// OverwriteAll with no rows writes exactly the header line.
		if err := s.OverwriteAll(ctx, t, nil); err != nil {
			return err
		}
		log.Info().Str("table", t.Name).Strs("columns", t.Columns).Msg("created table file with header")
	}

	if _, err := os.Stat(s.CounterPath()); errors.Is(err, fs.ErrNotExist) {
		if err := s.WriteCounter(ctx, 0); err != nil {
			return err
		}
		log.Info().Msg("created and initialized citizen id counter file")
	}

	return nil
}
