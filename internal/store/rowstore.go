package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aidcore/go-aid-registry/internal/config"
	"github.com/aidcore/go-aid-registry/internal/logger"
)

// Record is one table row as a mapping of column name to raw string value.
// Every declared column of the table is present; columns missing from the
// underlying line are substituted with the empty string.
type Record map[string]string

// RowStore is the generic CSV persistence primitive. Each logical [Table]
// maps to one comma-separated file with a header row inside the configured
// data directory.
//
// All methods obtain a context-scoped logger via [logger.FromContext] so
// persistence diagnostics carry the operation id of the caller.
type RowStore struct {
	logger *logger.Logger
	dir    string

	// replace swaps the temporary file over the target during OverwriteAll.
	// Overridable in tests to simulate an interrupted replace step.
	replace func(oldpath, newpath string) error
}

// NewRowStore constructs a [RowStore] rooted at the configured data
// directory.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewRowStore(cfg config.Storage, logger *logger.Logger) *RowStore {
	logger.Debug().Str("dir", cfg.Files.DataDir).Msg("creating csv row store")
	return &RowStore{
		logger:  logger,
		dir:     cfg.Files.DataDir,
		replace: os.Rename,
	}
}

// Path returns the full path of the table's backing file.
func (s *RowStore) Path(t Table) string {
	return filepath.Join(s.dir, t.FileName)
}

// ReadAll re-scans the table file from disk and returns every row as a
// [Record]. No caching happens anywhere: each call reflects the file's
// current contents.
//
// The scan fails soft. A missing file yields an empty result, not an error;
// so does any other open or read failure, after a logged diagnostic. Rows
// shorter than the header and files written with an older column set are
// tolerated via empty-string substitution.
func (s *RowStore) ReadAll(ctx context.Context, t Table) []Record {
	log := logger.FromContext(ctx)

	f, err := os.Open(s.Path(t))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("table", t.Name).Msg("table file not found, returning empty data")
			return nil
		}
		log.Err(err).Str("table", t.Name).Msg("error opening table file")
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate short/long lines

	header, err := r.Read()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			log.Err(err).Str("table", t.Name).Msg("error reading table header")
		}
		return nil
	}

	// Column positions come from the file's own header, not the declared
	// order, so files written with a reordered schema still read correctly.
	index := make(map[string]int, len(header))
	for i, col := range header {
		if _, ok := index[col]; !ok {
			index[col] = i
		}
	}

	var records []Record
	for {
		line, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Err(err).Str("table", t.Name).Msg("error reading table rows")
			return nil
		}

		rec := make(Record, len(t.Columns))
		for _, col := range t.Columns {
			if i, ok := index[col]; ok && i < len(line) {
				rec[col] = line[i]
			} else {
				rec[col] = ""
			}
		}
		records = append(records, rec)
	}

	return records
}

// AppendRow appends exactly one row to the table file, writing the header
// line first if the file is absent or empty.
//
// Only declared columns are written: extra keys in rec are silently dropped
// and missing keys default to the empty string.
func (s *RowStore) AppendRow(ctx context.Context, t Table, rec Record) error {
	log := logger.FromContext(ctx)

	needHeader := true
	if info, err := os.Stat(s.Path(t)); err == nil && info.Size() > 0 {
		needHeader = false
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		log.Err(err).Str("table", t.Name).Msg("error creating data directory")
		return fmt.Errorf("%w: %w", ErrAppendingRow, err)
	}

	f, err := os.OpenFile(s.Path(t), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Err(err).Str("table", t.Name).Msg("error opening table file for append")
		return fmt.Errorf("%w: %w", ErrAppendingRow, err)
	}

	w := csv.NewWriter(f)
	if needHeader {
		if err := w.Write(t.Columns); err != nil {
			f.Close()
			return fmt.Errorf("%w: %w", ErrAppendingRow, err)
		}
	}

	if err := w.Write(t.rowValues(rec)); err != nil {
		f.Close()
		return fmt.Errorf("%w: %w", ErrAppendingRow, err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		log.Err(err).Str("table", t.Name).Msg("error flushing appended row")
		return fmt.Errorf("%w: %w", ErrAppendingRow, err)
	}

	if err := f.Close(); err != nil {
		log.Err(err).Str("table", t.Name).Msg("error closing table file after append")
		return fmt.Errorf("%w: %w", ErrAppendingRow, err)
	}

	return nil
}

// OverwriteAll atomically replaces the table's complete row set.
//
// The header and all rows are written to a temporary file created in the same
// directory as the target, which is then renamed over the target; the rename
// is atomic on a same-filesystem move, so readers either see the old table or
// the new one, never a half-written file. On any failure the temporary file
// is removed and the target is left untouched.
func (s *RowStore) OverwriteAll(ctx context.Context, t Table, records []Record) error {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		log.Err(err).Str("table", t.Name).Msg("error creating data directory")
		return fmt.Errorf("%w: %w", ErrCreatingTempFile, err)
	}

	tmp, err := os.CreateTemp(s.dir, t.FileName+".tmp*")
	if err != nil {
		log.Err(err).Str("table", t.Name).Msg("error creating temporary table file")
		return fmt.Errorf("%w: %w", ErrCreatingTempFile, err)
	}
	tmpPath := tmp.Name()

	w := csv.NewWriter(tmp)
	writeErr := w.Write(t.Columns)
	for _, rec := range records {
		if writeErr != nil {
			break
		}
		writeErr = w.Write(t.rowValues(rec))
	}
	if writeErr == nil {
		w.Flush()
		writeErr = w.Error()
	}
	if writeErr != nil {
		tmp.Close()
		s.removeTemp(log, tmpPath)
		log.Err(writeErr).Str("table", t.Name).Msg("error writing temporary table file")
		return fmt.Errorf("%w: %w", ErrWritingRows, writeErr)
	}

	if err := tmp.Close(); err != nil {
		s.removeTemp(log, tmpPath)
		return fmt.Errorf("%w: %w", ErrWritingRows, err)
	}

	if err := s.replace(tmpPath, s.Path(t)); err != nil {
		s.removeTemp(log, tmpPath)
		log.Err(err).Str("table", t.Name).Msg("error replacing table file")
		return fmt.Errorf("%w: %w", ErrReplacingTableFile, err)
	}

	return nil
}

// NextID allocates the next id for a table: 1 + the maximum integer id over
// all existing rows, defaulting to 0 on an empty or missing table.
// Non-numeric and missing ids are skipped rather than treated as errors.
func (s *RowStore) NextID(ctx context.Context, t Table) int64 {
	maxID, _ := s.maxID(ctx, t)
	return maxID + 1
}

// maxID scans the table for the largest parseable id. The second return
// value reports whether any parseable id was seen at all.
func (s *RowStore) maxID(ctx context.Context, t Table) (int64, bool) {
	var maxID int64
	found := false

	for _, rec := range s.ReadAll(ctx, t) {
		id, err := strconv.ParseInt(strings.TrimSpace(rec["id"]), 10, 64)
		if err != nil {
			continue
		}
		found = true
		if id > maxID {
			maxID = id
		}
	}

	return maxID, found
}

// rowValues projects rec onto the table's declared column order.
func (t Table) rowValues(rec Record) []string {
	line := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		line[i] = rec[col]
	}
	return line
}

func (s *RowStore) removeTemp(log *logger.Logger, path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Str("path", path).Msg("could not remove temporary table file")
	}
}
