package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
// They are deliberately distinct from I/O failures so that a duplicate key,
// a missing record, and a broken disk are all distinguishable.
var (
	// ErrNationalIDExists is returned when an attempt to register a citizen
	// fails because a row with the same national_id already exists, whether
	// that row is active or not.
	ErrNationalIDExists = errors.New("national id already exists")

	// ErrUsernameExists is returned when an attempt to register an admin
	// fails because an admin with the same username already exists.
	ErrUsernameExists = errors.New("username already exists")

	// ErrCitizenNotFound is returned when a lookup or update targets a
	// citizen id or national id with no matching row.
	ErrCitizenNotFound = errors.New("citizen was not found")

	// ErrAdminNotFound is returned when no admin row matches the requested
	// username.
	ErrAdminNotFound = errors.New("admin was not found")

	// ErrValidation is returned (wrapped, with field detail) when a write
	// operation receives a malformed numeric value. Reads never return it:
	// the read path tolerates malformed historical data instead.
	ErrValidation = errors.New("invalid field value")
)

// Low-level file operation errors. These are wrapped by row-store methods
// when a filesystem-level operation fails before any domain logic applies.
var (
	// ErrAppendingRow is returned when opening or writing the table file in
	// append mode fails.
	ErrAppendingRow = errors.New("error appending row to table file")

	// ErrCreatingTempFile is returned when the temporary file for an atomic
	// overwrite cannot be created.
	ErrCreatingTempFile = errors.New("error creating temporary table file")

	// ErrWritingRows is returned when writing the header or rows to the
	// temporary file fails. The target file is left untouched.
	ErrWritingRows = errors.New("error writing rows to temporary table file")

	// ErrReplacingTableFile is returned when the atomic rename of the
	// temporary file over the target fails. The target file is left
	// untouched and the temporary file is removed.
	ErrReplacingTableFile = errors.New("error replacing table file")

	// ErrWritingCounter is returned when the citizen id counter file cannot
	// be written. Allocation still succeeds; the counter is a cache only.
	ErrWritingCounter = errors.New("error writing citizen id counter file")
)
