package utils

import "github.com/google/uuid"

// NewOperationID returns a unique identifier used to tag the context logger
// of a single domain operation. Prefers UUIDv7 for time-ordered ids and
// falls back to a random UUIDv4 if v7 generation fails.
func NewOperationID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
