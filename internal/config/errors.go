package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned when the merged configuration
	// resolves to an unusable storage section (empty data directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidWorkerConfigs is returned when a worker interval is negative.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configs")
)
