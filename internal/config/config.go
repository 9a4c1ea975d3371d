// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// Default values applied by the builder when no source provides one.
const (
	// DefaultHashSalt is the global credential salt baked into the existing
	// on-disk data. Changing it invalidates every stored hash, so it is only
	// overridden for fresh deployments.
	DefaultHashSalt = "citizen_aid_system_2024"

	// DefaultDataDir is the directory holding the CSV tables and the
	// citizen id counter file.
	DefaultDataDir = "./data"
)

// StructuredConfig is the top-level configuration container for the
// go-aid-registry application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the credential hash salt.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the flat-file persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashSalt is the global salt concatenated with plaintext secrets before
	// hashing. Must match the value used when the existing rows were written.
	// Env: APP_HASH_SALT
	HashSalt string `env:"HASH_SALT"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// Files holds the file-system storage settings for the CSV tables.
	Files Files `envPrefix:"FILES_"`
}

// Files holds file-system settings for the CSV table store.
type Files struct {
	// DataDir is the absolute or relative path to the directory where the
	// CSV tables and the citizen id counter file live.
	// Env: STORAGE_FILES_DATA_DIR
	DataDir string `env:"DATA_DIR"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// CounterSyncInterval is how often the counter-reconciliation worker
	// recomputes the citizen id counter from the citizens table
	// (e.g. "5m", "1h"). Zero disables the periodic job; reconciliation
	// still happens once during setup.
	// Env: WORKERS_COUNTER_SYNC_INTERVAL
	CounterSyncInterval time.Duration `env:"COUNTER_SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
