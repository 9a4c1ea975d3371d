// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_HASH_SALT": "env_salt",

		"STORAGE_FILES_DATA_DIR": "/var/aid-data",

		"WORKERS_COUNTER_SYNC_INTERVAL": "5m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "env_salt", cfg.App.HashSalt)
	assert.Equal(t, "/var/aid-data", cfg.Storage.Files.DataDir)
	assert.Equal(t, 5*time.Minute, cfg.Workers.CounterSyncInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_HASH_SALT": "env_salt",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "env_salt", cfg.App.HashSalt)
	assert.Empty(t, cfg.Storage.Files.DataDir)
	assert.Zero(t, cfg.Workers.CounterSyncInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"WORKERS_COUNTER_SYNC_INTERVAL": "not-a-duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_HASH_SALT",
		"STORAGE_FILES_DATA_DIR",
		"WORKERS_COUNTER_SYNC_INTERVAL",
	}
	for _, k := range keys {
		require.NoError(t, os.Unsetenv(k))
	}
}
