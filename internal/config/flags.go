package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d data directory holding the CSV tables and counter file
//	-hash-salt global credential hash salt
//	-counter-sync-interval counter reconciliation interval (e.g., "5m", "1h")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var dataDir string
	var hashSalt string
	var counterSyncInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&dataDir, "d", "", "Data directory for CSV tables")
	flag.StringVar(&hashSalt, "hash-salt", "", "Credential hash salt")
	flag.DurationVar(&counterSyncInterval, "counter-sync-interval", 0, "Counter sync interval (e.g., 5m, 1h)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			HashSalt: hashSalt,
		},
		Storage: Storage{
			Files: Files{
				DataDir: dataDir,
			},
		},
		Workers: Workers{
			CounterSyncInterval: counterSyncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
