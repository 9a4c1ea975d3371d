// Package config loads the application configuration from environment
// variables, command-line flags, and an optional JSON file, merging the
// sources with mergo and validating the result. See GetStructuredConfig for
// the merge priority.
package config
