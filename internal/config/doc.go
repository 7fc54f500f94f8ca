// Package config loads the tracker configuration from a YAML file, .env files
// and TRACKER_* environment variables.
package config
