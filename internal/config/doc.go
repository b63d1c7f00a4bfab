// Package config loads and merges the movie-keeper server configuration
// from environment variables, command-line flags, and an optional JSON
// file, in that priority order. The merged result is validated before use.
package config
