// Package config loads and merges configuration for the logbuch server and
// client from three sources: command-line flags, environment variables, and
// an optional JSON file. Flags take priority over the environment, which
// takes priority over the file; defaults are applied last.
package config
