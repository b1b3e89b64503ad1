// Package config loads, normalizes, and validates profilescan configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads an optional TOML file. The defaults reproduce the
// classic scanner behavior: the four problematic HEVC profiles, .mkv files
// only, a 30 second per-file inspection timeout, and one worker per core.
//
// Always obtain settings through this package so downstream code receives
// sanitized values and clear validation errors.
package config
