// Package config loads, normalizes, and validates mailbatch configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from the user config directory or the
// project root. The active database is an explicit configuration value, not
// process state: commands that switch or delete databases rewrite the config
// file through Save.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, a usable batch capacity, and clear validation errors.
package config
