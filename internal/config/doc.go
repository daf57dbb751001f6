// Package config loads, normalizes, and validates contentgen configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the CONTENTGEN_OUTPUT_DIR
// environment fallback. The [defaults] section doubles as the persisted
// "last used" arguments of the generate command, so Save round-trips the
// whole Config back to disk.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
