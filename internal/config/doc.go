// Package config loads toolkit configuration from a TOML file with
// environment variable overrides. A missing file is not an error; defaults
// apply.
package config
