// Package config loads runtime configuration from multiple sources (YAML files,
// environment variables, CLI flags) with precedence: CLI flags > YAML config >
// Environment variables > Build-time defaults. Besides server settings it
// carries the bank/environment identity, seeded from the values linked into
// the binary.
package config
