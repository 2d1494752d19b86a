// File: doc.go
// Title: Configuration Package Documentation
// Description: Package documentation for TOML/YAML configuration loading,
//              discovery and typed settings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial documentation

/*
Package config loads langext configuration from TOML or YAML files.

Keys are addressed with dots ("parser.pivot_years") and every key can be
overridden from the environment: with the prefix LANGEXT the key above reads
LANGEXT_PARSER_PIVOT_YEARS first.

A typical file:

	[parser]
	pivot_years = 20
	utc_offset  = "+02:00"
	reference   = "2024-06-15"
	location    = "Europe/Berlin"

	[steptimer]
	format = "mm:ss.fff"

	[log]
	level  = "debug"
	format = "console"

Usage:

	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
	if err != nil {
		return err
	}
	settings, err := config.Bind(cfg)
*/
package config
