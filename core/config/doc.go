// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config provides the typed project configuration for
//              the locgen pipeline with candidate-filename discovery,
//              JSON/YAML/TOML decoding, defaulting, and loud validation.
// Version: v0.1.0
// Created: 2026-03-04
// Modified: 2026-03-04
//
// Change History:
// - 2026-03-04 v0.1.0: Initial documentation

/*
Package config provides the typed project configuration for locgen.

One configuration record exists per project root. Load searches a fixed,
ordered list of candidate filenames (locgen.config.json first) and decodes
the first match by extension; a project without any configuration file gets
the default record verbatim.

	cfg, path, err := config.Load(projectRoot)

Every omitted field is filled with its default before validation. Validation
is loud: wrong field types fail at decode time, unknown enum values and
malformed locale tags return a typed error, and a source locale repeated in
the target list is rejected. The record is immutable once loaded; a compile
pass never observes a half-updated configuration.
*/
package config
