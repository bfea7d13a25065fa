// File: doc.go
// Title: Logging Package Documentation
// Description: Package log provides structured, leveled logging for the
//              locgen pipeline with named sub-loggers and text/JSON output.
// Version: v0.1.0
// Created: 2026-03-03
// Modified: 2026-03-03
//
// Change History:
// - 2026-03-03 v0.1.0: Initial documentation

/*
Package log provides structured, leveled logging for the locgen pipeline.

Loggers are immutable: every With* call returns a copy, so a named
sub-logger can be handed to a component without affecting its parent.

Usage:

	logger := log.New().WithName("discovery").WithLevel(log.LevelDebug)
	logger.Warn("skipping unreadable project config",
		log.String("path", configPath), log.Err(err))

The package default logger writes text entries to stderr at info level.
Commands replace it via SetDefault when --verbose or --log-format are set.
*/
package log
