// File: doc.go
// Title: Error Package Documentation
// Description: Package error provides structured error handling for the
//              locgen pipeline with error codes, severities, and contextual
//              details.
// Version: v0.1.0
// Created: 2026-03-03
// Modified: 2026-03-03
//
// Change History:
// - 2026-03-03 v0.1.0: Initial documentation

/*
Package error provides structured error handling for the locgen pipeline.

Errors carry a Code classifying the failed pipeline stage (configuration,
discovery, parse, generation, watch), a Severity, an operation name, and a
details map, while remaining compatible with Go's standard error interface
including Unwrap.

Usage:

	return lgerror.New("invalid interpolation syntax").
		WithCode(lgerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("interpolation", cfg.Interpolation)

Wrapping preserves code, severity, and details of the inner error:

	if err := parse(path); err != nil {
		return lgerror.Wrap(err, "failed to parse locale file").
			WithDetail("path", path)
	}
*/
package error
