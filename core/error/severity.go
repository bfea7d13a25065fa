// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization in logs and result reporting. A single bad
//              locale file is lower severity than a broken configuration.
// Version: v0.1.0
// Created: 2026-03-03
// Modified: 2026-03-03
//
// Change History:
// - 2026-03-03 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: a single unparseable locale file, an unreadable nested project
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: a missing target locale, a skipped namespace file
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: invalid configuration, missing source locale, output write failures
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the pipeline unusable
	// Examples: unreadable workspace root, watch handle failures
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeWatchError:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig, CodeMissingLocale,
		CodeGenerateError, CodeWriteFailed:
		return SeverityHigh
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat,
		CodeInvalidInput, CodeDiscoveryError:
		return SeverityMedium
	case CodeParseError, CodeNotFound, CodeMissingConfig:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
