// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the locgen pipeline. These codes enable
//              structured error handling and per-stage failure reporting.
// Version: v0.1.0
// Created: 2026-03-03
// Modified: 2026-03-03
//
// Change History:
// - 2026-03-03 v0.1.0: Initial implementation with pipeline error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the locgen pipeline
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeMissingConfig Code = "MISSING_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"

	// Discovery and enumeration
	CodeDiscoveryError Code = "DISCOVERY_ERROR"
	CodeMissingLocale  Code = "MISSING_LOCALE"

	// Parsing and merging
	CodeParseError Code = "PARSE_ERROR"

	// Code generation
	CodeGenerateError Code = "GENERATE_ERROR"
	CodeWriteFailed   Code = "WRITE_FAILED"

	// Watch loop
	CodeWatchError Code = "WATCH_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeConfigError, CodeInvalidConfig, CodeMissingConfig,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat,
		CodeDiscoveryError, CodeMissingLocale,
		CodeParseError,
		CodeGenerateError, CodeWriteFailed,
		CodeWatchError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeConfigError, CodeInvalidConfig, CodeMissingConfig:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat:
		return "validation"
	case CodeDiscoveryError, CodeMissingLocale:
		return "discovery"
	case CodeParseError:
		return "parse"
	case CodeGenerateError, CodeWriteFailed:
		return "generation"
	case CodeWatchError:
		return "watch"
	default:
		return "generic"
	}
}
