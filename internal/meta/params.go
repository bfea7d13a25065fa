// File: params.go
// Title: Message Parameter Extraction Implementation
// Description: Implements extraction of interpolation parameters from
//              translation values under the single-brace and double-brace
//              syntaxes, including type hints.
// Version: v0.1.0
// Created: 2026-03-05
// Modified: 2026-03-05
//
// Change History:
// - 2026-03-05 v0.1.0: Initial implementation with type hints

package meta

import (
	"regexp"
	"strings"

	"github.com/locgen/locgen/core/config"
)

// Kind classifies the Go type a parameter maps to in generated accessors.
type Kind int

const (
	// KindString maps to a plain string parameter
	KindString Kind = iota
	// KindNumber maps to an int parameter
	KindNumber
	// KindDate maps to a time.Time parameter
	KindDate
)

// Param is one interpolation parameter of a message value.
type Param struct {
	Name string
	Kind Kind
}

var (
	// {name} or {name, hint} or {name, plural, ...}
	singlePattern = regexp.MustCompile(`\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*(?:,\s*([A-Za-z]+))?\s*[},]`)
	// {{name}} or {{name, hint}} or {{name, plural, ...}}
	doublePattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*(?:,\s*([A-Za-z]+))?\s*(?:\}\}|,)`)
)

// Extract returns the interpolation parameters of one message value in
// first-occurrence order. A name appearing more than once yields a single
// parameter whose kind comes from its first occurrence. Extraction is
// deterministic: the same value and syntax always yield the same list.
func Extract(value string, syntax config.Interpolation) []Param {
	pattern := singlePattern
	if syntax == config.InterpolationDouble {
		pattern = doublePattern
	}

	var params []Param
	seen := make(map[string]bool)

	for _, match := range pattern.FindAllStringSubmatch(value, -1) {
		name := match[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		params = append(params, Param{Name: name, Kind: kindFromHint(match[2])})
	}

	return params
}

// kindFromHint maps a type hint to a parameter kind. Unknown hints fall
// back to string.
func kindFromHint(hint string) Kind {
	switch strings.ToLower(hint) {
	case "number", "plural":
		return KindNumber
	case "date", "time":
		return KindDate
	default:
		return KindString
	}
}
