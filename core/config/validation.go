// File: validation.go
// Title: Configuration Validation Implementation
// Description: Implements validation of the project configuration record.
//              Enum fields and locale tags are checked loudly; invalid
//              configuration is never silently coerced.
// Version: v0.1.0
// Created: 2026-03-04
// Modified: 2026-03-04
//
// Change History:
// - 2026-03-04 v0.1.0: Initial implementation with enum and locale checks

package config

import (
	"errors"
	"strings"

	"golang.org/x/text/language"

	lgerror "github.com/locgen/locgen/core/error"
	"github.com/locgen/locgen/utils/stringx"
)

// aiProviders lists the accepted values for the optional ai.provider field
var aiProviders = map[string]bool{
	"openai":    true,
	"anthropic": true,
	"google":    true,
}

// Validate checks the configuration record and returns a typed error for the
// first violation found
func (c Config) Validate() error {
	if stringx.IsBlank(c.SourceLocale) {
		return lgerror.New("source locale cannot be empty").
			WithCode(lgerror.CodeRequiredField).
			WithOperation("config.Validate")
	}

	if err := validateLocaleTag(c.SourceLocale); err != nil {
		return lgerror.Wrap(err, "invalid source locale").
			WithCode(lgerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("sourceLocale", c.SourceLocale)
	}

	for _, target := range c.TargetLocales {
		if stringx.IsBlank(target) {
			return lgerror.New("target locale cannot be empty").
				WithCode(lgerror.CodeInvalidConfig).
				WithOperation("config.Validate")
		}
		if err := validateLocaleTag(target); err != nil {
			return lgerror.Wrap(err, "invalid target locale").
				WithCode(lgerror.CodeInvalidConfig).
				WithOperation("config.Validate").
				WithDetail("targetLocale", target)
		}
		// A source locale repeated in the target list would generate the
		// same module twice
		if strings.EqualFold(target, c.SourceLocale) {
			return lgerror.New("source locale must not appear in target locales").
				WithCode(lgerror.CodeInvalidConfig).
				WithOperation("config.Validate").
				WithDetail("locale", target)
		}
	}

	switch c.Layout {
	case LayoutFlat, LayoutNamespaced:
	default:
		return lgerror.New("invalid layout").
			WithCode(lgerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("layout", string(c.Layout)).
			WithDetail("expected", "flat | namespaced")
	}

	switch c.Interpolation {
	case InterpolationSingle, InterpolationDouble:
	default:
		return lgerror.New("invalid interpolation syntax").
			WithCode(lgerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("interpolation", string(c.Interpolation)).
			WithDetail("expected", "single | double")
	}

	switch c.Format {
	case FormatAuto, FormatJSON, FormatYAML, FormatTOML:
	default:
		return lgerror.New("invalid translation file format").
			WithCode(lgerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("format", string(c.Format)).
			WithDetail("expected", "auto | json | yaml | toml")
	}

	if c.AI != nil {
		if !aiProviders[strings.ToLower(c.AI.Provider)] {
			return lgerror.New("invalid ai provider").
				WithCode(lgerror.CodeInvalidConfig).
				WithOperation("config.Validate").
				WithDetail("provider", c.AI.Provider).
				WithDetail("expected", "openai | anthropic | google")
		}
	}

	return nil
}

// validateLocaleTag checks that a locale code is a well-formed BCP 47 tag.
// Unknown but well-formed tags are accepted; file naming wins over registry
// knowledge.
func validateLocaleTag(code string) error {
	_, err := language.Parse(code)
	if err == nil {
		return nil
	}

	var valueErr language.ValueError
	if errors.As(err, &valueErr) {
		return nil
	}

	return err
}
