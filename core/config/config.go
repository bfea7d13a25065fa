// File: config.go
// Title: Project Configuration Implementation
// Description: Implements the typed project configuration record for the
//              locgen pipeline, including candidate-filename discovery in a
//              project root, decoding from JSON, YAML, and TOML sources, and
//              defaulting of every omitted field.
// Version: v0.1.0
// Created: 2026-03-04
// Modified: 2026-03-04
//
// Change History:
// - 2026-03-04 v0.1.0: Initial implementation with JSON/YAML/TOML support

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	lgerror "github.com/locgen/locgen/core/error"
)

// Layout identifies the file-layout convention of a locales directory
type Layout string

const (
	// LayoutFlat expects one file per locale directly in the locales directory
	LayoutFlat Layout = "flat"

	// LayoutNamespaced expects one directory per locale containing one file
	// per namespace
	LayoutNamespaced Layout = "namespaced"
)

// Interpolation identifies the bracket convention marking parameters in
// translation values
type Interpolation string

const (
	// InterpolationSingle marks parameters as {name}
	InterpolationSingle Interpolation = "single"

	// InterpolationDouble marks parameters as {{name}}
	InterpolationDouble Interpolation = "double"
)

// Format identifies the translation-file format accepted during enumeration
type Format string

const (
	// FormatAuto accepts every supported extension
	FormatAuto Format = "auto"

	// FormatJSON accepts .json files only
	FormatJSON Format = "json"

	// FormatYAML accepts .yaml and .yml files only
	FormatYAML Format = "yaml"

	// FormatTOML accepts .toml files only
	FormatTOML Format = "toml"
)

// Extensions returns the file extensions accepted for this format
func (f Format) Extensions() []string {
	switch f {
	case FormatJSON:
		return []string{".json"}
	case FormatYAML:
		return []string{".yaml", ".yml"}
	case FormatTOML:
		return []string{".toml"}
	default:
		return []string{".json", ".yaml", ".yml", ".toml"}
	}
}

// Accepts reports whether the format accepts a file with the given extension
func (f Format) Accepts(ext string) bool {
	ext = strings.ToLower(ext)
	for _, candidate := range f.Extensions() {
		if ext == candidate {
			return true
		}
	}
	return false
}

// AIConfig is the optional AI-provider block. It is validated and carried on
// the configuration but never invoked by the pipeline itself; translation
// provider calls live in an external collaborator.
type AIConfig struct {
	Provider string `json:"provider" yaml:"provider" toml:"provider"`
	Model    string `json:"model" yaml:"model" toml:"model"`
	APIKey   string `json:"apiKey" yaml:"apiKey" toml:"apiKey"`
}

// Config is one project's configuration record. It is loaded once per
// compile pass and immutable thereafter.
type Config struct {
	SourceLocale  string        `json:"sourceLocale" yaml:"sourceLocale" toml:"sourceLocale"`
	TargetLocales []string      `json:"targetLocales" yaml:"targetLocales" toml:"targetLocales"`
	LocalesDir    string        `json:"localesDir" yaml:"localesDir" toml:"localesDir"`
	OutputDir     string        `json:"outputDir" yaml:"outputDir" toml:"outputDir"`
	OutputPackage string        `json:"outputPackage" yaml:"outputPackage" toml:"outputPackage"`
	Include       []string      `json:"include" yaml:"include" toml:"include"`
	Exclude       []string      `json:"exclude" yaml:"exclude" toml:"exclude"`
	Layout        Layout        `json:"layout" yaml:"layout" toml:"layout"`
	Interpolation Interpolation `json:"interpolation" yaml:"interpolation" toml:"interpolation"`
	Format        Format        `json:"format" yaml:"format" toml:"format"`
	AI            *AIConfig     `json:"ai,omitempty" yaml:"ai,omitempty" toml:"ai,omitempty"`
}

// Default returns the configuration with every field at its default value
func Default() Config {
	return Config{
		SourceLocale:  "en",
		TargetLocales: []string{},
		LocalesDir:    "./locales",
		OutputDir:     "./internal/i18n",
		OutputPackage: "i18n",
		Include:       []string{},
		Exclude:       []string{},
		Layout:        LayoutFlat,
		Interpolation: InterpolationSingle,
		Format:        FormatAuto,
	}
}

// CandidateFilenames returns the configuration filenames searched in a
// project root, in priority order
func CandidateFilenames() []string {
	return []string{
		"locgen.config.json",
		"locgen.config.yaml",
		"locgen.config.yml",
		"locgen.config.toml",
		".locgenrc.json",
	}
}

// Load searches the candidate filenames in the project root and loads the
// first match. When no candidate exists, the default configuration is
// returned verbatim with an empty path.
func Load(projectRoot string) (Config, string, error) {
	for _, name := range CandidateFilenames() {
		path := filepath.Join(projectRoot, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}

		cfg, err := LoadFile(path)
		if err != nil {
			return Config{}, path, err
		}
		return cfg, path, nil
	}

	return Default(), "", nil
}

// LoadFile loads and validates a configuration file. Every omitted field is
// filled with its default before validation.
func LoadFile(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, lgerror.Wrap(err, "failed to read config file").
			WithCode(lgerror.CodeConfigError).
			WithOperation("config.LoadFile").
			WithDetail("path", path)
	}

	cfg, err := decode(content, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return Config{}, lgerror.Wrap(err, "failed to parse config file").
			WithCode(lgerror.CodeInvalidConfig).
			WithOperation("config.LoadFile").
			WithDetail("path", path)
	}

	cfg = applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, lgerror.Wrap(err, "invalid configuration").
			WithOperation("config.LoadFile").
			WithDetail("path", path)
	}

	return cfg, nil
}

// decode parses configuration content based on the file extension. Type
// mismatches fail here rather than being coerced.
func decode(content []byte, ext string) (Config, error) {
	var cfg Config

	switch ext {
	case ".json":
		if err := json.Unmarshal(content, &cfg); err != nil {
			return Config{}, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, err
		}
	case ".toml":
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return Config{}, err
		}
	default:
		return Config{}, lgerror.New("unsupported config file extension").
			WithCode(lgerror.CodeInvalidFormat).
			WithOperation("config.decode").
			WithDetail("extension", ext)
	}

	return cfg, nil
}

// applyDefaults fills every zero-valued field with its default
func applyDefaults(cfg Config) Config {
	defaults := Default()

	if strings.TrimSpace(cfg.SourceLocale) == "" {
		cfg.SourceLocale = defaults.SourceLocale
	}
	if cfg.TargetLocales == nil {
		cfg.TargetLocales = defaults.TargetLocales
	}
	if strings.TrimSpace(cfg.LocalesDir) == "" {
		cfg.LocalesDir = defaults.LocalesDir
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		cfg.OutputDir = defaults.OutputDir
	}
	if strings.TrimSpace(cfg.OutputPackage) == "" {
		cfg.OutputPackage = defaults.OutputPackage
	}
	if cfg.Include == nil {
		cfg.Include = defaults.Include
	}
	if cfg.Exclude == nil {
		cfg.Exclude = defaults.Exclude
	}
	if cfg.Layout == "" {
		cfg.Layout = defaults.Layout
	}
	if cfg.Interpolation == "" {
		cfg.Interpolation = defaults.Interpolation
	}
	if cfg.Format == "" {
		cfg.Format = defaults.Format
	}

	return cfg
}
