// File: parser.go
// Title: Translation File Parser Implementation
// Description: Implements loading of a single translation source file into a
//              flattened key map. Nested objects recurse into dot-qualified
//              keys, string values terminate, and every other value type is
//              dropped.
// Version: v0.1.0
// Created: 2026-03-05
// Modified: 2026-03-05
//
// Change History:
// - 2026-03-05 v0.1.0: Initial implementation with JSON/YAML/TOML support

package translation

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	lgerror "github.com/locgen/locgen/core/error"
)

// ParseFile loads one translation source file and returns its flattened
// key map. The format follows the file extension.
func ParseFile(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, lgerror.Wrap(err, "failed to read translation file").
			WithCode(lgerror.CodeParseError).
			WithOperation("translation.ParseFile").
			WithDetail("path", path)
	}

	data, err := decode(content, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, lgerror.Wrap(err, "failed to parse translation file").
			WithCode(lgerror.CodeParseError).
			WithOperation("translation.ParseFile").
			WithDetail("path", path)
	}

	return Flatten(data), nil
}

// decode parses translation content based on the file extension
func decode(content []byte, ext string) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch ext {
	case ".json":
		if err := json.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	default:
		return nil, lgerror.New("unsupported translation file extension").
			WithCode(lgerror.CodeInvalidFormat).
			WithOperation("translation.decode").
			WithDetail("extension", ext)
	}

	return data, nil
}

// Flatten converts a nested key/value structure into a single-level map
// whose keys are dot-joined paths. Recursion depth follows value nesting;
// there is no artificial limit.
func Flatten(data map[string]interface{}) map[string]string {
	flat := make(map[string]string)
	flattenInto(flat, data, "")
	return flat
}

// flattenInto recursively collects string leaves from nested translation data
func flattenInto(flat map[string]string, data map[string]interface{}, prefix string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			flat[fullKey] = v
		case map[string]interface{}:
			flattenInto(flat, v, fullKey)
		case map[interface{}]interface{}:
			// Older YAML payloads decode nested objects with untyped keys
			converted := make(map[string]interface{}, len(v))
			for k, val := range v {
				if ks, ok := k.(string); ok {
					converted[ks] = val
				}
			}
			flattenInto(flat, converted, fullKey)
		default:
			// Numbers, booleans, arrays, and null are not translation
			// values; they are dropped
		}
	}
}
