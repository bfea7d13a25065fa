// File: merge.go
// Title: Locale Merge Implementation
// Description: Implements merging of the files contributing to one locale
//              into a single flattened key map, applying the namespace
//              prefix rule and counting key collisions.
// Version: v0.1.0
// Created: 2026-03-05
// Modified: 2026-03-05
//
// Change History:
// - 2026-03-05 v0.1.0: Initial implementation with namespace prefixing

package translation

import (
	"github.com/locgen/locgen/core/config"
	lgerror "github.com/locgen/locgen/core/error"
	"github.com/locgen/locgen/internal/locales"
)

// DefaultNamespace is the namespace whose keys stay unprefixed under the
// namespaced layout.
const DefaultNamespace = "default"

// MergeResult holds the merged key map of one locale plus a collision
// count. Collisions are not errors; later files win and the count is a
// diagnostic.
type MergeResult struct {
	Messages   map[string]string
	Collisions int
}

// MergeLocale parses and merges every file contributing to one locale.
// Under the namespaced layout each file's keys are prefixed with its
// namespace followed by a dot, except for the default namespace whose keys
// merge unprefixed. When two files produce the same final key, the file
// processed later wins.
func MergeLocale(info locales.Info, layout config.Layout) (MergeResult, error) {
	result := MergeResult{Messages: make(map[string]string)}

	for _, path := range info.Files {
		flat, err := ParseFile(path)
		if err != nil {
			return MergeResult{}, lgerror.Wrap(err, "failed to merge locale").
				WithCode(lgerror.CodeParseError).
				WithOperation("translation.MergeLocale").
				WithDetail("locale", info.Code).
				WithDetail("file", path)
		}

		prefix := ""
		if layout == config.LayoutNamespaced {
			if ns := locales.Namespace(path); ns != DefaultNamespace {
				prefix = ns + "."
			}
		}

		for key, value := range flat {
			fullKey := prefix + key
			if _, exists := result.Messages[fullKey]; exists {
				result.Collisions++
			}
			result.Messages[fullKey] = value
		}
	}

	return result, nil
}
