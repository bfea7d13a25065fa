// File: merge_test.go
// Title: Locale Merge Tests
// Description: Tests for locale merging covering namespace prefixing, the
//              default namespace rule, later-file-wins collision handling,
//              and parse-failure propagation.
// Version: v0.1.0
// Created: 2026-03-05
// Modified: 2026-03-05
//
// Change History:
// - 2026-03-05 v0.1.0: Initial test implementation

package translation

import (
	"path/filepath"
	"testing"

	"github.com/locgen/locgen/core/config"
	"github.com/locgen/locgen/internal/locales"
)

func TestMergeLocale(t *testing.T) {
	t.Run("namespaced layout prefixes non-default files", func(t *testing.T) {
		tempDir := t.TempDir()
		defaultPath := filepath.Join(tempDir, "en", "default.json")
		commonPath := filepath.Join(tempDir, "en", "common.json")
		writeFile(t, defaultPath, `{"greeting": "Hello"}`)
		writeFile(t, commonPath, `{"save": "Save"}`)

		info := locales.Info{Code: "en", Files: []string{commonPath, defaultPath}}
		result, err := MergeLocale(info, config.LayoutNamespaced)
		if err != nil {
			t.Fatalf("MergeLocale failed: %v", err)
		}

		if result.Messages["greeting"] != "Hello" {
			t.Errorf("Default namespace keys must stay unprefixed, got %v", result.Messages)
		}
		if result.Messages["common.save"] != "Save" {
			t.Errorf("Expected prefixed key 'common.save', got %v", result.Messages)
		}
		if result.Collisions != 0 {
			t.Errorf("Expected no collisions, got %d", result.Collisions)
		}
	})

	t.Run("flat layout never prefixes", func(t *testing.T) {
		tempDir := t.TempDir()
		path := filepath.Join(tempDir, "en.json")
		writeFile(t, path, `{"nav": {"home": "Home"}}`)

		info := locales.Info{Code: "en", Files: []string{path}}
		result, err := MergeLocale(info, config.LayoutFlat)
		if err != nil {
			t.Fatalf("MergeLocale failed: %v", err)
		}
		if result.Messages["nav.home"] != "Home" {
			t.Errorf("Expected key 'nav.home', got %v", result.Messages)
		}
	})

	t.Run("later file wins and collisions are counted", func(t *testing.T) {
		tempDir := t.TempDir()
		first := filepath.Join(tempDir, "en", "default.json")
		second := filepath.Join(tempDir, "en", "extra.json")
		writeFile(t, first, `{"extra": {"title": "First"}, "only": "Kept"}`)
		writeFile(t, second, `{"title": "Second"}`)

		info := locales.Info{Code: "en", Files: []string{first, second}}
		result, err := MergeLocale(info, config.LayoutNamespaced)
		if err != nil {
			t.Fatalf("MergeLocale failed: %v", err)
		}

		if result.Messages["extra.title"] != "Second" {
			t.Errorf("Later file must win, got %q", result.Messages["extra.title"])
		}
		if result.Messages["only"] != "Kept" {
			t.Errorf("Non-colliding key lost: %v", result.Messages)
		}
		if result.Collisions != 1 {
			t.Errorf("Expected 1 collision, got %d", result.Collisions)
		}
	})

	t.Run("parse failure aborts the locale", func(t *testing.T) {
		tempDir := t.TempDir()
		good := filepath.Join(tempDir, "en", "default.json")
		bad := filepath.Join(tempDir, "en", "broken.json")
		writeFile(t, good, `{"greeting": "Hello"}`)
		writeFile(t, bad, `{invalid`)

		info := locales.Info{Code: "en", Files: []string{good, bad}}
		if _, err := MergeLocale(info, config.LayoutNamespaced); err == nil {
			t.Fatal("Expected error when one contributing file is malformed")
		}
	})
}
