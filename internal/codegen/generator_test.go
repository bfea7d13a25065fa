// File: generator_test.go
// Title: Go Source Generation Tests
// Description: Tests for code generation covering key-set equivalence,
//              identifier derivation, escaping of quotes and newlines,
//              parameter typing, and deterministic output.
// Version: v0.1.0
// Created: 2026-03-07
// Modified: 2026-03-07
//
// Change History:
// - 2026-03-07 v0.1.0: Initial test implementation

package codegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/locgen/locgen/core/config"
)

func generate(t *testing.T, in Input) string {
	t.Helper()
	results := Generate(in)
	for _, result := range results {
		if result.Err != nil {
			t.Fatalf("Generation of %s failed: %v", result.Path, result.Err)
		}
	}
	return in.OutputDir
}

func readGenerated(t *testing.T, dir, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("Failed to read generated file: %v", err)
	}
	return string(content)
}

func baseInput(t *testing.T) Input {
	return Input{
		OutputDir:     filepath.Join(t.TempDir(), "i18n"),
		Package:       "i18n",
		SourceLocale:  "en",
		Interpolation: config.InterpolationSingle,
		Tables: map[string]map[string]string{
			"en": {
				"greeting":  "Hello, {name}!",
				"nav.home":  "Home",
				"cart.count": "{count, number} items",
			},
			"de": {
				"greeting": "Hallo, {name}!",
				"nav.home": "Start",
			},
		},
	}
}

func TestGenerate(t *testing.T) {
	t.Run("emits one file per locale plus accessors and index", func(t *testing.T) {
		in := baseInput(t)
		results := Generate(in)

		if len(results) != 3 {
			t.Fatalf("Expected 3 results, got %d", len(results))
		}
		if results[0].Locale != "en" || results[1].Locale != "de" {
			t.Errorf("Expected source locale first, got %s then %s", results[0].Locale, results[1].Locale)
		}
		if results[2].Locale != "" || !strings.HasSuffix(results[2].Path, "messages.go") {
			t.Errorf("Expected accessor result last, got %+v", results[2])
		}
		for _, result := range results {
			if result.Err != nil {
				t.Errorf("Result for %s carries error: %v", result.Path, result.Err)
			}
		}

		for _, name := range []string{"en.go", "de.go", "messages.go", "index.go"} {
			if _, err := os.Stat(filepath.Join(in.OutputDir, name)); err != nil {
				t.Errorf("Expected generated file %s: %v", name, err)
			}
		}
	})

	t.Run("locale table carries every merged key", func(t *testing.T) {
		in := baseInput(t)
		dir := generate(t, in)

		enFile := readGenerated(t, dir, "en.go")
		for key := range in.Tables["en"] {
			if !strings.Contains(enFile, `"`+key+`"`) {
				t.Errorf("en.go missing key %q", key)
			}
		}
		if !strings.Contains(enFile, `const TagEn = "en"`) {
			t.Error("en.go missing tag constant")
		}
		if !strings.Contains(enFile, "var messagesEn = map[string]string{") {
			t.Error("en.go missing message table")
		}
	})

	t.Run("accessor names and parameter structs", func(t *testing.T) {
		in := baseInput(t)
		dir := generate(t, in)

		messages := readGenerated(t, dir, "messages.go")
		if !strings.Contains(messages, "func NavHome(locale Locale) string") {
			t.Error("Expected parameterless accessor NavHome")
		}
		if !strings.Contains(messages, "type GreetingParams struct") ||
			!strings.Contains(messages, "Name string") {
			t.Error("Expected GreetingParams with string field")
		}
		if !strings.Contains(messages, "func Greeting(locale Locale, p GreetingParams) string") {
			t.Error("Expected parameterized accessor Greeting")
		}
		if !strings.Contains(messages, "Count int") ||
			!strings.Contains(messages, "strconv.Itoa(p.Count)") {
			t.Error("Expected number hint to map to int")
		}
		if !strings.Contains(messages, `v = strings.ReplaceAll(v, "{name}", p.Name)`) {
			t.Error("Expected brace substitution for {name}")
		}
	})

	t.Run("date hint maps to time.Time", func(t *testing.T) {
		in := baseInput(t)
		in.Tables["en"] = map[string]string{"due": "Due {deadline, date}"}
		delete(in.Tables, "de")
		dir := generate(t, in)

		messages := readGenerated(t, dir, "messages.go")
		if !strings.Contains(messages, "Deadline time.Time") {
			t.Error("Expected time.Time field for date hint")
		}
		if !strings.Contains(messages, `p.Deadline.Format("2006-01-02")`) {
			t.Error("Expected date formatting expression")
		}
		if !strings.Contains(messages, "\"time\"") {
			t.Error("Expected time import")
		}
	})

	t.Run("double interpolation substitutes double tokens", func(t *testing.T) {
		in := baseInput(t)
		in.Interpolation = config.InterpolationDouble
		in.Tables["en"] = map[string]string{"greeting": "Hello, {{name}}!"}
		delete(in.Tables, "de")
		dir := generate(t, in)

		messages := readGenerated(t, dir, "messages.go")
		if !strings.Contains(messages, `v = strings.ReplaceAll(v, "{{name}}", p.Name)`) {
			t.Error("Expected double-brace substitution token")
		}
	})

	t.Run("index lists source first and falls back in lookup", func(t *testing.T) {
		in := baseInput(t)
		dir := generate(t, in)

		index := readGenerated(t, dir, "index.go")
		if !strings.Contains(index, "type Locale string") {
			t.Error("Expected Locale type")
		}
		if !strings.Contains(index, `LocaleEn Locale = "en"`) ||
			!strings.Contains(index, `LocaleDe Locale = "de"`) {
			t.Error("Expected one constant per locale")
		}
		enPos := strings.Index(index, "LocaleEn,")
		dePos := strings.Index(index, "LocaleDe,")
		if enPos < 0 || dePos < 0 || enPos > dePos {
			t.Error("Expected source locale first in Locales")
		}
		if !strings.Contains(index, "return tables[LocaleEn][key]") {
			t.Error("Expected lookup fallback to the source locale")
		}
	})

	t.Run("quotes and newlines are escaped", func(t *testing.T) {
		in := baseInput(t)
		in.Tables["en"] = map[string]string{"quote": "She said \"hi\"\nthen left"}
		delete(in.Tables, "de")
		dir := generate(t, in)

		enFile := readGenerated(t, dir, "en.go")
		if !strings.Contains(enFile, `"She said \"hi\"\nthen left"`) {
			t.Errorf("Expected escaped value, got:\n%s", enFile)
		}
	})

	t.Run("deterministic output", func(t *testing.T) {
		first := baseInput(t)
		second := baseInput(t)
		generate(t, first)
		generate(t, second)

		for _, name := range []string{"en.go", "de.go", "messages.go", "index.go"} {
			a := readGenerated(t, first.OutputDir, name)
			b := readGenerated(t, second.OutputDir, name)
			if a != b {
				t.Errorf("File %s differs between identical runs", name)
			}
		}
	})

	t.Run("key named after an index declaration still compiles", func(t *testing.T) {
		in := baseInput(t)
		in.Tables["en"] = map[string]string{"table": "A table", "locale": "A locale"}
		delete(in.Tables, "de")
		dir := generate(t, in)

		messages := readGenerated(t, dir, "messages.go")
		if strings.Contains(messages, "func Table(locale Locale) string") {
			t.Error("Accessor must not redeclare index.go's Table")
		}
		if !strings.Contains(messages, "func Table2(locale Locale) string") {
			t.Error("Expected suffixed accessor Table2")
		}
		if strings.Contains(messages, "func Locale(") {
			t.Error("Accessor must not shadow the Locale type")
		}
		if !strings.Contains(messages, "func Locale2(locale Locale) string") {
			t.Error("Expected suffixed accessor Locale2")
		}
	})

	t.Run("locale codes collapsing to one identifier stay distinct", func(t *testing.T) {
		in := baseInput(t)
		in.Tables["en-US"] = map[string]string{"greeting": "Howdy"}
		in.Tables["en_US"] = map[string]string{"greeting": "Hello there"}
		delete(in.Tables, "de")
		dir := generate(t, in)

		index := readGenerated(t, dir, "index.go")
		if !strings.Contains(index, `LocaleEnUS Locale = "en-US"`) {
			t.Error("Expected LocaleEnUS for the first code")
		}
		if !strings.Contains(index, `LocaleEnUS2 Locale = "en_US"`) {
			t.Error("Expected suffixed LocaleEnUS2 for the second code")
		}
		for _, name := range []string{"en-US.go", "en_US.go"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
				t.Errorf("Expected table file %s: %v", name, err)
			}
		}
	})

	t.Run("locale named messages does not overwrite the accessor file", func(t *testing.T) {
		in := baseInput(t)
		in.Tables["messages"] = map[string]string{"greeting": "Hi"}
		delete(in.Tables, "de")
		dir := generate(t, in)

		table := readGenerated(t, dir, "locale_messages.go")
		if !strings.Contains(table, "var messagesMessages = map[string]string{") {
			t.Error("Expected the locale table in locale_messages.go")
		}
		accessors := readGenerated(t, dir, "messages.go")
		if !strings.Contains(accessors, "func Greeting(") {
			t.Error("messages.go must still hold the accessors")
		}
	})

	t.Run("hyphenated locale code", func(t *testing.T) {
		in := baseInput(t)
		in.Tables["es-MX"] = map[string]string{"greeting": "Hola"}
		delete(in.Tables, "de")
		dir := generate(t, in)

		file := readGenerated(t, dir, "es-MX.go")
		if !strings.Contains(file, `const TagEsMX = "es-MX"`) {
			t.Error("Expected TagEsMX constant")
		}
		index := readGenerated(t, dir, "index.go")
		if !strings.Contains(index, `LocaleEsMX Locale = "es-MX"`) {
			t.Error("Expected LocaleEsMX constant")
		}
	})
}

func TestExportName(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"greeting", "Greeting"},
		{"nav.home", "NavHome"},
		{"common.save-all", "CommonSaveAll"},
		{"error_messages.not_found", "ErrorMessagesNotFound"},
		{"404.title", "Key404Title"},
		{"...", "Key"},
	}
	for _, tt := range tests {
		if got := exportName(tt.key); got != tt.want {
			t.Errorf("exportName(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestAssignIdentifiers(t *testing.T) {
	idents := assignIdentifiers([]string{"nav.home", "nav-home", "nav_home"}, nil)

	seen := make(map[string]bool)
	for key, ident := range idents {
		if seen[ident] {
			t.Errorf("Duplicate identifier %q for key %q", ident, key)
		}
		seen[ident] = true
	}
	// Sorted processing makes suffix assignment stable
	if idents["nav-home"] != "NavHome" {
		t.Errorf("Expected first sorted key to keep the bare name, got %q", idents["nav-home"])
	}
}

func TestAssignIdentifiersReserved(t *testing.T) {
	idents := assignIdentifiers([]string{"table", "locales"}, []string{"Locale", "Locales", "Table"})

	if idents["table"] != "Table2" {
		t.Errorf("Expected reserved name to force a suffix, got %q", idents["table"])
	}
	if idents["locales"] != "Locales2" {
		t.Errorf("Expected reserved name to force a suffix, got %q", idents["locales"])
	}
}
