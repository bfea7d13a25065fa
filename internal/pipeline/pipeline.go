// File: pipeline.go
// Title: Compile Pipeline Implementation
// Description: Implements the compile pass for one project: locale
//              enumeration, include/exclude filtering, merging, and code
//              generation, reported as one result per emitted file.
// Version: v0.1.0
// Created: 2026-03-08
// Modified: 2026-03-08
//
// Change History:
// - 2026-03-08 v0.1.0: Initial implementation

package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/locgen/locgen/core/log"
	"github.com/locgen/locgen/internal/codegen"
	"github.com/locgen/locgen/internal/discovery"
	"github.com/locgen/locgen/internal/locales"
	"github.com/locgen/locgen/internal/translation"
)

// CompileResult reports one unit of a compile pass: a generated file, or a
// locale that failed before generation.
type CompileResult struct {
	Success    bool
	OutputPath string
	KeysCount  int
	Errors     []string
}

// Compile runs one full compile pass for a project. When the source
// locale has no translation files, or its files fail to merge, nothing is
// written; the returned results name the source locale and carry every
// per-locale failure verbatim. A non-source locale that fails to merge
// yields a failed result while its siblings continue.
func Compile(project discovery.Project) []CompileResult {
	tables, failures, err := mergedTables(project)
	if err != nil {
		return []CompileResult{failed(err.Error())}
	}

	source := project.Config.SourceLocale
	if _, ok := tables[source]; !ok {
		results := failureResults(failures)
		if hasFailure(failures, source) {
			results = append(results, failed(fmt.Sprintf(
				"source locale %q failed to merge; nothing generated", source)))
		} else {
			results = append(results, failed(fmt.Sprintf(
				"source locale %q has no translation files in %s",
				source, localesDir(project))))
		}
		return results
	}

	results := failureResults(failures)

	outputDir := filepath.Join(project.Root, filepath.FromSlash(project.Config.OutputDir))
	fileResults := codegen.Generate(codegen.Input{
		OutputDir:     outputDir,
		Package:       project.Config.OutputPackage,
		SourceLocale:  project.Config.SourceLocale,
		Interpolation: project.Config.Interpolation,
		Tables:        tables,
	})

	for _, fileResult := range fileResults {
		result := CompileResult{
			Success:    fileResult.Err == nil,
			OutputPath: fileResult.Path,
			KeysCount:  fileResult.Keys,
		}
		if fileResult.Err != nil {
			result.Errors = []string{fileResult.Err.Error()}
		}
		results = append(results, result)
	}

	return results
}

// Snapshot returns the merged per-locale key maps of a project without
// writing anything. Locales that fail to merge are omitted.
func Snapshot(project discovery.Project) (map[string]map[string]string, error) {
	tables, _, err := mergedTables(project)
	if err != nil {
		return nil, err
	}
	return tables, nil
}

// localeFailure pairs a merge failure with the locale it belongs to, so
// Compile can tell a broken source locale from a missing one
type localeFailure struct {
	code   string
	result CompileResult
}

func failureResults(failures []localeFailure) []CompileResult {
	var results []CompileResult
	for _, failure := range failures {
		results = append(results, failure.result)
	}
	return results
}

func hasFailure(failures []localeFailure, code string) bool {
	for _, failure := range failures {
		if failure.code == code {
			return true
		}
	}
	return false
}

// mergedTables enumerates, filters, and merges every locale of a project.
// Per-locale merge failures come back as failed results; only enumeration
// itself can error.
func mergedTables(project discovery.Project) (map[string]map[string]string, []localeFailure, error) {
	infos, err := locales.Enumerate(localesDir(project), project.Config.Layout, project.Config.Format)
	if err != nil {
		return nil, nil, err
	}

	tables := make(map[string]map[string]string, len(infos))
	var failures []localeFailure

	for _, info := range infos {
		filtered := filterFiles(project, info)
		if len(filtered.Files) == 0 {
			continue
		}

		merged, err := translation.MergeLocale(filtered, project.Config.Layout)
		if err != nil {
			failures = append(failures, localeFailure{
				code:   info.Code,
				result: failed(fmt.Sprintf("locale %q: %v", info.Code, err)),
			})
			continue
		}
		if merged.Collisions > 0 {
			log.Debug("locale merge produced key collisions",
				log.String("locale", info.Code),
				log.Int("collisions", merged.Collisions))
		}
		tables[info.Code] = merged.Messages
	}

	return tables, failures, nil
}

// filterFiles applies the include/exclude globs to the files of one
// locale. Patterns match paths relative to the project root with forward
// slashes; an empty include list includes everything.
func filterFiles(project discovery.Project, info locales.Info) locales.Info {
	include := project.Config.Include
	exclude := project.Config.Exclude
	if len(include) == 0 && len(exclude) == 0 {
		return info
	}

	filtered := locales.Info{Code: info.Code}
	for _, path := range info.Files {
		rel, err := filepath.Rel(project.Root, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if len(include) > 0 && !matchesAny(include, rel) {
			continue
		}
		if matchesAny(exclude, rel) {
			continue
		}
		filtered.Files = append(filtered.Files, path)
	}
	return filtered
}

func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// localesDir resolves the configured locales directory against the project
// root
func localesDir(project discovery.Project) string {
	return filepath.Join(project.Root, filepath.FromSlash(project.Config.LocalesDir))
}

func failed(message string) CompileResult {
	return CompileResult{Success: false, Errors: []string{message}}
}

// LocalesDir exposes the resolved locales directory for watch setup
func LocalesDir(project discovery.Project) string {
	return localesDir(project)
}
