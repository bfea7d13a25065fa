// File: packages.go
// Title: Workspace Package Manifest Implementation
// Description: Implements resolution of workspace package directories from
//              pnpm-workspace.yaml and package.json workspace declarations,
//              with glob expansion and negation patterns.
// Version: v0.1.0
// Created: 2026-03-06
// Modified: 2026-03-06
//
// Change History:
// - 2026-03-06 v0.1.0: Initial implementation with pnpm and npm manifests

package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	lgerror "github.com/locgen/locgen/core/error"
	"github.com/locgen/locgen/core/log"
)

// Packages resolves the package directories a workspace manifest declares.
// pnpm-workspace.yaml wins over package.json workspaces when both exist.
// The returned paths are absolute directories; a workspace without any
// manifest yields an empty list.
func Packages(workspaceRoot string) ([]string, error) {
	patterns, err := workspacePatterns(workspaceRoot)
	if err != nil {
		return nil, err
	}
	if len(patterns) == 0 {
		return nil, nil
	}

	return resolvePatterns(workspaceRoot, patterns)
}

// workspacePatterns reads the glob patterns from the first manifest found
func workspacePatterns(workspaceRoot string) ([]string, error) {
	pnpmPath := filepath.Join(workspaceRoot, "pnpm-workspace.yaml")
	if content, err := os.ReadFile(pnpmPath); err == nil {
		var manifest struct {
			Packages []string `yaml:"packages"`
		}
		if err := yaml.Unmarshal(content, &manifest); err != nil {
			return nil, lgerror.Wrap(err, "failed to parse pnpm workspace manifest").
				WithCode(lgerror.CodeParseError).
				WithOperation("discovery.workspacePatterns").
				WithDetail("path", pnpmPath)
		}
		return manifest.Packages, nil
	}

	pkgPath := filepath.Join(workspaceRoot, "package.json")
	content, err := os.ReadFile(pkgPath)
	if err != nil {
		return nil, nil
	}

	// "workspaces" is either a plain array or an object with a
	// "packages" array
	var withArray struct {
		Workspaces []string `json:"workspaces"`
	}
	if err := json.Unmarshal(content, &withArray); err == nil && len(withArray.Workspaces) > 0 {
		return withArray.Workspaces, nil
	}

	var withObject struct {
		Workspaces struct {
			Packages []string `json:"packages"`
		} `json:"workspaces"`
	}
	if err := json.Unmarshal(content, &withObject); err == nil {
		return withObject.Workspaces.Packages, nil
	}

	return nil, nil
}

// resolvePatterns expands the glob patterns against the workspace root.
// Patterns starting with '!' remove previously matched directories.
func resolvePatterns(workspaceRoot string, patterns []string) ([]string, error) {
	matched := make(map[string]bool)

	for _, pattern := range patterns {
		negate := strings.HasPrefix(pattern, "!")
		pattern = strings.TrimPrefix(pattern, "!")

		fsys := os.DirFS(workspaceRoot)
		hits, err := doublestar.Glob(fsys, filepath.ToSlash(pattern))
		if err != nil {
			log.Warn("skipping invalid workspace pattern",
				log.String("pattern", pattern), log.Err(err))
			continue
		}

		for _, hit := range hits {
			abs := filepath.Join(workspaceRoot, filepath.FromSlash(hit))
			info, err := os.Stat(abs)
			if err != nil || !info.IsDir() {
				continue
			}
			if strings.Contains(hit, "node_modules") {
				continue
			}
			if negate {
				delete(matched, abs)
			} else {
				matched[abs] = true
			}
		}
	}

	dirs := make([]string, 0, len(matched))
	for dir := range matched {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs, nil
}
