// File: discovery.go
// Title: Project Discovery Implementation
// Description: Implements discovery of translation projects in a workspace
//              by walking for configuration files and consulting workspace
//              package manifests, with a stable identifier and display name
//              per project.
// Version: v0.1.0
// Created: 2026-03-06
// Modified: 2026-03-06
//
// Change History:
// - 2026-03-06 v0.1.0: Initial implementation with root-project handling

package discovery

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/locgen/locgen/core/config"
	lgerror "github.com/locgen/locgen/core/error"
	"github.com/locgen/locgen/core/log"
	"github.com/locgen/locgen/utils/filex"
	"github.com/locgen/locgen/utils/stringx"
)

// RootProjectID is the identifier of the project rooted at the workspace
// itself.
const RootProjectID = "."

// Project is one discovered translation project.
type Project struct {
	// ID is the project root relative to the workspace root, with forward
	// slashes; the workspace root itself is "."
	ID string

	// Name is the display name shown in command output
	Name string

	// Root is the absolute project root directory
	Root string

	// ConfigPath is the absolute path of the loaded configuration file, or
	// empty when the project runs on defaults
	ConfigPath string

	// Config is the validated configuration of the project
	Config config.Config
}

// excludedDirs are directory names never descended into during the walk
var excludedDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"build":        true,
	"out":          true,
	"coverage":     true,
	"vendor":       true,
	".next":        true,
	".idea":        true,
	".vscode":      true,
}

// Discover finds every translation project under the workspace root. A
// directory becomes a project when it holds a configuration file; a
// workspace-declared package without one becomes a project on defaults when
// its default locales directory exists. The workspace root itself joins
// under the same rules. Projects with an unloadable configuration are
// logged and skipped. The result is ordered by path depth, then
// lexicographically.
func Discover(workspaceRoot string) ([]Project, error) {
	absRoot, err := filepath.Abs(workspaceRoot)
	if err != nil {
		return nil, lgerror.Wrap(err, "failed to resolve workspace root").
			WithCode(lgerror.CodeDiscoveryError).
			WithOperation("discovery.Discover").
			WithDetail("root", workspaceRoot)
	}

	roots, err := candidateRoots(absRoot)
	if err != nil {
		return nil, err
	}

	var projects []Project
	for _, dir := range roots {
		project, ok := loadProject(absRoot, dir)
		if !ok {
			continue
		}
		projects = append(projects, project)
	}

	sort.Slice(projects, func(i, j int) bool {
		di := strings.Count(projects[i].ID, "/")
		dj := strings.Count(projects[j].ID, "/")
		if projects[i].ID == RootProjectID {
			di = -1
		}
		if projects[j].ID == RootProjectID {
			dj = -1
		}
		if di != dj {
			return di < dj
		}
		return projects[i].ID < projects[j].ID
	})

	return projects, nil
}

// candidateRoots collects the directories that may hold a project: every
// directory containing a configuration file, every workspace-declared
// package directory, and the workspace root itself. Duplicates are removed
// after path resolution.
func candidateRoots(absRoot string) ([]string, error) {
	seen := map[string]bool{absRoot: true}
	roots := []string{absRoot}

	add := func(dir string) {
		resolved, err := filepath.Abs(dir)
		if err != nil {
			return
		}
		if !seen[resolved] {
			seen[resolved] = true
			roots = append(roots, resolved)
		}
	}

	candidates := make(map[string]bool, len(config.CandidateFilenames()))
	for _, name := range config.CandidateFilenames() {
		candidates[name] = true
	}

	err := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("skipping unreadable path during discovery",
				log.String("path", path), log.Err(err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != absRoot && excludedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if candidates[d.Name()] {
			add(filepath.Dir(path))
		}
		return nil
	})
	if err != nil {
		return nil, lgerror.Wrap(err, "workspace walk failed").
			WithCode(lgerror.CodeDiscoveryError).
			WithOperation("discovery.candidateRoots").
			WithDetail("root", absRoot)
	}

	packages, err := Packages(absRoot)
	if err != nil {
		return nil, err
	}
	for _, dir := range packages {
		add(dir)
	}

	return roots, nil
}

// loadProject loads one candidate directory into a project. Directories
// without a configuration file qualify only when their default locales
// directory exists; a broken configuration is logged and skipped.
func loadProject(absRoot, dir string) (Project, bool) {
	cfg, configPath, err := config.Load(dir)
	if err != nil {
		log.Warn("skipping project with invalid configuration",
			log.String("directory", dir), log.Err(err))
		return Project{}, false
	}

	if configPath == "" {
		// On defaults a directory only counts when translations can exist
		if !filex.IsDir(filepath.Join(dir, filepath.FromSlash(cfg.LocalesDir))) {
			return Project{}, false
		}
	}

	id := projectID(absRoot, dir)
	return Project{
		ID:         id,
		Name:       projectName(dir, id),
		Root:       dir,
		ConfigPath: configPath,
		Config:     cfg,
	}, true
}

// projectID derives the stable identifier from the path relative to the
// workspace root
func projectID(absRoot, dir string) string {
	rel, err := filepath.Rel(absRoot, dir)
	if err != nil || rel == "." {
		return RootProjectID
	}
	return filepath.ToSlash(rel)
}

// projectName derives the display name: the package.json name, then the
// go.mod module basename, then the title-cased directory segment. The
// workspace root is always "Root Project".
func projectName(dir, id string) string {
	if id == RootProjectID {
		return "Root Project"
	}

	if content, err := os.ReadFile(filepath.Join(dir, "package.json")); err == nil {
		var manifest struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(content, &manifest); err == nil && stringx.IsNotBlank(manifest.Name) {
			return manifest.Name
		}
	}

	if content, err := os.ReadFile(filepath.Join(dir, "go.mod")); err == nil {
		if name := moduleBasename(string(content)); name != "" {
			return name
		}
	}

	return stringx.TitleCase(filepath.Base(dir))
}

// moduleBasename extracts the last path segment of the module directive
func moduleBasename(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "module ") {
			continue
		}
		path := strings.TrimSpace(strings.TrimPrefix(line, "module "))
		if idx := strings.LastIndex(path, "/"); idx >= 0 {
			path = path[idx+1:]
		}
		return path
	}
	return ""
}

// Find returns the project with the given identifier, if present
func Find(projects []Project, id string) (Project, bool) {
	for _, project := range projects {
		if project.ID == id {
			return project, true
		}
	}
	return Project{}, false
}
