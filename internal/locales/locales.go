// File: locales.go
// Title: Locale File Enumeration Implementation
// Description: Implements enumeration of the physical files contributing to
//              each locale of a project under the flat and namespaced
//              file-layout conventions.
// Version: v0.1.0
// Created: 2026-03-05
// Modified: 2026-03-05
//
// Change History:
// - 2026-03-05 v0.1.0: Initial implementation with flat/namespaced layouts

package locales

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"

	"github.com/locgen/locgen/core/config"
	lgerror "github.com/locgen/locgen/core/error"
	"github.com/locgen/locgen/core/log"
	"github.com/locgen/locgen/utils/stringx"
)

// Info pairs a locale code with the ordered list of files contributing to it.
// Under the namespaced layout the basename (minus extension) of each file is
// the namespace; under the flat layout exactly one file contributes.
type Info struct {
	Code  string
	Files []string
}

// Enumerate lists the locales of a project. A missing locales directory
// yields an empty list, not an error, so a brand-new project can be
// discovered before its first locale file exists.
func Enumerate(localesDir string, layout config.Layout, format config.Format) ([]Info, error) {
	entries, err := os.ReadDir(localesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, lgerror.Wrap(err, "failed to read locales directory").
			WithCode(lgerror.CodeDiscoveryError).
			WithOperation("locales.Enumerate").
			WithDetail("directory", localesDir)
	}

	switch layout {
	case config.LayoutNamespaced:
		return enumerateNamespaced(localesDir, entries, format), nil
	default:
		return enumerateFlat(localesDir, entries, format), nil
	}
}

// enumerateFlat treats every matching top-level file as one locale named
// from its basename
func enumerateFlat(localesDir string, entries []os.DirEntry, format config.Format) []Info {
	var infos []Info

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !format.Accepts(ext) {
			continue
		}

		code := strings.TrimSuffix(name, filepath.Ext(name))
		if stringx.IsBlank(code) {
			continue
		}

		warnOddLocaleCode(code)
		infos = append(infos, Info{
			Code:  code,
			Files: []string{filepath.Join(localesDir, name)},
		})
	}

	return infos
}

// enumerateNamespaced treats every top-level directory containing at least
// one matching file as one locale; the files are its namespaces in
// directory-listing order
func enumerateNamespaced(localesDir string, entries []os.DirEntry, format config.Format) []Info {
	var infos []Info

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		code := entry.Name()
		if stringx.IsBlank(code) {
			continue
		}

		dir := filepath.Join(localesDir, code)
		files, err := os.ReadDir(dir)
		if err != nil {
			log.Warn("skipping unreadable locale directory",
				log.String("directory", dir), log.Err(err))
			continue
		}

		var paths []string
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(file.Name()))
			if !format.Accepts(ext) {
				continue
			}
			paths = append(paths, filepath.Join(dir, file.Name()))
		}

		// A directory with a locale-like name but no matching files is
		// not a contributing locale
		if len(paths) == 0 {
			continue
		}

		warnOddLocaleCode(code)
		infos = append(infos, Info{Code: code, Files: paths})
	}

	return infos
}

// Namespace returns the namespace a file contributes under, derived from
// its basename minus the extension
func Namespace(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Find returns the Info for the given locale code, if present
func Find(infos []Info, code string) (Info, bool) {
	for _, info := range infos {
		if info.Code == code {
			return info, true
		}
	}
	return Info{}, false
}

// warnOddLocaleCode logs when a locale code is not a well-formed BCP 47
// tag. File naming still wins; the locale is enumerated regardless.
func warnOddLocaleCode(code string) {
	if _, err := language.Parse(code); err != nil {
		var valueErr language.ValueError
		if !errors.As(err, &valueErr) {
			log.Warn("locale code is not a well-formed language tag",
				log.String("locale", code))
		}
	}
}
