// File: doc.go
// Title: Translation Package Documentation
// Description: Package translation parses translation source files and
//              merges the files of one locale into a single flattened key
//              map.
// Version: v0.1.0
// Created: 2026-03-05
// Modified: 2026-03-05
//
// Change History:
// - 2026-03-05 v0.1.0: Initial documentation

/*
Package translation turns translation source files into flattened key maps.

ParseFile decodes one JSON, YAML, or TOML file and flattens its nested
structure into dot-joined keys; string leaves survive, every other value
type is dropped. MergeLocale merges all files contributing to one locale,
prefixing non-default namespaces under the namespaced layout and counting
collisions while the later file wins.
*/
package translation
