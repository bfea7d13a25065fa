// File: doc.go
// Title: Discovery Package Documentation
// Description: Package discovery finds translation projects in a workspace
//              via configuration files and workspace package manifests.
// Version: v0.1.0
// Created: 2026-03-06
// Modified: 2026-03-06
//
// Change History:
// - 2026-03-06 v0.1.0: Initial documentation

/*
Package discovery locates the translation projects of a workspace.

A project is a directory with a locgen configuration file, or a directory
running on defaults whose locales directory exists. Candidates come from a
filesystem walk (skipping node_modules, .git, build output, and editor
directories) plus the package directories a pnpm or npm workspace manifest
declares. Each project carries a stable identifier (its slash-separated
path relative to the workspace root, "." for the root itself), a display
name, and its validated configuration.
*/
package discovery
