// File: doc.go
// Title: Pipeline Package Documentation
// Description: Package pipeline runs the full compile pass for one project
//              and exposes read access to the merged locale tables.
// Version: v0.1.0
// Created: 2026-03-08
// Modified: 2026-03-08
//
// Change History:
// - 2026-03-08 v0.1.0: Initial documentation

/*
Package pipeline orchestrates one compile pass.

Compile enumerates the project's locales, filters contributing files
through the include/exclude globs, merges each locale, and hands the
tables to the code generator. The pass is all-or-nothing only for the
source locale: when it is missing nothing is written and a single failed
result names it. Any other locale that fails to merge produces its own
failed result while the remaining locales still generate.

Snapshot returns the merged tables without writing, for consumers that
inspect translations rather than generate code.
*/
package pipeline
