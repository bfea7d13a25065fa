// File: doc.go
// Title: Codegen Package Documentation
// Description: Package codegen emits the strongly-typed Go locale package
//              from merged translation tables.
// Version: v0.1.0
// Created: 2026-03-07
// Modified: 2026-03-07
//
// Change History:
// - 2026-03-07 v0.1.0: Initial documentation

/*
Package codegen emits the generated locale package.

One run produces a table file per locale (tag constant plus message map),
an index file (the Locale type, constants, the table registry, and a
lookup helper that falls back to the source locale), and an accessor file
with one exported function per source key. Keys with interpolation
parameters get a Params struct typed from the extracted hints.

Output is deterministic: keys and locales are emitted in sorted order, the
source locale first. Files are written atomically so a concurrent reader
never observes a partial file.
*/
package codegen
