// File: doc.go
// Title: Watch Package Documentation
// Description: Package watch keeps a project's generated code in sync with
//              its translation files through a filesystem watch.
// Version: v0.1.0
// Created: 2026-03-08
// Modified: 2026-03-08
//
// Change History:
// - 2026-03-08 v0.1.0: Initial documentation

/*
Package watch runs the continuous compile loop of one project.

A Session compiles once on Start, then watches the locales directory (and
its locale subdirectories) with fsnotify. The session moves between three
states: idle, compiling, and pending-recompile. A change while idle starts
a pass; any burst of changes during a running pass coalesces into exactly
one follow-up pass. Every completed pass reports its results with a unique
pass identifier; pipeline panics and watch errors go to the error callback
and never stop the loop.
*/
package watch
