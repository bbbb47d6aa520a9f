// Package tui is the Bubble Tea front end for Strata. It renders the active
// surface inside a viewport, injects styled decoration rows above each
// section (view-only, never part of the surface's real lines), and drives
// line-granular edits, saves, and context resizes against the host.
package tui
