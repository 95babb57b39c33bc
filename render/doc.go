// Package render is the display side of the visualiser in text form. It maps
// semantic node and edge states to colours (the core never stores colours),
// formats a core.Snapshot as a frame, and runs a frame loop that polls a
// Source once per frame and redraws only when the step sequence advanced.
//
// The loop is rate limited with golang.org/x/time/rate, so a fast machine
// does not spin; the Source is typically a *coordinator.Coordinator, whose
// Snapshot never exposes a half-applied step.
package render
