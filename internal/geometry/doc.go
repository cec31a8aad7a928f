// Package geometry implements the pure geometry rules of the control tree.
//
// It knows nothing about controls or events. Given a requested rectangle and
// the constraints attached to a control (minimum and maximum size, border
// delta, dock and anchor settings) it computes the effective rectangle.
// Types are re-exported through the root forms package for public consumption.
//
// The main entry points are [Resolve] for a single control, [Dock] for the
// dock pass of a container, and [Reanchor] for the anchor pass.
package geometry
