// Package layout computes pixel geometry for the views of a workspace.
//
// # Overview
//
// An [Engine] is handed a [wm.Workspace] whenever the compositor decides the
// workspace needs placing again: a view was mapped or unmapped, the output
// changed size, or the layout or its parameter changed. The engine never
// decides that on its own.
//
// Only eligible views (mapped and not floating) are touched. For each of them
// the engine writes:
//
//   - Target: the rectangle the window should occupy, in global layout
//     coordinates, before borders.
//   - Current: the position and size actually applied, inset by the border
//     width and corrected for the surface's own geometry origin.
//
// and asks the view's surface to resize once.
//
// # Algorithms
//
// The active layout's [wm.Algorithm] selects the placement:
//
//   - [wm.Split]: the main view takes floor(width * parameter) pixels on the
//     left; the remaining views share the right column evenly, with rounding
//     leftovers handed one pixel at a time to the topmost stack views.
//   - [wm.Fullscreen]: every view covers the whole output at (0, 0). Margins
//     and borders are not applied.
//   - [wm.FibonacciSpiral], [wm.CentralColumn], [wm.IndentedTabs]: reserved,
//     they leave geometry unchanged.
//
// # Usage
//
//	engine := layout.New(layout.WithBorderWidth(2), layout.WithLogger(logger))
//	engine.Apply(ws)
//
// Layout passes cannot fail. An empty workspace, a workspace without an output
// or active layout, or one where every view floats is left untouched.
package layout
