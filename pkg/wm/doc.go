// Package wm models the compositor state the layout engine and the action
// dispatcher operate on.
//
// # Types
//
//   - [Output]: a display with its size, its position in the output layout
//     and the margins reserved for bars.
//   - [View]: one managed window. It tracks both the geometry applied to its
//     surface ([View.Current]) and the intended geometry ([View.Target]) that
//     animation or other consumers read.
//   - [Layout]: an [Algorithm] plus one tuning parameter (the split ratio for
//     [Split]).
//   - [Workspace]: an ordered list of views shown on one output, with a list
//     of layouts of which exactly one is active.
//   - [Pool]: the server-wide registry of workspaces, used to swap workspaces
//     in and out of outputs.
//
// # Ownership
//
// The surrounding compositor owns every value in this package. The layout
// engine only writes the geometry fields of eligible views; nothing here is
// safe for concurrent use and all mutation is expected to happen on a single
// event goroutine.
package wm
