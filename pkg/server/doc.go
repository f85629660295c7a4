// Package server implements a headless compositor host around the layout
// engine and action dispatcher.
//
// A real compositor decides when to lay views out again: when a view is
// mapped or unmapped, when an output changes size, when the user adjusts the
// divide or swaps workspaces. [Server] makes those decisions for in-memory
// outputs and views, so the CLI, the preview and the IPC endpoint can drive
// the same code paths a compositor would.
//
// # Event loop
//
// The core packages are not safe for concurrent use. [Server.Run] owns a
// single event loop goroutine and [Server.Do] runs a closure on it, waiting
// for the closure to finish:
//
//	go srv.Run(ctx)
//
//	err := srv.Do(ctx, func() {
//	    srv.Dispatch("main", mappable.IncrementDivide(0.05))
//	})
//
// Every other method must be called from inside Do, or before Run starts.
// [Server.Terminate] and [Server.Done] are safe from any goroutine.
//
// # Relayout triggers
//
// The server lays out a workspace after:
//
//   - MapView, UnmapView and RemoveView
//   - ResizeOutput
//   - increment-divide and swap-out actions
//   - SetLayout and NextLayout
//   - Reload
//
// Each trigger is reported to observability.Host().OnTrigger.
package server
