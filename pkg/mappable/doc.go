// Package mappable implements the actions a key or mouse binding can trigger.
//
// # Actions
//
// Each action is a handler on [Dispatcher] with the shape
// func(*wm.Workspace, P) where P is the action's payload type:
//
//   - exec ([ExecPayload]): launch a detached program
//   - increment-divide ([IncrementPayload]): nudge the active layout's ratio
//   - terminate ([EmptyPayload]): ask the host to shut down
//   - swap-out ([EmptyPayload]): show another workspace on this output
//   - next-window, prev-window, tile-window ([EmptyPayload]): reserved no-ops
//
// Handlers return nothing. Failures are logged and otherwise dropped; in
// particular a program that cannot be started is indistinguishable, for the
// caller, from one that started and exited.
//
// # Bindings
//
// A [Binding] fixes an action together with its payload when it is built, so a
// handler can never receive the wrong payload type:
//
//	bindings := map[string]mappable.Binding{
//	    "super+Return": mappable.Exec("foot"),
//	    "super+l":      mappable.IncrementDivide(0.05),
//	    "super+h":      mappable.IncrementDivide(-0.05),
//	    "super+Tab":    mappable.SwapOut(),
//	    "super+q":      mappable.Terminate(),
//	}
//	dispatcher.Dispatch(ws, bindings[chord])
//
// How chords are matched to bindings is up to the caller.
//
// # Process launching
//
// exec goes through a [Launcher]. [ProcessLauncher] starts the program in its
// own session with its standard streams on the null device and returns
// without waiting. Tests substitute a [RecordingLauncher].
package mappable
