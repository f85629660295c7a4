package mappable

import (
	"strconv"

	"github.com/matzehuels/viv/pkg/errors"
	"github.com/matzehuels/viv/pkg/wm"
)

// Binding is an action paired with its payload and handler.
// The zero Binding does nothing when dispatched.
type Binding struct {
	action  Action
	payload Payload
	invoke  func(*Dispatcher, *wm.Workspace)
}

// bind ties a handler to a payload of exactly the type it accepts.
func bind[P Payload](a Action, h func(*Dispatcher, *wm.Workspace, P), p P) Binding {
	return Binding{
		action:  a,
		payload: p,
		invoke:  func(d *Dispatcher, ws *wm.Workspace) { h(d, ws, p) },
	}
}

// Exec launches executable with the given argument vector.
// argv includes argv[0]; when omitted it defaults to the executable.
func Exec(executable string, argv ...string) Binding {
	return bind(ActionExec, (*Dispatcher).Exec, ExecPayload{Executable: executable, Args: argv})
}

// IncrementDivide shifts the active layout's parameter by delta.
func IncrementDivide(delta float64) Binding {
	return bind(ActionIncrementDivide, (*Dispatcher).IncrementDivide, IncrementPayload{Delta: delta})
}

// Terminate shuts the host down.
func Terminate() Binding {
	return bind(ActionTerminate, (*Dispatcher).Terminate, EmptyPayload{})
}

// SwapOut replaces the workspace on the current output.
func SwapOut() Binding {
	return bind(ActionSwapOut, (*Dispatcher).SwapOut, EmptyPayload{})
}

// NextWindow is reserved.
func NextWindow() Binding {
	return bind(ActionNextWindow, (*Dispatcher).NextWindow, EmptyPayload{})
}

// PrevWindow is reserved.
func PrevWindow() Binding {
	return bind(ActionPrevWindow, (*Dispatcher).PrevWindow, EmptyPayload{})
}

// TileWindow is reserved.
func TileWindow() Binding {
	return bind(ActionTileWindow, (*Dispatcher).TileWindow, EmptyPayload{})
}

// Action returns the bound action.
func (b Binding) Action() Action { return b.action }

// Payload returns the bound payload, or nil for the zero Binding.
func (b Binding) Payload() Payload { return b.payload }

// String formats the binding as "action payload".
func (b Binding) String() string {
	if b.payload == nil {
		return "none"
	}
	if s := b.payload.String(); s != "" {
		return b.action.String() + " " + s
	}
	return b.action.String()
}

// ParseBinding builds a binding from an action name and string arguments,
// as typed on a command line or received over IPC.
//
//	exec <executable> [args...]   argv is the full argument list
//	increment-divide <delta>
//	terminate | swap-out | next-window | prev-window | tile-window
func ParseBinding(name string, args []string) (Binding, error) {
	a, err := ParseAction(name)
	if err != nil {
		return Binding{}, err
	}

	switch a {
	case ActionExec:
		if err := errors.ValidateArgv(args); err != nil {
			return Binding{}, err
		}
		return Exec(args[0], args...), nil

	case ActionIncrementDivide:
		if len(args) != 1 {
			return Binding{}, errors.New(errors.ErrCodeInvalidAction, "%s takes exactly one argument, got %d", a, len(args))
		}
		delta, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return Binding{}, errors.Wrap(errors.ErrCodeInvalidAction, err, "parse increment %q", args[0])
		}
		if err := errors.ValidateRatio(abs(delta)); err != nil {
			return Binding{}, errors.Wrap(errors.ErrCodeInvalidAction, err, "increment %q", args[0])
		}
		return IncrementDivide(delta), nil
	}

	if len(args) > 0 {
		return Binding{}, errors.New(errors.ErrCodeInvalidAction, "%s takes no arguments", a)
	}
	switch a {
	case ActionTerminate:
		return Terminate(), nil
	case ActionSwapOut:
		return SwapOut(), nil
	case ActionNextWindow:
		return NextWindow(), nil
	case ActionPrevWindow:
		return PrevWindow(), nil
	case ActionTileWindow:
		return TileWindow(), nil
	}
	return Binding{}, errors.New(errors.ErrCodeUnsupported, "action %s cannot be bound", a)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
