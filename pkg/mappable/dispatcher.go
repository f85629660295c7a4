package mappable

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/viv/pkg/observability"
	"github.com/matzehuels/viv/pkg/wm"
)

// Host is the part of the compositor the dispatcher acts on.
type Host interface {
	// Terminate stops the compositor's event loop.
	Terminate()

	// SwapOut shows a different workspace on o.
	SwapOut(o *wm.Output) error
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLauncher sets the launcher used by exec. The default is a
// [ProcessLauncher].
func WithLauncher(l Launcher) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.launcher = l
		}
	}
}

// WithHost sets the host for terminate and swap-out. Without a host those
// actions only log.
func WithHost(h Host) Option {
	return func(d *Dispatcher) { d.host = h }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// Dispatcher runs mappable functions. It is not safe for concurrent use;
// call it from the goroutine that owns the workspaces.
type Dispatcher struct {
	launcher Launcher
	host     Host
	logger   *log.Logger
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{logger: log.Default()}
	for _, opt := range opts {
		opt(d)
	}
	if d.launcher == nil {
		d.launcher = NewProcessLauncher(d.logger)
	}
	return d
}

// Dispatch invokes b's handler with b's payload on ws.
func (d *Dispatcher) Dispatch(ws *wm.Workspace, b Binding) {
	if b.invoke == nil {
		return
	}
	b.invoke(d, ws)
}

// Exec launches the payload's program without waiting for it.
// Launch failures are logged and dropped.
func (d *Dispatcher) Exec(ws *wm.Workspace, p ExecPayload) {
	d.report(ActionExec, ws)
	d.logger.Info("Executing " + p.Executable)

	err := d.launcher.Launch(p.Executable, p.Argv())
	observability.Dispatch().OnSpawn(p.Executable, err)
	if err != nil {
		d.logger.Debug("Failed to launch", "executable", p.Executable, "err", err)
	}
}

// IncrementDivide adds the payload's delta to the active layout's parameter,
// clamped to [0, 1]. Views are not moved until the next layout pass.
func (d *Dispatcher) IncrementDivide(ws *wm.Workspace, p IncrementPayload) {
	d.report(ActionIncrementDivide, ws)
	if ws == nil {
		return
	}
	l := ws.ActiveLayout()
	if l == nil {
		d.logger.Debug("Workspace has no layout", "workspace", ws.Name)
		return
	}
	before := l.Parameter
	l.Adjust(p.Delta)
	d.logger.Debug("Adjusted layout parameter", "workspace", ws.Name, "layout", l.Name, "from", before, "to", l.Parameter)
}

// Terminate asks the host to stop.
func (d *Dispatcher) Terminate(ws *wm.Workspace, _ EmptyPayload) {
	d.report(ActionTerminate, ws)
	if d.host == nil {
		d.logger.Warn("No host to terminate")
		return
	}
	d.host.Terminate()
}

// SwapOut asks the host to show another workspace on ws's output.
func (d *Dispatcher) SwapOut(ws *wm.Workspace, _ EmptyPayload) {
	d.report(ActionSwapOut, ws)
	d.logger.Info("Attempting swap-out")
	if ws == nil || ws.Output == nil {
		d.logger.Warn("Workspace is not on an output")
		return
	}
	if d.host == nil {
		d.logger.Warn("No host to swap workspaces")
		return
	}
	if err := d.host.SwapOut(ws.Output); err != nil {
		d.logger.Warn("Swap-out failed", "output", ws.Output.Name, "err", err)
	}
}

// NextWindow is reserved and does nothing.
func (d *Dispatcher) NextWindow(ws *wm.Workspace, _ EmptyPayload) {
	d.report(ActionNextWindow, ws)
	d.logger.Debug("next-window is not implemented")
}

// PrevWindow is reserved and does nothing.
func (d *Dispatcher) PrevWindow(ws *wm.Workspace, _ EmptyPayload) {
	d.report(ActionPrevWindow, ws)
	d.logger.Debug("prev-window is not implemented")
}

// TileWindow is reserved and does nothing.
func (d *Dispatcher) TileWindow(ws *wm.Workspace, _ EmptyPayload) {
	d.report(ActionTileWindow, ws)
	d.logger.Debug("tile-window is not implemented")
}

func (d *Dispatcher) report(a Action, ws *wm.Workspace) {
	name := ""
	if ws != nil {
		name = ws.Name
	}
	observability.Dispatch().OnDispatch(a.String(), name)
}
