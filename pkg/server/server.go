package server

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/viv/pkg/config"
	"github.com/matzehuels/viv/pkg/errors"
	"github.com/matzehuels/viv/pkg/io"
	"github.com/matzehuels/viv/pkg/layout"
	"github.com/matzehuels/viv/pkg/mappable"
	"github.com/matzehuels/viv/pkg/observability"
	"github.com/matzehuels/viv/pkg/wm"
)

// Trigger reasons reported to the host hooks.
const (
	TriggerMap      = "map"
	TriggerUnmap    = "unmap"
	TriggerRemove   = "remove"
	TriggerResize   = "output-resize"
	TriggerDivide   = "increment-divide"
	TriggerSwapOut  = "swap-out"
	TriggerLayout   = "layout-change"
	TriggerReload   = "reload"
	TriggerRelayout = "relayout"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for the server, its engine and its dispatcher.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLauncher sets the launcher used by exec actions.
func WithLauncher(l mappable.Launcher) Option {
	return func(s *Server) { s.launcher = l }
}

// WithQueueSize sets the capacity of the event queue. The default is 64.
func WithQueueSize(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.queueSize = n
		}
	}
}

// Server is a headless compositor host.
type Server struct {
	logger     *log.Logger
	launcher   mappable.Launcher
	queueSize  int
	engine     *layout.Engine
	dispatcher *mappable.Dispatcher

	pool     *wm.Pool
	outputs  []*wm.Output
	bindings map[string]mappable.Binding

	queue    chan func()
	done     chan struct{}
	stopOnce sync.Once
}

// New builds a server from cfg and lays out every displayed workspace.
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	s := &Server{
		logger:    log.Default(),
		queueSize: 64,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.queue = make(chan func(), s.queueSize)

	dopts := []mappable.Option{mappable.WithHost(s), mappable.WithLogger(s.logger)}
	if s.launcher != nil {
		dopts = append(dopts, mappable.WithLauncher(s.launcher))
	}
	s.dispatcher = mappable.NewDispatcher(dopts...)

	if err := s.load(cfg); err != nil {
		return nil, err
	}
	s.Relayout()
	return s, nil
}

func (s *Server) load(cfg *config.Config) error {
	state, err := cfg.Build()
	if err != nil {
		return err
	}
	s.engine = layout.New(layout.WithBorderWidth(cfg.BorderWidth), layout.WithLogger(s.logger))
	s.pool = state.Pool
	s.outputs = state.Outputs
	s.bindings = state.Bindings
	return nil
}

// =============================================================================
// Event loop
// =============================================================================

// Run processes queued closures until ctx is done or the server terminates.
// It returns nil after Terminate and ctx.Err() on cancellation.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Debug("Event loop started", "outputs", len(s.outputs), "workspaces", s.pool.Len())
	for {
		select {
		case fn := <-s.queue:
			fn()
		case <-s.done:
			s.logger.Debug("Event loop stopped")
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Do runs fn on the event loop and waits for it to return.
// It fails with TERMINATED once the server has stopped, and with ctx.Err()
// when ctx ends before fn starts. A failed Do never runs fn; once fn has
// started, Do waits for it and returns nil.
func (s *Server) Do(ctx context.Context, fn func()) error {
	// claim is won by the loop (claimRun) or by a giving-up caller (claimAbandon).
	var claim atomic.Int32
	finished := make(chan struct{})
	task := func() {
		if s.Terminated() || !claim.CompareAndSwap(claimNone, claimRun) {
			return
		}
		defer close(finished)
		fn()
	}

	select {
	case s.queue <- task:
	case <-s.done:
		return errors.New(errors.ErrCodeTerminated, "server has terminated")
	case <-ctx.Done():
		return ctx.Err()
	}

	var err error
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		err = ctx.Err()
	case <-s.done:
		// fn may itself have terminated the server.
		err = errors.New(errors.ErrCodeTerminated, "server has terminated")
	}
	if claim.CompareAndSwap(claimNone, claimAbandon) {
		return err
	}
	<-finished
	return nil
}

const (
	claimNone int32 = iota
	claimRun
	claimAbandon
)

// Terminate stops the event loop. It is safe to call more than once and
// from any goroutine.
func (s *Server) Terminate() {
	s.stopOnce.Do(func() {
		s.logger.Info("Terminating")
		observability.Host().OnTerminate()
		close(s.done)
	})
}

// Done is closed when the server terminates.
func (s *Server) Done() <-chan struct{} { return s.done }

// Terminated reports whether Terminate has been called.
func (s *Server) Terminated() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// =============================================================================
// State
// =============================================================================

// Pool returns the workspace pool.
func (s *Server) Pool() *wm.Pool { return s.pool }

// Outputs returns the outputs in configuration order.
func (s *Server) Outputs() []*wm.Output { return s.outputs }

// Output returns the named output, or nil.
func (s *Server) Output(name string) *wm.Output {
	for _, o := range s.outputs {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// Workspace returns the named workspace or a WORKSPACE_NOT_FOUND error.
func (s *Server) Workspace(name string) (*wm.Workspace, error) {
	ws := s.pool.Get(name)
	if ws == nil {
		return nil, errors.New(errors.ErrCodeWorkspaceNotFound, "workspace %q not found", name)
	}
	return ws, nil
}

// Focused returns the workspace on the first output that shows one.
func (s *Server) Focused() *wm.Workspace {
	for _, o := range s.outputs {
		if ws := o.Workspace(); ws != nil {
			return ws
		}
	}
	return nil
}

// Bindings returns the configured key bindings.
func (s *Server) Bindings() map[string]mappable.Binding { return s.bindings }

// Snapshot captures every workspace in pool order.
func (s *Server) Snapshot() io.Snapshot {
	return io.Capture(s.pool.Workspaces()...)
}

// =============================================================================
// Relayout triggers
// =============================================================================

// Relayout lays out every workspace currently on an output.
func (s *Server) Relayout() {
	for _, o := range s.outputs {
		if ws := o.Workspace(); ws != nil {
			s.relayout(ws, TriggerRelayout)
		}
	}
}

func (s *Server) relayout(ws *wm.Workspace, reason string) {
	observability.Host().OnTrigger(reason, ws.Name)
	if ws.Output == nil {
		return
	}
	s.engine.Apply(ws)
}

// MapView adds v to the named workspace as a mapped view.
func (s *Server) MapView(workspace string, v *wm.View) error {
	ws, err := s.Workspace(workspace)
	if err != nil {
		return err
	}
	v.Mapped = true
	if ws.View(v.ID) == nil {
		ws.AddView(v)
	}
	s.logger.Debug("Mapped view", "workspace", ws.Name, "title", v.Title)
	s.relayout(ws, TriggerMap)
	return nil
}

// UnmapView hides a view without removing it from its workspace.
func (s *Server) UnmapView(workspace string, id uuid.UUID) error {
	ws, v, err := s.view(workspace, id)
	if err != nil {
		return err
	}
	v.Mapped = false
	s.relayout(ws, TriggerUnmap)
	return nil
}

// RemoveView destroys a view.
func (s *Server) RemoveView(workspace string, id uuid.UUID) error {
	ws, _, err := s.view(workspace, id)
	if err != nil {
		return err
	}
	ws.RemoveView(id)
	s.relayout(ws, TriggerRemove)
	return nil
}

func (s *Server) view(workspace string, id uuid.UUID) (*wm.Workspace, *wm.View, error) {
	ws, err := s.Workspace(workspace)
	if err != nil {
		return nil, nil, err
	}
	v := ws.View(id)
	if v == nil {
		return nil, nil, errors.New(errors.ErrCodeNotFound, "view %s not found on workspace %q", id, workspace)
	}
	return ws, v, nil
}

// ResizeOutput changes an output's mode and lays out its workspace.
func (s *Server) ResizeOutput(name string, width, height int) error {
	o := s.Output(name)
	if o == nil {
		return errors.New(errors.ErrCodeNotFound, "output %q not found", name)
	}
	if err := errors.ValidateDimensions(width, height); err != nil {
		return err
	}
	o.Width, o.Height = width, height
	if ws := o.Workspace(); ws != nil {
		s.relayout(ws, TriggerResize)
	}
	return nil
}

// SetLayout activates a named layout on a workspace.
func (s *Server) SetLayout(workspace, name string) error {
	ws, err := s.Workspace(workspace)
	if err != nil {
		return err
	}
	if err := ws.SetActiveLayout(name); err != nil {
		return err
	}
	s.relayout(ws, TriggerLayout)
	return nil
}

// NextLayout cycles a workspace to its next layout.
func (s *Server) NextLayout(workspace string) (*wm.Layout, error) {
	ws, err := s.Workspace(workspace)
	if err != nil {
		return nil, err
	}
	l := ws.NextLayout()
	s.relayout(ws, TriggerLayout)
	return l, nil
}

// Reload replaces all state with a new configuration. On error the current
// state is kept.
func (s *Server) Reload(cfg *config.Config) error {
	if err := s.load(cfg); err != nil {
		return err
	}
	s.logger.Info("Reloaded configuration", "workspaces", s.pool.Len(), "outputs", len(s.outputs))
	for _, o := range s.outputs {
		if ws := o.Workspace(); ws != nil {
			s.relayout(ws, TriggerReload)
		}
	}
	return nil
}

// =============================================================================
// Actions
// =============================================================================

// Dispatch runs b against the named workspace and lays it out again when the
// action changed its geometry.
func (s *Server) Dispatch(workspace string, b mappable.Binding) error {
	ws, err := s.Workspace(workspace)
	if err != nil {
		return err
	}
	s.dispatcher.Dispatch(ws, b)
	if b.Action() == mappable.ActionIncrementDivide {
		s.relayout(ws, TriggerDivide)
	}
	return nil
}

// HandleKey dispatches the binding for key on the focused workspace.
// It reports whether a binding matched.
func (s *Server) HandleKey(key string) (bool, error) {
	b, ok := s.bindings[key]
	if !ok {
		return false, nil
	}
	ws := s.Focused()
	if ws == nil {
		return true, errors.New(errors.ErrCodeWorkspaceNotFound, "no workspace is shown")
	}
	return true, s.Dispatch(ws.Name, b)
}

// SwapOut shows another workspace on o and lays it out. It implements the
// swap-out action's host side.
func (s *Server) SwapOut(o *wm.Output) error {
	prev := o.Workspace()
	ws, err := s.pool.SwapOut(o)
	if err != nil {
		return err
	}
	from := ""
	if prev != nil {
		from = prev.Name
	}
	s.logger.Info("Swapped workspace", "output", o.Name, "from", from, "to", ws.Name)
	s.relayout(ws, TriggerSwapOut)
	return nil
}
