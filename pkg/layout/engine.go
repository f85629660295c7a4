package layout

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/viv/pkg/observability"
	"github.com/matzehuels/viv/pkg/wm"
)

// Option configures an [Engine].
type Option func(*Engine)

// WithBorderWidth sets the compositor-wide border width in pixels.
// Negative values are treated as zero.
func WithBorderWidth(px int) Option {
	return func(e *Engine) {
		if px < 0 {
			px = 0
		}
		e.borderWidth = px
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine places views according to a workspace's active layout.
// It holds no per-workspace state and may be shared by every workspace.
type Engine struct {
	borderWidth int
	logger      *log.Logger
}

// New creates an engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{logger: log.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// BorderWidth returns the configured border width.
func (e *Engine) BorderWidth() int { return e.borderWidth }

// Apply lays out the eligible views of ws using its active layout.
func (e *Engine) Apply(ws *wm.Workspace) {
	if ws == nil || ws.Output == nil {
		return
	}
	l := ws.ActiveLayout()
	if l == nil {
		return
	}

	start := time.Now()
	views := ws.EligibleViews()

	switch l.Algorithm {
	case wm.Split:
		e.split(ws.Output, views, l.Parameter)
	case wm.Fullscreen:
		e.fullscreen(ws.Output, views)
	case wm.FibonacciSpiral:
		e.fibonacciSpiral(ws.Output, views)
	case wm.CentralColumn:
		e.centralColumn(ws.Output, views)
	case wm.IndentedTabs:
		e.indentedTabs(ws.Output, views)
	default:
		e.logger.Debug("Ignoring unknown layout algorithm", "workspace", ws.Name, "algorithm", int(l.Algorithm))
		return
	}

	observability.Layout().OnLayout(ws.Name, l.Algorithm.String(), len(views), time.Since(start))
}
