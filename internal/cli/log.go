// Package cli implements the viv command-line interface.
//
// The CLI stands in for the compositor around the layout core: it builds a
// headless host from the configuration file, decides when to lay out, and
// invokes actions. It is built using cobra and logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - layout: Lay out the configured workspaces and print their geometry
//   - dispatch: Run one action, locally or against a served host
//   - status: Show workspaces of a served host or a saved snapshot
//   - watch: Lay out again whenever the configuration changes
//   - preview: Interactive terminal preview driven by the key bindings
//   - serve: Run a host with an HTTP control endpoint
//   - config: Write, check or locate the configuration file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging and --log-file
// to keep a rotated copy of the log. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/matzehuels/viv/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// teeLogFile returns a writer that writes to w and to a size-rotated file.
func teeLogFile(w io.Writer, path string) io.Writer {
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     30, // days
	}
	return io.MultiWriter(w, rotator)
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Laid out 2 workspaces (1ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks reports layout, dispatch and host events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.LayoutHooks   = (*logHooks)(nil)
	_ observability.DispatchHooks = (*logHooks)(nil)
	_ observability.HostHooks     = (*logHooks)(nil)
)

func (h *logHooks) OnLayout(workspace, algorithm string, views int, d time.Duration) {
	h.logger.Debug("Layout pass", "workspace", workspace, "algorithm", algorithm, "views", views, "took", d)
}

func (h *logHooks) OnDispatch(action, workspace string) {
	h.logger.Debug("Dispatch", "action", action, "workspace", workspace)
}

func (h *logHooks) OnSpawn(executable string, err error) {
	if err != nil {
		h.logger.Debug("Could not launch", "executable", executable, "err", err)
	}
}

func (h *logHooks) OnTrigger(reason, workspace string) {
	h.logger.Debug("Relayout", "reason", reason, "workspace", workspace)
}

func (h *logHooks) OnTerminate() {
	h.logger.Debug("Host terminated")
}
