// Package observability provides hooks for metrics, tracing, and logging.
//
// The layout engine and the action dispatcher run on the compositor's event
// goroutine and must stay cheap, so they never talk to a metrics backend
// directly. Instead they report to hooks registered at startup; the default
// hooks do nothing.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetDispatchHooks(&myDispatchHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	// ... place views ...
//	observability.Layout().OnLayout(ws.Name, "split", 3, time.Since(start))
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from the layout engine.
type LayoutHooks interface {
	// OnLayout records one completed layout pass over a workspace.
	OnLayout(workspace, algorithm string, views int, duration time.Duration)
}

// =============================================================================
// Dispatch Hooks
// =============================================================================

// DispatchHooks receives events from the action dispatcher.
type DispatchHooks interface {
	// OnDispatch records a mappable function being invoked.
	OnDispatch(action, workspace string)

	// OnSpawn records an attempt to launch an external program.
	// err is the launch error, if any; the program's exit is never observed.
	OnSpawn(executable string, err error)
}

// =============================================================================
// Host Hooks
// =============================================================================

// HostHooks receives events from the compositor host.
type HostHooks interface {
	// OnTrigger records why a workspace is being laid out again,
	// e.g. "map", "unmap", "resize" or "action".
	OnTrigger(reason, workspace string)

	// OnTerminate records an orderly shutdown request.
	OnTerminate()
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayout(string, string, int, time.Duration) {}

// NoopDispatchHooks is a no-op implementation of DispatchHooks.
type NoopDispatchHooks struct{}

func (NoopDispatchHooks) OnDispatch(string, string) {}
func (NoopDispatchHooks) OnSpawn(string, error)     {}

// NoopHostHooks is a no-op implementation of HostHooks.
type NoopHostHooks struct{}

func (NoopHostHooks) OnTrigger(string, string) {}
func (NoopHostHooks) OnTerminate()             {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks   LayoutHooks   = NoopLayoutHooks{}
	dispatchHooks DispatchHooks = NoopDispatchHooks{}
	hostHooks     HostHooks     = NoopHostHooks{}
	hooksMu       sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout pass.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetDispatchHooks registers custom dispatch hooks.
func SetDispatchHooks(h DispatchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		dispatchHooks = h
	}
}

// SetHostHooks registers custom host hooks.
func SetHostHooks(h HostHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		hostHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Dispatch returns the registered dispatch hooks.
func Dispatch() DispatchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return dispatchHooks
}

// Host returns the registered host hooks.
func Host() HostHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return hostHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	dispatchHooks = NoopDispatchHooks{}
	hostHooks = NoopHostHooks{}
}
