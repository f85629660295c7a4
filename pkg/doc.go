// Package pkg provides the core libraries of viv, the layout core of a tiling
// Wayland compositor.
//
// # Overview
//
// viv decides where windows go. Views live on workspaces, workspaces are shown
// on outputs, and every workspace carries an ordered list of layouts of which
// one is active. When something changes (a view maps, an output resizes, a key
// binding fires) the host lays the affected workspace out again. The pkg
// directory is organized into these areas:
//
//  1. [geom] and [wm] - Geometry primitives and the window-manager state
//  2. [layout] - The layout engine (split and fullscreen placement)
//  3. [mappable] - Bindable actions and their dispatcher
//  4. [config] - The TOML configuration and the state it builds
//  5. [server] - The host: event loop, relayout triggers and config reload
//  6. [io] - JSON snapshots of workspace geometry
//
// # Architecture
//
// The typical data flow through viv:
//
//	config.toml
//	     ↓
//	[config] package (decode, validate, build workspaces and outputs)
//	     ↓
//	[server] package (event loop, triggers)  ←  key bindings via [mappable]
//	     ↓
//	[layout] package (compute target and current geometry)
//	     ↓
//	[io] package (JSON snapshot) or surface configure requests
//
// # Quick Start
//
// Build a host from a configuration and read back the laid out geometry:
//
//	import (
//	    "github.com/matzehuels/viv/pkg/config"
//	    "github.com/matzehuels/viv/pkg/mappable"
//	    "github.com/matzehuels/viv/pkg/server"
//	)
//
//	cfg, _ := config.Load("viv.toml")
//	host, _ := server.New(cfg)
//
//	// Widen the main column on the focused workspace.
//	_ = host.Dispatch(host.Focused().Name, mappable.IncrementDivide(0.05))
//
//	snap := host.Snapshot()
//	for _, ws := range snap.Workspaces {
//	    for _, v := range ws.Views {
//	        fmt.Println(ws.Name, v.Title, v.Target)
//	    }
//	}
//
// # Package Structure
//
// [errors] - Coded errors shared by every package, plus input validation.
//
// [observability] - Hook interfaces for layout passes, dispatched actions and
// host triggers. The CLI installs hooks that log at debug level.
//
// [buildinfo] - Version information set through ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/layout/...     # Specific package
//	go test -run Example ./...   # Examples only
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/viv/pkg/geom
// [wm]: https://pkg.go.dev/github.com/matzehuels/viv/pkg/wm
// [layout]: https://pkg.go.dev/github.com/matzehuels/viv/pkg/layout
// [mappable]: https://pkg.go.dev/github.com/matzehuels/viv/pkg/mappable
// [config]: https://pkg.go.dev/github.com/matzehuels/viv/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/viv/pkg/server
// [io]: https://pkg.go.dev/github.com/matzehuels/viv/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/viv/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/viv/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/viv/pkg/buildinfo
package pkg
