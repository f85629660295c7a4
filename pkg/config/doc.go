// Package config loads and validates the viv configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/viv/config.toml by default
// (see [DefaultPath]). Every section is optional; anything left out is taken
// from [Defaults].
//
//	border_width = 2
//	terminal = ["foot", "--server"]
//
//	[[layouts]]
//	name = "split"
//	algorithm = "split"
//	parameter = 0.6
//
//	[[layouts]]
//	name = "full"
//	algorithm = "fullscreen"
//
//	[[outputs]]
//	name = "HDMI-A-1"
//	width = 2560
//	height = 1440
//	workspace = "main"
//	[outputs.margins]
//	top = 30
//
//	[[workspaces]]
//	name = "main"
//	  [[workspaces.views]]
//	  title = "editor"
//	  [[workspaces.views]]
//	  title = "steam"
//	  type = "xwayland"
//
//	[[bindings]]
//	key = "l"
//	action = "increment-divide"
//	args = ["0.05"]
//
// # Loading
//
// [Load] reads and validates a file; [LoadOrDefault] falls back to [Defaults]
// when the file does not exist. [Config.Validate] reports the first problem
// as an INVALID_CONFIG error naming the offending field.
//
// # Building
//
// [Config.Build] turns a validated configuration into live state: a
// [wm.Pool] of workspaces, the outputs showing them and the parsed key
// bindings. Views declared in the file are backed by headless surfaces,
// which is what the CLI and the IPC server operate on.
//
// [wm.Pool]: github.com/matzehuels/viv/pkg/wm.Pool
package config
