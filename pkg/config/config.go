package config

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/viv/pkg/wm"
)

// Config is the decoded configuration file.
type Config struct {
	// BorderWidth is the compositor-wide border in pixels.
	BorderWidth int `toml:"border_width"`

	// Terminal is the argv launched by the default "enter" binding.
	Terminal []string `toml:"terminal"`

	Layouts    []LayoutConfig    `toml:"layouts"`
	Outputs    []OutputConfig    `toml:"outputs"`
	Workspaces []WorkspaceConfig `toml:"workspaces"`
	Bindings   []BindingConfig   `toml:"bindings"`
}

// LayoutConfig declares a named layout.
type LayoutConfig struct {
	Name      string       `toml:"name"`
	Algorithm wm.Algorithm `toml:"algorithm"`
	Parameter float64      `toml:"parameter"`
}

// OutputConfig declares a display.
type OutputConfig struct {
	Name      string        `toml:"name"`
	Width     int           `toml:"width"`
	Height    int           `toml:"height"`
	X         int           `toml:"x"`
	Y         int           `toml:"y"`
	Workspace string        `toml:"workspace"`
	Margins   MarginsConfig `toml:"margins"`
}

// MarginsConfig reserves pixels along the edges of an output.
type MarginsConfig struct {
	Top    int `toml:"top"`
	Bottom int `toml:"bottom"`
	Left   int `toml:"left"`
	Right  int `toml:"right"`
}

// WorkspaceConfig declares a workspace and the views it starts with.
type WorkspaceConfig struct {
	Name string `toml:"name"`
	// Layouts names the layouts available on this workspace, in cycle order.
	// Empty means all layouts.
	Layouts []string     `toml:"layouts,omitempty"`
	Views   []ViewConfig `toml:"views,omitempty"`
}

// ViewConfig declares a view.
type ViewConfig struct {
	Title    string `toml:"title"`
	Type     string `toml:"type"`
	Floating bool   `toml:"floating"`
	// Mapped defaults to true.
	Mapped *bool `toml:"mapped,omitempty"`
	// GeometryX and GeometryY are the surface's geometry origin, such as
	// the width of client-side shadows.
	GeometryX int `toml:"geometry_x"`
	GeometryY int `toml:"geometry_y"`
}

// BindingConfig maps a key to an action.
type BindingConfig struct {
	Key    string   `toml:"key"`
	Action string   `toml:"action"`
	Args   []string `toml:"args,omitempty"`
}

// Defaults returns the built-in configuration: one 1920x1080 output showing
// "main", a second hidden workspace, split and fullscreen layouts and the
// standard key bindings.
func Defaults() *Config {
	return &Config{
		BorderWidth: 1,
		Terminal:    []string{"alacritty"},
		Layouts:     defaultLayouts(),
		Outputs: []OutputConfig{
			{Name: "HEADLESS-1", Width: 1920, Height: 1080, Workspace: "main"},
		},
		Workspaces: []WorkspaceConfig{
			{Name: "main"},
			{Name: "scratch"},
		},
		Bindings: defaultBindings(),
	}
}

func defaultLayouts() []LayoutConfig {
	return []LayoutConfig{
		{Name: "split", Algorithm: wm.Split, Parameter: 0.6},
		{Name: "full", Algorithm: wm.Fullscreen},
	}
}

func defaultBindings() []BindingConfig {
	return []BindingConfig{
		{Key: "enter", Action: "exec"},
		{Key: "l", Action: "increment-divide", Args: []string{"0.05"}},
		{Key: "h", Action: "increment-divide", Args: []string{"-0.05"}},
		{Key: "tab", Action: "swap-out"},
		{Key: "j", Action: "next-window"},
		{Key: "k", Action: "prev-window"},
		{Key: "t", Action: "tile-window"},
		{Key: "q", Action: "terminate"},
	}
}

// fillDefaults replaces omitted sections with their defaults.
func (c *Config) fillDefaults() {
	d := Defaults()
	if len(c.Terminal) == 0 {
		c.Terminal = d.Terminal
	}
	if len(c.Layouts) == 0 {
		c.Layouts = d.Layouts
	}
	if len(c.Workspaces) == 0 {
		c.Workspaces = d.Workspaces
	}
	if len(c.Outputs) == 0 {
		c.Outputs = []OutputConfig{{Name: d.Outputs[0].Name, Width: 1920, Height: 1080, Workspace: c.Workspaces[0].Name}}
	}
	if len(c.Bindings) == 0 {
		c.Bindings = d.Bindings
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/viv/config.toml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "viv", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "viv", "config.toml"), nil
}
