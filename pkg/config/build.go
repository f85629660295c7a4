package config

import (
	"github.com/matzehuels/viv/pkg/geom"
	"github.com/matzehuels/viv/pkg/mappable"
	"github.com/matzehuels/viv/pkg/wm"
)

// State is the live compositor state described by a configuration.
type State struct {
	Pool    *wm.Pool
	Outputs []*wm.Output
	// Bindings maps key names to their actions.
	Bindings map[string]mappable.Binding
}

// Output returns the named output, or nil.
func (s *State) Output(name string) *wm.Output {
	for _, o := range s.Outputs {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// Build validates the configuration and creates its workspaces, outputs and
// bindings. Outputs without an explicit workspace show the first workspace
// not already shown elsewhere, if any.
func (c *Config) Build() (*State, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	byName := make(map[string]wm.Layout, len(c.Layouts))
	all := make([]wm.Layout, len(c.Layouts))
	for i, l := range c.Layouts {
		all[i] = wm.Layout{Name: l.Name, Algorithm: l.Algorithm, Parameter: l.Parameter}
		byName[l.Name] = all[i]
	}

	pool := wm.NewPool()
	for _, wc := range c.Workspaces {
		// Each workspace owns its copy so ratios can diverge.
		var layouts []wm.Layout
		if len(wc.Layouts) == 0 {
			layouts = append(layouts, all...)
		} else {
			for _, name := range wc.Layouts {
				layouts = append(layouts, byName[name])
			}
		}

		ws := wm.NewWorkspace(wc.Name, layouts...)
		for _, vc := range wc.Views {
			ws.AddView(vc.view())
		}
		if err := pool.Add(ws); err != nil {
			return nil, err
		}
	}

	state := &State{Pool: pool, Bindings: make(map[string]mappable.Binding, len(c.Bindings))}
	for _, oc := range c.Outputs {
		o := &wm.Output{
			Name:    oc.Name,
			Width:   oc.Width,
			Height:  oc.Height,
			LayoutX: oc.X,
			LayoutY: oc.Y,
			Excluded: geom.Margins{
				Top:    oc.Margins.Top,
				Bottom: oc.Margins.Bottom,
				Left:   oc.Margins.Left,
				Right:  oc.Margins.Right,
			},
		}
		if oc.Workspace != "" {
			o.Show(pool.Get(oc.Workspace))
		}
		state.Outputs = append(state.Outputs, o)
	}
	for _, o := range state.Outputs {
		if o.Workspace() != nil {
			continue
		}
		for _, ws := range pool.Workspaces() {
			if ws.Output == nil {
				o.Show(ws)
				break
			}
		}
	}

	for _, bc := range c.Bindings {
		b, err := c.binding(bc)
		if err != nil {
			return nil, err
		}
		state.Bindings[bc.Key] = b
	}
	return state, nil
}

func (vc ViewConfig) view() *wm.View {
	typ, _ := wm.ParseViewType(vc.Type)
	v := wm.NewView(vc.Title, typ, wm.NewHeadlessSurface(vc.GeometryX, vc.GeometryY))
	v.Floating = vc.Floating
	if vc.Mapped != nil {
		v.Mapped = *vc.Mapped
	}
	return v
}
