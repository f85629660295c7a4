package wm

import "github.com/matzehuels/viv/pkg/geom"

// Output is a physical display.
type Output struct {
	Name string

	// Width and Height are the display mode in pixels.
	Width, Height int

	// LayoutX and LayoutY position the output in the global layout
	// shared by all outputs.
	LayoutX, LayoutY int

	// Excluded holds pixels reserved along each edge, e.g. for a bar.
	Excluded geom.Margins

	workspace *Workspace
}

// Workspace returns the workspace currently shown on the output, or nil.
func (o *Output) Workspace() *Workspace { return o.workspace }

// Show attaches ws to the output, detaching whatever was shown before.
func (o *Output) Show(ws *Workspace) {
	if prev := o.workspace; prev != nil && prev != ws {
		prev.Output = nil
	}
	o.workspace = ws
	if ws != nil {
		if ws.Output != nil && ws.Output != o {
			ws.Output.workspace = nil
		}
		ws.Output = o
	}
}

// Box returns the full output rectangle in global layout coordinates.
func (o *Output) Box() geom.Box {
	return geom.Box{X: o.LayoutX, Y: o.LayoutY, Width: o.Width, Height: o.Height}
}

// UsableArea returns the tiling area: the output rectangle in global
// layout coordinates minus the excluded margins.
func (o *Output) UsableArea() geom.Box {
	return geom.Box{
		X:      o.LayoutX + o.Excluded.Left,
		Y:      o.LayoutY + o.Excluded.Top,
		Width:  o.Width - o.Excluded.Horizontal(),
		Height: o.Height - o.Excluded.Vertical(),
	}
}
