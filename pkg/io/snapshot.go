package io

import (
	"github.com/matzehuels/viv/pkg/geom"
	"github.com/matzehuels/viv/pkg/wm"
)

// Snapshot is the serialized geometry of a set of workspaces.
type Snapshot struct {
	Workspaces []Workspace `json:"workspaces"`
}

// Workspace is one workspace in a snapshot.
type Workspace struct {
	Name   string  `json:"name"`
	Output string  `json:"output,omitempty"`
	Layout *Layout `json:"layout,omitempty"`
	Views  []View  `json:"views"`
}

// Layout is the active layout of a workspace.
type Layout struct {
	Name      string  `json:"name"`
	Algorithm string  `json:"algorithm"`
	Parameter float64 `json:"parameter"`
}

// View is one view and its geometry.
type View struct {
	ID       string `json:"id"`
	Title    string `json:"title,omitempty"`
	Type     string `json:"type"`
	Mapped   bool   `json:"mapped"`
	Floating bool   `json:"floating,omitempty"`
	Current  Box    `json:"current"`
	Target   Box    `json:"target"`
}

// Box is a rectangle in pixel coordinates.
type Box struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Geom converts the box back to a [geom.Box].
func (b Box) Geom() geom.Box {
	return geom.Box{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

func fromGeom(b geom.Box) Box {
	return Box{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// Capture records the current state of the given workspaces.
// Nil workspaces are skipped.
func Capture(workspaces ...*wm.Workspace) Snapshot {
	s := Snapshot{Workspaces: make([]Workspace, 0, len(workspaces))}
	for _, ws := range workspaces {
		if ws != nil {
			s.Workspaces = append(s.Workspaces, CaptureWorkspace(ws))
		}
	}
	return s
}

// CaptureWorkspace records the current state of a single workspace.
func CaptureWorkspace(ws *wm.Workspace) Workspace {
	out := Workspace{
		Name:  ws.Name,
		Views: make([]View, len(ws.Views)),
	}
	if ws.Output != nil {
		out.Output = ws.Output.Name
	}
	if l := ws.ActiveLayout(); l != nil {
		out.Layout = &Layout{Name: l.Name, Algorithm: l.Algorithm.String(), Parameter: l.Parameter}
	}
	for i, v := range ws.Views {
		out.Views[i] = View{
			ID:       v.ID.String(),
			Title:    v.Title,
			Type:     v.Type.String(),
			Mapped:   v.Mapped,
			Floating: v.Floating,
			Current:  fromGeom(v.Current),
			Target:   fromGeom(v.Target),
		}
	}
	return out
}

// Find returns the named workspace, or nil.
func (s Snapshot) Find(name string) *Workspace {
	for i := range s.Workspaces {
		if s.Workspaces[i].Name == name {
			return &s.Workspaces[i]
		}
	}
	return nil
}
