package wm

import (
	"github.com/google/uuid"

	"github.com/matzehuels/viv/pkg/errors"
)

// Workspace is an ordered set of views shown together on one output.
// Order matters: the first eligible view is the main view.
type Workspace struct {
	Name    string
	Views   []*View
	Output  *Output
	Layouts []Layout

	active int
}

// NewWorkspace creates an empty workspace. The first layout is active.
func NewWorkspace(name string, layouts ...Layout) *Workspace {
	return &Workspace{Name: name, Layouts: layouts}
}

// ActiveLayout returns the active layout, or nil if the workspace has none.
func (w *Workspace) ActiveLayout() *Layout {
	if w.active < 0 || w.active >= len(w.Layouts) {
		return nil
	}
	return &w.Layouts[w.active]
}

// SetActiveLayout activates the layout with the given name.
func (w *Workspace) SetActiveLayout(name string) error {
	for i := range w.Layouts {
		if w.Layouts[i].Name == name {
			w.active = i
			return nil
		}
	}
	return errors.New(errors.ErrCodeNotFound, "workspace %s has no layout %q", w.Name, name)
}

// NextLayout activates the following layout, wrapping around, and returns it.
func (w *Workspace) NextLayout() *Layout {
	if len(w.Layouts) == 0 {
		return nil
	}
	w.active = (w.active + 1) % len(w.Layouts)
	return &w.Layouts[w.active]
}

// IncrementDivide shifts the active layout's parameter by delta.
// The result is clamped to [0, 1]; a workspace without layouts is unchanged.
func (w *Workspace) IncrementDivide(delta float64) {
	if l := w.ActiveLayout(); l != nil {
		l.Adjust(delta)
	}
}

// AddView appends v to the end of the view sequence.
func (w *Workspace) AddView(v *View) {
	w.Views = append(w.Views, v)
}

// RemoveView drops the view with the given ID and returns it,
// or nil if it is not part of the workspace.
func (w *Workspace) RemoveView(id uuid.UUID) *View {
	for i, v := range w.Views {
		if v.ID == id {
			w.Views = append(w.Views[:i], w.Views[i+1:]...)
			return v
		}
	}
	return nil
}

// View looks up a view by ID.
func (w *Workspace) View(id uuid.UUID) *View {
	for _, v := range w.Views {
		if v.ID == id {
			return v
		}
	}
	return nil
}

// EligibleViews returns the tiling views in sequence order.
func (w *Workspace) EligibleViews() []*View {
	var out []*View
	for _, v := range w.Views {
		if v.Eligible() {
			out = append(out, v)
		}
	}
	return out
}
