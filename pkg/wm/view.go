package wm

import (
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/viv/pkg/errors"
	"github.com/matzehuels/viv/pkg/geom"
)

// ViewType identifies the shell protocol a view was created through.
type ViewType int

const (
	// ViewTypeXDGShell views report their own window geometry.
	ViewTypeXDGShell ViewType = iota
	// ViewTypeXWayland views report no native geometry.
	ViewTypeXWayland
)

// String returns the config name of the view type.
func (t ViewType) String() string {
	switch t {
	case ViewTypeXDGShell:
		return "xdg-shell"
	case ViewTypeXWayland:
		return "xwayland"
	default:
		return "unknown"
	}
}

// ParseViewType resolves a view type name. The empty string is xdg-shell.
func ParseViewType(name string) (ViewType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "xdg-shell", "xdg_shell", "xdg":
		return ViewTypeXDGShell, nil
	case "xwayland":
		return ViewTypeXWayland, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown view type %q", name)
}

// placeholderGeometry stands in for views that cannot report geometry.
var placeholderGeometry = geom.Box{Width: 100, Height: 100}

// View is one managed window.
type View struct {
	ID    uuid.UUID
	Title string
	Type  ViewType

	// Mapped is set once the client is ready to be shown.
	Mapped bool
	// Floating views are positioned independently of the layout.
	Floating bool

	Surface Surface

	// Current is the geometry applied to the surface. X and Y are corrected
	// for the surface's geometry origin; Width and Height are the size that
	// was last requested.
	Current geom.Box
	// Target is the intended window rectangle before borders and surface
	// offsets, consumed by animations and other external readers.
	Target geom.Box
}

// NewView creates a mapped, tiling view with a fresh ID.
func NewView(title string, typ ViewType, s Surface) *View {
	return &View{
		ID:      uuid.New(),
		Title:   title,
		Type:    typ,
		Mapped:  true,
		Surface: s,
	}
}

// Eligible reports whether the view takes part in tiling.
func (v *View) Eligible() bool {
	return v.Mapped && !v.Floating
}

// SurfaceGeometry returns the geometry reported by the view's surface.
// XWayland views and views without a surface get a fixed 100x100 box at the
// origin instead.
func (v *View) SurfaceGeometry() geom.Box {
	if v.Type != ViewTypeXDGShell || v.Surface == nil {
		return placeholderGeometry
	}
	return v.Surface.Geometry()
}

// SetSize records the size as the current size and forwards it to the surface.
func (v *View) SetSize(width, height int) {
	v.Current.Width = width
	v.Current.Height = height
	if v.Surface != nil {
		v.Surface.SetSize(width, height)
	}
}

// Move sets the current position.
func (v *View) Move(x, y int) {
	v.Current.X = x
	v.Current.Y = y
}
