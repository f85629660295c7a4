package wm

import "github.com/matzehuels/viv/pkg/geom"

// Surface is the client buffer behind a view.
type Surface interface {
	// Geometry reports the visible window region within the surface.
	// Clients that draw shadows or decorations report a non-zero origin.
	Geometry() geom.Box

	// SetSize asks the client to resize to width x height.
	// The request is fire-and-forget.
	SetSize(width, height int)
}

// HeadlessSurface is an in-memory [Surface] for hosts without a display.
// It reports a fixed geometry origin and records every size request.
type HeadlessSurface struct {
	// OffsetX and OffsetY are the geometry origin the surface reports.
	OffsetX, OffsetY int

	width, height int
	requests      int
}

// NewHeadlessSurface returns a surface reporting the given geometry origin.
func NewHeadlessSurface(offsetX, offsetY int) *HeadlessSurface {
	return &HeadlessSurface{OffsetX: offsetX, OffsetY: offsetY}
}

// Geometry implements [Surface]. The size is whatever was last requested.
func (s *HeadlessSurface) Geometry() geom.Box {
	return geom.Box{X: s.OffsetX, Y: s.OffsetY, Width: s.width, Height: s.height}
}

// SetSize implements [Surface].
func (s *HeadlessSurface) SetSize(width, height int) {
	s.width, s.height = width, height
	s.requests++
}

// Requests returns how many times SetSize was called.
func (s *HeadlessSurface) Requests() int { return s.requests }

// Size returns the last requested size.
func (s *HeadlessSurface) Size() (width, height int) { return s.width, s.height }
