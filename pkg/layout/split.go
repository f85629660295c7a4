package layout

import (
	"math"

	"github.com/matzehuels/viv/pkg/geom"
	"github.com/matzehuels/viv/pkg/wm"
)

// fallbackStackHeight is the stack slice height when there is no stack.
// It is never used for placement.
const fallbackStackHeight = 100

// splitTolerance absorbs float error so that ratios written in decimal,
// such as 0.29 of 100 pixels, floor to the expected pixel.
const splitTolerance = 1e-9

// split places views[0] in a left column of floor(width*ratio) pixels and
// stacks the rest top to bottom in the right column.
//
//	|--------------|---------|
//	|              |    1    |
//	|              |---------|
//	|     main     |    2    |
//	|              |---------|
//	|              |    3    |
//	|--------------|---------|
func (e *Engine) split(out *wm.Output, views []*wm.View, ratio float64) {
	n := len(views)
	if n == 0 {
		return
	}

	area := out.UsableArea()
	width, height := area.Width, area.Height

	if n == 1 {
		ratio = 1.0
	}
	splitPixel := splitPoint(width, ratio)

	stacked := n - 1
	sideHeight := fallbackStackHeight
	spare := 0
	if stacked > 0 {
		sideHeight = height / stacked
		spare = height - stacked*sideHeight
	}

	e.logger.Debug("Laying out views", "views", n, "spare_pixels", spare)

	used := 0
	for i, v := range views {
		if i == 0 {
			v.Target = geom.Box{Width: splitPixel, Height: height}
		} else {
			h := sideHeight
			y := (i-1)*sideHeight + used
			if spare > 0 {
				spare--
				used++
				h++
			}
			v.Target = geom.Box{X: splitPixel, Y: y, Width: width - splitPixel, Height: h}
		}
		e.place(v)
	}

	// Output-local to global layout coordinates; this must come last.
	for _, v := range views {
		v.Current = v.Current.Translate(area.X, area.Y)
		v.Target = v.Target.Translate(area.X, area.Y)
	}
}

// place derives the current geometry from the view's target: inset by the
// border, shifted by the surface's geometry origin, then resized.
func (e *Engine) place(v *wm.View) {
	geo := v.SurfaceGeometry()
	inner := v.Target.Inset(e.borderWidth)
	v.Move(inner.X-geo.X, inner.Y-geo.Y)
	v.SetSize(max(inner.Width, 0), max(inner.Height, 0))
}

// splitPoint returns floor(width*ratio) clamped to [0, width].
func splitPoint(width int, ratio float64) int {
	if math.IsNaN(ratio) {
		ratio = 0
	}
	px := int(math.Floor(float64(width)*ratio + splitTolerance))
	return min(max(px, 0), width)
}
