package layout

import (
	"github.com/matzehuels/viv/pkg/geom"
	"github.com/matzehuels/viv/pkg/wm"
)

// fullscreen sizes every view to the whole output at (0, 0).
//
// Unlike split it ignores excluded margins and the border width and does not
// translate into global layout coordinates: a fullscreen view covers the
// output edge to edge.
func (e *Engine) fullscreen(out *wm.Output, views []*wm.View) {
	for _, v := range views {
		geo := v.SurfaceGeometry()
		v.Move(-geo.X, -geo.Y)
		v.SetSize(out.Width, out.Height)
		v.Target = geom.Box{Width: out.Width, Height: out.Height}

		e.logger.Debug("Placed fullscreen view", "view", v.Title,
			"geo_x", geo.X, "geo_y", geo.Y, "geo_width", geo.Width, "geo_height", geo.Height)
	}
}
