package layout

import (
	"github.com/matzehuels/viv/pkg/wm"
)

// fixture builds a workspace on out with the given layout and n mapped,
// tiling XDG views whose surfaces report a zero geometry origin.
func fixture(out *wm.Output, l wm.Layout, n int) (*wm.Workspace, []*wm.View) {
	ws := wm.NewWorkspace("test", l)
	out.Show(ws)
	views := make([]*wm.View, n)
	for i := range views {
		views[i] = wm.NewView("view", wm.ViewTypeXDGShell, wm.NewHeadlessSurface(0, 0))
		ws.AddView(views[i])
	}
	return ws, views
}

func splitLayout(ratio float64) wm.Layout {
	return wm.Layout{Name: "split", Algorithm: wm.Split, Parameter: ratio}
}

func requests(v *wm.View) int {
	return v.Surface.(*wm.HeadlessSurface).Requests()
}
