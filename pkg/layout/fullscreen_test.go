package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matzehuels/viv/pkg/geom"
	"github.com/matzehuels/viv/pkg/wm"
)

func fullscreenLayout() wm.Layout {
	return wm.Layout{Name: "full", Algorithm: wm.Fullscreen}
}

func TestFullscreenCoversOutput(t *testing.T) {
	out := &wm.Output{Width: 2560, Height: 1440}
	ws, views := fixture(out, fullscreenLayout(), 3)

	New().Apply(ws)

	for _, v := range views {
		assert.Equal(t, geom.Box{Width: 2560, Height: 1440}, v.Target)
		assert.Equal(t, geom.Box{Width: 2560, Height: 1440}, v.Current)
		assert.Equal(t, 1, requests(v))
	}
}

func TestFullscreenIgnoresMarginsBordersAndLayoutOffset(t *testing.T) {
	out := &wm.Output{
		Width: 1920, Height: 1080,
		LayoutX: 1920, LayoutY: 100,
		Excluded: geom.Margins{Top: 30, Left: 10},
	}
	ws, views := fixture(out, fullscreenLayout(), 1)

	New(WithBorderWidth(5)).Apply(ws)

	assert.Equal(t, geom.Box{Width: 1920, Height: 1080}, views[0].Target)
	assert.Equal(t, geom.Box{Width: 1920, Height: 1080}, views[0].Current)
}

func TestFullscreenSubtractsSurfaceOrigin(t *testing.T) {
	out := &wm.Output{Width: 800, Height: 600}
	ws := wm.NewWorkspace("test", fullscreenLayout())
	out.Show(ws)
	v := wm.NewView("csd", wm.ViewTypeXDGShell, wm.NewHeadlessSurface(24, 18))
	ws.AddView(v)

	New().Apply(ws)

	assert.Equal(t, geom.Box{X: -24, Y: -18, Width: 800, Height: 600}, v.Current)
	assert.Equal(t, geom.Box{Width: 800, Height: 600}, v.Target)
}

func TestFullscreenLeavesFloatingViews(t *testing.T) {
	out := &wm.Output{Width: 800, Height: 600}
	ws, views := fixture(out, fullscreenLayout(), 2)
	views[1].Floating = true
	views[1].Current = geom.Box{X: 5, Y: 5, Width: 50, Height: 50}

	New().Apply(ws)

	assert.Equal(t, geom.Box{Width: 800, Height: 600}, views[0].Target)
	assert.Equal(t, geom.Box{X: 5, Y: 5, Width: 50, Height: 50}, views[1].Current)
	assert.Zero(t, requests(views[1]))
}
