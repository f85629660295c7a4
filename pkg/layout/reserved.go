package layout

import "github.com/matzehuels/viv/pkg/wm"

// The algorithms below are accepted by the engine but have no placement yet.
// Selecting one leaves every view where it is.

// fibonacciSpiral will give the main view half of the area and recurse into
// the remainder, turning clockwise.
func (e *Engine) fibonacciSpiral(*wm.Output, []*wm.View) {}

// centralColumn will center the main view and alternate the stack between a
// left and a right column.
func (e *Engine) centralColumn(*wm.Output, []*wm.View) {}

// indentedTabs will center the main view and tuck the others behind its
// edges like tabs.
func (e *Engine) indentedTabs(*wm.Output, []*wm.View) {}
