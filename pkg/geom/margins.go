package geom

// Margins are pixels reserved along each edge of an output,
// typically for bars or panels that are not tiled.
type Margins struct {
	Top, Bottom int
	Left, Right int
}

// Horizontal returns the combined left and right margin.
func (m Margins) Horizontal() int { return m.Left + m.Right }

// Vertical returns the combined top and bottom margin.
func (m Margins) Vertical() int { return m.Top + m.Bottom }
