package geom

// Box is an axis-aligned rectangle in pixel coordinates.
// The origin is the top-left corner and Y grows downward.
type Box struct {
	X, Y          int
	Width, Height int
}

// Right returns the X coordinate one past the right edge.
func (b Box) Right() int { return b.X + b.Width }

// Bottom returns the Y coordinate one past the bottom edge.
func (b Box) Bottom() int { return b.Y + b.Height }

// Area returns the number of pixels covered by the box.
func (b Box) Area() int { return b.Width * b.Height }

// Empty reports whether the box covers no pixels.
func (b Box) Empty() bool { return b.Width <= 0 || b.Height <= 0 }

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy int) Box {
	b.X += dx
	b.Y += dy
	return b
}

// Inset shrinks the box by n pixels on every side.
// A negative n grows it.
func (b Box) Inset(n int) Box {
	return Box{
		X:      b.X + n,
		Y:      b.Y + n,
		Width:  b.Width - 2*n,
		Height: b.Height - 2*n,
	}
}

// Intersects reports whether b and o share at least one pixel.
func (b Box) Intersects(o Box) bool {
	if b.Empty() || o.Empty() {
		return false
	}
	return b.X < o.Right() && o.X < b.Right() &&
		b.Y < o.Bottom() && o.Y < b.Bottom()
}

// Contains reports whether the pixel (x, y) lies inside the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom()
}
