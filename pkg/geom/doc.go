// Package geom holds the plain geometry records shared by the layout engine
// and the window model.
//
// Coordinates are integer pixels with the origin at the top-left and Y
// increasing downward, matching what compositors hand to surfaces. A [Box]
// carries a position and a size; [Margins] describe pixels reserved along the
// edges of an output.
package geom
