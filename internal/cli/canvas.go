package cli

import (
	"strconv"
	"strings"

	"github.com/matzehuels/viv/pkg/geom"
	"github.com/matzehuels/viv/pkg/io"
)

// canvas is a character grid onto which output pixels are scaled.
type canvas struct {
	area  geom.Box
	cols  int
	rows  int
	cells [][]rune
}

func newCanvas(area geom.Box, cols, rows int) *canvas {
	cols, rows = max(cols, 0), max(rows, 0)
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", cols))
	}
	return &canvas{area: area, cols: cols, rows: rows, cells: cells}
}

// scale maps a pixel rectangle to inclusive cell bounds.
func (c *canvas) scale(b io.Box) (x0, y0, x1, y1 int) {
	if c.area.Empty() {
		return 0, 0, -1, -1
	}
	x0 = (b.X - c.area.X) * c.cols / c.area.Width
	y0 = (b.Y - c.area.Y) * c.rows / c.area.Height
	x1 = (b.X+b.Width-c.area.X)*c.cols/c.area.Width - 1
	y1 = (b.Y+b.Height-c.area.Y)*c.rows/c.area.Height - 1
	return max(x0, 0), max(y0, 0), min(x1, c.cols-1), min(y1, c.rows-1)
}

func (c *canvas) set(x, y int, r rune) {
	if y >= 0 && y < c.rows && x >= 0 && x < c.cols {
		c.cells[y][x] = r
	}
}

// drawBox outlines b and writes label into its top edge. Boxes smaller
// than two cells in either direction are skipped.
func (c *canvas) drawBox(b io.Box, label string) {
	x0, y0, x1, y1 := c.scale(b)
	if x1-x0 < 1 || y1-y0 < 1 {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			var r rune
			switch {
			case y == y0 && x == x0:
				r = '┌'
			case y == y0 && x == x1:
				r = '┐'
			case y == y1 && x == x0:
				r = '└'
			case y == y1 && x == x1:
				r = '┘'
			case y == y0 || y == y1:
				r = '─'
			case x == x0 || x == x1:
				r = '│'
			default:
				r = ' '
			}
			c.set(x, y, r)
		}
	}
	for i, r := range []rune(label) {
		if x0+1+i >= x1 {
			break
		}
		c.set(x0+1+i, y0, r)
	}
}

func (c *canvas) String() string {
	lines := make([]string, c.rows)
	for i, row := range c.cells {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

// drawWorkspace scales the target geometry of every mapped view of ws onto
// a cols by rows grid covering area. Floating views are drawn last.
func drawWorkspace(ws io.Workspace, area geom.Box, cols, rows int) string {
	c := newCanvas(area, cols, rows)
	for _, floating := range []bool{false, true} {
		for i, v := range ws.Views {
			if !v.Mapped || v.Floating != floating {
				continue
			}
			c.drawBox(v.Target, viewLabel(i, v))
		}
	}
	return c.String()
}

func viewLabel(i int, v io.View) string {
	title := v.Title
	if title == "" {
		title = v.Type
	}
	return strconv.Itoa(i) + " " + title
}
