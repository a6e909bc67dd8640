package viz

import (
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille pixel grid. Every cell remembers the pen that last
// drew into it so a caller can color cells per series.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Owner         [][]int

	pen   int
	dash  []bool
	phase int
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Owner:  make([][]int, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Owner[i] = make([]int, w)
	}
	c.Clear()
	return c
}

// SubWidth and SubHeight are the canvas size in sub-pixels. Braille dots
// are square on a typical 1:2 terminal cell.
func (c *Canvas) SubWidth() int  { return c.Width * 2 }
func (c *Canvas) SubHeight() int { return c.Height * 4 }

// SetPen selects the owner id and dash mask used by later drawing. A nil
// mask draws solid.
func (c *Canvas) SetPen(id int, dash []bool) {
	c.pen = id
	c.dash = dash
	c.phase = 0
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.Owner[row][col] = c.pen
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Owner[i][j] = -1
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm. The dash phase carries
// over between calls so a polyline keeps its pattern across segments.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		if c.on() {
			c.Set(x0, y0)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) on() bool {
	if len(c.dash) == 0 {
		return true
	}
	v := c.dash[c.phase%len(c.dash)]
	c.phase++
	return v
}

func (c *Canvas) String() string {
	return c.Paint(nil)
}

// Paint renders the grid, passing every non-empty cell through color with
// the cell's owner. A nil color leaves cells unstyled.
func (c *Canvas) Paint(color func(owner int, cell string) string) string {
	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			cell := string(r)
			if color != nil && r != blank {
				cell = color(c.Owner[i][j], cell)
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
