package viz

import (
	"math"
	"strings"

	"github.com/KhliustovDmitrii/Physical-Simulations/internal/dynamo"
	"github.com/KhliustovDmitrii/Physical-Simulations/internal/physics"
)

// Braille Patterns: 2x4 dots per cell, Unicode offset 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille-cell drawing surface. Sub-pixel resolution is
// (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

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
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line in sub-pixel coordinates using Bresenham's algorithm.
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
		c.Set(x0, y0)
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

// DrawChain renders the cart and every link of the chain at the given state.
// World coordinates are scaled so the fully extended chain fits the canvas;
// the cart rides a rail across the vertical middle.
func (c *Canvas) DrawChain(chain *physics.Chain, s dynamo.State) {
	reach := 0.0
	for _, l := range chain.Lengths {
		reach += l
	}
	if reach == 0 {
		return
	}

	subW := float64(c.Width * 2)
	subH := float64(c.Height * 4)
	scale := math.Min(subW, subH) / (2.2 * reach)

	railY := subH / 2
	toPix := func(wx, wy float64) (int, int) {
		return int(subW/2 + wx*scale), int(railY - wy*scale)
	}

	// Rail.
	for x := 0; x < int(subW); x += 4 {
		c.Set(x, int(railY))
	}

	// Cart: a short horizontal bar centered on its position.
	cx, cy := toPix(s.CartPos, 0)
	c.DrawLine(cx-4, cy-1, cx+4, cy-1)
	c.DrawLine(cx-4, cy, cx+4, cy)

	// Links, pivoting upward from the cart.
	wx, wy := s.CartPos, 0.0
	for j, l := range chain.Lengths {
		nx := wx + l*math.Sin(s.Angles[j])
		ny := wy + l*math.Cos(s.Angles[j])
		x0, y0 := toPix(wx, wy)
		x1, y1 := toPix(nx, ny)
		c.DrawLine(x0, y0, x1, y1)
		wx, wy = nx, ny
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
