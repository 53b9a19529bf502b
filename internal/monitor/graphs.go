package monitor

import (
	"fmt"
	"math"
	"strings"

	"github.com/rileyhilliard/graphtop/internal/screen"
)

// Graph glyphs.
const (
	glyphBar         = "█"
	glyphHorizontal  = "─"
	glyphVertical    = "│"
	glyphTopLeft     = "┌"
	glyphTopRight    = "┐"
	glyphBottomLeft  = "└"
	glyphBottomRight = "┘"
)

// Axis labels, right-aligned to labelWidth.
const (
	labelTop    = "100%"
	labelBottom = "0%"
	labelWidth  = 4
)

// Canvas is where graphs are drawn. Writes outside the visible area are
// clipped by the implementation.
type Canvas interface {
	WriteText(x, y int, style screen.Style, text string)
}

// Point is a cell position; X is the column, Y the row.
type Point struct {
	X, Y int
}

// Graph renders a History as a bordered bar chart.
//
// Given origin (x, y), the title is on row y starting at column x, the top
// border on row y+1, Height interior rows below it, then the bottom border.
// Interior columns are x .. x+Width-1; the borders sit one column outside
// on each side and the y-axis labels end two columns left of x.
type Graph struct {
	Width  int
	Height int
}

// NewGraph creates a graph with a Width x Height interior.
func NewGraph(width, height int) Graph {
	return Graph{Width: width, Height: height}
}

// Rows is the number of screen rows Draw uses, title included.
func (g Graph) Rows() int {
	return g.Height + 3
}

// BottomRow returns the row of the bottom border for a graph drawn at origin.
func (g Graph) BottomRow(origin Point) int {
	return origin.Y + g.Height + 2
}

// BarHeight maps a percentage to a number of filled cells.
//
// The scale is Height-1 rows, so 100% leaves the top interior row empty.
// The result is clamped to [0, Height-1] so out-of-range samples never
// paint over the border.
func BarHeight(value float64, height int) int {
	if height < 2 {
		return 0
	}
	maxBar := height - 1
	bar := int(math.Floor(value / 100.0 * float64(maxBar)))
	switch {
	case bar < 0:
		return 0
	case bar > maxBar:
		return maxBar
	default:
		return bar
	}
}

// Draw renders h with title at origin. Columns run oldest (left) to newest
// (right). When the history holds more samples than the graph has columns,
// only the newest Width are shown; when it holds fewer they are
// right-aligned.
func (g Graph) Draw(c Canvas, origin Point, h *History, title string) {
	x, y := origin.X, origin.Y
	top := y + 1
	bottom := g.BottomRow(origin)

	c.WriteText(x, y, titleStyle, title)

	// Border
	edge := strings.Repeat(glyphHorizontal, g.Width)
	c.WriteText(x-1, top, borderStyle, glyphTopLeft+edge+glyphTopRight)
	for row := top + 1; row < bottom; row++ {
		c.WriteText(x-1, row, borderStyle, glyphVertical)
		c.WriteText(x+g.Width, row, borderStyle, glyphVertical)
	}
	c.WriteText(x-1, bottom, borderStyle, glyphBottomLeft+edge+glyphBottomRight)

	// Y-axis labels, last character two cells left of the interior.
	labelX := x - 1 - labelWidth
	c.WriteText(labelX, top+1, labelStyle, fmt.Sprintf("%*s", labelWidth, labelTop))
	c.WriteText(labelX, bottom-1, labelStyle, fmt.Sprintf("%*s", labelWidth, labelBottom))

	// Bars
	values := h.Ordered()
	if len(values) > g.Width {
		values = values[len(values)-g.Width:]
	}
	offset := g.Width - len(values)

	for i, v := range values {
		bar := BarHeight(v, g.Height)
		if bar == 0 {
			continue
		}
		style := barStyle(v)
		col := x + offset + i
		for j := 0; j < bar; j++ {
			c.WriteText(col, bottom-1-j, style, glyphBar)
		}
	}
}
