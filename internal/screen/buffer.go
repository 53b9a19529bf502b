package screen

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell. A zero Ch marks the trailing half of a
// double-width character.
type Cell struct {
	Ch    rune
	Style Style
}

var blank = Cell{Ch: ' '}

// cellWidth measures runes independent of the locale. Under CJK locales the
// default condition counts ambiguous-width runes (box drawing, block
// elements) as two cells, which would shift graph borders and bars.
var cellWidth = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Buffer is a width x height grid of cells. Writes outside the grid are
// clipped.
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer creates a cleared buffer. Negative sizes are treated as zero.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize changes the buffer dimensions and clears it.
func (b *Buffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	if width != b.width || height != b.height {
		b.width, b.height = width, height
		b.cells = make([]Cell, width*height)
	}
	b.Clear()
}

// Clear resets every cell to a default-styled space.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// WriteText writes text starting at column x of row y. Characters that do
// not fit entirely inside the grid are dropped.
func (b *Buffer) WriteText(x, y int, style Style, text string) {
	if y < 0 || y >= b.height {
		return
	}
	row := b.cells[y*b.width : (y+1)*b.width]

	for _, r := range text {
		w := cellWidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= b.width {
			row[x] = Cell{Ch: r, Style: style}
			for i := 1; i < w; i++ {
				row[x+i] = Cell{Style: style}
			}
		}
		x += w
	}
}

// Cell returns the cell at (x, y), or a blank cell outside the grid.
func (b *Buffer) Cell(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return blank
	}
	return b.cells[y*b.width+x]
}

// Row returns the unstyled text of row y.
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		if c.Ch != 0 {
			sb.WriteRune(c.Ch)
		}
	}
	return sb.String()
}

// Render returns the whole buffer as styled lines joined by newlines.
// Adjacent cells with the same style are rendered as a single run.
func (b *Buffer) Render() string {
	lines := make([]string, b.height)
	var run strings.Builder

	for y := 0; y < b.height; y++ {
		var line strings.Builder
		var cur Style
		run.Reset()

		for _, c := range b.cells[y*b.width : (y+1)*b.width] {
			if c.Ch == 0 {
				continue
			}
			if c.Style != cur && run.Len() > 0 {
				line.WriteString(cur.Render(run.String()))
				run.Reset()
			}
			cur = c.Style
			run.WriteRune(c.Ch)
		}
		if run.Len() > 0 {
			line.WriteString(cur.Render(run.String()))
		}
		lines[y] = line.String()
	}

	return strings.Join(lines, "\n")
}
