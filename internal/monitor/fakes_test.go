package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/graphtop/internal/screen"
)

// cellRec is one recorded cell write.
type cellRec struct {
	ch    rune
	style screen.Style
}

// recordingCanvas stores the last write to each cell.
type recordingCanvas struct {
	cells  map[Point]cellRec
	writes int
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{cells: make(map[Point]cellRec)}
}

func (c *recordingCanvas) WriteText(x, y int, style screen.Style, text string) {
	c.writes++
	for _, r := range text {
		c.cells[Point{X: x, Y: y}] = cellRec{ch: r, style: style}
		x++
	}
}

// text returns the characters in row y from column x0 (inclusive) to x1
// (exclusive), with blanks for unwritten cells.
func (c *recordingCanvas) text(y, x0, x1 int) string {
	var sb strings.Builder
	for x := x0; x < x1; x++ {
		if cell, ok := c.cells[Point{X: x, Y: y}]; ok {
			sb.WriteRune(cell.ch)
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

func (c *recordingCanvas) at(x, y int) cellRec {
	return c.cells[Point{X: x, Y: y}]
}

// column counts bar glyphs in column x between rows y0 and y1 inclusive.
func (c *recordingCanvas) column(x, y0, y1 int) int {
	n := 0
	for y := y0; y <= y1; y++ {
		if c.at(x, y).ch == '█' {
			n++
		}
	}
	return n
}

func (c *recordingCanvas) reset() {
	c.cells = make(map[Point]cellRec)
}

// pollResult is one scripted PollEvent answer.
type pollResult struct {
	ev screen.Event
	ok bool
}

func keyPress(name string) pollResult {
	return pollResult{ev: screen.Event{Type: screen.EventKey, Key: name}, ok: true}
}

func pollTimeout() pollResult {
	return pollResult{}
}

// fakeBackend records lifecycle calls and replays scripted input. Once the
// script runs out it reports the session as closed.
type fakeBackend struct {
	*recordingCanvas

	initErr  error
	height   int
	script   []pollResult
	timeouts []time.Duration

	inits     int
	shutdowns int
	clears    int
	renders   int
	modes     []screen.Mode

	onRender func()
}

func newFakeBackend(height int, script ...pollResult) *fakeBackend {
	return &fakeBackend{
		recordingCanvas: newRecordingCanvas(),
		height:          height,
		script:          script,
	}
}

func (b *fakeBackend) Init() error {
	b.inits++
	return b.initErr
}

func (b *fakeBackend) Shutdown() {
	b.shutdowns++
}

func (b *fakeBackend) SelectMode(mode screen.Mode) {
	b.modes = append(b.modes, mode)
}

func (b *fakeBackend) Clear() {
	b.clears++
	b.reset()
}

func (b *fakeBackend) Render() {
	b.renders++
	if b.onRender != nil {
		b.onRender()
	}
}

func (b *fakeBackend) PollEvent(timeout time.Duration) (screen.Event, bool) {
	b.timeouts = append(b.timeouts, timeout)
	if len(b.script) == 0 {
		return screen.Event{Type: screen.EventClosed}, true
	}
	next := b.script[0]
	b.script = b.script[1:]
	return next.ev, next.ok
}

func (b *fakeBackend) Height() int {
	return b.height
}

// scriptedSource replays CPU snapshots in order and returns a fixed memory
// reading. A nil entry in cpuErrs means no error for that read.
type scriptedSource struct {
	cpu     []CounterSnapshot
	cpuErrs []error
	cpuIdx  int

	mem    MemoryInfo
	memErr error
}

func (s *scriptedSource) CPUCounters() (CounterSnapshot, error) {
	i := s.cpuIdx
	s.cpuIdx++
	if i < len(s.cpuErrs) && s.cpuErrs[i] != nil {
		return CounterSnapshot{}, s.cpuErrs[i]
	}
	if i >= len(s.cpu) {
		return CounterSnapshot{}, fmt.Errorf("script exhausted at read %d", i)
	}
	return s.cpu[i], nil
}

func (s *scriptedSource) Memory() (MemoryInfo, error) {
	return s.mem, s.memErr
}
