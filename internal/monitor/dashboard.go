package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/rileyhilliard/graphtop/internal/errors"
	"github.com/rileyhilliard/graphtop/internal/logger"
	"github.com/rileyhilliard/graphtop/internal/screen"
)

// Backend is the terminal the dashboard draws on. screen.Terminal is the
// real implementation.
type Backend interface {
	Canvas
	Init() error
	Shutdown()
	SelectMode(mode screen.Mode)
	Clear()
	Render()
	PollEvent(timeout time.Duration) (screen.Event, bool)
	Height() int
}

// State is the dashboard lifecycle state.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "terminated"
}

// firstRow is the readout row of the first metric.
const firstRow = 1

// Options configures a Dashboard.
type Options struct {
	// Interval is the tick period.
	Interval time.Duration
	// GraphWidth is the interior width of each graph and the history size.
	GraphWidth int
	// GraphHeight is the interior height of each graph.
	GraphHeight int
	// Left is the column of the first bar; readouts and help align to it.
	Left int
	// Mode is the rendering mode selected at startup.
	Mode screen.Mode
}

// DefaultOptions returns the built-in dashboard settings.
func DefaultOptions() Options {
	return Options{
		Interval:    250 * time.Millisecond,
		GraphWidth:  DefaultHistorySize,
		GraphHeight: 10,
		Left:        10,
		Mode:        screen.Mode256,
	}
}

// metric is one tracked series with its labels.
type metric struct {
	title   string
	readout string
	sample  func() float64
	history *History
}

// Dashboard samples CPU and memory every tick and draws a graph for each.
// It runs on a single goroutine and owns the sampler and both histories.
type Dashboard struct {
	backend Backend
	sampler *Sampler
	opts    Options
	graph   Graph
	metrics []metric
	keys    keyMap
	state   State
	log     logger.Logger
	now     func() time.Time
}

// NewDashboard creates a Dashboard. Zero option fields take defaults.
func NewDashboard(backend Backend, sampler *Sampler, opts Options, log logger.Logger) *Dashboard {
	def := DefaultOptions()
	if opts.Interval <= 0 {
		opts.Interval = def.Interval
	}
	if opts.GraphWidth <= 0 {
		opts.GraphWidth = def.GraphWidth
	}
	if opts.GraphHeight <= 0 {
		opts.GraphHeight = def.GraphHeight
	}
	if opts.Left <= 0 {
		opts.Left = def.Left
	}
	if log == nil {
		log = logger.Noop()
	}

	d := &Dashboard{
		backend: backend,
		sampler: sampler,
		opts:    opts,
		graph:   NewGraph(opts.GraphWidth, opts.GraphHeight),
		keys:    defaultKeyMap(),
		state:   StateTerminated,
		log:     log,
		now:     time.Now,
	}
	d.metrics = []metric{
		{title: "CPU Usage", readout: "Current CPU: %.1f%%", sample: sampler.CPU, history: NewHistory(opts.GraphWidth)},
		{title: "Memory Usage", readout: "Memory: %.1f%%", sample: sampler.Memory, history: NewHistory(opts.GraphWidth)},
	}
	return d
}

// State returns the current lifecycle state.
func (d *Dashboard) State() State {
	return d.state
}

// Run takes over the terminal and ticks until the user presses an exit
// key, the terminal session ends, or ctx is cancelled. The backend is shut
// down exactly once on return, unless Init failed.
func (d *Dashboard) Run(ctx context.Context) error {
	if err := d.backend.Init(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Couldn't start the terminal UI",
			"graphtop needs an interactive terminal - run it directly, not piped or redirected")
	}
	defer d.backend.Shutdown()

	d.backend.SelectMode(d.opts.Mode)
	d.state = StateRunning
	d.log.Info("dashboard started (interval %s, graph %dx%d)", d.opts.Interval, d.opts.GraphWidth, d.opts.GraphHeight)

	ticks := 0
	for d.state == StateRunning {
		if d.waitForExit(ctx) {
			d.state = StateTerminated
			break
		}
		d.tick()
		ticks++
	}

	d.log.Info("dashboard stopped after %d ticks", ticks)
	return nil
}

// waitForExit blocks for one tick period, returning early with true if an
// exit is requested. Other input is ignored and waiting resumes until the
// period has elapsed.
func (d *Dashboard) waitForExit(ctx context.Context) bool {
	deadline := d.now().Add(d.opts.Interval)

	for {
		if ctx.Err() != nil {
			d.log.Debug("context done: %v", ctx.Err())
			return true
		}

		remaining := deadline.Sub(d.now())
		if remaining <= 0 {
			return false
		}

		ev, ok := d.backend.PollEvent(remaining)
		if !ok {
			return false
		}

		switch ev.Type {
		case screen.EventClosed:
			d.log.Debug("terminal closed")
			return true
		case screen.EventKey:
			if d.keys.IsExit(ev.Key) {
				d.log.Debug("exit key %q", ev.Key)
				return true
			}
		case screen.EventResize:
			d.log.Debug("resize %dx%d", ev.Width, ev.Height)
		}
	}
}

// tick samples every metric and redraws the whole screen.
func (d *Dashboard) tick() {
	d.backend.Clear()

	for _, m := range d.metrics {
		m.history.Push(m.sample())
	}

	row := firstRow
	lastBottom := row
	for _, m := range d.metrics {
		d.backend.WriteText(d.opts.Left, row, readoutStyle, fmt.Sprintf(m.readout, m.history.Latest()))

		origin := Point{X: d.opts.Left, Y: row + 1}
		d.graph.Draw(d.backend, origin, m.history, m.title)

		lastBottom = d.graph.BottomRow(origin)
		row = lastBottom + 2
	}

	helpRow := max(d.backend.Height()-2, lastBottom+1)
	d.backend.WriteText(d.opts.Left, helpRow, helpStyle, d.keys.HelpLine())

	d.backend.Render()
}
