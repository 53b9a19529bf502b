package screen

import (
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/graphtop/internal/logger"
	"golang.org/x/term"
)

// eventBuffer bounds queued input. Events beyond it are dropped rather than
// blocking the Bubble Tea event loop.
const eventBuffer = 64

// frameMsg carries a rendered frame into the bridge program.
type frameMsg string

// bridge is the Bubble Tea model behind a Terminal. Update and View run on
// the program's event loop goroutine.
type bridge struct {
	frame    string
	events   chan<- Event
	onResize func(width, height int)
}

func newBridge(events chan<- Event, onResize func(width, height int)) *bridge {
	return &bridge{events: events, onResize: onResize}
}

func (b *bridge) Init() tea.Cmd {
	return nil
}

func (b *bridge) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		b.frame = string(msg)

	case tea.KeyMsg:
		b.emit(Event{Type: EventKey, Key: msg.String()})

	case tea.WindowSizeMsg:
		if b.onResize != nil {
			b.onResize(msg.Width, msg.Height)
		}
		b.emit(Event{Type: EventResize, Width: msg.Width, Height: msg.Height})

	case tea.FocusMsg, tea.BlurMsg:
		b.emit(Event{Type: EventOther})
	}

	return b, nil
}

func (b *bridge) View() string {
	return b.frame
}

func (b *bridge) emit(ev Event) {
	select {
	case b.events <- ev:
	default:
	}
}

// Terminal owns the tty for the lifetime of a dashboard session.
//
// Lifecycle: Init, then any number of Clear/WriteText/Render/PollEvent
// calls from a single goroutine, then Shutdown.
type Terminal struct {
	out *os.File
	log logger.Logger

	mu     sync.Mutex
	width  int
	height int

	buf     *Buffer
	program *tea.Program
	events  chan Event
	done    chan struct{}
	runErr  error

	shutdownOnce sync.Once
}

// NewTerminal creates a Terminal drawing to out (normally os.Stdout) and
// reading keys from stdin.
func NewTerminal(out *os.File, log logger.Logger) *Terminal {
	if log == nil {
		log = logger.Noop()
	}
	return &Terminal{
		out: out,
		log: log,
		buf: NewBuffer(0, 0),
	}
}

// Init takes over the terminal: raw input, alternate screen, hidden cursor.
// It fails if stdin or the output is not a terminal.
func (t *Terminal) Init() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal")
	}
	fd := int(t.out.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("%s is not a terminal", t.out.Name())
	}

	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	t.setSize(width, height)
	t.buf.Resize(width, height)
	t.log.Debug("terminal %dx%d", width, height)

	t.events = make(chan Event, eventBuffer)
	t.done = make(chan struct{})
	t.program = tea.NewProgram(
		newBridge(t.events, t.setSize),
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
		tea.WithReportFocus(),
		tea.WithOutput(t.out),
	)

	go func() {
		defer close(t.done)
		if _, err := t.program.Run(); err != nil {
			t.mu.Lock()
			t.runErr = err
			t.mu.Unlock()
			t.log.Error("terminal program exited: %v", err)
		}
	}()

	return nil
}

// Shutdown restores the terminal. Safe to call more than once.
func (t *Terminal) Shutdown() {
	t.shutdownOnce.Do(func() {
		if t.program == nil {
			return
		}
		t.program.Quit()
		<-t.done
	})
}

// Err returns the error the terminal program exited with, if any.
func (t *Terminal) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.runErr
}

// SelectMode sets the color profile used for rendering.
func (t *Terminal) SelectMode(m Mode) {
	lipgloss.SetColorProfile(m.Profile())
	t.log.Debug("output mode %s", m)
}

// Clear blanks the back buffer, resizing it to the current terminal size.
func (t *Terminal) Clear() {
	width, height := t.size()
	t.buf.Resize(width, height)
}

// WriteText writes styled text into the back buffer at (x, y).
func (t *Terminal) WriteText(x, y int, style Style, text string) {
	t.buf.WriteText(x, y, style, text)
}

// Render presents the back buffer.
func (t *Terminal) Render() {
	if t.program == nil {
		return
	}
	t.program.Send(frameMsg(t.buf.Render()))
}

// PollEvent waits up to timeout for input. It reports false on timeout.
// Once the session has ended it returns EventClosed immediately.
func (t *Terminal) PollEvent(timeout time.Duration) (Event, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-t.events:
		return ev, true
	case <-t.done:
		return Event{Type: EventClosed}, true
	case <-timer.C:
		return Event{}, false
	}
}

// Height returns the number of drawable rows.
func (t *Terminal) Height() int {
	_, height := t.size()
	return height
}

func (t *Terminal) setSize(width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.width, t.height = width, height
}

func (t *Terminal) size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}
