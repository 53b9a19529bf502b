package screen

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/graphtop/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBridge_Update(t *testing.T) {
	events := make(chan Event, 8)
	var gotW, gotH int
	b := newBridge(events, func(w, h int) { gotW, gotH = w, h })

	assert.Nil(t, b.Init())

	_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	_, _ = b.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	_, _ = b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	_, _ = b.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	_, _ = b.Update(tea.FocusMsg{})

	require.Len(t, events, 5)
	assert.Equal(t, Event{Type: EventKey, Key: "esc"}, <-events)
	assert.Equal(t, Event{Type: EventKey, Key: "ctrl+c"}, <-events)
	assert.Equal(t, Event{Type: EventKey, Key: "q"}, <-events)
	assert.Equal(t, Event{Type: EventResize, Width: 120, Height: 40}, <-events)
	assert.Equal(t, Event{Type: EventOther}, <-events)

	assert.Equal(t, 120, gotW)
	assert.Equal(t, 40, gotH)
}

func TestBridge_Frame(t *testing.T) {
	b := newBridge(make(chan Event, 1), nil)
	assert.Empty(t, b.View())

	_, _ = b.Update(frameMsg("frame one"))
	assert.Equal(t, "frame one", b.View())

	_, _ = b.Update(frameMsg("frame two"))
	assert.Equal(t, "frame two", b.View())
}

func TestBridge_DropsWhenFull(t *testing.T) {
	events := make(chan Event, 1)
	b := newBridge(events, nil)

	_, _ = b.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotPanics(t, func() {
		_, _ = b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	})
	assert.Len(t, events, 1)
}

func newTestTerminal() *Terminal {
	term := NewTerminal(os.Stdout, logger.Noop())
	term.events = make(chan Event, eventBuffer)
	term.done = make(chan struct{})
	return term
}

func TestTerminal_PollEventTimeout(t *testing.T) {
	term := newTestTerminal()

	start := time.Now()
	ev, ok := term.PollEvent(20 * time.Millisecond)

	assert.False(t, ok)
	assert.Equal(t, Event{}, ev)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestTerminal_PollEventDelivers(t *testing.T) {
	term := newTestTerminal()
	term.events <- Event{Type: EventKey, Key: "esc"}

	ev, ok := term.PollEvent(time.Second)

	assert.True(t, ok)
	assert.Equal(t, "esc", ev.Key)
}

func TestTerminal_PollEventClosed(t *testing.T) {
	term := newTestTerminal()
	close(term.done)

	ev, ok := term.PollEvent(time.Second)

	assert.True(t, ok)
	assert.Equal(t, EventClosed, ev.Type)
}

func TestTerminal_InitRequiresTTY(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "not-a-tty"))
	require.NoError(t, err)
	defer f.Close()

	term := NewTerminal(f, nil)
	err = term.Init()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a terminal")
}

func TestTerminal_ShutdownWithoutInit(t *testing.T) {
	term := NewTerminal(os.Stdout, nil)

	assert.NotPanics(t, func() {
		term.Shutdown()
		term.Shutdown()
	})
}

func TestTerminal_BufferOps(t *testing.T) {
	term := NewTerminal(os.Stdout, nil)
	term.setSize(10, 3)

	term.Clear()
	term.WriteText(2, 1, Style{}, "hi")

	assert.Equal(t, 3, term.Height())
	assert.Equal(t, "  hi      ", term.buf.Row(1))

	// Render before Init is a no-op.
	assert.NotPanics(t, term.Render)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		want    Mode
		profile termenv.Profile
		wantErr bool
	}{
		{name: "normal", want: ModeNormal, profile: termenv.ANSI},
		{name: "256", want: Mode256, profile: termenv.ANSI256},
		{name: "truecolor", want: ModeTrueColor, profile: termenv.TrueColor},
		{name: "mono", want: ModeMono, profile: termenv.Ascii},
		{name: "sixel", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMode(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
			assert.Equal(t, tt.name, m.String())
			assert.Equal(t, tt.profile, m.Profile())
		})
	}
}

func TestStyle_RenderZeroIsPlain(t *testing.T) {
	assert.Equal(t, "plain", Style{}.Render("plain"))
}

func TestEventType_String(t *testing.T) {
	assert.Equal(t, "key", EventKey.String())
	assert.Equal(t, "resize", EventResize.String())
	assert.Equal(t, "other", EventOther.String())
	assert.Equal(t, "closed", EventClosed.String())
	assert.Equal(t, "EventType(9)", EventType(9).String())
}
