// Package screen is graphtop's terminal backend: a cell buffer that
// callers write styled text into, and a Terminal that owns the tty session
// and presents the buffer one frame at a time.
//
// The Terminal runs a small Bubble Tea program as a bridge. Bubble Tea
// handles raw mode, the alternate screen, and input decoding; the bridge
// forwards key and resize messages as Events and shows whatever frame was
// last rendered.
package screen

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// EventType classifies input events.
type EventType int

const (
	// EventKey is a key press; Event.Key holds its name ("esc", "ctrl+c", "a").
	EventKey EventType = iota
	// EventResize reports new terminal dimensions.
	EventResize
	// EventOther is any other input (focus changes).
	EventOther
	// EventClosed means the terminal session ended and no more input will arrive.
	EventClosed
)

func (t EventType) String() string {
	switch t {
	case EventKey:
		return "key"
	case EventResize:
		return "resize"
	case EventOther:
		return "other"
	case EventClosed:
		return "closed"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Event is an input event from the terminal.
type Event struct {
	Type   EventType
	Key    string
	Width  int
	Height int
}

// Mode is the color rendering mode.
type Mode int

const (
	ModeNormal Mode = iota
	Mode256
	ModeTrueColor
	ModeMono
)

// ParseMode converts a config name ("normal", "256", "truecolor", "mono") to a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "normal":
		return ModeNormal, nil
	case "256":
		return Mode256, nil
	case "truecolor":
		return ModeTrueColor, nil
	case "mono":
		return ModeMono, nil
	default:
		return ModeNormal, fmt.Errorf("unknown output mode %q", name)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case Mode256:
		return "256"
	case ModeTrueColor:
		return "truecolor"
	case ModeMono:
		return "mono"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Profile maps the mode to a termenv color profile.
func (m Mode) Profile() termenv.Profile {
	switch m {
	case Mode256:
		return termenv.ANSI256
	case ModeTrueColor:
		return termenv.TrueColor
	case ModeMono:
		return termenv.Ascii
	default:
		return termenv.ANSI
	}
}

// Style is the styling of a cell. The zero value is the terminal default.
// Style is comparable so adjacent cells with equal styles render as one run.
type Style struct {
	Fg   lipgloss.Color
	Bold bool
}

// Render applies the style to text using the active color profile.
func (s Style) Render(text string) string {
	if s == (Style{}) {
		return text
	}
	st := lipgloss.NewStyle()
	if s.Fg != "" {
		st = st.Foreground(s.Fg)
	}
	if s.Bold {
		st = st.Bold(true)
	}
	return st.Render(text)
}
