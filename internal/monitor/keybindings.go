package monitor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

// Key names as reported by the terminal backend.
const (
	KeyExit    = "esc"
	KeyExitAlt = "ctrl+c"
)

// keyName adapts a backend key name to key.Matches.
type keyName string

func (k keyName) String() string { return string(k) }

// keyMap holds the dashboard's bindings. Raw mode swallows SIGINT, so
// ctrl+c is bound alongside esc.
type keyMap struct {
	Exit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Exit: key.NewBinding(
			key.WithKeys(KeyExit, KeyExitAlt),
			key.WithHelp("ESC", "exit"),
		),
	}
}

// IsExit reports whether name cancels the dashboard.
func (k keyMap) IsExit(name string) bool {
	return key.Matches(keyName(name), k.Exit)
}

// HelpLine is the static footer, e.g. "Press ESC to exit".
func (k keyMap) HelpLine() string {
	h := k.Exit.Help()
	return fmt.Sprintf("Press %s to %s", h.Key, h.Desc)
}
