package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// StatusWriter renders one-line status messages to an output writer.
type StatusWriter struct {
	w io.Writer
}

// NewStatusWriter creates a new status writer writing to w.
func NewStatusWriter(w io.Writer) *StatusWriter {
	return &StatusWriter{w: w}
}

// Success renders a completed step.
// Shows: ✓ Wrote ~/.config/graphtop/config.yaml
func (sw *StatusWriter) Success(msg string) {
	fmt.Fprintln(sw.w, FormatStatus(SymbolSuccess, ColorSuccess, msg, ""))
}

// Fail renders a failed step.
// Shows: ✗ Couldn't write config
func (sw *StatusWriter) Fail(msg string) {
	fmt.Fprintln(sw.w, FormatStatus(SymbolFail, ColorError, msg, ""))
}

// Skipped renders a skipped step with an optional reason.
// Shows: ⊘ Config (already exists)
func (sw *StatusWriter) Skipped(msg, reason string) {
	note := ""
	if reason != "" {
		note = "(" + reason + ")"
	}
	fmt.Fprintln(sw.w, FormatStatus(SymbolSkipped, ColorWarning, msg, note))
}

// Detail renders an indented key/value line.
// Shows:   interval 250ms
func (sw *StatusWriter) Detail(label, value string) {
	labelStyle := lipgloss.NewStyle().Foreground(ColorMuted)
	valueStyle := lipgloss.NewStyle().Foreground(ColorInfo)
	fmt.Fprintf(sw.w, "  %s %s\n", labelStyle.Render(label), valueStyle.Render(value))
}

// Newline writes an empty line.
func (sw *StatusWriter) Newline() {
	fmt.Fprintln(sw.w)
}

// FormatStatus returns a formatted status line as a string.
func FormatStatus(symbol string, symbolColor lipgloss.Color, msg string, note string) string {
	symbolStyle := lipgloss.NewStyle().Foreground(symbolColor)
	noteStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	if note == "" {
		return fmt.Sprintf("%s %s", symbolStyle.Render(symbol), msg)
	}
	return fmt.Sprintf("%s %s %s", symbolStyle.Render(symbol), msg, noteStyle.Render(note))
}
