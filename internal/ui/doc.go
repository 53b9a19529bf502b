// Package ui provides styled line output for graphtop's non-dashboard
// commands (init, version, error reporting).
//
// Colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Warnings and skipped items
//	ColorInfo      (cyan)   - Paths and informational values
//	ColorMuted     (gray)   - Secondary text
//
// Status lines are written through a StatusWriter:
//
//	sw := ui.NewStatusWriter(os.Stdout)
//	sw.Success("Wrote " + path)
//	sw.Detail("interval", "250ms")
//	sw.Skipped("Config", "already exists")
package ui
