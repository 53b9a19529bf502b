// Package cli implements the graphtop command-line interface.
//
// Running graphtop with no arguments starts the dashboard:
//
//	graphtop            - Live CPU and memory graphs (ESC to exit)
//	graphtop init       - Write ~/.config/graphtop/config.yaml
//	graphtop version    - Print build information
//
// The root command loads and validates config, opens the log file, picks a
// metrics source and hands a screen.Terminal to monitor.Dashboard. Errors
// are internal/errors values; Execute prints them to stderr and exits 1.
package cli
