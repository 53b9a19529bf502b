package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "graphtop",
	Short: "Live CPU and memory graphs in your terminal",
	Long: `graphtop draws a scrolling bar graph of CPU and memory utilization,
refreshed every 250ms by default. Press ESC to exit.

Settings are read from ~/.config/graphtop/config.yaml when present
(see 'graphtop init'), or from the file named by $GRAPHTOP_CONFIG.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(cmd.Context())
	},
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command's
// context so the dashboard can restore the terminal before exiting.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(reportError(os.Stderr, err))
	}
}

// reportError prints err and returns the code the process should exit with.
func reportError(w io.Writer, err error) int {
	fmt.Fprintln(w, err)
	return 1
}
