package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/graphtop/internal/config"
	"github.com/rileyhilliard/graphtop/internal/errors"
	"github.com/rileyhilliard/graphtop/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string    // Where to write; empty means the global config path
	Overwrite      bool      // Overwrite existing config without asking
	NonInteractive bool      // Never prompt; fail if the file exists
	Out            io.Writer // Status output, defaults to stdout
}

// confirmOverwrite asks whether an existing config file may be replaced.
var confirmOverwrite = func(path string) (bool, error) {
	var overwrite bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
				Value(&overwrite),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return overwrite, nil
}

// Init writes the default configuration file.
func Init(opts InitOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	status := ui.NewStatusWriter(out)

	path := opts.Path
	if path == "" {
		var err error
		if path, err = config.GlobalPath(); err != nil {
			return err
		}
	}

	if _, err := os.Stat(path); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", path),
				"Use --force to overwrite")
		}

		overwrite, err := confirmOverwrite(path)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			status.Skipped("Config", "already exists")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if err := config.Save(cfg, path); err != nil {
		status.Fail("Couldn't write config")
		return err
	}

	status.Success("Wrote " + path)
	status.Detail("interval", cfg.Dashboard.Interval.String())
	status.Detail("graph", fmt.Sprintf("%dx%d", cfg.Dashboard.GraphWidth, cfg.Dashboard.GraphHeight))
	status.Detail("source", cfg.Metrics.Source)
	status.Detail("mode", cfg.Output.Mode)
	return nil
}

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write the default settings to ~/.config/graphtop/config.yaml
(or the path in $GRAPHTOP_CONFIG) so they can be edited.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Path:           os.Getenv(config.EnvConfigPath),
			Overwrite:      initForce,
			NonInteractive: !term.IsTerminal(int(os.Stdin.Fd())),
			Out:            cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
}
