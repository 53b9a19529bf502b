package cli

import (
	"context"
	"os"

	"github.com/rileyhilliard/graphtop/internal/config"
	"github.com/rileyhilliard/graphtop/internal/errors"
	"github.com/rileyhilliard/graphtop/internal/logger"
	"github.com/rileyhilliard/graphtop/internal/monitor"
	"github.com/rileyhilliard/graphtop/internal/screen"
)

// dashboardCommand loads config and runs the dashboard until the user exits
// or ctx is cancelled.
func dashboardCommand(ctx context.Context) error {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	log, closer, err := logger.Open(cfg.Log.File, "[graphtop]", cfg.Log.Debug)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't open log file "+cfg.Log.File,
			"Fix log.file in your config, or leave it empty to disable logging")
	}
	defer closer.Close()

	opts, err := dashboardOptions(cfg)
	if err != nil {
		return err
	}

	src, err := monitor.NewSource(cfg.Metrics.Source)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrMetrics,
			"Couldn't set up metrics source '"+cfg.Metrics.Source+"'",
			"Set metrics.source to 'auto' in your config")
	}
	log.Debug("source=%s mode=%s interval=%s", cfg.Metrics.Source, opts.Mode, opts.Interval)

	term := screen.NewTerminal(os.Stdout, log)
	return runSession(ctx, term, monitor.NewSampler(src, log), opts, log)
}

// session is a dashboard backend that can report why it ended.
type session interface {
	monitor.Backend
	Err() error
}

// runSession runs the dashboard on s. If the terminal program failed after
// Init (raw mode or input setup), the dashboard sees a closed terminal and
// stops cleanly; that failure is still returned as a TERMINAL error.
func runSession(ctx context.Context, s session, sampler *monitor.Sampler, opts monitor.Options, log logger.Logger) error {
	if err := monitor.NewDashboard(s, sampler, opts, log).Run(ctx); err != nil {
		return err
	}

	if err := s.Err(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"The terminal UI stopped unexpectedly",
			"graphtop needs an interactive terminal - run it directly, not piped or redirected")
	}
	return nil
}

// dashboardOptions maps a validated config onto dashboard settings.
func dashboardOptions(cfg *config.Config) (monitor.Options, error) {
	mode, err := screen.ParseMode(cfg.Output.Mode)
	if err != nil {
		return monitor.Options{}, errors.WrapWithCode(err, errors.ErrConfig,
			"output.mode '"+cfg.Output.Mode+"' isn't valid",
			"Use 'normal', '256', 'truecolor', or 'mono'.")
	}

	return monitor.Options{
		Interval:    cfg.Dashboard.Interval,
		GraphWidth:  cfg.Dashboard.GraphWidth,
		GraphHeight: cfg.Dashboard.GraphHeight,
		Left:        cfg.Dashboard.Left,
		Mode:        mode,
	}, nil
}
