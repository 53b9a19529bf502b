package config

import (
	"fmt"

	"github.com/rileyhilliard/graphtop/internal/errors"
)

// MinLeft leaves room for the widest y-axis label ("100%") plus the
// left border between it and the first bar.
const MinLeft = 6

var validSources = map[string]bool{
	SourceAuto: true, SourceSysinfo: true, SourceProcfs: true, SourceGopsutil: true,
}

var validModes = map[string]bool{
	ModeNormal: true, Mode256: true, ModeTrueColor: true, ModeMono: true,
}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	if err := validateDashboard(cfg.Dashboard); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(),
			"Check the 'dashboard' section in your config.yaml.")
	}

	if !validSources[cfg.Metrics.Source] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("metrics.source '%s' isn't valid", cfg.Metrics.Source),
			"Use 'auto', 'sysinfo', 'procfs', or 'gopsutil'.")
	}

	if !validModes[cfg.Output.Mode] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("output.mode '%s' isn't valid", cfg.Output.Mode),
			"Use 'normal', '256', 'truecolor', or 'mono'.")
	}

	return nil
}

func validateDashboard(d DashboardConfig) error {
	if d.Interval <= 0 {
		return fmt.Errorf("dashboard.interval must be positive, got %s - try something like '250ms' or '1s'", d.Interval)
	}
	if d.GraphWidth < 1 {
		return fmt.Errorf("dashboard.graph_width must be at least 1, got %d", d.GraphWidth)
	}
	if d.GraphHeight < 2 {
		return fmt.Errorf("dashboard.graph_height must be at least 2, got %d", d.GraphHeight)
	}
	if d.Left < MinLeft {
		return fmt.Errorf("dashboard.left must be at least %d to fit the axis labels, got %d", MinLeft, d.Left)
	}
	return nil
}
