package config

import "time"

// Config represents the graphtop config file.
type Config struct {
	Dashboard DashboardConfig `yaml:"dashboard" mapstructure:"dashboard"`
	Metrics   MetricsConfig   `yaml:"metrics" mapstructure:"metrics"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// DashboardConfig controls the graph geometry and refresh rate.
type DashboardConfig struct {
	// Interval is the tick period between redraws.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// GraphWidth is the number of columns per graph, and the number of
	// samples each history keeps.
	GraphWidth int `yaml:"graph_width" mapstructure:"graph_width"`

	// GraphHeight is the number of interior rows per graph.
	GraphHeight int `yaml:"graph_height" mapstructure:"graph_height"`

	// Left is the column of the first plotted bar. The y-axis labels and
	// the left border sit to its left.
	Left int `yaml:"left" mapstructure:"left"`
}

// MetricsConfig selects where samples come from.
type MetricsConfig struct {
	// Source is one of "auto", "sysinfo", "procfs", or "gopsutil".
	Source string `yaml:"source" mapstructure:"source"`
}

// OutputConfig controls terminal rendering.
type OutputConfig struct {
	// Mode is the rendering mode: "normal", "256", "truecolor", or "mono".
	Mode string `yaml:"mode" mapstructure:"mode"`
}

// LogConfig controls the diagnostic log. The dashboard owns the terminal,
// so logs only ever go to a file.
type LogConfig struct {
	// File is the log path. Empty disables logging.
	File string `yaml:"file" mapstructure:"file"`

	// Debug enables debug-level messages (including degraded samples).
	Debug bool `yaml:"debug" mapstructure:"debug"`
}

// Metric source names.
const (
	SourceAuto     = "auto"
	SourceSysinfo  = "sysinfo"
	SourceProcfs   = "procfs"
	SourceGopsutil = "gopsutil"
)

// Rendering mode names.
const (
	ModeNormal    = "normal"
	Mode256       = "256"
	ModeTrueColor = "truecolor"
	ModeMono      = "mono"
)

// DefaultConfig returns a Config matching the built-in dashboard constants.
func DefaultConfig() *Config {
	return &Config{
		Dashboard: DashboardConfig{
			Interval:    250 * time.Millisecond,
			GraphWidth:  50,
			GraphHeight: 10,
			Left:        10,
		},
		Metrics: MetricsConfig{
			Source: SourceAuto,
		},
		Output: OutputConfig{
			Mode: Mode256,
		},
		Log: LogConfig{
			File:  "",
			Debug: false,
		},
	}
}
