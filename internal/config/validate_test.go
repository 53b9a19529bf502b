package config

import (
	"testing"
	"time"

	"github.com/rileyhilliard/graphtop/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errContains string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:        "zero interval",
			mutate:      func(c *Config) { c.Dashboard.Interval = 0 },
			wantErr:     true,
			errContains: "dashboard.interval must be positive",
		},
		{
			name:        "negative interval",
			mutate:      func(c *Config) { c.Dashboard.Interval = -time.Second },
			wantErr:     true,
			errContains: "dashboard.interval",
		},
		{
			name:        "zero width",
			mutate:      func(c *Config) { c.Dashboard.GraphWidth = 0 },
			wantErr:     true,
			errContains: "dashboard.graph_width",
		},
		{
			name:   "width of one",
			mutate: func(c *Config) { c.Dashboard.GraphWidth = 1 },
		},
		{
			name:        "height of one",
			mutate:      func(c *Config) { c.Dashboard.GraphHeight = 1 },
			wantErr:     true,
			errContains: "dashboard.graph_height",
		},
		{
			name:        "left too small for labels",
			mutate:      func(c *Config) { c.Dashboard.Left = 5 },
			wantErr:     true,
			errContains: "dashboard.left",
		},
		{
			name:   "minimum left",
			mutate: func(c *Config) { c.Dashboard.Left = MinLeft },
		},
		{
			name:        "unknown source",
			mutate:      func(c *Config) { c.Metrics.Source = "snmp" },
			wantErr:     true,
			errContains: "metrics.source 'snmp'",
		},
		{
			name:        "unknown mode",
			mutate:      func(c *Config) { c.Output.Mode = "sixel" },
			wantErr:     true,
			errContains: "output.mode 'sixel'",
		},
		{
			name:   "every mode",
			mutate: func(c *Config) { c.Output.Mode = ModeTrueColor },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	assert.NoError(t, Validate(nil))
}
