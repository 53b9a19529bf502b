package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/graphtop/internal/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// GlobalConfigDir is the directory for the config file, relative to home.
	GlobalConfigDir = ".config/graphtop"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides (GRAPHTOP_DASHBOARD_INTERVAL).
	EnvPrefix = "GRAPHTOP"
	// EnvConfigPath names an explicit config file.
	EnvConfigPath = "GRAPHTOP_CONFIG"
)

// Load reads config from the specified path, merged over defaults.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'graphtop init' to create a config file")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// GlobalPath returns ~/.config/graphtop/config.yaml.
func GlobalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine home directory",
			"Set $HOME, or point "+EnvConfigPath+" at a config file")
	}
	return filepath.Join(home, GlobalConfigDir, GlobalConfigFile), nil
}

// Find locates the config file using the search order:
// 1. Explicit path (from $GRAPHTOP_CONFIG)
// 2. ~/.config/graphtop/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		explicit = ExpandTilde(explicit)
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path in "+EnvConfigPath+" is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults
// (with environment overrides applied) if there is no config file.
func LoadOrDefault() (*Config, error) {
	path, err := Find(os.Getenv(EnvConfigPath))
	if err != nil {
		return nil, err
	}

	if path == "" {
		return parseConfig(newViper(), "")
	}

	return Load(path)
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't generate the config",
			"This is a bug - please report it")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't create config directory "+filepath.Dir(path),
			"Check directory permissions")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't write "+path,
			"Check file permissions")
	}

	return nil
}

// newViper returns a viper instance with defaults and env overrides set up.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// parseConfig converts viper config to our Config struct.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		where := "the environment"
		if path != "" {
			where = path
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the values in "+where)
	}
	cfg.Log.File = ExpandTilde(cfg.Log.File)

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it and
// Unmarshal sees it even when the file omits it.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("dashboard.interval", d.Dashboard.Interval.String())
	v.SetDefault("dashboard.graph_width", d.Dashboard.GraphWidth)
	v.SetDefault("dashboard.graph_height", d.Dashboard.GraphHeight)
	v.SetDefault("dashboard.left", d.Dashboard.Left)
	v.SetDefault("metrics.source", d.Metrics.Source)
	v.SetDefault("output.mode", d.Output.Mode)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.debug", d.Log.Debug)
}
