package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/termviz/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".termviz.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/termviz"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. TERMVIZ_GRAPH_WIDTH=60.
	EnvPrefix = "TERMVIZ"
)

// Load reads config from the specified path. An empty path yields the
// defaults with environment overrides applied.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Config file not found",
					"Create "+ConfigFileName+" or specify one with --config")
			}
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .termviz.yaml in current directory
// 3. .termviz.yaml in parent directories (stops at git root or home)
// 4. ~/.config/termviz/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	// 1. Explicit path takes precedence
	if explicit != "" {
		explicit = ExpandTilde(explicit)
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	// 2. Current directory
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	// 3. Walk up to parent directories
	home, _ := os.UserHomeDir()
	dir := cwd
	for !isGitRoot(dir) {
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		if home != "" && parent == home {
			// Don't go above home directory
			break
		}
		dir = parent

		configPath := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	// 4. Global config
	if home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault finds and loads the config, falling back to defaults when
// no file exists.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		where := "your config"
		if path != "" {
			where = path
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+where)
	}

	if cfg.Graph.File != "" {
		cfg.Graph.File = ExpandTilde(cfg.Graph.File)
		if !filepath.IsAbs(cfg.Graph.File) && path != "" {
			cfg.Graph.File = filepath.Join(configDir(path), cfg.Graph.File)
		}
	}

	return cfg, nil
}

// setDefaults registers every key so environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("version", d.Version)

	v.SetDefault("dashboard.history", d.Dashboard.History)
	v.SetDefault("dashboard.column_width", d.Dashboard.ColumnWidth)
	v.SetDefault("dashboard.gap", d.Dashboard.Gap)
	v.SetDefault("dashboard.min_height", d.Dashboard.MinHeight)
	v.SetDefault("dashboard.interval", d.Dashboard.Interval)
	v.SetDefault("dashboard.source", d.Dashboard.Source)
	v.SetDefault("dashboard.entities", d.Dashboard.Entities)
	v.SetDefault("dashboard.seed", d.Dashboard.Seed)

	v.SetDefault("listen.addr", d.Listen.Addr)
	v.SetDefault("listen.rate", d.Listen.Rate)
	v.SetDefault("listen.burst", d.Listen.Burst)
	v.SetDefault("listen.max_entities", d.Listen.MaxEntities)

	v.SetDefault("graph.width", d.Graph.Width)
	v.SetDefault("graph.height", d.Graph.Height)
	v.SetDefault("graph.interval", d.Graph.Interval)
	v.SetDefault("graph.file", d.Graph.File)

	v.SetDefault("status.interval", d.Status.Interval)
	v.SetDefault("status.mode", d.Status.Mode)
	v.SetDefault("status.timeout", d.Status.Timeout)

	v.SetDefault("output.color", d.Output.Color)
}

// configDir returns the directory containing the config file.
func configDir(configPath string) string {
	if configPath == "" {
		cwd, _ := os.Getwd()
		return cwd
	}
	return filepath.Dir(configPath)
}

// isGitRoot checks if a directory is a git repository root.
func isGitRoot(dir string) bool {
	gitPath := filepath.Join(dir, ".git")
	info, err := os.Stat(gitPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}
