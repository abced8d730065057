// Package config loads muxcfg settings from defaults, an optional
// settings.yaml in the muxcfg config directory, and MUXCFG_* environment
// variables (in increasing precedence).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// AppDirName is the directory under the user config dir that holds
	// settings, snapshots, and the log file.
	AppDirName = "muxcfg"

	settingsFile = "settings.yaml"
	logFile      = "muxcfg.log"
)

// Config holds all the tunables of the tool.
type Config struct {
	SnapshotsDir string `mapstructure:"snapshots_dir" yaml:"snapshots_dir"`
	LiveConfig   string `mapstructure:"live_config" yaml:"live_config"`
	TmuxBin      string `mapstructure:"tmux_bin" yaml:"tmux_bin"`
	Debug        bool   `mapstructure:"debug" yaml:"debug"`
}

// Dir returns the muxcfg config directory, creating nothing.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}

// LogPath returns where the TUI log file lives.
func LogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, logFile), nil
}

func defaults() (map[string]any, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate home directory: %w", err)
	}

	return map[string]any{
		"snapshots_dir": filepath.Join(dir, "snapshots"),
		"live_config":   filepath.Join(home, ".tmux.conf"),
		"tmux_bin":      "tmux",
		"debug":         false,
	}, nil
}

// Load reads the effective configuration. A missing settings.yaml is fine;
// defaults and environment variables still apply.
func Load() (*Config, error) {
	v := viper.New()

	defs, err := defaults()
	if err != nil {
		return nil, err
	}
	for key, val := range defs {
		v.SetDefault(key, val)
	}

	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	v.SetConfigName(strings.TrimSuffix(settingsFile, ".yaml"))
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("MUXCFG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	return &cfg, nil
}

// WriteDefault materializes settings.yaml with the default values so users
// have something to edit. An existing file is left alone.
func WriteDefault() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, settingsFile)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	defs, err := defaults()
	if err != nil {
		return "", err
	}
	cfg := Config{
		SnapshotsDir: defs["snapshots_dir"].(string),
		LiveConfig:   defs["live_config"].(string),
		TmuxBin:      defs["tmux_bin"].(string),
	}

	content, err := yaml.Marshal(&cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal default settings: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}
