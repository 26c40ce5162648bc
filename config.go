package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/log"
	"gopkg.in/yaml.v3"

	"lispy/lisp"
)

const (
	configFile  = ".lispy.yaml"
	historyFile = ".lispy_history"
)

// Config is read from ~/.lispy.yaml, flags override it.
type Config struct {
	Prompt      string   `yaml:"prompt"`
	Banner      string   `yaml:"banner"`
	HistoryFile string   `yaml:"history_file"`
	MaxDepth    int      `yaml:"max_depth"`
	LogLevel    string   `yaml:"log_level"`
	Prelude     []string `yaml:"prelude"` // files loaded before anything else
}

func DefaultConfig() Config {
	cfg := Config{
		Prompt:   "lispy> ",
		Banner:   "Lispy Version 0.0.1\nPress ctrl+c to cancel, ctrl+d or exit to leave\n",
		MaxDepth: lisp.DefaultMaxDepth,
		LogLevel: "info",
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, historyFile)
	}
	return cfg
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configFile)
}

// LoadConfig decodes path over the defaults. a missing file is only
// an error when the path was asked for explicitly.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.MaxDepth < 0 {
		return cfg, fmt.Errorf("config %s: max_depth must not be negative, got %d", path, cfg.MaxDepth)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	log.LogVf("config: loaded %s", path)
	return cfg, nil
}

func parseLevel(s string) (log.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.Debug, nil
	case "verbose":
		return log.Verbose, nil
	case "", "info":
		return log.Info, nil
	case "warning", "warn":
		return log.Warning, nil
	case "error":
		return log.Error, nil
	}
	return log.Info, fmt.Errorf("unknown log level %q", s)
}
