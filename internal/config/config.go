package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	ExportDir     string `toml:"export_dir"`
	ChartWidth    int    `toml:"chart_width"`     // 0 = detect from terminal
	MaxMinuteRows int    `toml:"max_minute_rows"` // cap on minute chart rows
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ExportDir:     filepath.Join(home, "Downloads"),
		ChartWidth:    0,
		MaxMinuteRows: 30,
	}

	cfgPath := filepath.Join(home, ".config", "wastat", "config.toml")
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	cfg.ExportDir = expandHome(cfg.ExportDir, home)

	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
