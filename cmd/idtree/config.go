package main

import (
	"github.com/BurntSushi/toml"

	"github.com/phroun/idtree"
)

// config is the idtree command configuration.
type config struct {
	// Tree holds builder settings for every tree the commands create. It is
	// decoded by idtree.DecodeOptions, so keys follow the library's names.
	Tree map[string]any `toml:"tree"`
	// Log controls where and how much the commands log.
	Log logConfig `toml:"log"`
}

type logConfig struct {
	Level string `toml:"level"`
	// File switches logging from stderr to a rotated file.
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

func defaultConfig() *config {
	return &config{
		Log: logConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// loadConfig reads the config file at path over the defaults. An empty path
// yields the defaults.
func loadConfig(path string) (*config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	if _, err := toml.DecodeFile(path, c); err != nil {
		return c, err
	}
	return c, nil
}

// treeOptions decodes the [tree] table.
func (c *config) treeOptions() (idtree.Options[string], error) {
	return idtree.DecodeOptions[string](c.Tree)
}
