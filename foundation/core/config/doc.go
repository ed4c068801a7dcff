// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration with
//              environment overrides, validation and hot reloading.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: fsnotify watching, discovery with defaults

/*
Package config provides configuration management for textkit tools.

Package: config
Title: Core Configuration Management
Description: Loads TOML and YAML files, resolves dot-notation keys, lets
             environment variables override file values and reloads the file
             when it changes on disk.
Author: msto63
Version: v0.2.0
Created: 2025-01-25
Modified: 2026-10-19

Key Features:
  • TOML (github.com/BurntSushi/toml) and YAML (gopkg.in/yaml.v3), detected by extension
  • Dot-notation access: cfg.GetInt("align.least_blank", 4)
  • Environment overrides: prefix textkit turns align.least_blank into TEXTKIT_ALIGN_LEAST_BLANK
  • Defaults merged below file values, nested maps merged key by key
  • Validation rules with type, range and allowed values
  • Hot reloading through github.com/fsnotify/fsnotify with OnChange handlers
  • Errors carry foundation error codes (NOT_FOUND, INVALID_CONFIG, IO_ERROR)

Basic Usage:

	cfg, err := config.Discover(config.DiscoveryOptions{
		Paths:     []string{"."},
		Filenames: []string{"textkit"},
		EnvPrefix: "textkit",
		Defaults: map[string]interface{}{
			"align": map[string]interface{}{"least_blank": 4},
		},
	})
	if err != nil {
		return err
	}
	leastBlank := cfg.GetInt("align.least_blank")

Validation:

	err := cfg.Validate(config.ValidationRules{
		"align.least_blank": {Type: "int", Min: config.Bound(1)},
		"table.border":      {Type: "string", OneOf: []string{"normal", "rounded"}},
	})

Watching:

	cfg.OnChange(func(oldCfg, newCfg *config.Config) {
		log.Info("config reloaded")
	})
	if err := cfg.Watch(); err != nil {
		return err
	}
	defer cfg.StopWatching()

Handlers run on the watcher goroutine after the new data is in place. A file
that fails to parse keeps the previous values and is reported through the
default logger.
*/
package config
