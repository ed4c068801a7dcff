// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Finds a configuration file across a list of directories,
//              base names and extensions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-19 v0.2.0: User config directory, defaults for optional configs

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search, in order
	Filenames  []string               // Base filenames without extension
	Extensions []string               // File extensions to try
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Defaults applied to the loaded config
	Required   bool                   // Fail when no file is found
}

// DefaultDiscoveryOptions searches the working directory and the user
// config directory for name.toml, name.yaml and name.yml.
func DefaultDiscoveryOptions(name string) DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, name))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{name},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  name,
	}
}

// Discover loads the first configuration file found. When none exists and
// the file is not required, a config carrying only the defaults is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err == nil {
		return LoadWithOptions(path, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
			Defaults:  options.Defaults,
		})
	}

	if options.Required {
		return nil, err
	}

	return New(options.EnvPrefix, options.Defaults), nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", mdwerror.New("no configuration file found in: " + strings.Join(candidates, ", ")).
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := options.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	extensions := options.Extensions
	if len(extensions) == 0 {
		extensions = []string{".toml", ".yaml", ".yml"}
	}

	var result []string
	for _, path := range paths {
		for _, filename := range options.Filenames {
			for _, ext := range extensions {
				result = append(result, filepath.Join(path, filename+ext))
			}
		}
	}
	return result
}
