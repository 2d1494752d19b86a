// File: discovery.go
// Title: Configuration File Discovery
// Description: Locates langext configuration files in the working directory
//              and the user's config directory.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation of config file discovery

package config

import (
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/langext/core/error"
	"github.com/msto63/langext/utils/filex"
)

// EnvPrefix is the environment prefix used for configuration overrides
const EnvPrefix = "LANGEXT"

// DiscoveryOptions defines options for configuration file discovery
type DiscoveryOptions struct {
	SearchPaths []string // Directories to search, in order
	FileNames   []string // Base names without extension
	Extensions  []string // Extensions to try, in order
	EnvPrefix   string   // Environment prefix for overrides
	Required    bool     // Fail when no file is found
}

// DefaultDiscoveryOptions returns the standard search order:
// ./langext.{toml,yaml,yml} then $HOME/.config/langext/langext.{toml,yaml,yml}
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		SearchPaths: []string{".", "~/.config/langext"},
		FileNames:   []string{"langext"},
		Extensions:  []string{".toml", ".yaml", ".yml"},
		EnvPrefix:   EnvPrefix,
	}
}

// Discover finds and loads the first matching configuration file. Without a
// file, an empty configuration is returned unless options.Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, found := FindConfigFile(options)
	if !found {
		if options.Required {
			return nil, mdwerror.New("no configuration file found").
				WithCode(mdwerror.CodeNotFound).
				WithOperation("config.Discover").
				WithDetail("searchPaths", strings.Join(options.SearchPaths, ":"))
		}
		return New(options.EnvPrefix), nil
	}

	return LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
	})
}

// FindConfigFile returns the first existing candidate file
func FindConfigFile(options DiscoveryOptions) (string, bool) {
	var candidates []string
	for _, dir := range options.SearchPaths {
		dir = filex.ExpandHome(dir)
		for _, name := range options.FileNames {
			for _, ext := range options.Extensions {
				candidates = append(candidates, filepath.Join(dir, name+ext))
			}
		}
	}
	return filex.FirstFile(candidates...)
}
