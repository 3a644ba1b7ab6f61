// File: discovery.go
// Title: Configuration File Discovery
// Description: Locates configuration files in a list of directories by base
//              name and extension.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of discovery and env loading
// - 2025-03-02 v0.2.0: Discovery returns the path; callers pick the loader

package config

import (
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/argv/foundation/core/error"
)

// DiscoveryOptions defines where configuration files are searched
type DiscoveryOptions struct {
	Paths      []string // Directories to search, in order
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try, in order
}

// DefaultDiscoveryOptions returns the search locations for argv profiles:
// the working directory, then the user config directory.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "argv"))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{".argv", "argv", "profile"},
		Extensions: []string{".toml", ".yaml", ".yml", ".hcl"},
	}
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}

// FindConfigFile returns the first existing regular file among the candidates
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}

	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}
