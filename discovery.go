// FILE: pkdgrav/simconfig/discovery.go
package simconfig

import (
	"os"
	"path/filepath"
	"strings"
)

// FileDiscoveryOptions configures the search for a site-wide parameter file
// that supplies the lowest-precedence overrides.
type FileDiscoveryOptions struct {
	// Base name of the parameter file (without extension)
	Name string

	// Extensions to try (in order)
	Extensions []string

	// Custom search directories, searched before the defaults
	Paths []string

	// Environment variable holding an explicit path
	EnvVar string

	// Whether to search XDG config directories
	UseXDG bool

	// Whether to search the current directory
	UseCurrentDir bool
}

// DefaultDiscoveryOptions returns the usual search for <name>.{toml,yaml,yml,json,hcl}
// in the current directory and the XDG config directories. An explicit path
// may be given in <NAME>_PARAMS.
func DefaultDiscoveryOptions(name string) FileDiscoveryOptions {
	return FileDiscoveryOptions{
		Name:          name,
		Extensions:    []string{".toml", ".yaml", ".yml", ".json", ".hcl"},
		EnvVar:        strings.ToUpper(name) + "_PARAMS",
		UseXDG:        true,
		UseCurrentDir: true,
	}
}

// WithFileDiscovery searches for a parameter file when Build runs. A file
// found this way ranks below every explicit file and the script file. Not
// finding one is not an error.
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	b.discovery = &opts
	return b
}

// discoverFile returns the first matching parameter file, or "".
func discoverFile(opts FileDiscoveryOptions) string {
	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			return path
		}
	}

	var searchPaths []string
	searchPaths = append(searchPaths, opts.Paths...)

	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			searchPaths = append(searchPaths, cwd)
		}
	}

	if opts.UseXDG {
		searchPaths = append(searchPaths, xdgConfigPaths(opts.Name)...)
	}

	for _, dir := range searchPaths {
		for _, ext := range opts.Extensions {
			path := filepath.Join(dir, opts.Name+ext)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}
	return ""
}

// xdgConfigPaths returns XDG-compliant search directories for name
func xdgConfigPaths(name string) []string {
	var paths []string

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, name))
	} else if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", name))
	}

	if xdgDirs := os.Getenv("XDG_CONFIG_DIRS"); xdgDirs != "" {
		for _, dir := range filepath.SplitList(xdgDirs) {
			paths = append(paths, filepath.Join(dir, name))
		}
	} else {
		paths = append(paths, filepath.Join("/etc/xdg", name))
	}

	return paths
}
