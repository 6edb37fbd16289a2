// FILE: pkdgrav/simconfig/builder.go
package simconfig

import (
	"fmt"
	"log/slog"
	"os"
)

// ValidatorFunc validates a fully resolved configuration.
type ValidatorFunc func(c *Configuration) error

// Result is a resolved configuration plus the command-line tokens it did not
// consume.
type Result struct {
	Config *Configuration

	// Script is the positional script argument, if any.
	Script string

	// Remaining holds unrecognized tokens, in order, for the next stage.
	Remaining []string
}

// Builder provides a fluent interface for a full resolution cycle: command
// line, environment, programmatic overrides and parameter files.
//
// Layers are merged in that order and a merge never replaces a specified
// value, so precedence is CLI > env > overrides > files > defaults. Among
// files, explicit ones come first, then the script, then a discovered file.
type Builder struct {
	registry     *Registry
	args         []string
	envEnabled   bool
	envPrefix    string
	envTransform EnvTransformFunc
	overrides    []map[string]any
	files        []string
	scriptAsFile bool
	strict       bool
	discovery    *FileDiscoveryOptions
	logger       *slog.Logger
	validators   []ValidatorFunc
	err          error
}

// NewBuilder creates a builder over r reading os.Args[1:] by default.
func NewBuilder(r *Registry) *Builder {
	b := &Builder{
		registry:     r,
		args:         os.Args[1:],
		scriptAsFile: true,
		logger:       slog.New(slog.DiscardHandler),
		validators:   make([]ValidatorFunc, 0),
	}
	if r == nil {
		b.err = fmt.Errorf("builder requires a registry")
	}
	return b
}

// WithArgs sets the command-line tokens
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithEnvPrefix enables environment overrides named prefix + UPPER(key)
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.envEnabled = true
	b.envPrefix = prefix
	return b
}

// WithEnvTransform enables environment overrides with a custom name mapping
func (b *Builder) WithEnvTransform(fn EnvTransformFunc) *Builder {
	b.envEnabled = true
	b.envTransform = fn
	return b
}

// WithOverrides adds a programmatic override set. Earlier sets win over later ones.
func (b *Builder) WithOverrides(overrides map[string]any) *Builder {
	if overrides != nil {
		b.overrides = append(b.overrides, overrides)
	}
	return b
}

// WithOverrideFile adds a parameter file. Earlier files win over later ones
// and over the script file.
func (b *Builder) WithOverrideFile(path string) *Builder {
	if path != "" {
		b.files = append(b.files, path)
	}
	return b
}

// WithScriptFile controls whether a positional script with a known parameter
// file extension is loaded as the lowest-precedence override file.
func (b *Builder) WithScriptFile(enabled bool) *Builder {
	b.scriptAsFile = enabled
	return b
}

// WithStrictOverrides makes unknown override keys an error
func (b *Builder) WithStrictOverrides() *Builder {
	b.strict = true
	return b
}

// WithLogger sets the logger for the resolution cycle and the resulting configuration
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// WithValidator adds a validation function that runs at the end of the build process.
// Validators run in the order they are added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build runs the resolution cycle. Any error aborts the whole cycle.
func (b *Builder) Build() (*Result, error) {
	if b.err != nil {
		return nil, b.err
	}

	cfg, rest, err := b.registry.Parse(b.args)
	if err != nil {
		return nil, err
	}
	cfg.SetLogger(b.logger)

	script, remaining := SplitScript(rest)
	b.logger.Debug("Parsed command line",
		"tokens", len(b.args), "remaining", len(remaining), "script", script)

	if b.envEnabled {
		env, err := EnvOverrides(b.registry, b.envPrefix, b.envTransform)
		if err != nil {
			return nil, err
		}
		if err := cfg.MergeWithOptions(env, MergeOptions{Strict: b.strict, Source: SourceEnv}); err != nil {
			return nil, fmt.Errorf("environment overrides: %w", err)
		}
	}

	for _, o := range b.overrides {
		if err := cfg.MergeWithOptions(o, MergeOptions{Strict: b.strict, Source: SourceOverride}); err != nil {
			return nil, fmt.Errorf("overrides: %w", err)
		}
	}

	files := b.files
	if b.scriptAsFile && script != "" && IsParameterFile(script) {
		files = append(append([]string(nil), files...), script)
	}
	if b.discovery != nil {
		if path := discoverFile(*b.discovery); path != "" {
			b.logger.Debug("Discovered parameter file", "path", path)
			files = append(append([]string(nil), files...), path)
		}
	}
	for _, path := range files {
		overrides, err := LoadOverrides(path, FormatAuto)
		if err != nil {
			return nil, err
		}
		overrides, err = ResolveSections(b.registry, overrides)
		if err != nil {
			return nil, fmt.Errorf("parameter file '%s': %w", path, err)
		}
		if err := cfg.MergeWithOptions(overrides, MergeOptions{Strict: b.strict, Source: SourceFile}); err != nil {
			return nil, fmt.Errorf("parameter file '%s': %w", path, err)
		}
		b.logger.Debug("Loaded parameter file", "path", path, "keys", len(overrides))
	}

	for _, validator := range b.validators {
		if err := validator(cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return &Result{Config: cfg, Script: script, Remaining: remaining}, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Result {
	res, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("parameter resolution failed: %v", err))
	}
	return res
}

// BuildAndScan builds and decodes the resolved parameters into target
func (b *Builder) BuildAndScan(target any) (*Result, error) {
	res, err := b.Build()
	if err != nil {
		return nil, err
	}
	if err := res.Config.Scan(target); err != nil {
		return nil, fmt.Errorf("failed to scan resolved parameters into target: %w", err)
	}
	return res, nil
}

// Quick resolves os.Args[1:] against r with environment overrides under
// envPrefix and the positional script loaded as a parameter file.
func Quick(r *Registry, envPrefix string) (*Result, error) {
	return NewBuilder(r).WithEnvPrefix(envPrefix).Build()
}

// MustQuick is like Quick but panics on error
func MustQuick(r *Registry, envPrefix string) *Result {
	res, err := Quick(r, envPrefix)
	if err != nil {
		panic(fmt.Sprintf("parameter resolution failed: %v", err))
	}
	return res
}
