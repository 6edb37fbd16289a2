// FILE: pkdgrav/simconfig/cmd/pkdparams/main.go
//
// pkdparams resolves the N-body code's parameters from the command line, the
// environment and an optional parameter file, then prints the result.
//
// Usage:
//
//	pkdparams [parameters...] [run.toml|run.yaml|run.json|run.hcl] [--doc] [--provenance] [--strict] [--log-level=debug]
//
// Host options must use the --name=value form so their values are not taken
// for the positional parameter file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	sc "github.com/pkdgrav/simconfig"
	"github.com/pkdgrav/simconfig/pkdgrav"
)

// hostOptions are the options left for the second parsing stage.
type hostOptions struct {
	doc        bool
	provenance bool
	strict     bool
	logLevel   string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	registry, err := pkdgrav.NewRegistry()
	if err != nil {
		fmt.Fprintf(stderr, "internal error: %v\n", err)
		return 1
	}

	// First stage: simulation parameters only. Host options pass through.
	cfg, rest, err := registry.Parse(args)
	if err != nil {
		reportError(stderr, err)
		return 2
	}
	script, remaining := sc.SplitScript(rest)

	// Second stage: host options from the tokens the registry did not claim.
	opts, err := parseHostOptions(remaining, stderr)
	if err != nil {
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: parseLevel(opts.logLevel)}))

	if opts.doc {
		if err := registry.WriteDocument(stdout); err != nil {
			logger.Error("Failed to write parameter document", "error", err)
			return 1
		}
		return 0
	}

	cfg.SetLogger(logger)
	mergeOpts := sc.MergeOptions{Strict: opts.strict}

	env, err := sc.EnvOverrides(registry, pkdgrav.EnvPrefix, nil)
	if err != nil {
		logger.Error("Failed to read environment", "error", err)
		return 1
	}
	mergeOpts.Source = sc.SourceEnv
	if err := cfg.MergeWithOptions(env, mergeOpts); err != nil {
		reportError(stderr, err)
		return 2
	}

	if script != "" {
		if !sc.IsParameterFile(script) {
			logger.Info("Script is not a parameter file, leaving it to the caller", "script", script)
		} else {
			overrides, err := sc.LoadOverrides(script, sc.FormatAuto)
			if err != nil {
				logger.Error("Failed to load parameter file", "path", script, "error", err)
				return 1
			}
			overrides, err = sc.ResolveSections(registry, overrides)
			if err != nil {
				reportError(stderr, err)
				return 2
			}
			mergeOpts.Source = sc.SourceFile
			if err := cfg.MergeWithOptions(overrides, mergeOpts); err != nil {
				reportError(stderr, err)
				return 2
			}
			logger.Debug("Loaded parameter file", "path", script, "keys", len(overrides))
		}
	}

	if opts.provenance {
		fmt.Fprint(stdout, cfg.Debug())
		return 0
	}
	if err := cfg.Dump(stdout); err != nil {
		logger.Error("Failed to print parameters", "error", err)
		return 1
	}
	return 0
}

func parseHostOptions(args []string, stderr io.Writer) (hostOptions, error) {
	var opts hostOptions
	fs := flag.NewFlagSet("pkdparams", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.doc, "doc", false, "print the parameter document as TOML and exit")
	fs.BoolVar(&opts.provenance, "provenance", false, "print every parameter with its source")
	fs.BoolVar(&opts.strict, "strict", false, "reject parameter file keys that are not parameters")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		fmt.Fprintln(stderr, err)
		return opts, err
	}
	return opts, nil
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// reportError prints resolution errors with the offending key or token.
func reportError(w io.Writer, err error) {
	var (
		invalid  *sc.InvalidValueError
		conflict *sc.ConflictingParametersError
		unknown  *sc.UnknownOverrideError
	)
	switch {
	case errors.As(err, &invalid):
		fmt.Fprintf(w, "error: %v\n", invalid)
	case errors.As(err, &conflict):
		fmt.Fprintf(w, "error: %s and %s are mutually exclusive\n", conflict.First, conflict.Second)
	case errors.As(err, &unknown):
		fmt.Fprintf(w, "error: not parameters: %s\n", strings.Join(unknown.Keys, ", "))
	default:
		fmt.Fprintf(w, "error: %v\n", err)
	}
}
