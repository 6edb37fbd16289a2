// FILE: pkdgrav/simconfig/example/main.go
//
// A walk through one resolution cycle: command line, a parameter file, a
// script-style override set and a typed scan of the result.
package main

import (
	"fmt"
	"log"
	"os"

	sc "github.com/pkdgrav/simconfig"
	"github.com/pkdgrav/simconfig/pkdgrav"
)

const paramFilePath = "cosmo.hcl"

func main() {
	// =========================================================================
	// PART 1: A parameter file on disk, with arithmetic in HCL.
	// =========================================================================
	log.Println("---")
	log.Println("PART 1: Writing parameter file...")

	defer func() {
		os.Remove(paramFilePath)
		log.Printf("Removed %s.", paramFilePath)
	}()

	paramFile := `
dOmega0  = 0.31
dLambda  = 1 - 0.31
dPeriod  = 500
nSteps   = 64
`
	if err := os.WriteFile(paramFilePath, []byte(paramFile), 0644); err != nil {
		log.Fatalf("Failed to write parameter file: %v", err)
	}

	// =========================================================================
	// PART 2: Resolve with the builder. The command line wins over the file.
	// =========================================================================
	log.Println("---")
	log.Println("PART 2: Resolving...")

	args := []string{"+p", "-L", "250", "-orbit", "7", "-orbit", "11", paramFilePath, "--log-level=debug"}
	log.Printf("   args: %v", args)

	var periodic pkdgrav.Periodic
	res, err := sc.NewBuilder(pkdgrav.MustRegistry()).
		WithArgs(args).
		WithEnvPrefix(pkdgrav.EnvPrefix).
		WithValidator(func(c *sc.Configuration) error {
			steps, err := c.Int64("nSteps")
			if err != nil {
				return err
			}
			if steps <= 0 {
				return fmt.Errorf("nSteps must be positive, got %d", steps)
			}
			return nil
		}).
		BuildAndScan(&periodic)
	if err != nil {
		log.Fatalf("Resolution failed: %v", err)
	}
	cfg := res.Config

	log.Printf("   script: %q, left for the host: %v", res.Script, res.Remaining)
	log.Printf("   bPeriodic=%v dPeriod=%v (source %s)", periodic.Periodic, periodic.Period, cfg.Source("dPeriod"))

	// =========================================================================
	// PART 3: A script supplies its own values. Specified keys are kept.
	// =========================================================================
	log.Println("---")
	log.Println("PART 3: Script overrides...")

	script := map[string]any{
		"dPeriod":    1000.0, // already given with -L, discarded
		"dHubble0":   2.894405,
		"achOutName": "demo",
		"unrelated":  true, // not a parameter, ignored
	}
	if err := cfg.Merge(script); err != nil {
		log.Fatalf("Merge failed: %v", err)
	}

	period, _ := cfg.Float64("dPeriod")
	outName, _ := cfg.String("achOutName")
	orbits, _ := cfg.Ints("lstOrbits")
	log.Printf("   dPeriod=%v achOutName=%q lstOrbits=%v", period, outName, orbits)
	for _, key := range []string{"bPeriodic", "dOmega0", "dHubble0", "dEta"} {
		log.Printf("   %-10s specified=%-5v source=%s", key, cfg.Specified(key), cfg.Source(key))
	}
}
