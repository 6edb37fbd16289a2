// FILE: pkdgrav/simconfig/env.go
package simconfig

import (
	"fmt"
	"os"
	"strings"
)

// MaxEnvValueSize bounds a single environment value.
const MaxEnvValueSize = 1 << 20

// EnvTransformFunc converts a parameter key to an environment variable name
type EnvTransformFunc func(key string) string

// defaultEnvTransform creates the default environment variable transformer:
// prefix plus the upper-cased key ("PKDGRAV_" + "dPeriod" -> "PKDGRAV_DPERIOD").
func defaultEnvTransform(prefix string) EnvTransformFunc {
	return func(key string) string {
		env := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if prefix != "" {
			env = prefix + env
		}
		return env
	}
}

// EnvOverrides collects raw string values for every registered key that has
// a matching environment variable. A nil transform uses the default one with
// prefix. The result is meant for MergeWithOptions with SourceEnv.
func EnvOverrides(r *Registry, prefix string, transform EnvTransformFunc) (map[string]any, error) {
	if transform == nil {
		transform = defaultEnvTransform(prefix)
	}

	found := make(map[string]any)
	for _, key := range r.AllKeys() {
		envVar := transform(key)
		value, exists := os.LookupEnv(envVar)
		if !exists {
			continue
		}
		if len(value) > MaxEnvValueSize {
			return nil, fmt.Errorf("environment variable %s exceeds %d bytes", envVar, MaxEnvValueSize)
		}
		found[key] = value
	}
	return found, nil
}

// DiscoverEnv returns key -> environment variable name for every registered
// key whose variable is set.
func DiscoverEnv(r *Registry, prefix string, transform EnvTransformFunc) map[string]string {
	if transform == nil {
		transform = defaultEnvTransform(prefix)
	}

	discovered := make(map[string]string)
	for _, key := range r.AllKeys() {
		envVar := transform(key)
		if _, exists := os.LookupEnv(envVar); exists {
			discovered[key] = envVar
		}
	}
	return discovered
}
