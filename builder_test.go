// FILE: pkdgrav/simconfig/builder_test.go
package simconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilder tests the full resolution cycle
func TestBuilder(t *testing.T) {
	t.Run("Precedence", func(t *testing.T) {
		tmpDir := t.TempDir()
		paramFile := filepath.Join(tmpDir, "run.toml")
		require.NoError(t, os.WriteFile(paramFile, []byte(`
dPeriod = 1.5
nSteps = 10
achOutName = "file"
nReplicas = 3
`), 0644))

		t.Setenv("BTEST_NSTEPS", "20")
		t.Setenv("BTEST_ACHOUTNAME", "env")

		res, err := NewBuilder(newTestRegistry(t)).
			WithArgs([]string{"-o", "cli"}).
			WithEnvPrefix("BTEST_").
			WithOverrides(map[string]any{"nSteps": 30, "dPeriod": 2.5}).
			WithOverrideFile(paramFile).
			Build()
		require.NoError(t, err)
		cfg := res.Config

		s, _ := cfg.String("achOutName")
		assert.Equal(t, "cli", s)
		assert.Equal(t, SourceCLI, cfg.Source("achOutName"))

		n, _ := cfg.Int64("nSteps")
		assert.Equal(t, int64(20), n)
		assert.Equal(t, SourceEnv, cfg.Source("nSteps"))

		f, _ := cfg.Float64("dPeriod")
		assert.Equal(t, 2.5, f)
		assert.Equal(t, SourceOverride, cfg.Source("dPeriod"))

		n, _ = cfg.Int64("nReplicas")
		assert.Equal(t, int64(3), n)
		assert.Equal(t, SourceFile, cfg.Source("nReplicas"))

		assert.Equal(t, SourceDefault, cfg.Source("bPeriodic"))
	})

	t.Run("ScriptAsParameterFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		explicit := filepath.Join(tmpDir, "site.yaml")
		script := filepath.Join(tmpDir, "cosmo.hcl")
		require.NoError(t, os.WriteFile(explicit, []byte("nSteps: 5\n"), 0644))
		require.NoError(t, os.WriteFile(script, []byte("nSteps = 7\ndPeriod = 2 * 50\n"), 0644))

		res, err := NewBuilder(newTestRegistry(t)).
			WithArgs([]string{"+p", script, "--doc"}).
			WithOverrideFile(explicit).
			Build()
		require.NoError(t, err)

		assert.Equal(t, script, res.Script)
		assert.Equal(t, []string{"--doc"}, res.Remaining)

		n, _ := res.Config.Int64("nSteps")
		assert.Equal(t, int64(5), n, "explicit files rank above the script")
		f, _ := res.Config.Float64("dPeriod")
		assert.Equal(t, 100.0, f)
	})

	t.Run("ScriptNotLoaded", func(t *testing.T) {
		res, err := NewBuilder(newTestRegistry(t)).
			WithArgs([]string{"analysis.py", "-L", "2"}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "analysis.py", res.Script)
		assert.Empty(t, res.Remaining)

		tmpDir := t.TempDir()
		script := filepath.Join(tmpDir, "cosmo.toml")
		require.NoError(t, os.WriteFile(script, []byte("nSteps = 7\n"), 0644))

		res, err = NewBuilder(newTestRegistry(t)).
			WithArgs([]string{script}).
			WithScriptFile(false).
			Build()
		require.NoError(t, err)
		assert.False(t, res.Config.Specified("nSteps"))
	})

	t.Run("SectionedFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		paramFile := filepath.Join(tmpDir, "run.toml")
		require.NoError(t, os.WriteFile(paramFile, []byte(`
[Cosmology]
dSigma8 = 0.81

[Periodic]
bPeriodic = true
`), 0644))

		res, err := NewBuilder(newTestRegistry(t)).
			WithArgs(nil).
			WithOverrideFile(paramFile).
			Build()
		require.NoError(t, err)

		f, _ := res.Config.Float64("dSigma8")
		assert.Equal(t, 0.81, f)
		b, _ := res.Config.Bool("bPeriodic")
		assert.True(t, b)
	})

	t.Run("AmbiguousSectionsRejected", func(t *testing.T) {
		paramFile := filepath.Join(t.TempDir(), "run.toml")
		require.NoError(t, os.WriteFile(paramFile, []byte(`
[Periodic]
dPeriod = 2.0

[Box]
dPeriod = 3.0
`), 0644))

		_, err := NewBuilder(newTestRegistry(t)).
			WithArgs(nil).
			WithOverrideFile(paramFile).
			Build()
		assert.ErrorIs(t, err, ErrAmbiguousOverride)
		assert.Contains(t, err.Error(), paramFile)
	})

	t.Run("EnvValueDiscardedUnderCommandLine", func(t *testing.T) {
		t.Setenv("BTEST_DPERIOD", "wide")

		res, err := NewBuilder(newTestRegistry(t)).
			WithArgs([]string{"-L", "2.5"}).
			WithEnvPrefix("BTEST_").
			Build()
		require.NoError(t, err)
		f, _ := res.Config.Float64("dPeriod")
		assert.Equal(t, 2.5, f)
		assert.Equal(t, SourceCLI, res.Config.Source("dPeriod"))
	})

	t.Run("StrictOverrides", func(t *testing.T) {
		_, err := NewBuilder(newTestRegistry(t)).
			WithArgs(nil).
			WithOverrides(map[string]any{"nStepz": 1}).
			WithStrictOverrides().
			Build()
		assert.ErrorIs(t, err, ErrUnknownOverride)
	})

	t.Run("ParseErrorAborts", func(t *testing.T) {
		res, err := NewBuilder(newTestRegistry(t)).
			WithArgs([]string{"-S8", "0.8", "-As", "2e-9"}).
			Build()
		assert.Nil(t, res)
		var conflict *ConflictingParametersError
		assert.True(t, errors.As(err, &conflict))
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := NewBuilder(newTestRegistry(t)).
			WithArgs(nil).
			WithOverrideFile(filepath.Join(t.TempDir(), "missing.toml")).
			Build()
		assert.Error(t, err)
	})

	t.Run("NilRegistry", func(t *testing.T) {
		_, err := NewBuilder(nil).Build()
		assert.Error(t, err)
	})
}

// TestBuilderValidation tests validators run after every layer
func TestBuilderValidation(t *testing.T) {
	t.Run("ValidatorSeesFinalValues", func(t *testing.T) {
		var seen float64
		_, err := NewBuilder(newTestRegistry(t)).
			WithArgs(nil).
			WithOverrides(map[string]any{"dPeriod": 8.0}).
			WithValidator(func(c *Configuration) error {
				seen, _ = c.Float64("dPeriod")
				return nil
			}).
			Build()
		require.NoError(t, err)
		assert.Equal(t, 8.0, seen)
	})

	t.Run("ValidatorFailure", func(t *testing.T) {
		errBadPeriod := errors.New("period must be positive")
		_, err := NewBuilder(newTestRegistry(t)).
			WithArgs([]string{"-L", "-1"}).
			WithValidator(func(c *Configuration) error {
				if f, _ := c.Float64("dPeriod"); f <= 0 {
					return errBadPeriod
				}
				return nil
			}).
			Build()
		assert.ErrorIs(t, err, errBadPeriod)
	})

	t.Run("MustBuildPanics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBuilder(newTestRegistry(t)).WithArgs([]string{"-n"}).MustBuild()
		})
	})
}

func TestBuildAndScan(t *testing.T) {
	type periodic struct {
		Periodic bool    `param:"bPeriodic"`
		Period   float64 `param:"dPeriod"`
		Orbits   []int   `param:"lstOrbits"`
	}

	var target periodic
	res, err := NewBuilder(newTestRegistry(t)).
		WithArgs([]string{"+p", "-orbit", "2", "-orbit", "4"}).
		WithOverrides(map[string]any{"dPeriod": 50}).
		BuildAndScan(&target)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.True(t, target.Periodic)
	assert.Equal(t, 50.0, target.Period)
	assert.Equal(t, []int{2, 4}, target.Orbits)
}

func TestFileDiscovery(t *testing.T) {
	t.Run("SearchPaths", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "simtest.yaml"), []byte("nSteps: 11\n"), 0644))

		opts := DefaultDiscoveryOptions("simtest")
		opts.Paths = []string{dir}
		opts.UseCurrentDir = false
		opts.UseXDG = false

		res, err := NewBuilder(newTestRegistry(t)).
			WithArgs(nil).
			WithOverrides(map[string]any{"dPeriod": 3.0}).
			WithFileDiscovery(opts).
			Build()
		require.NoError(t, err)

		n, _ := res.Config.Int64("nSteps")
		assert.Equal(t, int64(11), n)
		assert.Equal(t, SourceFile, res.Config.Source("nSteps"))
	})

	t.Run("EnvVarPath", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.toml")
		require.NoError(t, os.WriteFile(path, []byte("nSteps = 12\n"), 0644))
		t.Setenv("SIMTEST_PARAMS", path)

		opts := DefaultDiscoveryOptions("simtest")
		assert.Equal(t, "SIMTEST_PARAMS", opts.EnvVar)
		assert.Equal(t, path, discoverFile(opts))
	})

	t.Run("XDG", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		require.NoError(t, os.MkdirAll(filepath.Join(home, "simtest"), 0755))
		path := filepath.Join(home, "simtest", "simtest.toml")
		require.NoError(t, os.WriteFile(path, []byte("nSteps = 13\n"), 0644))

		opts := DefaultDiscoveryOptions("simtest")
		opts.EnvVar = ""
		opts.UseCurrentDir = false
		assert.Equal(t, path, discoverFile(opts))
	})

	t.Run("NothingFound", func(t *testing.T) {
		opts := FileDiscoveryOptions{Name: "simtest", Extensions: []string{".toml"}, Paths: []string{t.TempDir()}}
		assert.Empty(t, discoverFile(opts))
	})
}
