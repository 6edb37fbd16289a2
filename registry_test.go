// FILE: pkdgrav/simconfig/registry_test.go
package simconfig

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRegistry returns a small registry shaped like the simulation's own:
// two toggles, scalar flags, a repeatable list and an exclusion pair.
func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	r := NewRegistry()
	require.NoError(t, r.RegisterGroup("Periodic",
		Toggle("bPeriodic", "p", false, "periodic/non-periodic"),
		Float("dPeriod", "L", 1.0, "periodic box length"),
		Toggle("bEwald", "ewald", true, "enable Ewald periodic boundaries"),
		Int("nReplicas", "nrep", nil, "number of periodic replicas"),
	))
	require.NoError(t, r.RegisterGroup("Output",
		String("achOutName", "o", "pkdgrav3", "output name"),
		Int("nSteps", "n", 0, "number of timesteps"),
		IntList("lstOrbits", "orbit", "particle ID to track"),
	))
	require.NoError(t, r.RegisterGroup("Cosmology",
		Float("dSigma8", "S8", nil, "sigma8"),
		Float("dNormalization", "As", nil, "amplitude of the primordial spectrum"),
	))
	require.NoError(t, r.Exclusive("dSigma8", "dNormalization"))
	require.NoError(t, r.Register(Bool("bVerbose", "verbose", false, "chatty output")))
	return r
}

func TestRegistryRegister(t *testing.T) {
	t.Run("DuplicateKey", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(Float("dPeriod", "L", 1.0, "")))

		err := r.Register(Float("dPeriod", "box", 2.0, ""))
		require.Error(t, err)

		var dup *DuplicateKeyError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, "dPeriod", dup.Key)
		assert.ErrorIs(t, err, ErrDuplicateKey)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("DuplicateSurfaceForm", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(Float("dPeriod", "L", 1.0, "")))

		err := r.Register(Float("dLength", "L", 2.0, ""))
		var dup *DuplicateSurfaceFormError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, "-L", dup.Token)
		assert.Equal(t, "dLength", dup.Key)
		assert.Equal(t, "dPeriod", dup.Existing)
		assert.ErrorIs(t, err, ErrDuplicateSurfaceForm)
		assert.False(t, r.Has("dLength"))
	})

	t.Run("ToggleFalseFormCollidesWithFlag", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(Int("nPart", "p", 0, "")))

		err := r.Register(Toggle("bPeriodic", "p", false, ""))
		assert.ErrorIs(t, err, ErrDuplicateSurfaceForm)

		// The failed registration leaves no partial bindings behind
		_, _, ok := r.ResolveSurfaceForm("+p")
		assert.False(t, ok)
	})

	t.Run("InvalidDescriptors", func(t *testing.T) {
		r := NewRegistry()

		tests := []struct {
			name string
			d    Descriptor
		}{
			{"EmptyKey", Float("", "x", 1.0, "")},
			{"KeyWithDot", Float("a.b", "x", 1.0, "")},
			{"NoForms", Descriptor{Key: "dX", Type: TypeFloat}},
			{"BadToken", Descriptor{Key: "dX", Type: TypeFloat, Forms: []SurfaceForm{{Token: "x"}}}},
			{"NonBoolToggle", Descriptor{Key: "nX", Type: TypeInt, Forms: []SurfaceForm{
				{Token: "+x", Polarity: PolarityTrue}, {Token: "-x", Polarity: PolarityFalse},
			}}},
			{"HalfToggle", Descriptor{Key: "bX", Type: TypeBool, Forms: []SurfaceForm{
				{Token: "+x", Polarity: PolarityTrue},
			}}},
			{"BadDefault", Int("nX", "x", "many", "")},
			{"FractionalIntDefault", Int("nX", "x", 2.5, "")},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := r.Register(tt.d)
				assert.ErrorIs(t, err, ErrInvalidDescriptor)
			})
		}
		assert.Zero(t, r.Len())
	})

	t.Run("DefaultsNormalized", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(Int("nSteps", "n", 10, "")))
		require.NoError(t, r.Register(Float("dEta", "eta", 1, "")))

		d, ok := r.Lookup("nSteps")
		require.True(t, ok)
		assert.Equal(t, int64(10), d.Default)

		d, _ = r.Lookup("dEta")
		assert.Equal(t, float64(1), d.Default)
	})

	t.Run("Sealed", func(t *testing.T) {
		r := newTestRegistry(t)
		_, _, err := r.Parse(nil)
		require.NoError(t, err)
		assert.True(t, r.Sealed())

		err = r.Register(Float("dLate", "late", 1.0, ""))
		assert.ErrorIs(t, err, ErrRegistrySealed)
		assert.ErrorIs(t, r.Exclusive("dPeriod", "nSteps"), ErrRegistrySealed)
	})

	t.Run("MustRegisterPanics", func(t *testing.T) {
		r := NewRegistry()
		r.MustRegister(Float("dPeriod", "L", 1.0, ""))
		assert.Panics(t, func() {
			r.MustRegister(Float("dPeriod", "L", 1.0, ""))
		})
	})
}

func TestResolveSurfaceForm(t *testing.T) {
	r := newTestRegistry(t)

	tests := []struct {
		token string
		key   string
		pol   Polarity
		ok    bool
	}{
		{"+p", "bPeriodic", PolarityTrue, true},
		{"-p", "bPeriodic", PolarityFalse, true},
		{"-L", "dPeriod", PolarityNone, true},
		{"-orbit", "lstOrbits", PolarityNone, true},
		{"+L", "", PolarityNone, false},
		{"p", "", PolarityNone, false},
		{"--p", "", PolarityNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			key, pol, ok := r.ResolveSurfaceForm(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.pol, pol)
		})
	}

	v, ok := PolarityTrue.Value()
	assert.True(t, v)
	assert.True(t, ok)
	_, ok = PolarityNone.Value()
	assert.False(t, ok)
}

func TestRegistryIntrospection(t *testing.T) {
	r := newTestRegistry(t)

	t.Run("OrderAndGroups", func(t *testing.T) {
		keys := r.AllKeys()
		require.Len(t, keys, 10)
		assert.Equal(t, "bPeriodic", keys[0])
		assert.Equal(t, "bVerbose", keys[len(keys)-1])
		assert.Equal(t, []string{"Periodic", "Output", "Cosmology"}, r.Groups())
	})

	t.Run("Exclusive", func(t *testing.T) {
		d, ok := r.Lookup("dSigma8")
		require.True(t, ok)
		assert.Equal(t, []string{"dNormalization"}, d.ExclusiveWith)

		d, _ = r.Lookup("dNormalization")
		assert.Equal(t, []string{"dSigma8"}, d.ExclusiveWith)

		assert.ErrorIs(t, NewRegistry().Exclusive("a"), ErrInvalidDescriptor)
		r2 := NewRegistry()
		r2.MustRegister(Float("dA", "a", nil, ""))
		assert.ErrorIs(t, r2.Exclusive("dA", "dMissing"), ErrInvalidDescriptor)
	})

	t.Run("LookupReturnsCopy", func(t *testing.T) {
		d, _ := r.Lookup("bPeriodic")
		d.Forms[0].Token = "+mutated"
		d.Default = true

		again, _ := r.Lookup("bPeriodic")
		assert.Equal(t, "+p", again.Forms[0].Token)
		assert.Equal(t, false, again.Default)
	})

	t.Run("DescriptorHelpers", func(t *testing.T) {
		d, _ := r.Lookup("bPeriodic")
		assert.True(t, d.Toggle())
		assert.False(t, d.Repeatable())
		assert.Equal(t, "+p", d.Flag())

		d, _ = r.Lookup("lstOrbits")
		assert.False(t, d.Toggle())
		assert.True(t, d.Repeatable())
		assert.Equal(t, "-orbit", d.Flag())
		assert.Nil(t, d.Default)

		d, _ = r.Lookup("bVerbose")
		assert.False(t, d.Toggle(), "explicit-value booleans are ordinary flags")
	})
}
