// FILE: pkdgrav/simconfig/pkdgrav/registry.go
package pkdgrav

import (
	"fmt"

	sc "github.com/pkdgrav/simconfig"
)

// EnvPrefix is the prefix of environment variables that supply parameters,
// e.g. PKDGRAV_DOMEGA0.
const EnvPrefix = "PKDGRAV_"

type group struct {
	label  string
	params []sc.Descriptor
}

// groups lists the parameter groups in documentation order.
var groups = []group{
	{"Gravity, Domains, Trees", gravity},
	{"Analysis", analysis},
	{"I/O Parameters", inputOutput},
	{"Time Stepping", timeStepping},
	{"Force Accuracy", forceAccuracy},
	{"Periodic Boundaries", periodic},
	{"Cosmology", cosmology},
	{"Initial Conditions", initialConditions},
	{"Memory Model and Control", memory},
	{"Gas", gas},
	{"Cooling", cooling},
	{"Star formation", starFormation},
	{"Supernova feedback", supernovaFeedback},
	{"Blackholes", blackholes},
	{"Chemistry", chemistry},
	{"Stellar evolution", stellarEvolution},
	{"Debugging/Testing/Diagnostics", debugging},
}

// exclusive lists sets of keys of which at most one may be given on the
// command line.
var exclusive = [][]string{
	{"dSigma8", "dNormalization"},
}

// Register declares every simulation parameter in r.
func Register(r *sc.Registry) error {
	for _, g := range groups {
		if err := r.RegisterGroup(g.label, g.params...); err != nil {
			return err
		}
	}
	for _, keys := range exclusive {
		if err := r.Exclusive(keys...); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry holding every simulation parameter.
func NewRegistry() (*sc.Registry, error) {
	r := sc.NewRegistry()
	if err := Register(r); err != nil {
		return nil, fmt.Errorf("pkdgrav parameter declarations: %w", err)
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on error. A failure here is a
// defect in the declaration list.
func MustRegistry() *sc.Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return r
}
