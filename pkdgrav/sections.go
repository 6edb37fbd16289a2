// FILE: pkdgrav/simconfig/pkdgrav/sections.go
package pkdgrav

// Typed views over parts of a resolved configuration, filled by
// Configuration.Scan. Pointer fields stay nil when the parameter has no value.

// Periodic holds the periodic boundary parameters.
type Periodic struct {
	Periodic bool    `param:"bPeriodic"`
	Ewald    bool    `param:"bEwald"`
	EwOrder  int     `param:"iEwOrder"`
	Replicas *int    `param:"nReplicas"`
	Period   float64 `param:"dPeriod"`
	PeriodX  float64 `param:"dxPeriod"`
	PeriodY  float64 `param:"dyPeriod"`
	PeriodZ  float64 `param:"dzPeriod"`
	EwCut    float64 `param:"dEwCut"`
	EwhCut   float64 `param:"dEwhCut"`
	Comoving bool    `param:"bComove"`
}

// Cosmology holds the background cosmology and normalization.
type Cosmology struct {
	Hubble0       float64 `param:"dHubble0"`
	Omega0        float64 `param:"dOmega0"`
	Lambda        float64 `param:"dLambda"`
	OmegaDE       float64 `param:"dOmegaDE"`
	W0            float64 `param:"w0"`
	Wa            float64 `param:"wa"`
	OmegaRad      float64 `param:"dOmegaRad"`
	OmegaB        float64 `param:"dOmegab"`
	Sigma8        float64 `param:"dSigma8"`
	Normalization float64 `param:"dNormalization"`
	Spectral      float64 `param:"dSpectral"`
	H             float64 `param:"h"`
	BoxSize       float64 `param:"dBoxSize"`
	UseClass      bool    `param:"bClass"`
	TransferFile  string  `param:"achTfFile"`
}

// Output holds file naming and output cadence.
type Output struct {
	InFile        string  `param:"achInFile"`
	OutName       string  `param:"achOutName"`
	OutPath       string  `param:"achOutPath"`
	OutInterval   int     `param:"iOutInterval"`
	CheckInterval int     `param:"iCheckInterval"`
	LogInterval   int     `param:"iLogInterval"`
	HDF5          bool    `param:"bHDF5"`
	Orbits        []int64 `param:"lstOrbits"`
}

// TimeStepping holds the integration schedule.
type TimeStepping struct {
	StartStep int      `param:"iStartStep"`
	Steps     int      `param:"nSteps"`
	RedTo     float64  `param:"dRedTo"`
	RedFrom   *float64 `param:"dRedFrom"`
	Delta     float64  `param:"dDelta"`
	Eta       float64  `param:"dEta"`
	MaxRung   *int     `param:"iMaxRung"`
	NewKDK    bool     `param:"bNewKDK"`
}
