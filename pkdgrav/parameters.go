// FILE: pkdgrav/simconfig/pkdgrav/parameters.go
package pkdgrav

import (
	"math"

	sc "github.com/pkdgrav/simconfig"
)

var gravity = []sc.Descriptor{
	sc.Float("dSoft", "e", 0.0, "gravitational softening length"),
	sc.Float("dSoftMax", "eMax", 0.0, "maximum comoving gravitational softening length (abs or multiplier)"),
	sc.Toggle("bPhysicalSoft", "PhysSoft", false, "Physical gravitational softening length"),
	sc.Toggle("bSoftMaxMul", "SMM", true, "Use maximum comoving gravitational softening length as a multiplier"),
	sc.Toggle("bDoGravity", "g", true, "enable interparticle gravity"),
	sc.Int("nGridLin", "lingrid", 0, "Grid size for linear species 0=disabled"),
	sc.Toggle("bDoLinPkOutput", "linpk", false, "enable power spectrum output for linear species"),
	sc.Toggle("bDualTree", "2tree", false, "enable second tree for active rungs"),
	sc.Float("dFracDualTree", "fndt", 0.05, "Fraction of Active Particles for to use a dual tree"),
	sc.Float("dFracNoDomainDecomp", "fndd", 0.1, "Fraction of Active Particles for no DD"),
	sc.Float("dFracNoDomainRootFind", "fndrf", 0.1, "Fraction of Active Particles for no DD root finding"),
	sc.Float("dFracNoDomainDimChoice", "fnddc", 0.1, "Fraction of Active Particles for no DD dimension choice"),
}

var analysis = []sc.Descriptor{
	sc.Int("nBinsPk", "npk", nil, "Number of log bins for P(k)"),
	sc.Int("nGridPk", "pk", 0, "Grid size for measure P(k) 0=disabled"),
	sc.Toggle("bPkInterlace", "pkinterlace", true, "Use interlacing to measure P(k)"),
	sc.Int("iPkOrder", "pko", 4, "Mass assignment order for measuring P(k)"),
	sc.Toggle("bFindGroups", "groupfinder", false, "enable group finder"),
	sc.Toggle("bFindHopGroups", "hop", false, "enable phase-space group finder"),
	sc.Float("dHopTau", "hoptau", -4.0, "linking length for Gasshopper (negative for multiples of softening)"),
	sc.Int("nMinMembers", "nMinMembers", 10, "minimum number of group members"),
	sc.Float("dTau", "tau", 0.164, "linking length for FOF in units of mean particle separation"),
	sc.Float("dEnvironment0", "dEnv0", -1.0, "first radius for density environment about a group"),
	sc.Float("dEnvironment1", "dEnv1", -1.0, "second radius for density environment about a group"),
	sc.Toggle("bLightCone", "lc", false, "output light cone data"),
	sc.Float("dRedshiftLCP", "zlcp", 0.0, "starting redshift to output light cone particles"),
	sc.Float("dDeltakRedshift", "zdel", 0.0, "starting redshift to output delta(k) field"),
	sc.Int("nSideHealpix", "healpix", 8192, "Number per side of the healpix map"),
	sc.Toggle("bLightConeParticles", "lcp", false, "output light cone particles"),
}

var inputOutput = []sc.Descriptor{
	sc.String("achInFile", "I", nil, "input file name"),
	sc.String("achOutName", "o", "pkdgrav3", "output name for snapshots and logfile"),
	sc.String("achOutPath", "op", "", "output path for snapshots and logfile"),
	sc.String("achIoPath", "iop", "", "output path for snapshots and logfile"),
	sc.String("achCheckpointPath", "cpp", "", "output path for checkpoints"),
	sc.String("achDataSubPath", "dsp", "", "sub-path for data"),
	sc.Toggle("bInFileLC", "lcin", false, "input light cone data"),
	sc.Toggle("bParaRead", "par", true, "enable parallel reading of files"),
	sc.Toggle("bParaWrite", "paw", false, "disable parallel writing of files"),
	sc.Int("nParaRead", "npar", 0, "number of threads to read with during parallel read (0=unlimited)"),
	sc.Int("nParaWrite", "npaw", 0, "number of threads to write with during parallel write (0=unlimited)"),
	sc.Int("iOutInterval", "oi", 0, "number of timesteps between snapshots"),
	sc.Int("iFofInterval", "fof", 0, "number of timesteps between fof group finding"),
	sc.Int("iCheckInterval", "ci", 0, "number of timesteps between checkpoints"),
	sc.Int("iLogInterval", "ol", 1, "number of timesteps between logfile outputs"),
	sc.Int("iPkInterval", "opk", 1, "number of timesteps between pk outputs"),
	sc.Int("iDeltakInterval", "odk", 0, "number of timesteps between DeltaK outputs"),
	sc.Toggle("bHDF5", "hdf5", false, "output in HDF5 format"),
	sc.Toggle("bDoublePos", "dp", false, "input/output double precision positions (standard format only)"),
	sc.Toggle("bDoubleVel", "dv", false, "input/output double precision velocities (standard format only)"),
	sc.Toggle("bDoSoftOutput", "softout", false, "enable soft outputs"),
	sc.Toggle("bDoDensity", "den", true, "enable density outputs"),
	sc.Toggle("bDoAccOutput", "accout", false, "enable acceleration outputs"),
	sc.Toggle("bDoPotOutput", "potout", false, "enable potential outputs"),
	sc.Toggle("bDoRungOutput", "rungout", false, "enable rung outputs"),
	sc.Toggle("bDoRungDestOutput", "rungdestout", false, "enable rung destination outputs"),
	sc.Toggle("bStandard", "std", true, "output in standard TIPSY binary format"),
	sc.Int("iCompress", "compress", 0, "compression format, 0=none, 1=gzip, 2=bzip2"),
	sc.Int("iWallRunTime", "wall", 0, "Maximum Wallclock time (in minutes) to run"),
	sc.Int("iSignalSeconds", "signal", 0, "Time (in seconds) that USR1 is sent before termination"),
	sc.Toggle("bTraceRelaxation", "rtrace", false, "enable relaxation tracing"),
	sc.Toggle("bRestart", "restart", false, "restart from checkpoint"),
	sc.IntList("lstOrbits", "orbit", "Particle ID of particle to write to orbit file (repeatable)"),
}

var timeStepping = []sc.Descriptor{
	sc.Int("iStartStep", "nstart", 0, "initial step numbering"),
	sc.Int("nSteps", "n", 0, "number of timesteps"),
	sc.Int("nSteps10", "n10", 0, "number of timesteps to z=10"),
	sc.Float("dRedTo", "zto", 0.0, "specifies final redshift for the simulation"),
	sc.Float("dDelta", "dt", 0.0, "time step"),
	sc.Float("dEta", "eta", 0.2, "time step criterion"),
	sc.Toggle("bGravStep", "gs", false, "Gravity timestepping according to iTimeStep Criterion"),
	sc.Toggle("bEpsAccStep", "ea", false, "Sqrt(Epsilon on a) timestepping"),
	sc.Toggle("bDensityStep", "isrho", false, "Sqrt(1/Rho) timestepping"),
	sc.Int("iTimeStepCrit", "tsc", 0, "Criteria for dynamical time-stepping"),
	sc.Int("nPartRhoLoc", "nprholoc", 32, "Number of particles for local density in dynamical time-stepping"),
	sc.Float("dPreFacRhoLoc", "dprefacrholoc", math.Pi * 4.0 / 3.0, "Pre-factor for local density in dynamical time-stepping"),
	sc.Float("dEccFacMax", "deccfacmax", 3000.0, "Maximum correction factor for eccentricity correction"),
	sc.Int("nPartColl", "npcoll", 0, "Number of particles in collisional regime"),
	sc.Int("iMaxRung", "mrung", nil, "maximum timestep rung"),
	sc.Toggle("bNewKDK", "NewKDK", false, "Use new implementation of KDK time stepping=no"),
	sc.Int("nTruncateRung", "nTR", 0, "number of MaxRung particles to delete MaxRung"),
	sc.Int("nRungVeryActive", "nvactrung", nil, "timestep rung to use very active timestepping"),
	sc.Int("nPartVeryActive", "nvactpart", 0, "number of particles to use very active timestepping"),
}

var forceAccuracy = []sc.Descriptor{
	sc.Float("dTheta", "theta", 0.7, "Barnes opening criterion"),
	sc.Float("dTheta20", "theta20", nil, "Barnes opening criterion for 2 < z <= 20"),
	sc.Float("dTheta2", "theta2", nil, "Barnes opening criterion for z <= 2"),
}

var periodic = []sc.Descriptor{
	sc.Toggle("bComove", "cm", false, "enable comoving coordinates"),
	sc.Toggle("bPeriodic", "p", false, "periodic/non-periodic"),
	sc.Toggle("bEwald", "ewald", true, "enable Ewald correction"),
	sc.Int("iEwOrder", "ewo", 4, "Ewald multipole expansion order: 1, 2, 3 or 4"),
	sc.Int("nReplicas", "nrep", nil, "nReplicas"),
	sc.Float("dPeriod", "L", 1.0, "periodic box length"),
	sc.Float("dxPeriod", "Lx", 1.0, "periodic box length in x-dimension"),
	sc.Float("dyPeriod", "Ly", 1.0, "periodic box length in y-dimension"),
	sc.Float("dzPeriod", "Lz", 1.0, "periodic box length in z-dimension"),
	sc.Float("dEwCut", "ew", 2.6, "dEwCut"),
	sc.Float("dEwhCut", "ewh", 2.8, "dEwhCut"),
}

var cosmology = []sc.Descriptor{
	sc.Float("dHubble0", "Hub", math.Sqrt(math.Pi * 8.0 / 3.0), "dHubble0"),
	sc.Float("dOmega0", "Om", 1.0, "dOmega0"),
	sc.Float("dLambda", "Lambda", 0.0, "dLambda"),
	sc.Float("dOmegaDE", "omDE", 0.0, "Omega for Dark Energy using w0 and wa parameters: <dOmegaDE"),
	sc.Float("w0", "w0", -1.0, "w0 parameter for Dark Energy <w0"),
	sc.Float("wa", "wa", 0.0, "wa parameter for Dark Energy <wa"),
	sc.Float("dOmegaRad", "Omrad", 0.0, "dOmegaRad"),
	sc.Float("dOmegab", "Omb", 0.0, "dOmegab"),
	sc.Float("dSigma8", "S8", 0.0, "dSigma8"),
	sc.Float("dNormalization", "As", 0.0, "dNormalization"),
	sc.Float("dSpectral", "ns", 0.0, "dSpectral"),
	sc.Float("dRunning", "alphas", 0.0, "Primordial tilt running: <dRunning"),
	sc.Float("dPivot", "kpivot", 0.05, "Primordial pivot scale in 1/Mpc (not h/Mpc): <dPivot"),
	sc.Toggle("bClass", "class", false, "Enable/disable the use of CLASS"),
	sc.String("achClassFilename", "class_filename", nil, "Name of hdf5 file containing the CLASS data"),
	sc.String("achLinSpecies", "lin_species", nil, "plus-separated string of linear species, e.g. \"ncdm[0]+g+metric\""),
	sc.String("achPkSpecies", "pk_species", nil, "plus-separated string of species for P(k)"),
	sc.Float("h", "h", 0.0, "hubble parameter h"),
	sc.Float("dBoxSize", "mpc", 1.0, "Simulation Box size in Mpc"),
	sc.String("achTfFile", "tf", nil, "transfer file name (file in CMBFAST format)"),
}

var initialConditions = []sc.Descriptor{
	sc.Float("dRedFrom", "z", nil, "specifies initial redshift for the simulation"),
	sc.Int("nGrid", "grid", 0, "Grid size for IC 0=disabled"),
	sc.Int("iSeed", "seed", 0, "Random seed for IC"),
	sc.Toggle("b2LPT", "2lpt", true, "Enable/disable 2LPT"),
	sc.Toggle("bWriteIC", "wic", false, "Write IC after generating"),
	sc.Toggle("bFixedAmpIC", "fixedamp", false, "Use fixed amplitude of 1 for ICs"),
	sc.Float("dFixedAmpPhasePI", "fixedphase", 0.0, "Phase shift for fixed amplitude in units of PI"),
	sc.Toggle("bICgas", "ICgas", false, "Enable/disable gas in the ICs"),
	sc.Float("dInitialT", "initT", 100.0, "Initial temperature of the gas generated ICs"),
}

var memory = []sc.Descriptor{
	sc.Int("nBucket", "b", 16, "max number of particles in a bucket"),
	sc.Int("nGroup", "grp", 64, "max number of particles in a group"),
	sc.Float("dExtraStore", "extra", 0.1, "Extra storage for particles"),
	sc.Int("nTreeBitsLo", "treelo", 14, "number of low bits for tree"),
	sc.Int("nTreeBitsHi", "treehi", 18, "number of high bits for tree"),
	sc.Toggle("bMemIntegerPosition", "integer", false, "Particles have integer positions"),
	sc.Toggle("bMemUnordered", "unordered", false, "Particles have no specific order"),
	sc.Toggle("bMemParticleID", "pid", false, "Particles have a unique identifier"),
	sc.Toggle("bMemAcceleration", "Ma", false, "Particles have acceleration"),
	sc.Toggle("bMemVelocity", "Mv", false, "Particles have velocity"),
	sc.Toggle("bMemPotential", "Mp", false, "Particles have potential"),
	sc.Toggle("bMemGroups", "Mg", false, "Particles support group finding"),
	sc.Toggle("bMemMass", "Mm", false, "Particles have individual masses"),
	sc.Toggle("bMemSoft", "Ms", false, "Particles have individual softening"),
	sc.Toggle("bMemRelaxation", "Mr", false, "Particles have relaxation"),
	sc.Toggle("bMemVelSmooth", "Mvs", false, "Particles support velocity smoothing"),
	sc.Toggle("bMemNodeMoment", "MNm", false, "Tree nodes support multipole moments"),
	sc.Toggle("bMemNodeAcceleration", "MNa", false, "Tree nodes support acceleration (for bGravStep)"),
	sc.Toggle("bMemNodeVelocity", "MNv", false, "Tree nodes support velocity (for iTimeStepCrit = 1)"),
	sc.Toggle("bMemNodeSphBounds", "MNsph", false, "Tree nodes support fast-gas bounds"),
	sc.Toggle("bMemNodeBnd", "MNbnd", true, "Tree nodes support 3D bounds"),
	sc.Toggle("bMemNodeVBnd", "MNvbnd", false, "Tree nodes support velocity bounds"),
	sc.Toggle("bMemBall", "MBall", false, "Particles have ball"),
}

var gas = []sc.Descriptor{
	sc.Int("nSmooth", "s", 64, "number of particles to smooth over"),
	sc.Toggle("bDoGas", "gas", false, "calculate gas/do not calculate gas"),
	sc.Toggle("bGasAdiabatic", "GasAdiabatic", true, "Gas is Adiabatic"),
	sc.Toggle("bGasIsentropic", "GasIsentropic", true, "Gas is evolved isentropically"),
	sc.Toggle("bGasIsothermal", "GasIsothermal", false, "Gas is Isothermal"),
	sc.Float("dEtaCourant", "etaC", 0.4, "Courant criterion"),
	sc.Float("dCFLacc", "etaAcc", 0.01, "Timestep criterion for the acceleration"),
	sc.Float("dConstAlpha", "alpha", 1.0, "Alpha constant in viscosity"),
	sc.Float("dConstBeta", "beta", 2.0, "Beta constant in viscosity"),
	sc.Float("dConstGamma", "gamma", 5.0 / 3.0, "Ratio of specific heats"),
	sc.Float("dMeanMolWeight", "mmw", 1.0, "Mean molecular weight in amu"),
	sc.Float("dGasConst", "gcnst", 1.0, "Gas Constant"),
	sc.Float("dKBoltzUnit", "kb", 1.0, "Boltzmann Constant in System Units"),
	sc.Float("dhMinOverSoft", "hmin", 0.0, "Minimum h as a fraction of Softening"),
	sc.Float("dFastGasFraction", "FastGasFraction", 0.5, "Fraction for FastGas"),
	sc.Float("dMsolUnit", "msu", 1.0, "Solar mass/system mass unit"),
	sc.Float("dKpcUnit", "kpcu", 1000.0, "Kiloparsec/system length unit"),
	sc.Toggle("bAddDelete", "adddel", false, "Add Delete Particles"),
	sc.Float("fKernelTarget", "fKernelTarget", 0.0, "Kernel target, either number- or massdensity"),
	sc.Float("dVelocityDamper", "VelocityDamper", 0.0, "Velocity Damper"),
	sc.Int("iKernelType", "KernelType", 0, "Kernel type, 0: M4, 1: Wendland C2, 2: Wendland C4, 3: Wendland C6"),
	sc.Toggle("bNewSPH", "bNewSPH", false, "Use the new SPH implementation"),
	sc.Toggle("bGasBuiltinIdeal", "GasBuiltinIdeal", false, "Use builtin ideal gas"),
	sc.Toggle("bMeshlessHydro", "meshless", false, "Use the new implementation of the hydrodynamics"),
	sc.Toggle("bGlobalDt", "globaldt", false, "Force all particles to the same rung"),
	sc.Toggle("bIterativeSmoothingLength", "iterh", true, "Use an iterative scheme to obtain h"),
	sc.Toggle("bWakeUpParticles", "wakeup", false, "Wake the particles when there is a big rung difference"),
	sc.Float("dNeighborsStd", "neighstd", 1.0, "Maximum deviation from desired number of neighbors"),
	sc.Toggle("bOutFineStatistics", "finestats", false, "Save high cadence information on the rung distribution and star formation"),
	sc.Float("ddHonHLimit", "HonHLimit", 0.1, "|dH|/H Limiter"),
	sc.Float("dMaxPhysicalSoft", "MaxPhysicalSoft", 0.0, "maximum softening in physical coordinates"),
}

var cooling = []sc.Descriptor{
	sc.String("achCoolingTables", "coolingtables", nil, "Path to the cooling tables"),
	sc.Float("fH_reion_z", "H_reion_z", 11.5, "Redshift of Hydrogen reionization"),
	sc.Float("fH_reion_eV_p_H", "H_reion_eV_p_H", 2.0, "Energy injected per proton during H reionization, eV"),
	sc.Float("fHe_reion_eV_p_H", "He_reion_eV_p_H", 2.0, "Energy injected per proton during He reionization, eV"),
	sc.Float("fHe_reion_z_centre", "He_reion_z_centre", 3.5, "Mean redshift of Helium reionization"),
	sc.Float("fHe_reion_z_sigma", "He_reion_z_sigma", 0.5, "Redshift interval for Helium reionization"),
	sc.Float("fT_CMB_0", "T_CMB_0", 2.725, "Temperature of the CMB at z=0"),
	sc.Float("dCoolingFloorDen", "CoolingFloorDen", 1e-5, "Minimum density at which the internal energy floor will be applied, n_H cm-3"),
	sc.Float("dCoolingFloorT", "CoolingFloorT", 1e4, "Temperature at the internal energy floor, K"),
}

var starFormation = []sc.Descriptor{
	sc.Float("dSFThresholdDen", "SFThresholdDen", 0.1, "Minimum density at which the star formation can happen, nH cm-3"),
	sc.Float("dSFThresholdT", "SFThresholdT", 1e5, "Maximum temperature at which the star formation can happen, K"),
	sc.Float("dSFMinOverDensity", "SFminOverDens", 57.7, "Minimum overdensity for allowing star formation"),
	sc.Float("dSFGasFraction", "SFGasFraction", 0.3, "Gas fraction assumed for the star formation"),
	sc.Float("dSFindexKS", "SFindexKS", 1.4, "Index of the KS law for star formation"),
	sc.Float("dSFnormalizationKS", "SFnormalizationKS", 2.5e-4, "Normalization of the KS law for star formation"),
	sc.Float("dSFEfficiency", "SFEfficiency", 0.0, "Star formation efficiency per free-fall time; set >0 to use density-based SFR"),
}

var supernovaFeedback = []sc.Descriptor{
	sc.Float("dSNFBDT", "SNFBDT", math.Pow(10, 7.5), "Increment in temperature per supernova event, K"),
	sc.Float("dSNFBEff", "SNFBEff", 1.0, "Efficiency of the SN feedback. Minimum efficiency of dSNFBMaxEff is provided"),
	sc.Float("dSNFBDelay", "SNFBDelay", 3e7, "Time between star formation and injection of SN energy, yr"),
	sc.Float("dSNFBNumberSNperMass", "SNFBNumberSNperMass", 1.736e-2, "Number of stars that will end their life as SNII events, per mass 1/Mo"),
	sc.Float("dSNFBMaxEff", "SNFBMaxEff", 0.0, "Asymptotic maximum efficiency for SNe II feedback"),
	sc.Float("dSNFBEffnH0", "SNFBEffnH0", 0.67, "Hydrogen number density normalization of the feedback efficiency, nH cm-3"),
	sc.Float("dSNFBEffIndex", "SNFBEffIndex", 0.87, "Metallicity and density index for the feedback efficiency"),
}

var blackholes = []sc.Descriptor{
	sc.Toggle("bBHMerger", "bBHMerger", true, "Activate mergers of blackhole particles"),
	sc.Toggle("bBHAccretion", "bBHAccretion", true, "Activate the accretion of gas particles into blackholes"),
	sc.Toggle("bBHFeedback", "bBHFeedback", true, "Activate the BH feedback"),
	sc.Float("dBHAccretionAlpha", "BHAccretionAlpha", 1.0, "Accretion efficiency parameter"),
	sc.Float("dBHRadiativeEff", "dBHRadiativeEff", 0.1, "Radiative efficiency of the blackholes"),
	sc.Float("dBHFBEff", "BHFBEff", 0.1, "Coupling efficiency of the BH with its surroundings"),
	sc.Float("dBHFBDT", "BHFBDT", 1e8, "Temperature change in the blackhole feedback events"),
	sc.Float("dBHAccretionEddFac", "BHAccretionEddFac", 1.053912e-06, "4pi * m_p / sigma_T / c , kg m^-3 s"),
	sc.Toggle("bBHPlaceSeed", "BHPlaceSeed", true, "Place BH seeds in the FOF groups"),
	sc.Float("dBHSeedMass", "BHSeedMass", 1.0, "Mass of the BH seed, in code units"),
	sc.Float("dBHMhaloMin", "BHMhaloMin", 1.0, "Minimum mass required to place a BH in a FOF group, in code units"),
}

var chemistry = []sc.Descriptor{
	sc.Float("dInitialH", "InitialH", 0.75, "Initial Hydrogen abundance"),
	sc.Float("dInitialHe", "InitialHe", 0.25, "Initial Helium abundance"),
	sc.Float("dInitialC", "InitialC", 0.0, "Initial Carbon abundance"),
	sc.Float("dInitialN", "InitialN", 0.0, "Initial Nitrogen abundance"),
	sc.Float("dInitialO", "InitialO", 0.0, "Initial Oxygen abundance"),
	sc.Float("dInitialNe", "InitialNe", 0.0, "Initial Neon abundance"),
	sc.Float("dInitialMg", "InitialMg", 0.0, "Initial Magnesium abundance"),
	sc.Float("dInitialSi", "InitialSi", 0.0, "Initial Silicon abundance"),
	sc.Float("dInitialFe", "InitialFe", 0.0, "Initial Iron abundance"),
	sc.Float("dInitialMetallicity", "InitialMetallicity", 0.0, "Initial metallicity"),
}

var stellarEvolution = []sc.Descriptor{
	sc.String("achStelEvolPath", "stevtables", nil, "Path to stellar evolution tables"),
	sc.String("achSNIaDTDType", "dtdtype", nil, "Type of Delay Time Distribution function for SNIa events"),
	sc.String("achIMFType", "imftype", nil, "Type of Initial Mass Function"),
	sc.Toggle("bChemEnrich", "bChemEnrich", true, "Activate chemical enrichment of gas particles surrounding a star particle"),
	sc.Float("dIMFMinMass", "IMFMinMass", 0.1, "Lower mass limit of the Initial Mass Function <Mo>"),
	sc.Float("dIMFMaxMass", "IMFMaxMass", 100.0, "Upper mass limit of the Initial Mass Function <Mo>"),
	sc.Float("dCCSNMinMass", "CCSNMinMass", 6.0, "Minimum mass for a star to end its life as a Core Collapse Supernova <Mo>"),
	sc.Float("dCCSNMaxMass", "CCSNMaxMass", 100.0, "Maximum mass for a star to end its life as a Core Collapse Supernova <Mo>"),
	sc.Float("dSNIaMaxMass", "SNIaMaxMass", 8.0, "Maximum mass for the likely progenitors of SNIa events <Mo>"),
	sc.Float("dSNIaNorm", "SNIaNorm", 2e-3, "Normalization of the Delay Time Distribution function <1/Mo>"),
	sc.Float("dSNIaScale", "SNIaScale", 2e9, "Scale of the Delay Time Distribution function (Exponential: <yr>. Powerlaw: <dimensionless>)"),
	sc.Float("dSNIaNormInitTime", "SNIaNormInitTime", 40e6, "Initial time for the normalization of the Delay Time Distribution function <yr>"),
	sc.Float("dSNIaNormFinalTime", "SNIaNormFinalTime", 13.7e9, "Final time for the normalization of the Delay Time Distribution function <yr>"),
	sc.Float("dSNIaEnergy", "SNIaEnergy", 1e51, "SNIa event energy <erg>"),
	sc.Float("dStellarWindSpeed", "StellarWindSpeed", 10.0, "Stellar wind speed <km/s>"),
}

var debugging = []sc.Descriptor{
	sc.Toggle("bNoGrav", "nograv", false, "enable gravity calculation for testing"),
	sc.Toggle("bDedicatedMPI", "dedicated", false, "enable dedicated MPI thread"),
	sc.Toggle("bSharedMPI", "sharedmpi", false, "enable extra dedicated MPI thread"),
	sc.Toggle("bOverwrite", "overwrite", false, "enable overwrite safety lock"),
	sc.Toggle("bVWarnings", "vwarnings", true, "enable warnings"),
	sc.Toggle("bVStart", "vstart", true, "enable verbose start"),
	sc.Toggle("bVStep", "vstep", true, "enable verbose step"),
	sc.Toggle("bVRungStat", "vrungstat", true, "enable rung statistics"),
	sc.Toggle("bVDetails", "vdetails", false, "enable verbose details"),
	sc.Int("nDigits", "nd", 5, "number of digits to use in output filenames"),
	sc.Int("iCacheSize", "cs", 0, "size of the MDL cache (0=default)"),
	sc.Int("iWorkQueueSize", "wqs", 0, "size of the MDL work queue"),
	sc.Int("iCUDAQueueSize", "cqs", 8, "size of the CUDA work queue"),
}
