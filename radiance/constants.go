package radiance

import "math"

// Physical constants (SI) and the 15 µm CO₂ bending-mode band parameters.
// Band parameters are defaults; the ini config may override them per run.

const (
	PlanckConstant    = 6.62607015e-34 // J·s
	BoltzmannConstant = 1.380649e-23   // J/K
	SpeedOfLight      = 2.99792458e8   // m/s

	CO2MolecularMass = 7.308e-26 // kg, 44.01 u

	BandWavelength = 15e-6 // m, center of the ν₂ absorption band
)

var (
	// TransitionFrequency is the band-center photon frequency, c/λ.
	TransitionFrequency = SpeedOfLight / BandWavelength // Hz, ≈2.0e13

	// TransitionEnergy is the energy gap of the two-level system, hν.
	TransitionEnergy = PlanckConstant * TransitionFrequency // J
)

const (
	// EinsteinA21 is the spontaneous-emission rate of the excited bend state.
	EinsteinA21 = 1.35 // s⁻¹

	// AbsorptionCrossSection is the band-averaged photon capture cross
	// section per CO₂ molecule.
	AbsorptionCrossSection = 1e-22 // m²

	// CollisionCrossSection is the gas-kinetic cross section used for the
	// collisional de-excitation channel.
	CollisionCrossSection = 5e-19 // m²
)

// maxwellMeanSpeed is the Maxwell-Boltzmann mean molecular speed
// sqrt(8·k_B·T/(π·m)).
func maxwellMeanSpeed(temperature, mass float64) float64 {
	return math.Sqrt(8 * BoltzmannConstant * temperature / (math.Pi * mass))
}
