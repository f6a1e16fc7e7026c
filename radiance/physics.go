package radiance

import "math"

// Closed-form single-shot physics. These are stateless helpers the engine and
// the worked scenarios call directly; none of them iterate.

// PlanckSpectralRadiance is the blackbody spectral radiance
// B_ν(T) = (2hν³/c²) / (exp(hν/k_BT) − 1) in W·sr⁻¹·m⁻²·Hz⁻¹.
func PlanckSpectralRadiance(temperature, frequency float64) float64 {
	if temperature <= 0 || frequency <= 0 {
		return 0
	}
	num := 2 * PlanckConstant * frequency * frequency * frequency / (SpeedOfLight * SpeedOfLight)
	return num / (math.Exp(PlanckConstant*frequency/(BoltzmannConstant*temperature)) - 1)
}

// MeanFreePath is the average distance a photon travels before absorption,
// 1/(n·σ).
func MeanFreePath(numberDensity, crossSection float64) float64 {
	return 1 / (numberDensity * crossSection)
}

// ThermalSpeed is the Maxwell-Boltzmann mean molecular speed at temperature T.
func ThermalSpeed(temperature, mass float64) float64 {
	return maxwellMeanSpeed(temperature, mass)
}

// CollisionFrequency is how often a molecule moving at speed collides, v/ℓ.
func CollisionFrequency(speed, meanFreePath float64) float64 {
	return speed / meanFreePath
}

// RandomWalkEscapeTime estimates how long a photon needs to random-walk out
// of a column of the given distance when each step covers step meters and
// costs stepTime seconds: steps = (distance/step)², time = steps·stepTime.
func RandomWalkEscapeTime(distance, step, stepTime float64) (steps, total float64) {
	steps = (distance / step) * (distance / step)
	return steps, steps * stepTime
}

// BoltzmannFactor is the excited/ground population ratio exp(−ΔE/k_BT) of the
// two-level system. Strictly inside (0,1) for any T > 0.
func BoltzmannFactor(transitionEnergy, temperature float64) float64 {
	return math.Exp(-transitionEnergy / (BoltzmannConstant * temperature))
}
