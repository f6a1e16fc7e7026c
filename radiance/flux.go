package radiance

// Flux conversion: from the emergent spectral radiance to a photon count.

// PhotonFlux converts a spectral radiance into a photon-number flux over the
// given bandwidth and collection solid angle. A zero radiance is a valid
// outcome of an optically thick stack and converts to exactly zero photons.
// frequency must be positive; scenario validation rejects zero before a run
// reaches this point.
func PhotonFlux(radiance, frequency, bandwidth, solidAngle float64) float64 {
	photonEnergy := PlanckConstant * frequency
	photonFluxDensity := radiance / photonEnergy
	return photonFluxDensity * bandwidth * solidAngle
}
