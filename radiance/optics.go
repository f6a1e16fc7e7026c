package radiance

import (
	"math"

	"irband/model"
)

// OpticalState is the derived radiative state of one layer, immutable once
// computed. Populations follow the two-level approximation with the partition
// function taken as one, so NUpper + NLower equals the CO₂ number density.
type OpticalState struct {
	BoltzmannFactor float64 `json:"boltzmann_factor"`
	NUpper          float64 `json:"n_upper"` // molecules/m³
	NLower          float64 `json:"n_lower"` // molecules/m³

	CollisionalRate       float64 `json:"collisional_rate"`        // s⁻¹
	RadiativeRate         float64 `json:"radiative_rate"`          // s⁻¹
	TotalDeexcitationRate float64 `json:"total_deexcitation_rate"` // s⁻¹
	PRadiative            float64 `json:"p_radiative"`
	PCollisional          float64 `json:"p_collisional"`

	Kappa               float64 `json:"kappa"` // m⁻¹
	EmissionCoefficient float64 `json:"emission_coefficient"`

	Anomalies []Anomaly `json:"anomalies,omitempty"`
}

// Band groups the spectroscopic inputs of one run. The zero value is not
// usable; DefaultBand returns the 15 µm parameters.
type Band struct {
	Frequency              float64 // Hz
	TransitionEnergy       float64 // J
	EinsteinA21            float64 // s⁻¹
	AbsorptionCrossSection float64 // m²
	CollisionCrossSection  float64 // m²
	MolecularMass          float64 // kg
}

func DefaultBand() Band {
	return Band{
		Frequency:              TransitionFrequency,
		TransitionEnergy:       TransitionEnergy,
		EinsteinA21:            EinsteinA21,
		AbsorptionCrossSection: AbsorptionCrossSection,
		CollisionCrossSection:  CollisionCrossSection,
		MolecularMass:          CO2MolecularMass,
	}
}

// ComputeOpticalState derives the radiative state of a single layer. Pure
// function of the layer and the band; inconsistent results are annotated,
// never corrected.
func ComputeOpticalState(layerIndex int, layer model.Layer, band Band) OpticalState {
	s := OpticalState{}

	s.BoltzmannFactor = BoltzmannFactor(band.TransitionEnergy, layer.Temperature)
	s.NUpper = layer.CO2NumberDensity * s.BoltzmannFactor
	s.NLower = layer.CO2NumberDensity * (1 - s.BoltzmannFactor)

	speed := maxwellMeanSpeed(layer.Temperature, band.MolecularMass)
	s.CollisionalRate = layer.NumberDensity * band.CollisionCrossSection * speed
	s.RadiativeRate = band.EinsteinA21
	s.TotalDeexcitationRate = s.CollisionalRate + s.RadiativeRate
	s.PRadiative = band.EinsteinA21 / s.TotalDeexcitationRate
	s.PCollisional = 1 - s.PRadiative

	s.Kappa = (s.NLower - s.NUpper) * band.AbsorptionCrossSection
	s.EmissionCoefficient = s.Kappa * s.PRadiative *
		PlanckSpectralRadiance(layer.Temperature, band.Frequency)

	s.Anomalies = inspectState(layerIndex, s)
	return s
}

// inspectState collects the physical-inconsistency annotations for one state.
func inspectState(layerIndex int, s OpticalState) []Anomaly {
	var out []Anomaly
	if s.Kappa <= 0 {
		out = append(out, Anomaly{Layer: layerIndex, Kind: AnomalyPopulationInversion, Value: s.Kappa})
	}
	if s.PRadiative < 0 || s.PRadiative > 1 {
		out = append(out, Anomaly{Layer: layerIndex, Kind: AnomalyProbabilityRange, Value: s.PRadiative})
	}
	for _, v := range []float64{s.BoltzmannFactor, s.CollisionalRate, s.Kappa, s.EmissionCoefficient} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out = append(out, Anomaly{Layer: layerIndex, Kind: AnomalyNonFinite, Value: v})
			break
		}
	}
	return out
}
