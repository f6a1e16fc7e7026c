package radiance

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"irband/model"
)

// Radiative transfer through the stack. Layers and states must be ordered
// top-of-atmosphere first; the fold is order-dependent because each layer's
// emission is attenuated by the optical depth accumulated above it, so the
// ordering is a precondition, not a detail.

// TraceRow is the integrator state after one layer, kept so tests and the
// frontend can inspect the walk, not just the final radiance.
type TraceRow struct {
	Layer          int     `json:"layer"`
	DeltaTau       float64 `json:"delta_tau"`
	OpticalDepth   float64 `json:"optical_depth"`
	PlanckRadiance float64 `json:"planck_radiance"`
	DeltaRadiance  float64 `json:"delta_radiance"`
	Radiance       float64 `json:"radiance"`

	Anomalies []Anomaly `json:"anomalies,omitempty"`
}

// TransferResult is the outcome of one integration pass.
type TransferResult struct {
	Rows     []TraceRow `json:"rows"`
	Radiance float64    `json:"radiance"` // W·sr⁻¹·m⁻²·Hz⁻¹
}

// Integrate walks the stack top to bottom with an explicit Euler step of the
// transfer equation. topRadiance is the incoming boundary term, zero for a
// dark sky. zenithAngle is measured from nadir; the geometric path through a
// layer is thickness/cosθ.
func Integrate(layers []model.Layer, states []OpticalState, band Band, zenithAngle, topRadiance float64) TransferResult {
	mu := math.Cos(zenithAngle)
	res := TransferResult{Rows: make([]TraceRow, 0, len(layers))}

	tau := 0.0
	radiance := topRadiance
	for i, layer := range layers {
		s := states[i]
		deltaTau := s.Kappa * layer.Thickness / mu
		tau += deltaTau

		planck := PlanckSpectralRadiance(layer.Temperature, band.Frequency)
		deltaRadiance := planck * (1 - math.Exp(-deltaTau)) * math.Exp(-tau) * s.PRadiative
		radiance += deltaRadiance

		row := TraceRow{
			Layer:          i,
			DeltaTau:       deltaTau,
			OpticalDepth:   tau,
			PlanckRadiance: planck,
			DeltaRadiance:  deltaRadiance,
			Radiance:       radiance,
		}
		if math.IsNaN(tau) || math.IsInf(tau, 0) {
			row.Anomalies = append(row.Anomalies, Anomaly{Layer: i, Kind: AnomalyNonFinite, Value: tau})
		}
		res.Rows = append(res.Rows, row)
	}
	res.Radiance = radiance
	return res
}

// IntegrateTwoPhase is the reformulation for large stacks: all Δτ values
// first, a prefix sum for the running optical depth, then the per-layer
// emissions, which at that point no longer depend on each other. Produces the
// same accumulation order as Integrate, so results are identical bit for bit.
func IntegrateTwoPhase(layers []model.Layer, states []OpticalState, band Band, zenithAngle, topRadiance float64) TransferResult {
	mu := math.Cos(zenithAngle)
	n := len(layers)

	deltaTaus := make([]float64, n)
	for i := range layers {
		deltaTaus[i] = states[i].Kappa * layers[i].Thickness / mu
	}
	taus := make([]float64, n)
	floats.CumSum(taus, deltaTaus)

	deltas := make([]float64, n)
	plancks := make([]float64, n)
	for i := range layers {
		plancks[i] = PlanckSpectralRadiance(layers[i].Temperature, band.Frequency)
		deltas[i] = plancks[i] * (1 - math.Exp(-deltaTaus[i])) * math.Exp(-taus[i]) * states[i].PRadiative
	}
	radiances := make([]float64, n)
	run := topRadiance
	for i, d := range deltas {
		run += d
		radiances[i] = run
	}

	res := TransferResult{Rows: make([]TraceRow, n)}
	for i := 0; i < n; i++ {
		row := TraceRow{
			Layer:          i,
			DeltaTau:       deltaTaus[i],
			OpticalDepth:   taus[i],
			PlanckRadiance: plancks[i],
			DeltaRadiance:  deltas[i],
			Radiance:       radiances[i],
		}
		if math.IsNaN(taus[i]) || math.IsInf(taus[i], 0) {
			row.Anomalies = append(row.Anomalies, Anomaly{Layer: i, Kind: AnomalyNonFinite, Value: taus[i]})
		}
		res.Rows[i] = row
	}
	if n > 0 {
		res.Radiance = res.Rows[n-1].Radiance
	} else {
		res.Radiance = topRadiance
	}
	return res
}
