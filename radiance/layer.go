package radiance

import (
	"math"

	log "github.com/sirupsen/logrus"

	"irband/model"
)

// Layer construction. Two modes: generate the stack from the three scalar
// parameters, or take the slabs verbatim from an explicit profile table.

// BuildLayers generates the stack for a scenario. Layer 0 starts at altitude
// zero with the configured initial thickness; each following layer grows as
// t0·exp(h/H_scale) with h the accumulated altitude, so thin dense air near
// the surface is resolved finely and rarefied air coarsely. The last layer is
// clipped so the accumulated height equals TotalHeight exactly.
func BuildLayers(sc model.Scenario) ([]model.Layer, error) {
	if len(sc.Profile) > 0 {
		return LayersFromProfile(sc.Profile)
	}
	if err := validateGenerator(sc); err != nil {
		return nil, err
	}

	var layers []model.Layer
	h := 0.0
	for h < sc.TotalHeight {
		thickness := sc.InitialThickness * math.Exp(h/sc.ScaleHeight)
		if h+thickness > sc.TotalHeight {
			thickness = sc.TotalHeight - h
		}
		layers = append(layers, ambientLayer(sc, h, thickness))
		h += thickness
	}

	log.WithFields(log.Fields{
		"layers":       len(layers),
		"total_height": sc.TotalHeight,
	}).Debug("layer stack built")
	return layers, nil
}

// LayersFromProfile takes slabs verbatim from an explicit table. No
// generation happens here, only validation: strictly increasing altitude,
// positive thickness, positive temperature.
func LayersFromProfile(profile []model.ProfileEntry) ([]model.Layer, error) {
	layers := make([]model.Layer, 0, len(profile))
	prev := math.Inf(-1)
	for _, row := range profile {
		if row.Altitude <= prev {
			return nil, &ConfigError{Parameter: "profile.altitude", Value: row.Altitude,
				Reason: "must be strictly increasing"}
		}
		if row.Thickness <= 0 {
			return nil, &ConfigError{Parameter: "profile.thickness", Value: row.Thickness,
				Reason: "must be positive"}
		}
		if row.Temperature <= 0 {
			return nil, &ConfigError{Parameter: "profile.temperature", Value: row.Temperature,
				Reason: "must be above absolute zero"}
		}
		prev = row.Altitude

		n := row.Pressure / (BoltzmannConstant * row.Temperature)
		layers = append(layers, model.Layer{
			StartAltitude:    row.Altitude,
			Thickness:        row.Thickness,
			Temperature:      row.Temperature,
			Pressure:         row.Pressure,
			MixingRatio:      row.MixingRatio,
			NumberDensity:    n,
			CO2NumberDensity: n * row.MixingRatio,
		})
	}
	return layers, nil
}

func validateGenerator(sc model.Scenario) error {
	switch {
	case sc.InitialThickness <= 0:
		return &ConfigError{Parameter: "initial_thickness", Value: sc.InitialThickness, Reason: "must be positive"}
	case sc.ScaleHeight <= 0:
		return &ConfigError{Parameter: "scale_height", Value: sc.ScaleHeight, Reason: "must be positive"}
	case sc.TotalHeight <= 0:
		return &ConfigError{Parameter: "total_height", Value: sc.TotalHeight, Reason: "must be positive"}
	case sc.SurfaceTemp <= 0:
		return &ConfigError{Parameter: "surface_temp", Value: sc.SurfaceTemp, Reason: "must be above absolute zero"}
	case sc.SurfacePress <= 0:
		return &ConfigError{Parameter: "surface_press", Value: sc.SurfacePress, Reason: "must be positive"}
	case sc.MixingRatio < 0:
		return &ConfigError{Parameter: "mixing_ratio", Value: sc.MixingRatio, Reason: "must not be negative"}
	case sc.LapseRate > 0 && sc.TropopauseT <= 0:
		return &ConfigError{Parameter: "tropopause_temp", Value: sc.TropopauseT,
			Reason: "must be positive when a lapse rate is set"}
	}
	return nil
}

// ambientLayer evaluates the analytic ambient profile at the slab midpoint:
// linear lapse-rate temperature clamped at the tropopause, exponential
// pressure with the scenario scale height.
func ambientLayer(sc model.Scenario, start, thickness float64) model.Layer {
	mid := start + thickness/2
	temp := sc.SurfaceTemp - sc.LapseRate*mid
	if temp < sc.TropopauseT {
		temp = sc.TropopauseT
	}
	press := sc.SurfacePress * math.Exp(-mid/sc.ScaleHeight)
	n := press / (BoltzmannConstant * temp)
	return model.Layer{
		StartAltitude:    start,
		Thickness:        thickness,
		Temperature:      temp,
		Pressure:         press,
		MixingRatio:      sc.MixingRatio,
		NumberDensity:    n,
		CO2NumberDensity: n * sc.MixingRatio,
	}
}

// topDown returns the stack reordered top-of-atmosphere first, the order the
// transfer integrator requires.
func topDown(layers []model.Layer) []model.Layer {
	out := make([]model.Layer, len(layers))
	for i, l := range layers {
		out[len(layers)-1-i] = l
	}
	return out
}
