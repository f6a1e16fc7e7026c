package model

// Shared value types exchanged between the engine and the delivery layer.

// Msg is the frame exchanged with the frontend over the websocket.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Scenario is one complete run configuration: either the three generator
// parameters (InitialThickness, ScaleHeight, TotalHeight) or an explicit
// Profile table. A non-empty Profile wins over the generator parameters.
type Scenario struct {
	InitialThickness float64 `json:"initial_thickness"` // m
	ScaleHeight      float64 `json:"scale_height"`      // m
	TotalHeight      float64 `json:"total_height"`      // m

	Profile []ProfileEntry `json:"profile,omitempty"`

	MixingRatio  float64 `json:"mixing_ratio"`    // mol fraction, e.g. 400e-6
	ZenithAngle  float64 `json:"zenith_angle"`    // rad, 0 = nadir
	TopRadiance  float64 `json:"top_radiance"`    // boundary term, W·sr⁻¹·m⁻²·Hz⁻¹
	Bandwidth    float64 `json:"bandwidth"`       // Hz
	SolidAngle   float64 `json:"solid_angle"`     // sr
	SurfaceTemp  float64 `json:"surface_temp"`    // K
	SurfacePress float64 `json:"surface_press"`   // Pa
	LapseRate    float64 `json:"lapse_rate"`      // K/m
	TropopauseT  float64 `json:"tropopause_temp"` // K, floor for the lapse profile
}

// ProfileEntry is one row of an explicit atmosphere table.
// Altitude must be strictly increasing row over row.
type ProfileEntry struct {
	Altitude    float64 `json:"altitude"`     // m, base of the slab
	Thickness   float64 `json:"thickness"`    // m
	Temperature float64 `json:"temperature"`  // K
	Pressure    float64 `json:"pressure"`     // Pa
	MixingRatio float64 `json:"mixing_ratio"` // mol fraction
}

// Layer is one homogeneous slab of the plane-parallel stack. Number
// densities come from the ideal-gas law at build time; layers are contiguous,
// StartAltitude[i+1] = StartAltitude[i] + Thickness[i].
type Layer struct {
	StartAltitude    float64 `json:"start_altitude"` // m
	Thickness        float64 `json:"thickness"`      // m
	Temperature      float64 `json:"temperature"`    // K
	Pressure         float64 `json:"pressure"`       // Pa
	MixingRatio      float64 `json:"mixing_ratio"`
	NumberDensity    float64 `json:"number_density"`     // molecules/m³
	CO2NumberDensity float64 `json:"co2_number_density"` // molecules/m³
}

// Top returns the altitude of the layer's upper boundary.
func (l Layer) Top() float64 {
	return l.StartAltitude + l.Thickness
}
