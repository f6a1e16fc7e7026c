package radiance

import "fmt"

// ConfigError rejects a scenario before any layer is built. Runs never start
// with an invalid configuration.
type ConfigError struct {
	Parameter string
	Value     float64
	Reason    string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s=%g %s", e.Parameter, e.Value, e.Reason)
}

// Anomaly kinds. Physical inconsistencies are reported on the affected layer
// and the run continues; a single pathological layer must not hide the rest
// of the stack.
const (
	AnomalyPopulationInversion = "population_inversion"  // kappa <= 0
	AnomalyProbabilityRange    = "probability_range"     // pRad outside [0,1]
	AnomalyNonFinite           = "non_finite"            // NaN/Inf in a derived value
)

// Anomaly annotates one layer with a physical inconsistency. The value is
// recorded as computed, never clamped.
type Anomaly struct {
	Layer int     `json:"layer"`
	Kind  string  `json:"kind"`
	Value float64 `json:"value"`
}

func (a Anomaly) String() string {
	return fmt.Sprintf("layer %d: %s (%g)", a.Layer, a.Kind, a.Value)
}
