package radiance

import (
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"irband/model"
)

// Report is the full outcome of one scenario: the stack, the derived optical
// states, the integration trace, and the two scalar results. Layers, States
// and Trace share the same top-of-atmosphere-first index.
type Report struct {
	Scenario model.Scenario `json:"scenario"`

	Layers []model.Layer  `json:"layers"`
	States []OpticalState `json:"states"`
	Trace  []TraceRow     `json:"trace"`

	Radiance   float64 `json:"radiance"`    // W·sr⁻¹·m⁻²·Hz⁻¹
	PhotonFlux float64 `json:"photon_flux"` // photons/s

	Anomalies []Anomaly `json:"anomalies,omitempty"`
}

// Pipeline runs scenarios: validate, build layers, derive optical states,
// integrate, convert to photon flux. Each stage consumes a snapshot and
// produces a new value; a Pipeline itself holds only the band, the knobs and
// the hub.
type Pipeline struct {
	band              Band
	hub               *CalcHub
	exec              *executor
	parallelThreshold int
}

func NewPipeline() *Pipeline {
	return &Pipeline{
		band:              DefaultBand(),
		hub:               NewCalcHub(),
		exec:              newExecutor(runCfg.Workers),
		parallelThreshold: runCfg.ParallelThreshold,
	}
}

func (p *Pipeline) GetCalcHub() *CalcHub {
	return p.hub
}

// SetBand swaps the spectroscopic parameters for subsequent runs.
func (p *Pipeline) SetBand(band Band) {
	p.band = band
}

// Run executes one scenario end to end. Configuration problems abort before
// any layer exists; physical inconsistencies annotate the report and the run
// completes.
func (p *Pipeline) Run(sc model.Scenario) (*Report, error) {
	if err := p.validate(sc); err != nil {
		return nil, err
	}
	start := time.Now()

	built, err := BuildLayers(sc)
	if err != nil {
		return nil, err
	}
	layers := topDown(built)

	var states []OpticalState
	if len(layers) >= p.parallelThreshold {
		states = p.exec.computeStates(layers, p.band)
	} else {
		states = computeStatesSequential(layers, p.band)
	}

	res := Integrate(layers, states, p.band, sc.ZenithAngle, sc.TopRadiance)

	report := &Report{
		Scenario:   sc,
		Layers:     layers,
		States:     states,
		Trace:      res.Rows,
		Radiance:   res.Radiance,
		PhotonFlux: PhotonFlux(res.Radiance, p.band.Frequency, sc.Bandwidth, sc.SolidAngle),
	}
	for _, s := range states {
		report.Anomalies = append(report.Anomalies, s.Anomalies...)
	}
	for _, row := range res.Rows {
		report.Anomalies = append(report.Anomalies, row.Anomalies...)
	}

	log.WithFields(log.Fields{
		"layers":    len(layers),
		"radiance":  report.Radiance,
		"flux":      report.PhotonFlux,
		"anomalies": len(report.Anomalies),
		"cost":      time.Since(start),
	}).Info("scenario run finished")

	p.hub.PushSignal()
	return report, nil
}

func (p *Pipeline) validate(sc model.Scenario) error {
	switch {
	case p.band.Frequency <= 0:
		return &ConfigError{Parameter: "frequency", Value: p.band.Frequency,
			Reason: "must be positive, photon energy would be zero"}
	case sc.Bandwidth < 0:
		return &ConfigError{Parameter: "bandwidth", Value: sc.Bandwidth, Reason: "must not be negative"}
	case sc.SolidAngle < 0:
		return &ConfigError{Parameter: "solid_angle", Value: sc.SolidAngle, Reason: "must not be negative"}
	case sc.ZenithAngle < 0 || sc.ZenithAngle >= math.Pi/2:
		return &ConfigError{Parameter: "zenith_angle", Value: sc.ZenithAngle,
			Reason: "must be in [0, π/2)"}
	}
	return nil
}
