package radiance

import (
	"math"
	"testing"

	"irband/model"
)

func surfaceLayer(temperature float64) model.Layer {
	n := 101325 / (BoltzmannConstant * temperature)
	return model.Layer{
		StartAltitude:    0,
		Thickness:        100,
		Temperature:      temperature,
		Pressure:         101325,
		MixingRatio:      400e-6,
		NumberDensity:    n,
		CO2NumberDensity: n * 400e-6,
	}
}

func TestBoltzmannFactorBounds(t *testing.T) {
	prev := 0.0
	for _, temp := range []float64{150, 200, 217, 250, 288, 320} {
		bf := BoltzmannFactor(TransitionEnergy, temp)
		if bf <= 0 || bf >= 1 {
			t.Errorf("T=%g: factor %g outside (0,1)", temp, bf)
		}
		// Colder layers hold fewer excited molecules.
		if bf <= prev {
			t.Errorf("T=%g: factor %g not increasing with temperature", temp, bf)
		}
		prev = bf
	}
}

func TestProbabilityComplement(t *testing.T) {
	for _, temp := range []float64{200, 250, 288} {
		s := ComputeOpticalState(0, surfaceLayer(temp), DefaultBand())
		if s.PRadiative+s.PCollisional != 1 {
			t.Errorf("T=%g: pRad %g + pColl %g != 1", temp, s.PRadiative, s.PCollisional)
		}
		if s.PRadiative < 0 || s.PRadiative > 1 {
			t.Errorf("T=%g: pRad %g outside [0,1]", temp, s.PRadiative)
		}
	}
}

func TestPopulationsSumToCO2Density(t *testing.T) {
	layer := surfaceLayer(288)
	s := ComputeOpticalState(0, layer, DefaultBand())
	sum := s.NUpper + s.NLower
	if math.Abs(sum-layer.CO2NumberDensity)/layer.CO2NumberDensity > 1e-12 {
		t.Errorf("nUpper+nLower = %g, want %g", sum, layer.CO2NumberDensity)
	}
	if s.NUpper >= s.NLower {
		t.Errorf("population inversion at 288 K: nUpper %g >= nLower %g", s.NUpper, s.NLower)
	}
}

func TestKappaPositiveAtAtmosphericTemperatures(t *testing.T) {
	for _, temp := range []float64{200, 250, 288, 310} {
		s := ComputeOpticalState(0, surfaceLayer(temp), DefaultBand())
		if s.Kappa <= 0 {
			t.Errorf("T=%g: kappa %g not positive", temp, s.Kappa)
		}
		if len(s.Anomalies) != 0 {
			t.Errorf("T=%g: unexpected anomalies %v", temp, s.Anomalies)
		}
	}
}

// Above ~1380 K the two-level Boltzmann factor crosses 1/2 and the upper
// state outnumbers the lower one. The state must report the inversion, not
// clamp it away.
func TestPopulationInversionAnnotated(t *testing.T) {
	s := ComputeOpticalState(3, surfaceLayer(2000), DefaultBand())
	if s.Kappa > 0 {
		t.Fatalf("kappa %g, expected non-positive at 2000 K", s.Kappa)
	}
	if len(s.Anomalies) == 0 {
		t.Fatal("inversion not annotated")
	}
	a := s.Anomalies[0]
	if a.Kind != AnomalyPopulationInversion || a.Layer != 3 {
		t.Errorf("unexpected anomaly %+v", a)
	}
}

func TestCollisionalRateDominatesNearSurface(t *testing.T) {
	s := ComputeOpticalState(0, surfaceLayer(288), DefaultBand())
	if s.CollisionalRate <= s.RadiativeRate {
		t.Errorf("collisional rate %g should dominate A21 %g at surface density",
			s.CollisionalRate, s.RadiativeRate)
	}
	if s.RadiativeRate != EinsteinA21 {
		t.Errorf("radiative rate %g, want %g", s.RadiativeRate, EinsteinA21)
	}
	if s.TotalDeexcitationRate != s.CollisionalRate+s.RadiativeRate {
		t.Errorf("total rate %g is not the channel sum", s.TotalDeexcitationRate)
	}
}

func TestEmissionCoefficient(t *testing.T) {
	layer := surfaceLayer(288)
	band := DefaultBand()
	s := ComputeOpticalState(0, layer, band)
	want := s.Kappa * s.PRadiative * PlanckSpectralRadiance(layer.Temperature, band.Frequency)
	if s.EmissionCoefficient != want {
		t.Errorf("emission coefficient %g, want %g", s.EmissionCoefficient, want)
	}
}
