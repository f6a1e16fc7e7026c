package radiance

import (
	"math"
	"testing"

	"irband/model"
)

func defaultStack(t *testing.T) ([]model.Layer, []OpticalState) {
	t.Helper()
	built, err := BuildLayers(DefaultScenario())
	if err != nil {
		t.Fatal(err)
	}
	layers := topDown(built)
	return layers, computeStatesSequential(layers, DefaultBand())
}

func TestOpticalDepthMonotonic(t *testing.T) {
	layers, states := defaultStack(t)
	res := Integrate(layers, states, DefaultBand(), 0, 0)

	prev := 0.0
	for _, row := range res.Rows {
		if row.OpticalDepth < prev {
			t.Fatalf("layer %d: optical depth %g dropped below %g", row.Layer, row.OpticalDepth, prev)
		}
		prev = row.OpticalDepth
	}
	if res.Radiance != res.Rows[len(res.Rows)-1].Radiance {
		t.Error("terminal radiance is not the last row's accumulation")
	}
}

// A transparent atmosphere contributes nothing: with kappa zero everywhere
// the radiance stays zero through the whole walk.
func TestZeroKappaZeroRadiance(t *testing.T) {
	sc := DefaultScenario()
	sc.MixingRatio = 0
	built, err := BuildLayers(sc)
	if err != nil {
		t.Fatal(err)
	}
	layers := topDown(built)
	states := computeStatesSequential(layers, DefaultBand())

	res := Integrate(layers, states, DefaultBand(), 0, 0)
	for _, row := range res.Rows {
		if row.DeltaTau != 0 || row.Radiance != 0 {
			t.Fatalf("layer %d: deltaTau %g radiance %g, want 0 and 0", row.Layer, row.DeltaTau, row.Radiance)
		}
	}
	if res.Radiance != 0 {
		t.Errorf("radiance %g, want exactly 0", res.Radiance)
	}
}

// The fold is order-dependent: attenuation runs from the walk start, so a
// reversed stack must not give the same answer.
func TestIntegrationOrderMatters(t *testing.T) {
	layers, states := defaultStack(t)
	forward := Integrate(layers, states, DefaultBand(), 0, 0)

	reversedLayers := topDown(layers)
	reversedStates := make([]OpticalState, len(states))
	for i := range states {
		reversedStates[len(states)-1-i] = states[i]
	}
	backward := Integrate(reversedLayers, reversedStates, DefaultBand(), 0, 0)

	if forward.Radiance == backward.Radiance {
		t.Error("reversing the stack did not change the emergent radiance")
	}
}

func TestTwoPhaseMatchesSequential(t *testing.T) {
	layers, states := defaultStack(t)
	seq := Integrate(layers, states, DefaultBand(), 0, 0)
	two := IntegrateTwoPhase(layers, states, DefaultBand(), 0, 0)

	if len(seq.Rows) != len(two.Rows) {
		t.Fatalf("row counts differ: %d vs %d", len(seq.Rows), len(two.Rows))
	}
	for i := range seq.Rows {
		a, b := seq.Rows[i], two.Rows[i]
		if a.DeltaTau != b.DeltaTau || a.OpticalDepth != b.OpticalDepth ||
			a.DeltaRadiance != b.DeltaRadiance || a.Radiance != b.Radiance {
			t.Fatalf("row %d differs:\nsequential %+v\ntwo-phase  %+v", i, a, b)
		}
	}
	if seq.Radiance != two.Radiance {
		t.Errorf("radiance differs: %g vs %g", seq.Radiance, two.Radiance)
	}
}

func TestTopBoundaryRadiance(t *testing.T) {
	layers, states := defaultStack(t)
	dark := Integrate(layers, states, DefaultBand(), 0, 0)
	lit := Integrate(layers, states, DefaultBand(), 0, 1e-9)
	if lit.Radiance <= dark.Radiance {
		t.Errorf("boundary term lost: lit %g <= dark %g", lit.Radiance, dark.Radiance)
	}
}

func TestSlantPathLengthensOpticalDepth(t *testing.T) {
	layers, states := defaultStack(t)
	nadir := Integrate(layers, states, DefaultBand(), 0, 0)
	slant := Integrate(layers, states, DefaultBand(), math.Pi/4, 0)
	nTau := nadir.Rows[len(nadir.Rows)-1].OpticalDepth
	sTau := slant.Rows[len(slant.Rows)-1].OpticalDepth
	if sTau <= nTau {
		t.Errorf("slant tau %g should exceed nadir tau %g", sTau, nTau)
	}
}
