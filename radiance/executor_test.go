package radiance

import (
	"reflect"
	"testing"
)

func TestExecutorMatchesSequential(t *testing.T) {
	built, err := BuildLayers(testScenario(50, 8000, 30000))
	if err != nil {
		t.Fatal(err)
	}
	layers := topDown(built)
	want := computeStatesSequential(layers, DefaultBand())

	for _, workers := range []int{1, 2, 4, 7} {
		got := newExecutor(workers).computeStates(layers, DefaultBand())
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("workers=%d: parallel states differ from sequential", workers)
		}
	}
}

func TestExecutorEmptyStack(t *testing.T) {
	states := newExecutor(4).computeStates(nil, DefaultBand())
	if len(states) != 0 {
		t.Fatalf("got %d states for empty stack", len(states))
	}
}

func TestExecutorMoreWorkersThanLayers(t *testing.T) {
	built, err := BuildLayers(testScenario(8000, 8000, 12000))
	if err != nil {
		t.Fatal(err)
	}
	layers := topDown(built)
	got := newExecutor(16).computeStates(layers, DefaultBand())
	want := computeStatesSequential(layers, DefaultBand())
	if !reflect.DeepEqual(got, want) {
		t.Fatal("states differ with more workers than layers")
	}
}
