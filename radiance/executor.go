package radiance

import (
	"time"

	log "github.com/sirupsen/logrus"

	"irband/model"
)

// Worker pool for the per-layer optical state pass. Every layer's state
// depends only on that layer's own inputs, so the pass splits into index
// ranges handed to a fixed set of workers; results land in an
// index-addressed slice, which keeps the output deterministic regardless of
// scheduling.

type task struct {
	start int
	end   int
}

type executor struct {
	workers int
}

func newExecutor(workers int) *executor {
	if workers < 1 {
		workers = 1
	}
	return &executor{workers: workers}
}

// computeStates fills the optical state for each layer, fanning the index
// space out across the workers.
func (e *executor) computeStates(layers []model.Layer, band Band) []OpticalState {
	states := make([]OpticalState, len(layers))
	if len(layers) == 0 {
		return states
	}

	start := time.Now()
	tasks := make(chan task, e.workers)
	done := make(chan struct{}, e.workers)

	for w := 0; w < e.workers; w++ {
		go func() {
			for t := range tasks {
				for i := t.start; i < t.end; i++ {
					states[i] = ComputeOpticalState(i, layers[i], band)
				}
			}
			done <- struct{}{}
		}()
	}

	chunk := len(layers) / e.workers
	if chunk == 0 {
		chunk = 1
	}
	for lo := 0; lo < len(layers); lo += chunk {
		hi := lo + chunk
		if hi > len(layers) {
			hi = len(layers)
		}
		tasks <- task{start: lo, end: hi}
	}
	close(tasks)
	for w := 0; w < e.workers; w++ {
		<-done
	}

	log.WithFields(log.Fields{
		"layers":  len(layers),
		"workers": e.workers,
		"cost":    time.Since(start),
	}).Debug("optical state pass finished")
	return states
}

// computeStatesSequential is the reference single-goroutine pass, used for
// small stacks where the fan-out is not worth it.
func computeStatesSequential(layers []model.Layer, band Band) []OpticalState {
	states := make([]OpticalState, len(layers))
	for i := range layers {
		states[i] = ComputeOpticalState(i, layers[i], band)
	}
	return states
}
