package radiance

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// CalcHub decouples the engine from the delivery layer: run completions are
// signalled on one channel, per-layer trace rows stream on another. The
// delivery side owns the pace; the engine never blocks on a slow consumer
// longer than the push interval.
type CalcHub struct {
	Stop             chan struct{}
	PeriodCalcResult chan struct{}

	TracePushRunning bool

	TraceRows     chan TraceRow
	stopTracePush chan struct{}
	traceStopped  chan struct{}
}

func NewCalcHub() *CalcHub {
	return &CalcHub{
		PeriodCalcResult: make(chan struct{}, 1),
		TraceRows:        make(chan TraceRow, 16),
		stopTracePush:    make(chan struct{}, 1),
		traceStopped:     make(chan struct{}, 1),
	}
}

func (ch *CalcHub) StartSignal() {
	ch.Stop = make(chan struct{})
}

func (ch *CalcHub) StopSignal() {
	close(ch.Stop)
}

// PushSignal announces a finished run. Non-blocking; an unconsumed previous
// signal is simply superseded.
func (ch *CalcHub) PushSignal() {
	select {
	case ch.PeriodCalcResult <- struct{}{}:
	default:
	}
}

// TraceRun replays the rows of a finished run onto TraceRows at the given
// interval until the rows are exhausted or StopTracePush is called.
func (ch *CalcHub) TraceRun(rows []TraceRow, interval time.Duration) {
	// Drain leftovers from a previous run so a stale signal cannot cut this
	// one short.
	select {
	case <-ch.stopTracePush:
	default:
	}
	select {
	case <-ch.traceStopped:
	default:
	}
	go func() {
		defer func() { ch.traceStopped <- struct{}{} }()
		for _, row := range rows {
			select {
			case <-ch.stopTracePush:
				log.Debug("trace push stopped")
				return
			case ch.TraceRows <- row:
				time.Sleep(interval)
			}
		}
	}()
}

// StopTracePush halts an in-flight TraceRun and waits for it to wind down.
func (ch *CalcHub) StopTracePush() {
	select {
	case ch.stopTracePush <- struct{}{}:
		<-ch.traceStopped
	default:
	}
}
