package server

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"irband/model"
	"irband/radiance"
)

const tracePushInterval = 200 * time.Millisecond

// Hub serves one websocket peer: it owns the connection, a pipeline, and the
// scenario the peer has configured. Requests arrive on msg; replies flow out
// through the per-type channels so the response writer is the only goroutine
// touching the connection.
type Hub struct {
	p    *radiance.Pipeline
	conn *websocket.Conn

	// request
	msg chan model.Msg
	// response
	scenarioSet  chan model.Msg
	reported     chan model.Msg
	traceStopped chan model.Msg
	failed       chan model.Msg

	scenario model.Scenario
	report   *radiance.Report
	onReport func(*radiance.Report)
}

func NewHub() *Hub {
	return &Hub{
		p:            radiance.NewPipeline(),
		msg:          make(chan model.Msg, 10),
		scenarioSet:  make(chan model.Msg, 10),
		reported:     make(chan model.Msg, 10),
		traceStopped: make(chan model.Msg, 10),
		failed:       make(chan model.Msg, 10),
		scenario:     radiance.DefaultScenario(),
	}
}

func (h *Hub) handleRequest() {
	for {
		msg, ok := <-h.msg
		if !ok {
			return
		}
		switch msg.Type {
		case "scenario":
			var sc model.Scenario
			if err := json.Unmarshal([]byte(msg.Content), &sc); err != nil {
				h.fail("bad scenario: " + err.Error())
				continue
			}
			h.scenario = sc
			h.scenarioSet <- model.Msg{Type: "scenarioSet", Content: "scenario is set"}
		case "run":
			report, err := h.p.Run(h.scenario)
			if err != nil {
				h.fail(err.Error())
				continue
			}
			h.report = report
			if h.onReport != nil {
				h.onReport(report)
			}
			data, err := json.Marshal(report)
			if err != nil {
				h.fail(err.Error())
				continue
			}
			h.reported <- model.Msg{Type: "report", Content: string(data)}
		case "trace":
			if h.report == nil {
				h.fail("no report yet, send run first")
				continue
			}
			hub := h.p.GetCalcHub()
			if !hub.TracePushRunning {
				hub.TracePushRunning = true
				hub.TraceRun(h.report.Trace, tracePushInterval)
			}
		case "stopTrace":
			hub := h.p.GetCalcHub()
			if hub.TracePushRunning {
				hub.StopTracePush()
				hub.TracePushRunning = false
			}
			h.traceStopped <- model.Msg{Type: "traceStopped"}
		default:
			h.fail("unknown message type: " + msg.Type)
		}
	}
}

func (h *Hub) fail(reason string) {
	h.failed <- model.Msg{Type: "error", Content: reason}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.scenarioSet:
			h.write(reply)
		case reply := <-h.reported:
			h.write(reply)
		case reply := <-h.traceStopped:
			h.write(reply)
		case reply := <-h.failed:
			h.write(reply)
		case row := <-h.p.GetCalcHub().TraceRows:
			data, err := json.Marshal(row)
			if err != nil {
				log.WithError(err).Error("marshal trace row")
				continue
			}
			h.write(model.Msg{Type: "traceRow", Content: string(data)})
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func (h *Hub) write(msg model.Msg) {
	if err := h.conn.WriteJSON(&msg); err != nil {
		log.WithError(err).Error("write websocket reply")
	}
}
