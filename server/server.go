package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"irband/model"
	"irband/radiance"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader

	mu         sync.Mutex
	lastReport *radiance.Report
}

func NewServer(addr string, upgrader websocket.Upgrader) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
	}
}

// serveWs handles one websocket peer for its whole lifetime.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("websocket upgrade")
		return
	}
	defer conn.Close()

	hub := NewHub()
	hub.conn = conn
	hub.onReport = s.setLastReport
	go hub.handleRequest()
	go hub.handleResponse()

	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			log.WithError(err).Info("websocket peer gone")
			close(hub.msg)
			return
		}
		hub.msg <- msg
	}
}

// serveReport renders the chart page for the most recent run on any peer.
func (s *Server) serveReport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	report := s.lastReport
	s.mu.Unlock()
	if report == nil {
		http.Error(w, "no run yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := radiance.RenderReportHTML(report, w); err != nil {
		log.WithError(err).Error("render report")
	}
}

func (s *Server) setLastReport(report *radiance.Report) {
	s.mu.Lock()
	s.lastReport = report
	s.mu.Unlock()
}

func (s *Server) Serve() {
	http.HandleFunc("/ws", s.serveWs)
	http.HandleFunc("/report", s.serveReport)
	log.WithField("addr", s.addr).Info("serving")
	if err := http.ListenAndServe(s.addr, nil); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
