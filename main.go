package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"irband/radiance"
	"irband/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	addr := flag.String("addr", ":9000", "listen address")
	conf := flag.String("conf", "conf/config.ini", "config file path")
	out := flag.String("out", "", "run the default scenario, write the HTML report here and exit")
	flag.Parse()

	radiance.LoadConfig(*conf)

	if *out != "" {
		runToFile(*out)
		return
	}

	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	s := server.NewServer(*addr, upgrader)
	s.Serve()
}

func runToFile(path string) {
	p := radiance.NewPipeline()
	report, err := p.Run(radiance.DefaultScenario())
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := radiance.RenderReportHTML(report, f); err != nil {
		log.Fatal(err)
	}
	log.WithFields(log.Fields{
		"path":     path,
		"layers":   len(report.Layers),
		"radiance": report.Radiance,
		"flux":     report.PhotonFlux,
	}).Info("report written")
}
