package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
)

// Start a small HTTP server that accepts gesture webhooks and logs them.
// Point a tiny-button webhook target at it to try out a configuration.

func main() {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	log.Info("Starting webhook sink at :9090")
	server := http.Server{Addr: ":9090"}
	http.HandleFunc("/", sinkHandler)

	go func() {
		<-signalChan
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	server.ListenAndServe()
}

type gesture struct {
	Channel   string `json:"channel"`
	Event     string `json:"event"`
	Timestamp string `json:"timestamp"`
}

func sinkHandler(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var g gesture
	if err := json.NewDecoder(req.Body).Decode(&g); err != nil {
		log.Warn("Discarding unparseable payload: ", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	auth := "without auth"
	if req.Header.Get("Authorization") != "" {
		auth = "with auth"
	}
	log.Infof("Received %v on %v at %v (%v)", g.Event, g.Channel, g.Timestamp, auth)
}
