package server

import (
	"net/http"
)

// NicknamePath is the public lookup endpoint.
const NicknamePath = "/api/v1/nickname"

// NewMux assembles the routing table: the nickname gateway, liveness, and
// metrics. Everything else is a 404.
func NewMux(gateway http.Handler, metricsHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	if gateway == nil {
		gateway = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "gateway unavailable", http.StatusServiceUnavailable)
		})
	}
	mux.Handle(NicknamePath, gateway)
	if metricsHandler != nil {
		mux.Handle("/metrics", metricsHandler)
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	return mux
}
