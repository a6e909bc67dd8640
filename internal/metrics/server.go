package metrics

import (
	"log"
	"net/http"
	"time"
)

// Serve exposes the collector on addr at /metrics. It blocks until the
// listener fails.
func Serve(addr string, c *Collector) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("metrics listening on %s/metrics", addr)
	return srv.ListenAndServe()
}
