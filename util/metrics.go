package util

import (
	"net/http"

	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	bytesWritten = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "diskfill_bytes_written_total",
		Help: "Bytes accepted by write calls of fill-disk",
	})
	blocksSynced = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "diskfill_blocks_synced_total",
		Help: "Blocks written and synced by fill-disk",
	})
	filesCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "diskfill_files_created_total",
		Help: "1-byte files created and synced by make-files",
	})
)

func init() {
	prometheus.MustRegister(bytesWritten, blocksSynced, filesCreated)
}

// ServeMetrics exposes the default registry on addr in the background.
func ServeMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			glog.Errorf("metrics listener on %s: %v", addr, err)
		}
	}()
}
