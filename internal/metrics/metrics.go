package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Render outcomes used as the status label.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	PageRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docsite_page_renders_total",
		Help: "Total number of page renders by page and outcome",
	}, []string{"page", "status"})

	PageRenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "docsite_page_render_duration_seconds",
		Help:    "Time spent rendering a page to bytes",
		Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
	}, []string{"page"})

	ExportedFiles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "docsite_exported_files_total",
		Help: "Total number of files written by static exports",
	})
)

// ObserveRender records one page render.
func ObserveRender(page string, err error, elapsed time.Duration) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	PageRenders.WithLabelValues(page, status).Inc()
	PageRenderDuration.WithLabelValues(page).Observe(elapsed.Seconds())
}
