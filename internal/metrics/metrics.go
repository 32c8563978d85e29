// Package metrics collects and exposes Prometheus metrics for the
// content pipeline.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what the outbound clients record against.
type Recorder interface {
	RecordOutboundRequest(api string, statusCode int)
	RecordOutboundLatency(api string, duration time.Duration)
	RecordSummaryChunks(count int)
	RecordPublish()
}

// Collector implements Recorder on a Prometheus registry.
type Collector struct {
	outboundRequests *prometheus.CounterVec
	outboundLatency  *prometheus.HistogramVec
	summaryChunks    prometheus.Counter
	publishes        prometheus.Counter
}

// NewCollector registers the pipeline metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		outboundRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vidchef_outbound_requests_total",
			Help: "Outbound API requests by upstream and HTTP status.",
		}, []string{"api", "status_code"}),
		outboundLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vidchef_outbound_latency_seconds",
			Help:    "Outbound API request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"api"}),
		summaryChunks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vidchef_summary_chunks_total",
			Help: "Transcript chunks sent for summarization.",
		}),
		publishes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vidchef_publishes_total",
			Help: "Articles published.",
		}),
	}

	reg.MustRegister(
		c.outboundRequests,
		c.outboundLatency,
		c.summaryChunks,
		c.publishes,
	)

	return c
}

func (c *Collector) RecordOutboundRequest(api string, statusCode int) {
	c.outboundRequests.WithLabelValues(api, strconv.Itoa(statusCode)).Inc()
}

func (c *Collector) RecordOutboundLatency(api string, duration time.Duration) {
	c.outboundLatency.WithLabelValues(api).Observe(duration.Seconds())
}

func (c *Collector) RecordSummaryChunks(count int) {
	c.summaryChunks.Add(float64(count))
}

func (c *Collector) RecordPublish() {
	c.publishes.Inc()
}

// Handler returns the scrape handler for the given gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards every record; used where no registry is wired, e.g. tests.
type Nop struct{}

func (Nop) RecordOutboundRequest(string, int)           {}
func (Nop) RecordOutboundLatency(string, time.Duration) {}
func (Nop) RecordSummaryChunks(int)                     {}
func (Nop) RecordPublish()                              {}
