package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollectorRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordOutboundRequest("youtube", 200)
	c.RecordOutboundRequest("youtube", 200)
	c.RecordOutboundRequest("openai", 500)
	c.RecordOutboundLatency("youtube", 120*time.Millisecond)
	c.RecordSummaryChunks(3)
	c.RecordPublish()

	require.Equal(t, float64(2),
		testutil.ToFloat64(c.outboundRequests.WithLabelValues("youtube", "200")))
	require.Equal(t, float64(1),
		testutil.ToFloat64(c.outboundRequests.WithLabelValues("openai", "500")))
	require.Equal(t, float64(3), testutil.ToFloat64(c.summaryChunks))
	require.Equal(t, float64(1), testutil.ToFloat64(c.publishes))
}

func TestHandlerServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordPublish()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	Handler(reg).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "vidchef_publishes_total")
}

func TestNop(t *testing.T) {
	var r Recorder = Nop{}
	r.RecordOutboundRequest("youtube", 200)
	r.RecordOutboundLatency("youtube", time.Second)
	r.RecordSummaryChunks(1)
	r.RecordPublish()
}
