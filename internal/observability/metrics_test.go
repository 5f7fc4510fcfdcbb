package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorCounts(t *testing.T) {
	c := NewCollector("arena")
	c.VisualsGenerated.WithLabelValues("story").Add(2)
	c.PackagesBuilt.Inc()
	c.ObserveHTTP(http.MethodPost, "/v1/design", http.StatusOK, 20*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.VisualsGenerated.WithLabelValues("story")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.PackagesBuilt))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.HTTPRequests.WithLabelValues(http.MethodPost, "/v1/design", "200")))
}

func TestCollectorHandler(t *testing.T) {
	c := NewCollector("arena")
	c.MotionsGenerated.Inc()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "arena_motions_generated_total 1"))
}
