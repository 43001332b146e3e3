package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lablabs/storefront-client/internal/client"
	"github.com/lablabs/storefront-client/internal/storefront"
)

// -------- Test: BuildAllMetricsSet --------
func TestBuildAllMetricsSet(t *testing.T) {
	metricsSet := BuildAllMetricsSet()

	assert.True(t, metricsSet.Has("storefront_fetch_total"))
	assert.True(t, metricsSet.Has("storefront_fetch_duration_seconds"))
	assert.False(t, metricsSet.Has("non_existent_metric"))
}

// -------- Test: BuildDeniedMetricsSet --------
func TestBuildDeniedMetricsSet_ValidMetrics(t *testing.T) {
	set, err := BuildDeniedMetricsSet([]string{"storefront_fetched_entities_total"})

	assert.NoError(t, err)
	assert.True(t, set.Has("storefront_fetched_entities_total"))
	assert.False(t, set.Has("storefront_fetch_total"))
}

func TestBuildDeniedMetricsSet_InvalidMetric(t *testing.T) {
	set, err := BuildDeniedMetricsSet([]string{"non_existent_metric"})

	assert.Error(t, err)
	assert.Nil(t, set)
}

// -------- Test: Outcome --------
func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, Outcome(nil))
	assert.Equal(t, OutcomeNotFound, Outcome(&storefront.NotFoundError{Kind: "product", ID: "1"}))
	assert.Equal(t, OutcomeGraphQLError, Outcome(&storefront.FetchError{Operation: "op", Err: &client.GraphQLError{}}))
	assert.Equal(t, OutcomeTransportError, Outcome(&storefront.FetchError{Operation: "op", Err: &client.TransportError{Err: errors.New("x")}}))
	assert.Equal(t, OutcomeError, Outcome(errors.New("other")))
}

// -------- Test: Observe --------
func TestObserve(t *testing.T) {
	m := MustRegisterMetrics(Set{})

	m.Observe("FetchAllProducts", time.Now(), 2, nil)
	m.Observe("FetchAllProducts", time.Now(), 0, &storefront.NotFoundError{})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.fetchTotal.WithLabelValues("FetchAllProducts", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fetchTotal.WithLabelValues("FetchAllProducts", OutcomeNotFound)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.fetchEntities.WithLabelValues("FetchAllProducts")))
}

func TestObserve_DeniedMetricsSkipped(t *testing.T) {
	denied, err := BuildDeniedMetricsSet([]string{"storefront_fetch_total"})
	require.NoError(t, err)

	m := MustRegisterMetrics(denied)

	assert.Nil(t, m.fetchTotal)
	assert.NotPanics(t, func() { m.Observe("FetchProduct", time.Now(), 1, nil) })

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.Observe("FetchProduct", time.Now(), 1, nil) })
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := MustRegisterMetrics(Set{})
	m.Observe("FetchCollection", time.Now(), 1, nil)

	r := gin.New()
	r.GET("/metrics", m.Handler())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `storefront_fetch_total{operation="FetchCollection",outcome="success"} 1`)
}
