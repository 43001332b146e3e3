package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/lablabs/storefront-client/internal/client"
	"github.com/lablabs/storefront-client/internal/storefront"
)

// MetricName represent metric name
type MetricName string

func (mn MetricName) String() string {
	return string(mn)
}

const (
	fetchTotalMetricName    MetricName = "storefront_fetch_total"
	fetchDurationMetricName MetricName = "storefront_fetch_duration_seconds"
	fetchEntitiesMetricName MetricName = "storefront_fetched_entities_total"
)

// Outcome label values.
const (
	OutcomeSuccess        = "success"
	OutcomeNotFound       = "not_found"
	OutcomeGraphQLError   = "graphql_error"
	OutcomeTransportError = "transport_error"
	OutcomeError          = "error"
)

// Set map to check metric name availability.
type Set map[MetricName]struct{}

// Has function check and return bool for metric availability.
func (ms Set) Has(mn MetricName) bool {
	_, exists := ms[mn]
	return exists
}

// Add function add metric name.
func (ms Set) Add(mn MetricName) {
	ms[mn] = struct{}{}
}

// BuildAllMetricsSet helps to build all metric and return as Set.
func BuildAllMetricsSet() Set {
	allMetricsSet := Set{}
	allMetricsSet.Add(fetchTotalMetricName)
	allMetricsSet.Add(fetchDurationMetricName)
	allMetricsSet.Add(fetchEntitiesMetricName)
	return allMetricsSet
}

// BuildDeniedMetricsSet returns Set and error.
func BuildDeniedMetricsSet(metricsDenylist []string) (Set, error) {
	deniedMetricsSet := Set{}
	allMetricsSet := BuildAllMetricsSet()
	for _, metric := range metricsDenylist {
		if !allMetricsSet.Has(MetricName(metric)) {
			return nil, fmt.Errorf("metric %s doesn't exists", metric)
		}
		deniedMetricsSet.Add(MetricName(metric))
	}
	return deniedMetricsSet, nil
}

// Metrics holds the gateway collectors on their own registry. Denied
// collectors stay nil and are skipped.
type Metrics struct {
	Registry *prometheus.Registry

	fetchTotal    *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	fetchEntities *prometheus.CounterVec
}

// MustRegisterMetrics creates a registry with the process collectors and
// every metric not in deniedMetrics.
func MustRegisterMetrics(deniedMetrics Set) *Metrics {
	m := &Metrics{Registry: prometheus.NewRegistry()}
	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if !deniedMetrics.Has(fetchTotalMetricName) {
		m.fetchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: fetchTotalMetricName.String(),
			Help: "Number of storefront fetch operations by outcome",
		}, []string{"operation", "outcome"})
		m.Registry.MustRegister(m.fetchTotal)
	}
	if !deniedMetrics.Has(fetchDurationMetricName) {
		m.fetchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    fetchDurationMetricName.String(),
			Help:    "Duration of storefront fetch operations",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"})
		m.Registry.MustRegister(m.fetchDuration)
	}
	if !deniedMetrics.Has(fetchEntitiesMetricName) {
		m.fetchEntities = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: fetchEntitiesMetricName.String(),
			Help: "Number of entities returned by storefront fetch operations",
		}, []string{"operation"})
		m.Registry.MustRegister(m.fetchEntities)
	}
	return m
}

// Observe records one fetch operation.
func (m *Metrics) Observe(operation string, started time.Time, entities int, err error) {
	if m == nil {
		return
	}
	if m.fetchTotal != nil {
		m.fetchTotal.WithLabelValues(operation, Outcome(err)).Inc()
	}
	if m.fetchDuration != nil {
		m.fetchDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
	}
	if m.fetchEntities != nil && err == nil {
		m.fetchEntities.WithLabelValues(operation).Add(float64(entities))
	}
}

// Outcome classifies err into an outcome label value.
func Outcome(err error) string {
	var gqlErr *client.GraphQLError
	var trErr *client.TransportError
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, storefront.ErrNotFound):
		return OutcomeNotFound
	case errors.As(err, &gqlErr):
		return OutcomeGraphQLError
	case errors.As(err, &trErr):
		return OutcomeTransportError
	default:
		return OutcomeError
	}
}
