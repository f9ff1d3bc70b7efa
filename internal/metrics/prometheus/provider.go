package prometheus

import (
	"strconv"
	"time"

	"yatube/internal/metrics"
)

type MetricsProvider struct{}

func NewMetricsProvider() metrics.Provider {
	return &MetricsProvider{}
}

func (p *MetricsProvider) IncrementHTTPRequests(handler, status string) {
	HTTPRequestsTotal.WithLabelValues(handler, status).Inc()
}

func (p *MetricsProvider) RecordHTTPRequestDuration(handler, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(handler, status).Observe(duration.Seconds())
}

func (p *MetricsProvider) IncrementDatabaseQueries(queryType string, success bool) {
	DatabaseQueriesTotal.WithLabelValues(queryType, strconv.FormatBool(success)).Inc()
}

func (p *MetricsProvider) RecordDatabaseQueryDuration(queryType string, duration time.Duration) {
	DatabaseQueryDuration.WithLabelValues(queryType).Observe(duration.Seconds())
}

func (p *MetricsProvider) IncrementPostOperations(operation string, success bool) {
	PostOperationsTotal.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (p *MetricsProvider) IncrementGroupOperations(operation string, success bool) {
	GroupOperationsTotal.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (p *MetricsProvider) IncrementAuthOperations(operation string, success bool) {
	AuthOperationsTotal.WithLabelValues(operation, strconv.FormatBool(success)).Inc()
}

func (p *MetricsProvider) SetServiceHealth(healthy bool) {
	if healthy {
		ServiceHealth.Set(1)
	} else {
		ServiceHealth.Set(0)
	}
}
