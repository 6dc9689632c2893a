// Package metrics holds the prometheus collectors shared by the HTTP layer and
// the services.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "passmeter"

// Collectors groups every metric the service exports.
type Collectors struct {
	Requests  *prometheus.CounterVec
	Duration  *prometheus.HistogramVec
	InFlight  prometheus.Gauge
	Analyses  *prometheus.CounterVec
	Generated *prometheus.CounterVec
}

// New creates the collectors and registers them with reg
// (prometheus.DefaultRegisterer when nil).
func New(reg prometheus.Registerer) (*Collectors, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collectors{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests partitioned by method, route, and status code.",
		}, []string{"method", "route", "status"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Histogram of HTTP request latencies in seconds partitioned by method, route, and status code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		InFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		Analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Passwords analyzed, partitioned by strength bucket.",
		}, []string{"strength"}),
		Generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passwords_generated_total",
			Help:      "Passwords generated, partitioned by whether the result was empty.",
		}, []string{"result"}),
	}

	for _, col := range []prometheus.Collector{c.Requests, c.Duration, c.InFlight, c.Analyses, c.Generated} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}

	return c, nil
}

// ObserveAnalysis counts one analysis in the given bucket.
func (c *Collectors) ObserveAnalysis(strength string) {
	if c == nil {
		return
	}
	c.Analyses.WithLabelValues(strength).Inc()
}

// ObserveGenerated counts one generated password.
func (c *Collectors) ObserveGenerated(empty bool) {
	if c == nil {
		return
	}
	result := "ok"
	if empty {
		result = "empty"
	}
	c.Generated.WithLabelValues(result).Inc()
}
