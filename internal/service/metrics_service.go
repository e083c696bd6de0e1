package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the kalender API.
type MetricsService struct {
	registry           *prometheus.Registry
	handler            http.Handler
	requestDuration    *prometheus.HistogramVec
	requestTotal       *prometheus.CounterVec
	monthsSynthesized  prometheus.Counter
	synthesisDuration  prometheus.Histogram
	conversionFailures *prometheus.CounterVec
	rateLimited        prometheus.Counter
	fixedHolidays      prometheus.Gauge
}

// NewMetricsService registers core Prometheus collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	monthsSynthesized := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kalender_months_synthesized_total",
		Help: "Months assembled into day records",
	})

	synthesisDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "kalender_month_synthesis_seconds",
		Help:    "Time spent assembling one month",
		Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
	})

	conversionFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "calendar_conversion_failures_total",
		Help: "Days for which an external calendar conversion failed",
	}, []string{"calendar"})

	rateLimited := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "http_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	})

	fixedHolidays := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "kalender_fixed_holidays",
		Help: "Dates in the loaded fixed-date holiday table",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, monthsSynthesized, synthesisDuration, conversionFailures, rateLimited, fixedHolidays, goroutines)

	return &MetricsService{
		registry:           registry,
		handler:            promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:    requestDuration,
		requestTotal:       requestTotal,
		monthsSynthesized:  monthsSynthesized,
		synthesisDuration:  synthesisDuration,
		conversionFailures: conversionFailures,
		rateLimited:        rateLimited,
		fixedHolidays:      fixedHolidays,
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveMonth records one synthesized month.
func (m *MetricsService) ObserveMonth(duration time.Duration) {
	if m == nil {
		return
	}
	m.monthsSynthesized.Inc()
	m.synthesisDuration.Observe(duration.Seconds())
}

// RecordConversionFailure counts a failed conversion for calendarName ("hijri", "lunar").
func (m *MetricsService) RecordConversionFailure(calendarName string) {
	if m == nil {
		return
	}
	m.conversionFailures.WithLabelValues(calendarName).Inc()
}

// RecordRateLimited counts a rejected request.
func (m *MetricsService) RecordRateLimited() {
	if m == nil {
		return
	}
	m.rateLimited.Inc()
}

// SetFixedHolidays publishes the size of the fixed-date table.
func (m *MetricsService) SetFixedHolidays(n int) {
	if m == nil {
		return
	}
	m.fixedHolidays.Set(float64(n))
}
