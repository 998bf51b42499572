// Package metrics exposes the service's prometheus collectors on a
// dedicated registry, served on the metrics port.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector registers and records the service's metrics.
type Collector struct {
	registry *prometheus.Registry

	requestDuration    *prometheus.HistogramVec
	menusPublished     *prometheus.CounterVec
	ordersCreated      prometheus.Counter
	suggestionsCreated prometheus.Counter
	statusUpdates      *prometheus.CounterVec
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Time taken to serve HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		menusPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "menus_published_total",
				Help: "Menus published, by created/replaced result",
			},
			[]string{"result"},
		),
		ordersCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Pickup orders placed",
			},
		),
		suggestionsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "suggestions_created_total",
				Help: "Customer suggestions submitted",
			},
		),
		statusUpdates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "status_updates_total",
				Help: "Staff triage status updates, by entity and new status",
			},
			[]string{"entity", "status"},
		),
	}

	c.registry.MustRegister(
		c.requestDuration,
		c.menusPublished,
		c.ordersCreated,
		c.suggestionsCreated,
		c.statusUpdates,
	)

	return c
}

// Handler serves the registry in the prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Middleware records a duration sample for every request routed by gin.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		c.requestDuration.
			WithLabelValues(ctx.Request.Method, route, strconv.Itoa(ctx.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// RecordMenuPublished counts a publish by its created/replaced result.
func (c *Collector) RecordMenuPublished(result string) {
	c.menusPublished.WithLabelValues(result).Inc()
}

// RecordOrderCreated counts a placed order.
func (c *Collector) RecordOrderCreated() {
	c.ordersCreated.Inc()
}

// RecordSuggestionCreated counts a submitted suggestion.
func (c *Collector) RecordSuggestionCreated() {
	c.suggestionsCreated.Inc()
}

// RecordStatusUpdate counts a staff triage action.
func (c *Collector) RecordStatusUpdate(entity, status string) {
	c.statusUpdates.WithLabelValues(entity, status).Inc()
}
