package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/theirongolddev/breakeven/internal/model"
	"github.com/theirongolddev/breakeven/internal/store"
)

type metrics struct {
	registry *prometheus.Registry

	mutations *prometheus.CounterVec
	version   prometheus.Gauge
	netProfit prometheus.Gauge
	requests  *prometheus.CounterVec
	latency   *prometheus.HistogramVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "breakeven_store_mutations_total",
			Help: "Committed store mutations by collection and operation.",
		}, []string{"collection", "op"}),
		version: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "breakeven_store_version",
			Help: "Current store version.",
		}),
		netProfit: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "breakeven_projected_net_profit_dollars",
			Help: "Projected monthly net profit after the latest change.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "breakeven_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "breakeven_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
	m.registry.MustRegister(
		m.mutations, m.version, m.netProfit, m.requests, m.latency,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *metrics) observeChange(ev store.Event, p model.Projection) {
	collection := string(ev.Collection)
	if collection == "" {
		collection = "all"
	}
	m.mutations.WithLabelValues(collection, string(ev.Op)).Inc()
	m.version.Set(float64(ev.Version))
	m.netProfit.Set(p.NetProfit)
}

func (m *metrics) handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// instrument logs each request and records its status and latency.
func instrument(m *metrics, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)
		m.requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.latency.WithLabelValues(route).Observe(elapsed.Seconds())

		logger.Debug("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", elapsed),
			zap.String("client_ip", c.ClientIP()))
	}
}
