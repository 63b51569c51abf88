package baboo

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const metricsNamespace = "baboo"

const (
	ogResultOK      = "ok"
	ogResultLimited = "limited"
	ogResultError   = "error"
)

// Metrics groups the collectors of one App. Each App owns its registry so
// several apps (and tests) can run in the same process.
type Metrics struct {
	registry *prometheus.Registry

	lookups  *prometheus.CounterVec
	listings *prometheus.HistogramVec
	ogImages *prometheus.CounterVec
}

// NewMetrics registers the article and preview image collectors on reg,
// along with the Go runtime and process collectors.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "articles",
			Name:      "cache_lookups_total",
			Help:      "Cached article lookups by outcome.",
		}, []string{"outcome"}),
		listings: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "articles",
			Name:      "listing_duration_seconds",
			Help:      "Time spent building the sorted article listing.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"result"}),
		ogImages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "og",
			Name:      "images_total",
			Help:      "Open Graph image requests by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(
		m.lookups,
		m.listings,
		m.ogImages,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveLookup counts one cache lookup. It satisfies article.Recorder.
func (m *Metrics) ObserveLookup(outcome string) {
	m.lookups.WithLabelValues(outcome).Inc()
}

// ObserveListing records the duration of one listing call.
func (m *Metrics) ObserveListing(d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.listings.WithLabelValues(result).Observe(d.Seconds())
}

func (m *Metrics) ObserveOGImage(result string) {
	m.ogImages.WithLabelValues(result).Inc()
}

// Middleware instruments every HTTP request against the App registry.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  metricsNamespace,
		Subsystem:  "http",
		Registerer: m.registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	})
}

// Handler exposes the App registry in the Prometheus text format.
func (m *Metrics) Handler() echo.HandlerFunc {
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: m.registry,
	})
}
