package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotel", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hotel", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "hotel", Name: "http_rate_limited_total", Help: "Requests rejected by the rate limiter."},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotel", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
	CatalogRooms = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Namespace: "hotel", Name: "catalog_rooms", Help: "Rooms in the loaded catalog."},
		[]string{"state"}, // state: total|available
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, RateLimited, CacheEvents, CatalogRooms)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveRateLimited() { RateLimited.Inc() }

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

// ObserveCatalog is called once after the catalog loads.
func ObserveCatalog(total, available int) {
	CatalogRooms.WithLabelValues("total").Set(float64(total))
	CatalogRooms.WithLabelValues("available").Set(float64(available))
}
