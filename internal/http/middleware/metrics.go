package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics собирает счётчик и гистограмму длительности HTTP-запросов.
// Лейбл path — шаблон маршрута chi (а не сырой URL), чтобы кардинальность
// метрик не росла с числом пользователей.
func Metrics(reg prometheus.Registerer) Middleware {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	reg.MustRegister(requests, duration)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)
			elapsed := time.Since(start)

			path := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					path = pattern
				}
			}

			status := sw.status
			if status == 0 {
				status = http.StatusOK
			}

			requests.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()
			duration.WithLabelValues(r.Method, path).Observe(elapsed.Seconds())
		})
	}
}
