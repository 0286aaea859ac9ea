package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tictactoe"

// Metrics - the collectors of one process, registered on their own registry.
type Metrics struct {
	Registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	gamesStarted  prometheus.Counter
	gamesFinished *prometheus.CounterVec
	moves         *prometheus.CounterVec
}

func New() *Metrics {
	that := &Metrics{
		Registry: prometheus.NewRegistry(),

		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}, []string{"method", "route"}),

		gamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "games",
			Name:      "started_total",
			Help:      "Total number of games started.",
		}),
		gamesFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "games",
			Name:      "finished_total",
			Help:      "Total number of games that reached a terminal state, by outcome.",
		}, []string{"outcome"}),
		moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "games",
			Name:      "moves_total",
			Help:      "Total number of submitted moves, by result.",
		}, []string{"result"}),
	}

	that.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		that.httpInFlight,
		that.httpRequests,
		that.httpDuration,
		that.gamesStarted,
		that.gamesFinished,
		that.moves,
	)

	return that
}

func (that *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(that.Registry, promhttp.HandlerOpts{})
}

func (that *Metrics) GameStarted() {
	that.gamesStarted.Inc()
}

func (that *Metrics) GameFinished(outcome string) {
	that.gamesFinished.WithLabelValues(outcome).Inc()
}

// MoveRecorded - counts a move by result, e.g. "accepted" or the rejection reason.
func (that *Metrics) MoveRecorded(result string) {
	that.moves.WithLabelValues(result).Inc()
}

func (that *Metrics) RequestStarted() {
	that.httpInFlight.Inc()
}

func (that *Metrics) RequestFinished(method, route string, status int, duration time.Duration) {
	that.httpInFlight.Dec()
	that.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	that.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
