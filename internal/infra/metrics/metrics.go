// Package metrics owns the service's Prometheus registry and the collectors
// the other layers report into.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "charter"

type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpLatency         *prometheus.HistogramVec
	cacheEvents         *prometheus.CounterVec
	reservationsCreated prometheus.Counter
	reservationRejects  *prometheus.CounterVec
	transitions         *prometheus.CounterVec
	paymentsSettled     *prometheus.CounterVec
	outboxEvents        *prometheus.CounterVec
	txRetries           prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
			[]string{"route", "method", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "http_request_duration_seconds",
				Help:    "HTTP request duration seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		cacheEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
			[]string{"cache", "event"},
		),
		reservationsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "reservations_created_total", Help: "Reservations created."},
		),
		reservationRejects: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "reservation_rejections_total", Help: "Reservation creates rejected, by error kind."},
			[]string{"kind"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "reservation_transitions_total", Help: "Reservation status transitions."},
			[]string{"to"},
		),
		paymentsSettled: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "payments_settled_total", Help: "Payment attempts settled, by outcome."},
			[]string{"outcome"},
		),
		outboxEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "outbox_events_total", Help: "Outbox relay results."},
			[]string{"topic", "result"},
		),
		txRetries: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "tx_retries_total", Help: "Transactions retried after serialization failures or deadlocks."},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests, m.httpLatency, m.cacheEvents,
		m.reservationsCreated, m.reservationRejects, m.transitions,
		m.paymentsSettled, m.outboxEvents, m.txRetries,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTP(route, method string, status int, dur time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

// ObserveCache records one of hit, miss, set, del or error.
func (m *Metrics) ObserveCache(cache, event string) {
	m.cacheEvents.WithLabelValues(cache, event).Inc()
}

func (m *Metrics) ReservationCreated() {
	m.reservationsCreated.Inc()
}

func (m *Metrics) ReservationRejected(kind string) {
	m.reservationRejects.WithLabelValues(kind).Inc()
}

func (m *Metrics) ReservationTransitioned(to string) {
	m.transitions.WithLabelValues(to).Inc()
}

func (m *Metrics) PaymentSettled(outcome string) {
	m.paymentsSettled.WithLabelValues(outcome).Inc()
}

// ObserveOutbox records published or retry for one relayed event.
func (m *Metrics) ObserveOutbox(topic, result string) {
	m.outboxEvents.WithLabelValues(topic, result).Inc()
}

func (m *Metrics) TxRetried() {
	m.txRetries.Inc()
}
