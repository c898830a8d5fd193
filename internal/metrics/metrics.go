package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics собирает счётчики приложения.
type Metrics struct {
	// HTTP запросы (method, path, status_code)
	HTTPRequestsTotal *prometheus.CounterVec

	// Латентность HTTP запросов (method, path)
	HTTPRequestDuration *prometheus.HistogramVec

	// Проданные билеты по типу (general, child, student, combo)
	TicketsSoldTotal *prometheus.CounterVec

	// Резервирования мест (status: reserved, failed)
	SeatsReservedTotal *prometheus.CounterVec

	// Продажи кондитерской
	ConcessionSalesTotal prometheus.Counter
}

// New регистрирует метрики в реестре по умолчанию.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном реестре.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		TicketsSoldTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tickets_sold_total",
				Help: "Total number of tickets sold by ticket type",
			},
			[]string{"type"},
		),
		SeatsReservedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seats_reserved_total",
				Help: "Total number of seat reservation attempts",
			},
			[]string{"status"},
		),
		ConcessionSalesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "concession_sales_total",
				Help: "Total number of concession sales",
			},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.TicketsSoldTotal,
		m.SeatsReservedTotal,
		m.ConcessionSalesTotal,
	)

	return m
}
