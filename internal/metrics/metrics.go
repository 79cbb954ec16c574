package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wwt",
			Name:      "bookings_created_total",
			Help:      "Count of booking requests by service type.",
		},
		[]string{"service_type"},
	)

	emailsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wwt",
			Name:      "emails_sent_total",
			Help:      "Count of transactional emails by template and outcome.",
		},
		[]string{"template", "status"},
	)

	offerResponses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wwt",
			Name:      "offer_responses_total",
			Help:      "Count of customer answers to tour offers.",
		},
		[]string{"decision"},
	)

	invoicesApproved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "wwt",
			Name:      "invoices_approved_total",
			Help:      "Count of invoices approved by customers.",
		},
	)

	lunchOrdersApproved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "wwt",
			Name:      "lunch_orders_approved_total",
			Help:      "Count of lunch orders approved by customers.",
		},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wwt",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingsCreated, emailsSent, offerResponses, invoicesApproved, lunchOrdersApproved, httpDuration)
	})
}

func IncBookingsCreated(serviceType string) {
	bookingsCreated.WithLabelValues(serviceType).Inc()
}

func IncEmailsSent(template, status string) {
	emailsSent.WithLabelValues(template, status).Inc()
}

func IncOfferResponses(decision string) {
	offerResponses.WithLabelValues(decision).Inc()
}

func IncInvoicesApproved() {
	invoicesApproved.Inc()
}

func IncLunchOrdersApproved() {
	lunchOrdersApproved.Inc()
}

func ObserveHTTP(method, route string, status int, seconds float64) {
	httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(seconds)
}
