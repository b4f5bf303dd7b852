package observability

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the prometheus collectors of the dispatch pipeline
type Metrics struct {
	TripsCreated     *prometheus.CounterVec
	TripsCanceled    prometheus.Counter
	DispatchRounds   *prometheus.CounterVec
	OffersSent       prometheus.Counter
	OffersAccepted   prometheus.Counter
	OffersDeclined   prometheus.Counter
	DispatchDuration prometheus.Histogram
	JobsProcessed    *prometheus.CounterVec
}

// NewMetrics registers and returns the application metrics
func NewMetrics() *Metrics {
	return &Metrics{
		TripsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "taker_trips_created_total",
			Help: "Trips created, labeled by payment method",
		}, []string{"payment_method"}),
		TripsCanceled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "taker_trips_canceled_total",
			Help: "Trips canceled by customers",
		}),
		DispatchRounds: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "taker_dispatch_rounds_total",
			Help: "Dispatch rounds, labeled by outcome",
		}, []string{"outcome"}),
		OffersSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "taker_offers_sent_total",
			Help: "Trip offers sent to shoemakers",
		}),
		OffersAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "taker_offers_accepted_total",
			Help: "Trip offers accepted by shoemakers",
		}),
		OffersDeclined: promauto.NewCounter(prometheus.CounterOpts{
			Name: "taker_offers_declined_total",
			Help: "Trip offers declined by shoemakers",
		}),
		DispatchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "taker_dispatch_round_duration_seconds",
			Help:    "Time from round start until a winner or timeout",
			Buckets: []float64{1, 5, 10, 20, 30, 45, 60, 62, 90},
		}),
		JobsProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "taker_scheduler_jobs_total",
			Help: "Scheduler jobs processed, labeled by job name and result",
		}, []string{"job", "result"}),
	}
}

// RegisterMetricsEndpoint exposes /metrics on the given echo instance
func RegisterMetricsEndpoint(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
