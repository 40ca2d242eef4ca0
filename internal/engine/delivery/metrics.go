package delivery

import "github.com/prometheus/client_golang/prometheus"

var (
	metricEnqueued = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notification_tasks_enqueued_total",
		Help: "Delivery tasks accepted onto the queue",
	}, []string{"channel"})
	metricDropped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notification_tasks_dropped_total",
		Help: "Delivery tasks rejected because the queue was full",
	}, []string{"channel"})
	metricDelivered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notification_deliveries_total",
		Help: "Tasks that reached a 2xx response",
	}, []string{"channel"})
	metricFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notification_failures_total",
		Help: "Tasks abandoned after the retry ceiling",
	}, []string{"channel"})
	metricAttempts = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "notification_delivery_attempts",
		Help:    "Attempts used per successfully delivered task",
		Buckets: []float64{1, 2, 3, 4, 5},
	})
)

func init() {
	prometheus.MustRegister(
		metricEnqueued,
		metricDropped,
		metricDelivered,
		metricFailed,
		metricAttempts,
	)
}
