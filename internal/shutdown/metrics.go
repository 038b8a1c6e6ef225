package shutdown

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	shutdownRunTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quench_shutdown_runs_total",
			Help: "Number of component shutdown attempts.",
		},
	)
	shutdownErrorTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quench_shutdown_errors_total",
			Help: "Number of failed component shutdown attempts by reason.",
		},
		[]string{"reason"},
	)

	instanceStopTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quench_instance_stops_total",
			Help: "Number of instance stops completed successfully.",
		},
	)
	instanceStopFailureTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quench_instance_stop_failures_total",
			Help: "Number of instance stops that returned an error.",
		},
	)
	instanceStopDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quench_instance_stop_duration_seconds",
			Help:    "Time taken to stop one instance.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	metrics.Registry.MustRegister(
		shutdownRunTotal,
		shutdownErrorTotal,
		instanceStopTotal,
		instanceStopFailureTotal,
		instanceStopDuration,
	)
}
