package controllers

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	quenchControllerReconcileTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quench_controller_reconcile_total",
			Help: "Number of reconciliations by controller.",
		},
		[]string{"controller"},
	)
	quenchControllerReconcileErrorTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quench_controller_reconcile_error_total",
			Help: "Number of reconciliation errors by controller.",
		},
		[]string{"controller"},
	)

	teardownDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quench_teardown_duration_seconds",
			Help:    "Time taken to tear down a component's workloads.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	metrics.Registry.MustRegister(
		quenchControllerReconcileTotal,
		quenchControllerReconcileErrorTotal,
		teardownDuration,
	)
}
