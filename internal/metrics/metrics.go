// Package metrics defines the Prometheus collectors exported on /metrics.
//
// All collectors are registered on the default registry at package init;
// every operation on them is safe for concurrent use.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "budgetly"

var (
	// HTTPRequestsTotal counts handled requests.
	// Labels: method, route (the gin route pattern), status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration measures request latency.
	// Labels: method, route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// ExpenseOperationsTotal counts successful expense mutations.
	// Labels: operation (create, update, delete).
	ExpenseOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "expenses",
		Name:      "operations_total",
		Help:      "Successful expense mutations by operation.",
	}, []string{"operation"})

	// BudgetUpsertsTotal counts budget upserts.
	// Labels: outcome (created, updated).
	BudgetUpsertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "budgets",
		Name:      "upserts_total",
		Help:      "Budget upserts by whether a row was created or overwritten.",
	}, []string{"outcome"})

	// BudgetAlertsTotal counts overview computations that ended in an alert state.
	// Labels: state (warning, over_budget).
	BudgetAlertsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "budgets",
		Name:      "alerts_total",
		Help:      "Budget overviews whose total comparison was in an alert state.",
	}, []string{"state"})
)

// Handler returns the Prometheus exposition handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
