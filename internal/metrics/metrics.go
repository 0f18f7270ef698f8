package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	SubmissionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "relay_submissions_total", Help: "Total accepted form submissions"},
	)
	NotifyFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "relay_notify_failed_total", Help: "Total submissions whose Telegram notification did not go through"},
	)
	StoreFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "relay_store_failed_total", Help: "Total payment proofs that could not be stored"},
	)
	RegistryFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "relay_registry_failed_total", Help: "Total registry appends that failed (submission left no durable record)"},
	)
)

func Register() {
	prometheus.MustRegister(SubmissionsTotal, NotifyFailures, StoreFailures, RegistryFailures)
}
