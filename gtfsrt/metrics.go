package gtfsrt

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gtfsrt_proxy_upstream_fetch_total",
		Help: "Upstream fetch attempts by feed type and outcome.",
	}, []string{"feed", "outcome"})

	probeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gtfsrt_proxy_discovery_probe_total",
		Help: "Discovery probes by feed type and outcome.",
	}, []string{"feed", "outcome"})
)

func recordFetch(feed Feed, kind OutcomeKind) {
	fetchTotal.WithLabelValues(string(feed), kind.String()).Inc()
}

// RecordProbe counts one discovery probe outcome.
func RecordProbe(feed Feed, kind OutcomeKind) {
	probeTotal.WithLabelValues(string(feed), kind.String()).Inc()
}
