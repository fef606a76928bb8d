// Package metrics exposes Prometheus counters for registry operations and a
// dedicated metrics HTTP server.
package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	certificatesIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "registry_certificates_issued_total",
			Help: "Total number of certificates issued through this service",
		},
	)
	certificatesRevoked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "registry_certificates_revoked_total",
			Help: "Total number of certificates revoked through this service",
		},
	)
	verifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registry_verifications_total",
			Help: "Total number of verification requests by outcome",
		},
		[]string{"outcome"},
	)
)

// Verification outcome labels.
const (
	OutcomeValid    = "valid"
	OutcomeNotFound = "not_found"
	OutcomeRevoked  = "revoked"
	OutcomeExpired  = "expired"
	OutcomeMismatch = "holder_mismatch"
)

// RecordIssued increments the issued counter.
func RecordIssued() {
	certificatesIssued.Inc()
}

// RecordRevoked increments the revoked counter.
func RecordRevoked() {
	certificatesRevoked.Inc()
}

// RecordVerification increments the verification counter for the outcome.
func RecordVerification(outcome string) {
	verifications.WithLabelValues(outcome).Inc()
}

// MetricsServer serves the Prometheus scrape endpoint on its own listener,
// separate from the API server.
type MetricsServer struct {
	srv *http.Server
}

// New creates a metrics server for the given listen address.
func New(name, listenAddr string) (*MetricsServer, error) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		srv: &http.Server{
			Addr:    listenAddr,
			Handler: mux,
		},
	}, nil
}

// ListenAndServe blocks serving the scrape endpoint.
func (m *MetricsServer) ListenAndServe() error {
	return m.srv.ListenAndServe()
}

// Shutdown gracefully stops the metrics server.
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	return m.srv.Shutdown(ctx)
}
