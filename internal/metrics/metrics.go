// Package metrics defines the Prometheus collectors exported by the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups every collector the feature packages record into.
type Metrics struct {
	ChatRequests         *prometheus.CounterVec
	ChatStreamBytes      prometheus.Counter
	ContactSubmissions   *prometheus.CounterVec
	CertificateDownloads *prometheus.CounterVec
	VitalsLoadTime       prometheus.Histogram
	VitalsFPS            prometheus.Histogram
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ChatRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_chat_requests_total",
				Help: "Chat proxy requests by outcome",
			},
			[]string{"outcome"},
		),
		ChatStreamBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "folio_chat_stream_bytes_total",
			Help: "Bytes relayed from the inference gateway to clients",
		}),
		ContactSubmissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_contact_submissions_total",
				Help: "Contact form submissions by validation result",
			},
			[]string{"result"},
		),
		CertificateDownloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_certificate_downloads_total",
				Help: "Certificate downloads by file",
			},
			[]string{"file"},
		),
		VitalsLoadTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "folio_vitals_load_time_seconds",
			Help:    "Page load time reported by browsers",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 8),
		}),
		VitalsFPS: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "folio_vitals_fps",
			Help:    "Frame rate reported by browsers",
			Buckets: []float64{15, 24, 30, 45, 60, 90, 120},
		}),
	}
	reg.MustRegister(
		m.ChatRequests,
		m.ChatStreamBytes,
		m.ContactSubmissions,
		m.CertificateDownloads,
		m.VitalsLoadTime,
		m.VitalsFPS,
	)
	return m
}

// NewUnregistered returns collectors bound to a private registry, for tests
// and commands that do not expose /metrics.
func NewUnregistered() *Metrics {
	return New(prometheus.NewRegistry())
}
