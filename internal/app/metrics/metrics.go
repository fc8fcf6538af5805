package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "scribe"

// Outcome label values
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics records upload and transcription activity.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	transcriptions *prometheus.CounterVec
	failures       *prometheus.CounterVec
	latency        *prometheus.HistogramVec
	audioBytes     prometheus.Histogram
	rejections     *prometheus.CounterVec
	sessions       prometheus.Gauge
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		transcriptions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcriptions_total",
			Help:      "Transcription requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transcription_failures_total",
			Help:      "Failed transcription requests by provider and error code.",
		}, []string{"provider", "code"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transcription_duration_seconds",
			Help:      "Round trip time of transcription requests.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80, 160, 320},
		}, []string{"provider"}),
		audioBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "audio_bytes",
			Help:      "Size of audio files sent for transcription.",
			Buckets:   prometheus.ExponentialBuckets(64*1024, 4, 8),
		}),
		rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upload_rejections_total",
			Help:      "Uploads rejected by validation, by reason.",
		}, []string{"reason"}),
		sessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Sessions currently held in memory.",
		}),
	}
}

// RecordSuccess records a successful transcription
func (m *Metrics) RecordSuccess(provider string, latency time.Duration, audioBytes int) {
	if m == nil {
		return
	}
	m.transcriptions.WithLabelValues(provider, OutcomeSuccess).Inc()
	m.latency.WithLabelValues(provider).Observe(latency.Seconds())
	m.audioBytes.Observe(float64(audioBytes))
}

// RecordFailure records a failed transcription
func (m *Metrics) RecordFailure(provider, code string, latency time.Duration) {
	if m == nil {
		return
	}
	m.transcriptions.WithLabelValues(provider, OutcomeFailure).Inc()
	m.failures.WithLabelValues(provider, code).Inc()
	m.latency.WithLabelValues(provider).Observe(latency.Seconds())
}

// RecordRejection records an upload rejected by validation
func (m *Metrics) RecordRejection(reason string) {
	if m == nil {
		return
	}
	m.rejections.WithLabelValues(reason).Inc()
}

// SetActiveSessions sets the number of live sessions
func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.sessions.Set(float64(n))
}
