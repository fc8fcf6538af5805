package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.RecordSuccess("gemini", 2*time.Second, 5*1024*1024)
	m.RecordSuccess("gemini", time.Second, 1024)
	m.RecordFailure("gemini", "api_error_400", 300*time.Millisecond)
	m.RecordRejection("too_large")
	m.SetActiveSessions(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.transcriptions.WithLabelValues("gemini", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transcriptions.WithLabelValues("gemini", OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("gemini", "api_error_400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejections.WithLabelValues("too_large")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.sessions))

	count, err := testutil.GatherAndCount(reg, "scribe_transcription_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordSuccess("gemini", time.Second, 1)
		m.RecordFailure("gemini", "x", time.Second)
		m.RecordRejection("invalid_type")
		m.SetActiveSessions(1)
	})
}
