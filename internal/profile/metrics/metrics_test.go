package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncrementProfilesCreated()
	m.IncrementCreateFailure("already_exists")
	m.IncrementCreateFailure("already_exists")
	m.IncrementEventPublishFailures()
	m.ObserveCreateProfile(time.Now())

	assert.InDelta(t, 1, testutil.ToFloat64(m.ProfilesCreated), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.CreateProfileFailures.WithLabelValues("already_exists")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.EventPublishFailures), 0)

	count, err := testutil.GatherAndCount(reg, "profiles_create_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewOnSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
