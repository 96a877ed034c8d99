package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the profile module.
type Metrics struct {
	ProfilesCreated       prometheus.Counter
	CreateProfileDuration prometheus.Histogram
	CreateProfileFailures *prometheus.CounterVec
	EventPublishFailures  prometheus.Counter
}

// New registers the profile metrics on reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		ProfilesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "profiles_created_total",
			Help: "Total number of profiles created",
		}),
		CreateProfileDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "profiles_create_duration_seconds",
			Help:    "Duration of CreateProfile operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		CreateProfileFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "profiles_create_failures_total",
			Help: "Failed CreateProfile operations by error kind",
		}, []string{"kind"}),
		EventPublishFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "profiles_event_publish_failures_total",
			Help: "ProfileCreated events that could not be delivered",
		}),
	}
}

func (m *Metrics) IncrementProfilesCreated() {
	m.ProfilesCreated.Inc()
}

// ObserveCreateProfile records the duration of a CreateProfile operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveCreateProfile(start time.Time) {
	m.CreateProfileDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementCreateFailure(kind string) {
	m.CreateProfileFailures.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncrementEventPublishFailures() {
	m.EventPublishFailures.Inc()
}
