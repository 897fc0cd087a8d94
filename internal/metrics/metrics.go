package metrics

import (
	"time"

	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the registries and engines.
type Metrics struct {
	InstancesCreated  *prometheus.CounterVec
	PremiumsCollected *prometheus.CounterVec
	ValueTransferred  prometheus.Counter
	ClaimsSubmitted   prometheus.Counter
	ClaimsDecided     *prometheus.CounterVec
	OperationFailures *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
}

// New creates the metrics and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them on the default /metrics handler.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		InstancesCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "igw_instances_created_total",
			Help: "Total number of engine instances created, by kind",
		}, []string{"kind"}),
		PremiumsCollected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "igw_premiums_collected_total",
			Help: "Total number of premium payments transferred to the verifier, by reason",
		}, []string{"reason"}),
		ValueTransferred: factory.NewCounter(prometheus.CounterOpts{
			Name: "igw_value_transferred_units_total",
			Help: "Total value credited to verifiers, in whole units",
		}),
		ClaimsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "igw_claims_submitted_total",
			Help: "Total number of claims moved to pending",
		}),
		ClaimsDecided: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "igw_claims_decided_total",
			Help: "Total number of verifier claim decisions, by outcome",
		}, []string{"outcome"}),
		OperationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "igw_operation_failures_total",
			Help: "Total number of rejected or failed operations, by operation and error code",
		}, []string{"operation", "code"}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "igw_operation_duration_seconds",
			Help:    "Duration of engine and registry operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
	}
}

// IncrementInstancesCreated records a successful instance creation.
func (m *Metrics) IncrementInstancesCreated(kind string) {
	m.InstancesCreated.WithLabelValues(kind).Inc()
}

// AddPremium records a premium transferred to the verifier.
func (m *Metrics) AddPremium(reason string, amount *uint256.Int) {
	m.PremiumsCollected.WithLabelValues(reason).Inc()
	m.ValueTransferred.Add(amount.Float64() / 1e18)
}

// IncrementClaimsSubmitted records a claim entering the pending state.
func (m *Metrics) IncrementClaimsSubmitted() {
	m.ClaimsSubmitted.Inc()
}

// IncrementClaimsDecided records a verifier decision ("approved" or "rejected").
func (m *Metrics) IncrementClaimsDecided(outcome string) {
	m.ClaimsDecided.WithLabelValues(outcome).Inc()
}

// IncrementFailure records a failed operation with its error code.
func (m *Metrics) IncrementFailure(operation, code string) {
	m.OperationFailures.WithLabelValues(operation, code).Inc()
}

// ObserveOperation records the duration of an operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveOperation(operation string, start time.Time) {
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
