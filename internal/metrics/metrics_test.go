package metrics

import (
	"testing"
	"time"

	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncrementInstancesCreated("INSURANCE")
	m.IncrementInstancesCreated("INSURANCE")
	m.IncrementInstancesCreated("WALLET")
	m.AddPremium("PREMIUM_CATEGORY_A", uint256.NewInt(2_000_000_000_000_000_000))
	m.IncrementClaimsSubmitted()
	m.IncrementClaimsDecided("approved")
	m.IncrementFailure("submit_claim", "PRE_007")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.InstancesCreated.WithLabelValues("INSURANCE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InstancesCreated.WithLabelValues("WALLET")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PremiumsCollected.WithLabelValues("PREMIUM_CATEGORY_A")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ValueTransferred))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ClaimsSubmitted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ClaimsDecided.WithLabelValues("approved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationFailures.WithLabelValues("submit_claim", "PRE_007")))
}

func TestMetrics_ObserveOperation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveOperation("select_package", time.Now().Add(-10*time.Millisecond))

	count, err := testutil.GatherAndCount(reg, "igw_operation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
