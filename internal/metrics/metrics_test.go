package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/cafe-checkout/internal/adapter/mock"
)

func TestNewCollector_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)

	_, err = NewCollector(reg)
	require.Error(t, err)
}

func TestCollector_Instrument(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	inner := mock.NewMockAdapter("stripe")
	p := c.Instrument(inner)
	assert.Equal(t, "stripe", p.GetName())

	p.ProcessPayment(3500)
	p.ProcessPayment(1500)

	assert.Equal(t, []int64{3500, 1500}, inner.Charges(), "amounts reach the wrapped handler unchanged")
	assert.Equal(t, float64(2), testutil.ToFloat64(c.paymentsTotal.WithLabelValues("stripe")))
	assert.Equal(t, float64(5000), testutil.ToFloat64(c.amountTotal.WithLabelValues("stripe")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.paymentAmount))
}

func TestCollector_HistogramPerProvider(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	c.Observe("paypal", 2000)
	c.Observe("qiwi", 1500)
	c.Observe("qiwi", 1500)

	families, err := reg.Gather()
	require.NoError(t, err)

	var hist *dto.MetricFamily
	for _, mf := range families {
		if mf.GetName() == "cafe_payment_amount" {
			hist = mf
		}
	}
	require.NotNil(t, hist)
	require.Len(t, hist.GetMetric(), 2)

	counts := map[string]uint64{}
	for _, m := range hist.GetMetric() {
		for _, lp := range m.GetLabel() {
			if lp.GetName() == "provider" {
				counts[lp.GetValue()] = m.GetHistogram().GetSampleCount()
			}
		}
	}
	assert.Equal(t, map[string]uint64{"paypal": 1, "qiwi": 2}, counts)
}
