// Package metrics exposes Prometheus counters for payment handlers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yourorg/cafe-checkout/internal/adapter"
)

// Collector holds the payment metric vectors.
type Collector struct {
	paymentsTotal *prometheus.CounterVec
	amountTotal   *prometheus.CounterVec
	paymentAmount *prometheus.HistogramVec
}

// NewCollector creates the payment metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		paymentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cafe",
			Name:      "payments_total",
			Help:      "Number of payments processed, by provider.",
		}, []string{"provider"}),
		amountTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cafe",
			Name:      "payment_amount_total",
			Help:      "Sum of amounts charged, by provider.",
		}, []string{"provider"}),
		paymentAmount: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cafe",
			Name:      "payment_amount",
			Help:      "Distribution of single payment amounts, by provider.",
			Buckets:   []float64{100, 500, 1000, 2000, 5000, 10000},
		}, []string{"provider"}),
	}

	for _, col := range []prometheus.Collector{c.paymentsTotal, c.amountTotal, c.paymentAmount} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Observe records one payment of amount through provider.
func (c *Collector) Observe(provider string, amount int64) {
	c.paymentsTotal.WithLabelValues(provider).Inc()
	c.amountTotal.WithLabelValues(provider).Add(float64(amount))
	c.paymentAmount.WithLabelValues(provider).Observe(float64(amount))
}

// Instrument wraps p so every payment is counted before being forwarded.
// The amount is forwarded unchanged.
func (c *Collector) Instrument(p adapter.NamedProcessor) adapter.NamedProcessor {
	return &instrumented{next: p, collector: c}
}

type instrumented struct {
	next      adapter.NamedProcessor
	collector *Collector
}

func (i *instrumented) GetName() string { return i.next.GetName() }

func (i *instrumented) ProcessPayment(amount int64) {
	i.next.ProcessPayment(amount)
	i.collector.Observe(i.next.GetName(), amount)
}
