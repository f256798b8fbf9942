package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/cafe-checkout/internal/adapter"
	"github.com/yourorg/cafe-checkout/internal/adapter/paypal"
	"github.com/yourorg/cafe-checkout/internal/adapter/qiwi"
	"github.com/yourorg/cafe-checkout/internal/adapter/stripe"
	"github.com/yourorg/cafe-checkout/internal/notify"
	qiwiclient "github.com/yourorg/cafe-checkout/internal/provider/qiwi"
	stripeclient "github.com/yourorg/cafe-checkout/internal/provider/stripe"
)

func TestPaymentProcessors_PassAmountThroughUnchanged(t *testing.T) {
	rec := notify.NewRecorder()
	handlers := []adapter.NamedProcessor{
		paypal.NewPayPalProcessor(rec, "₸"),
		stripe.NewStripeAdapter(stripeclient.NewPaymentService(rec, "₸")),
		qiwi.NewQiwiAdapter(qiwiclient.NewPaymentService(rec, "₸")),
	}

	for _, amount := range []int64{0, 1, 1500, 2000, 3500, 999999} {
		for _, h := range handlers {
			before := len(rec.Notifications())
			h.ProcessPayment(amount)

			got := rec.Notifications()
			require.Len(t, got, before+1, "%s should emit exactly one notification", h.GetName())
			last := got[len(got)-1]
			assert.Equal(t, amount, last.Amount)
			assert.Equal(t, h.GetName(), last.Provider)
		}
	}
}

func TestPaymentProcessors_DemoScenario(t *testing.T) {
	rec := notify.NewRecorder()

	var p adapter.PaymentProcessor = paypal.NewPayPalProcessor(rec, "₸")
	p.ProcessPayment(2000)
	p = stripe.NewStripeAdapter(stripeclient.NewPaymentService(rec, "₸"))
	p.ProcessPayment(3500)
	p = qiwi.NewQiwiAdapter(qiwiclient.NewPaymentService(rec, "₸"))
	p.ProcessPayment(1500)

	got := rec.Notifications()
	require.Len(t, got, 3)
	assert.Equal(t, "Processing PayPal payment of 2000 ₸", got[0].Message)
	assert.Equal(t, "Stripe transaction complete: 3500 ₸", got[1].Message)
	assert.Equal(t, "Qiwi paid: 1500 ₸", got[2].Message)
}
