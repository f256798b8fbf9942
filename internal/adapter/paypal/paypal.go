// Package paypal is the native PayPal payment handler. It satisfies the
// payment capability directly, without an adapter.
package paypal

import (
	"fmt"

	"github.com/yourorg/cafe-checkout/internal/adapter"
	"github.com/yourorg/cafe-checkout/internal/notify"
)

// ProviderName identifies PayPal in notifications.
const ProviderName = "paypal"

var _ adapter.NamedProcessor = (*PayPalProcessor)(nil)

// PayPalProcessor processes payments through PayPal.
type PayPalProcessor struct {
	sink   notify.Sink
	symbol string
}

// NewPayPalProcessor creates a PayPalProcessor reporting to sink.
func NewPayPalProcessor(sink notify.Sink, symbol string) *PayPalProcessor {
	return &PayPalProcessor{sink: sink, symbol: symbol}
}

func (p *PayPalProcessor) GetName() string {
	return ProviderName
}

// ProcessPayment implements the PaymentProcessor interface.
func (p *PayPalProcessor) ProcessPayment(amount int64) {
	p.sink.Notify(notify.New(ProviderName, amount,
		fmt.Sprintf("Processing PayPal payment of %d %s", amount, p.symbol)))
}
