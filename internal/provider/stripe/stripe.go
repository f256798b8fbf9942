// Package stripe is the Stripe payment client. It speaks its own vocabulary:
// a charge is a transaction and the amount is the transaction total.
package stripe

import (
	"fmt"

	"github.com/yourorg/cafe-checkout/internal/notify"
)

// ProviderName identifies Stripe in notifications.
const ProviderName = "stripe"

// PaymentService completes Stripe transactions.
type PaymentService struct {
	sink   notify.Sink
	symbol string
}

// NewPaymentService creates a PaymentService that reports each completed
// transaction to sink, formatting amounts with the given currency symbol.
func NewPaymentService(sink notify.Sink, symbol string) *PaymentService {
	return &PaymentService{sink: sink, symbol: symbol}
}

// MakeTransaction charges totalAmount.
func (s *PaymentService) MakeTransaction(totalAmount int64) {
	s.sink.Notify(notify.New(ProviderName, totalAmount,
		fmt.Sprintf("Stripe transaction complete: %d %s", totalAmount, s.symbol)))
}
