// Package qiwi is the Qiwi wallet payment client.
package qiwi

import (
	"fmt"

	"github.com/yourorg/cafe-checkout/internal/notify"
)

// ProviderName identifies Qiwi in notifications.
const ProviderName = "qiwi"

// PaymentService pays sums through Qiwi.
type PaymentService struct {
	sink   notify.Sink
	symbol string
}

// NewPaymentService creates a PaymentService that reports each payment to
// sink, formatting amounts with the given currency symbol.
func NewPaymentService(sink notify.Sink, symbol string) *PaymentService {
	return &PaymentService{sink: sink, symbol: symbol}
}

// Pay transfers sum.
func (s *PaymentService) Pay(sum int64) {
	s.sink.Notify(notify.New(ProviderName, sum, fmt.Sprintf("Qiwi paid: %d %s", sum, s.symbol)))
}
