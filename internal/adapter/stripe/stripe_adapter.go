package stripe

import (
	"github.com/yourorg/cafe-checkout/internal/adapter"
	stripeclient "github.com/yourorg/cafe-checkout/internal/provider/stripe"
)

var _ adapter.NamedProcessor = (*StripeAdapter)(nil)

// StripeAdapter implements the PaymentProcessor interface for Stripe.
// It owns its Stripe client for its whole lifetime.
type StripeAdapter struct {
	service *stripeclient.PaymentService
}

// NewStripeAdapter creates a new StripeAdapter over service.
func NewStripeAdapter(service *stripeclient.PaymentService) *StripeAdapter {
	return &StripeAdapter{service: service}
}

// GetName returns the name of the provider.
func (s *StripeAdapter) GetName() string {
	return stripeclient.ProviderName
}

// ProcessPayment charges amount as a single Stripe transaction.
func (s *StripeAdapter) ProcessPayment(amount int64) {
	s.service.MakeTransaction(amount)
}
