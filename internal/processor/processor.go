package processor

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/yourorg/cafe-checkout/internal/adapter"
	"github.com/yourorg/cafe-checkout/internal/beverage"
)

// ErrProviderNotRegistered is returned when no handler is registered under a provider name.
var ErrProviderNotRegistered = errors.New("provider not registered")

// Processor routes charges to registered payment handlers by provider name.
// It's the one place callers name a provider; the handlers themselves stay
// behind the uniform PaymentProcessor capability.
type Processor struct {
	adapterRegistry map[string]adapter.NamedProcessor
	logger          *zap.Logger
}

// NewProcessor creates a new Processor with the given handlers, keyed by GetName().
func NewProcessor(logger *zap.Logger, handlers ...adapter.NamedProcessor) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := make(map[string]adapter.NamedProcessor, len(handlers))
	for _, h := range handlers {
		registry[h.GetName()] = h
	}
	return &Processor{
		adapterRegistry: registry,
		logger:          logger,
	}
}

// Register adds or replaces the handler for h.GetName().
func (p *Processor) Register(h adapter.NamedProcessor) {
	p.adapterRegistry[h.GetName()] = h
}

// Has reports whether a handler is registered under name.
func (p *Processor) Has(name string) bool {
	_, ok := p.adapterRegistry[name]
	return ok
}

// Charge sends amount to the handler registered under provider.
func (p *Processor) Charge(provider string, amount int64) error {
	h, ok := p.adapterRegistry[provider]
	if !ok {
		return fmt.Errorf("processor: %w: %s", ErrProviderNotRegistered, provider)
	}

	p.logger.Debug("charging", zap.String("provider", provider), zap.Int64("amount", amount))
	h.ProcessPayment(amount)
	return nil
}

// Checkout charges the full cost of b through provider.
func (p *Processor) Checkout(b beverage.Beverage, provider string) error {
	if err := p.Charge(provider, b.Cost()); err != nil {
		return fmt.Errorf("checkout %q: %w", b.Description(), err)
	}
	return nil
}
