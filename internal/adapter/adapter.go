// Package adapter defines the single payment capability every payment
// handler satisfies, and contains the implementations for specific providers.
// Native handlers implement it directly; adapters wrap a third-party client
// and translate the uniform call into that client's own method.
package adapter

// PaymentProcessor is the uniform payment capability.
type PaymentProcessor interface {
	// ProcessPayment charges amount exactly once. The amount reaches the
	// underlying service unchanged.
	ProcessPayment(amount int64)
}

// NamedProcessor is a PaymentProcessor that also reports its provider name
// (e.g., "paypal", "stripe").
type NamedProcessor interface {
	PaymentProcessor
	GetName() string
}
