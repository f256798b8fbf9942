package mock

import (
	"sync"

	"github.com/yourorg/cafe-checkout/internal/adapter"
)

var _ adapter.NamedProcessor = (*MockAdapter)(nil)

// MockAdapter is a mock implementation of the NamedProcessor interface for testing.
// It records every amount it is asked to charge.
type MockAdapter struct {
	Name        string
	ProcessFunc func(amount int64)

	mu      sync.Mutex
	charges []int64
}

// NewMockAdapter creates a new MockAdapter.
func NewMockAdapter(name string) *MockAdapter {
	return &MockAdapter{Name: name}
}

// ProcessPayment implements the PaymentProcessor interface.
// It records the amount and then calls ProcessFunc if defined.
func (m *MockAdapter) ProcessPayment(amount int64) {
	m.mu.Lock()
	m.charges = append(m.charges, amount)
	m.mu.Unlock()

	if m.ProcessFunc != nil {
		m.ProcessFunc(amount)
	}
}

// GetName implements the NamedProcessor interface.
func (m *MockAdapter) GetName() string {
	return m.Name
}

// Charges returns the recorded amounts in call order.
func (m *MockAdapter) Charges() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]int64, len(m.charges))
	copy(out, m.charges)
	return out
}
