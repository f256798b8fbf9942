package qiwi

import (
	"github.com/yourorg/cafe-checkout/internal/adapter"
	qiwiclient "github.com/yourorg/cafe-checkout/internal/provider/qiwi"
)

var _ adapter.NamedProcessor = (*QiwiAdapter)(nil)

// QiwiAdapter implements the PaymentProcessor interface for Qiwi.
type QiwiAdapter struct {
	service *qiwiclient.PaymentService
}

// NewQiwiAdapter creates a new QiwiAdapter over service.
func NewQiwiAdapter(service *qiwiclient.PaymentService) *QiwiAdapter {
	return &QiwiAdapter{service: service}
}

func (q *QiwiAdapter) GetName() string {
	return qiwiclient.ProviderName
}

// ProcessPayment pays amount through Qiwi.
func (q *QiwiAdapter) ProcessPayment(amount int64) {
	q.service.Pay(amount)
}
