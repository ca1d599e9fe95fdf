// Package memory is the process-local payment store. Contents are lost on restart.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/DanielPopoola/checkout-payment-gateway/internal/domain"
)

type PaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]PaymentModel
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{
		payments: make(map[string]PaymentModel),
	}
}

// Create stores a new payment. An id that is already present is never overwritten.
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.payments[payment.ID]; exists {
		return fmt.Errorf("failed to create payment %s: %w", payment.ID, domain.ErrDuplicatePayment)
	}

	r.payments[payment.ID] = toModel(payment)
	return nil
}

// FindByID retrieves a copy of the stored payment
func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}

	r.mu.RLock()
	model, ok := r.payments[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("payment %s: %w", id, domain.ErrPaymentNotFound)
	}

	return toDomainModel(model), nil
}

// Count returns the number of stored payments
func (r *PaymentRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.payments)
}
