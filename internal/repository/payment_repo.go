// internal/repository/payment_repo.go
package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"paycart/internal/domain"
)

// PaymentRepository defines the interface for payment record data operations.
type PaymentRepository interface {
	// CreatePayment inserts a new payment row. The payments table carries a
	// partial unique index on (user_id) over non-deleted rows, so a concurrent
	// insert for the same user surfaces as a unique violation.
	CreatePayment(ctx context.Context, q DBExecutor, payment *domain.Payment) error
	// GetPaymentByID retrieves a non-deleted payment by ID.
	GetPaymentByID(ctx context.Context, q DBExecutor, id int64) (*domain.Payment, error)
	// GetActivePaymentByUserID retrieves the non-deleted payment for a user, if any.
	GetActivePaymentByUserID(ctx context.Context, q DBExecutor, userID int64) (*domain.Payment, error)
	// ListPayments retrieves a page of non-deleted payments plus the total count.
	ListPayments(ctx context.Context, q DBExecutor, limit, offset int) ([]domain.Payment, int64, error)
	// UpdatePaymentAmount overwrites the amount of an existing payment.
	UpdatePaymentAmount(ctx context.Context, q DBExecutor, id int64, amount decimal.Decimal) error
	// TrashPayment soft-deletes a payment. Returns false when no live row matched.
	TrashPayment(ctx context.Context, q DBExecutor, id int64) (bool, error)
}
