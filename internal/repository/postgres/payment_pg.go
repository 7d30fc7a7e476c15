// internal/repository/postgres/payment_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"paycart/internal/domain"
	"paycart/internal/repository"
	"paycart/internal/util"
)

// PaymentRepository implements repository.PaymentRepository for PostgreSQL.
type PaymentRepository struct {
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(db *sqlx.DB) repository.PaymentRepository {
	return &PaymentRepository{}
}

const paymentColumns = `id, user_id, reference, amount, payment_date, deleted, created_at, updated_at`

// CreatePayment inserts a new payment row.
// The payments_active_user unique index rejects a second live payment for the
// same user; callers translate that unique violation.
func (r *PaymentRepository) CreatePayment(ctx context.Context, q repository.DBExecutor, payment *domain.Payment) error {
	query := `INSERT INTO payments (user_id, reference, amount, payment_date, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		payment.UserID,
		payment.Reference,
		payment.Amount,
		payment.Date,
		payment.CreatedAt,
		payment.UpdatedAt,
	).Scan(&payment.ID)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetPaymentByID retrieves a non-deleted payment by ID.
func (r *PaymentRepository) GetPaymentByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Payment, error) {
	var payment domain.Payment
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1 AND deleted = FALSE`
	err := q.GetContext(ctx, &payment, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment by ID %d: %w", id, err)
	}
	return &payment, nil
}

// GetActivePaymentByUserID retrieves the non-deleted payment for a user, if any.
func (r *PaymentRepository) GetActivePaymentByUserID(ctx context.Context, q repository.DBExecutor, userID int64) (*domain.Payment, error) {
	var payment domain.Payment
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE user_id = $1 AND deleted = FALSE`
	err := q.GetContext(ctx, &payment, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active payment for user %d: %w", userID, err)
	}
	return &payment, nil
}

// ListPayments retrieves a paginated list of non-deleted payments and the total count.
func (r *PaymentRepository) ListPayments(ctx context.Context, q repository.DBExecutor, limit, offset int) ([]domain.Payment, int64, error) {
	payments := []domain.Payment{}
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE deleted = FALSE ORDER BY id LIMIT $1 OFFSET $2`
	if err := q.SelectContext(ctx, &payments, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM payments WHERE deleted = FALSE`
	if err := q.GetContext(ctx, &totalCount, countQuery); err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	return payments, totalCount, nil
}

// UpdatePaymentAmount overwrites the amount of an existing payment.
func (r *PaymentRepository) UpdatePaymentAmount(ctx context.Context, q repository.DBExecutor, id int64, amount decimal.Decimal) error {
	query := `UPDATE payments SET amount = $1, updated_at = $2 WHERE id = $3 AND deleted = FALSE`
	result, err := q.ExecContext(ctx, query, amount, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update payment %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating payment %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// TrashPayment soft-deletes a payment. Returns false when no live row matched.
func (r *PaymentRepository) TrashPayment(ctx context.Context, q repository.DBExecutor, id int64) (bool, error) {
	query := `UPDATE payments SET deleted = TRUE, updated_at = $1 WHERE id = $2 AND deleted = FALSE`
	result, err := q.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return false, fmt.Errorf("failed to trash payment %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected after trashing payment %d: %w", id, err)
	}
	return rowsAffected > 0, nil
}
