// internal/repository/postgres/transaction_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"paycart/internal/domain"
	"paycart/internal/repository"
	"paycart/internal/util"
)

// TransactionRepository implements repository.TransactionRepository for PostgreSQL.
type TransactionRepository struct {
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db *sqlx.DB) repository.TransactionRepository {
	return &TransactionRepository{}
}

const transactionColumns = `id, user_id, total_amount, transaction_date, deleted, created_at, updated_at`

// CreateTransaction inserts a new purchase transaction using the provided DBExecutor.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	query := `INSERT INTO transactions (user_id, total_amount, transaction_date, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		transaction.UserID,
		transaction.TotalAmount,
		transaction.Date,
		transaction.CreatedAt,
		transaction.UpdatedAt,
	).Scan(&transaction.ID)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetTransactionByID retrieves a non-deleted transaction by ID.
func (r *TransactionRepository) GetTransactionByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Transaction, error) {
	var transaction domain.Transaction
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 AND deleted = FALSE`
	err := q.GetContext(ctx, &transaction, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by ID %d: %w", id, err)
	}
	return &transaction, nil
}

// ListTransactions retrieves a paginated list of non-deleted transactions and the total count.
func (r *TransactionRepository) ListTransactions(ctx context.Context, q repository.DBExecutor, limit, offset int) ([]domain.Transaction, int64, error) {
	transactions := []domain.Transaction{}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE deleted = FALSE ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`
	if err := q.SelectContext(ctx, &transactions, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM transactions WHERE deleted = FALSE`
	if err := q.GetContext(ctx, &totalCount, countQuery); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return transactions, totalCount, nil
}

// TrashTransaction soft-deletes a transaction. Returns false when no live row matched.
func (r *TransactionRepository) TrashTransaction(ctx context.Context, q repository.DBExecutor, id int64) (bool, error) {
	query := `UPDATE transactions SET deleted = TRUE, updated_at = $1 WHERE id = $2 AND deleted = FALSE`
	result, err := q.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return false, fmt.Errorf("failed to trash transaction %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected after trashing transaction %d: %w", id, err)
	}
	return rowsAffected > 0, nil
}
