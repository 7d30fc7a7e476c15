// internal/repository/postgres/transaction_item_pg.go
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

// TransactionItemRepository implements repository.TransactionItemRepository for PostgreSQL.
type TransactionItemRepository struct {
}

// NewTransactionItemRepository creates a new TransactionItemRepository.
func NewTransactionItemRepository(db *sqlx.DB) repository.TransactionItemRepository {
	return &TransactionItemRepository{}
}

const transactionItemColumns = `id, product_id, transaction_id, count, amount, total_amount, deleted, created_at, updated_at`

// CreateTransactionItem inserts a new line item using the provided DBExecutor.
func (r *TransactionItemRepository) CreateTransactionItem(ctx context.Context, q repository.DBExecutor, item *domain.TransactionItem) error {
	query := `INSERT INTO transaction_items (product_id, transaction_id, count, amount, total_amount, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		item.ProductID,
		item.TransactionID,
		item.Count,
		item.Amount,
		item.TotalAmount,
		item.CreatedAt,
		item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to create transaction item: %w", err)
	}
	return nil
}

// GetTransactionItemByID retrieves a non-deleted line item by ID.
func (r *TransactionItemRepository) GetTransactionItemByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.TransactionItem, error) {
	var item domain.TransactionItem
	query := `SELECT ` + transactionItemColumns + ` FROM transaction_items WHERE id = $1 AND deleted = FALSE`
	err := q.GetContext(ctx, &item, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction item by ID %d: %w", id, err)
	}
	return &item, nil
}

// ListTransactionItems retrieves a paginated list of non-deleted line items
// for a transaction and the total count.
func (r *TransactionItemRepository) ListTransactionItems(ctx context.Context, q repository.DBExecutor, transactionID int64, limit, offset int) ([]domain.TransactionItem, int64, error) {
	items := []domain.TransactionItem{}
	query := `SELECT ` + transactionItemColumns + ` FROM transaction_items
              WHERE transaction_id = $1 AND deleted = FALSE ORDER BY id LIMIT $2 OFFSET $3`
	if err := q.SelectContext(ctx, &items, query, transactionID, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list items for transaction %d: %w", transactionID, err)
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM transaction_items WHERE transaction_id = $1 AND deleted = FALSE`
	if err := q.GetContext(ctx, &totalCount, countQuery, transactionID); err != nil {
		return nil, 0, fmt.Errorf("failed to count items for transaction %d: %w", transactionID, err)
	}

	return items, totalCount, nil
}

// TrashTransactionItem soft-deletes a line item. Returns false when no live row matched.
func (r *TransactionItemRepository) TrashTransactionItem(ctx context.Context, q repository.DBExecutor, id int64) (bool, error) {
	query := `UPDATE transaction_items SET deleted = TRUE, updated_at = $1 WHERE id = $2 AND deleted = FALSE`
	result, err := q.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return false, fmt.Errorf("failed to trash transaction item %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected after trashing transaction item %d: %w", id, err)
	}
	return rowsAffected > 0, nil
}
