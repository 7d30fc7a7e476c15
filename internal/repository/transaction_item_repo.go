// internal/repository/transaction_item_repo.go
package repository

import (
	"context"

	"paycart/internal/domain"
)

// TransactionItemRepository defines the interface for transaction line item data operations.
type TransactionItemRepository interface {
	CreateTransactionItem(ctx context.Context, q DBExecutor, item *domain.TransactionItem) error
	GetTransactionItemByID(ctx context.Context, q DBExecutor, id int64) (*domain.TransactionItem, error)
	ListTransactionItems(ctx context.Context, q DBExecutor, transactionID int64, limit, offset int) ([]domain.TransactionItem, int64, error)
	TrashTransactionItem(ctx context.Context, q DBExecutor, id int64) (bool, error)
}
