// internal/repository/transaction_repo.go
package repository

import (
	"context"

	"paycart/internal/domain"
)

// TransactionRepository defines the interface for purchase transaction data operations.
type TransactionRepository interface {
	CreateTransaction(ctx context.Context, q DBExecutor, transaction *domain.Transaction) error
	GetTransactionByID(ctx context.Context, q DBExecutor, id int64) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, q DBExecutor, limit, offset int) ([]domain.Transaction, int64, error)
	TrashTransaction(ctx context.Context, q DBExecutor, id int64) (bool, error)
}
