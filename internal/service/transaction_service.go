// internal/service/transaction_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"paycart/internal/domain"
	"paycart/internal/repository"
	"paycart/internal/util"
)

// TransactionService defines the interface for purchase transactions and their line items.
type TransactionService interface {
	CreateTransaction(ctx context.Context, userID int64, totalAmount decimal.Decimal, date time.Time) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, limit, offset int) ([]domain.Transaction, int64, error)
	DeleteTransaction(ctx context.Context, id int64) error

	CreateTransactionItem(ctx context.Context, productID, transactionID, count int64, amount decimal.Decimal) (*domain.TransactionItem, error)
	GetTransactionItem(ctx context.Context, id int64) (*domain.TransactionItem, error)
	ListTransactionItems(ctx context.Context, transactionID int64, limit, offset int) ([]domain.TransactionItem, int64, error)
	DeleteTransactionItem(ctx context.Context, id int64) error
}

type transactionService struct {
	dbExecutor      repository.DBExecutor
	transactionRepo repository.TransactionRepository
	itemRepo        repository.TransactionItemRepository
	productRepo     repository.ProductRepository
	userRepo        repository.UserRepository
}

// NewTransactionService creates a new instance of TransactionService.
func NewTransactionService(
	dbExecutor repository.DBExecutor,
	transactionRepo repository.TransactionRepository,
	itemRepo repository.TransactionItemRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) TransactionService {
	return &transactionService{
		dbExecutor:      dbExecutor,
		transactionRepo: transactionRepo,
		itemRepo:        itemRepo,
		productRepo:     productRepo,
		userRepo:        userRepo,
	}
}

// CreateTransaction opens a purchase transaction for an existing user.
func (s *transactionService) CreateTransaction(ctx context.Context, userID int64, totalAmount decimal.Decimal, date time.Time) (*domain.Transaction, error) {
	if totalAmount.IsNegative() {
		return nil, util.ErrInvalidInput
	}

	if _, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, userID); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("create transaction: failed to check user %d: %w", userID, err)
	}

	transaction := domain.NewTransaction(userID, totalAmount, date)
	if err := s.transactionRepo.CreateTransaction(ctx, s.dbExecutor, transaction); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	return transaction, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.GetTransactionByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("get transaction: failed to get transaction %d: %w", id, err)
	}
	return transaction, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, limit, offset int) ([]domain.Transaction, int64, error) {
	transactions, totalCount, err := s.transactionRepo.ListTransactions(ctx, s.dbExecutor, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, totalCount, nil
}

// DeleteTransaction soft-deletes a transaction. Its items are kept as-is.
func (s *transactionService) DeleteTransaction(ctx context.Context, id int64) error {
	trashed, err := s.transactionRepo.TrashTransaction(ctx, s.dbExecutor, id)
	if err != nil {
		return fmt.Errorf("delete transaction: failed to trash transaction %d: %w", id, err)
	}
	if !trashed {
		return util.ErrTransactionNotFound
	}
	return nil
}

// CreateTransactionItem adds a product line to an existing transaction.
// The line total is count times the unit amount.
func (s *transactionService) CreateTransactionItem(ctx context.Context, productID, transactionID, count int64, amount decimal.Decimal) (*domain.TransactionItem, error) {
	if count <= 0 || amount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidInput
	}

	if _, err := s.productRepo.GetProductByID(ctx, s.dbExecutor, productID); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrProductNotFound
		}
		return nil, fmt.Errorf("create transaction item: failed to check product %d: %w", productID, err)
	}

	if _, err := s.transactionRepo.GetTransactionByID(ctx, s.dbExecutor, transactionID); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("create transaction item: failed to check transaction %d: %w", transactionID, err)
	}

	totalAmount := amount.Mul(decimal.NewFromInt(count))
	item := domain.NewTransactionItem(productID, transactionID, count, amount, totalAmount)
	if err := s.itemRepo.CreateTransactionItem(ctx, s.dbExecutor, item); err != nil {
		return nil, fmt.Errorf("create transaction item: %w", err)
	}
	return item, nil
}

func (s *transactionService) GetTransactionItem(ctx context.Context, id int64) (*domain.TransactionItem, error) {
	item, err := s.itemRepo.GetTransactionItemByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrTransactionItemNotFound
		}
		return nil, fmt.Errorf("get transaction item: failed to get item %d: %w", id, err)
	}
	return item, nil
}

func (s *transactionService) ListTransactionItems(ctx context.Context, transactionID int64, limit, offset int) ([]domain.TransactionItem, int64, error) {
	items, totalCount, err := s.itemRepo.ListTransactionItems(ctx, s.dbExecutor, transactionID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list transaction items: %w", err)
	}
	return items, totalCount, nil
}

func (s *transactionService) DeleteTransactionItem(ctx context.Context, id int64) error {
	trashed, err := s.itemRepo.TrashTransactionItem(ctx, s.dbExecutor, id)
	if err != nil {
		return fmt.Errorf("delete transaction item: failed to trash item %d: %w", id, err)
	}
	if !trashed {
		return util.ErrTransactionItemNotFound
	}
	return nil
}
