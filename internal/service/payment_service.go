// internal/service/payment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"paycart/internal/domain"
	"paycart/internal/events"
	"paycart/internal/repository"
	"paycart/internal/util"
	"paycart/pkg/db"
)

// PaymentService defines the interface for payment-related business logic.
//
// CreatePayment is the ledger workflow: it debits the user's balance and
// records the payment as one atomic unit, in its own transaction.
type PaymentService interface {
	CreatePayment(ctx context.Context, userID int64, amount decimal.Decimal, date time.Time) (*domain.Payment, error)
	GetPayment(ctx context.Context, id int64) (*domain.Payment, error)
	ListPayments(ctx context.Context, limit, offset int) ([]domain.Payment, int64, error)
	UpdatePayment(ctx context.Context, id int64, amount decimal.Decimal) (*domain.Payment, error)
	DeletePayment(ctx context.Context, id int64) error
}

// paymentService implements the PaymentService interface.
type paymentService struct {
	dbBeginner  db.DBTxBeginner
	dbExecutor  repository.DBExecutor
	userRepo    repository.UserRepository
	paymentRepo repository.PaymentRepository
	beginTx     db.BeginTxFunc
	commitTx    db.CommitTxFunc
	rollbackTx  db.RollbackTxFunc
	publisher   events.Publisher // Optional; nil disables event publishing
	logger      *slog.Logger
}

// NewPaymentService creates a new instance of PaymentService.
func NewPaymentService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	paymentRepo repository.PaymentRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
	publisher events.Publisher,
	logger *slog.Logger,
) PaymentService {
	return &paymentService{
		dbBeginner:  dbBeginner,
		dbExecutor:  dbExecutor,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		beginTx:     beginTx,
		commitTx:    commitTx,
		rollbackTx:  rollbackTx,
		publisher:   publisher,
		logger:      logger,
	}
}

// CreatePayment records a payment against a user's balance.
//
// The whole read-check-debit-insert sequence runs in a transaction begun
// here, never inherited from a caller. Check order is fixed: user existence,
// then the one-active-payment policy, then the balance. The user row is
// locked for update so two concurrent payments cannot both pass the balance
// check against a stale value.
func (s *paymentService) CreatePayment(ctx context.Context, userID int64, amount decimal.Decimal, date time.Time) (*domain.Payment, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidInput
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("create payment: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("create payment: transaction controller does not implement DBExecutor")
	}

	user, err := s.userRepo.GetUserByIDForUpdate(ctx, txExecutor, userID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("create payment: failed to get user %d: %w", userID, err)
	}

	_, err = s.paymentRepo.GetActivePaymentByUserID(ctx, txExecutor, userID)
	if err == nil {
		return nil, util.ErrPaymentAlreadyExists
	}
	if !util.IsError(err, util.ErrNotFound) {
		return nil, fmt.Errorf("create payment: failed to check existing payment for user %d: %w", userID, err)
	}

	if user.Balance.LessThan(amount) {
		return nil, util.ErrInsufficientBalance
	}

	if err := s.userRepo.AddToUserBalance(ctx, txExecutor, userID, amount.Neg()); err != nil {
		return nil, fmt.Errorf("create payment: failed to debit user %d: %w", userID, translateStoreError(err))
	}

	payment := domain.NewPayment(userID, amount, date)
	if err := s.paymentRepo.CreatePayment(ctx, txExecutor, payment); err != nil {
		return nil, translateStoreError(err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, translateStoreError(fmt.Errorf("create payment: failed to commit transaction: %w", err))
	}

	s.publishPaymentRecorded(payment)

	return payment, nil
}

// GetPayment retrieves a single non-deleted payment.
func (s *paymentService) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetPaymentByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("get payment: failed to get payment %d: %w", id, err)
	}
	return payment, nil
}

// ListPayments retrieves a paginated list of non-deleted payments.
func (s *paymentService) ListPayments(ctx context.Context, limit, offset int) ([]domain.Payment, int64, error) {
	payments, totalCount, err := s.paymentRepo.ListPayments(ctx, s.dbExecutor, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list payments: %w", err)
	}
	return payments, totalCount, nil
}

// UpdatePayment overwrites the amount of an existing payment.
// The original debit is neither re-validated nor reversed.
func (s *paymentService) UpdatePayment(ctx context.Context, id int64, amount decimal.Decimal) (*domain.Payment, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidInput
	}

	_, err := s.paymentRepo.GetPaymentByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("update payment: failed to get payment %d: %w", id, err)
	}

	if err := s.paymentRepo.UpdatePaymentAmount(ctx, s.dbExecutor, id, amount); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("update payment: failed to update payment %d: %w", id, err)
	}

	updated, err := s.paymentRepo.GetPaymentByID(ctx, s.dbExecutor, id)
	if err != nil {
		return nil, fmt.Errorf("update payment: failed to re-fetch payment %d: %w", id, err)
	}
	return updated, nil
}

// DeletePayment soft-deletes a payment. The balance is not restored.
func (s *paymentService) DeletePayment(ctx context.Context, id int64) error {
	trashed, err := s.paymentRepo.TrashPayment(ctx, s.dbExecutor, id)
	if err != nil {
		return fmt.Errorf("delete payment: failed to trash payment %d: %w", id, err)
	}
	if !trashed {
		return util.ErrPaymentNotFound
	}
	return nil
}

// publishPaymentRecorded emits a PaymentRecorded event after commit.
// Publishing is best-effort: a broker failure never fails the payment.
func (s *paymentService) publishPaymentRecorded(payment *domain.Payment) {
	if s.publisher == nil {
		return
	}
	event := events.PaymentRecorded{
		PaymentID:  payment.ID,
		UserID:     payment.UserID,
		Reference:  payment.Reference,
		Amount:     payment.Amount,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(events.TopicPaymentRecorded, event); err != nil {
		s.logger.Error("Failed to publish payment event", "payment_id", payment.ID, "error", err)
	}
}

// translateStoreError maps low-level PostgreSQL failures onto the service's
// error kinds: a unique violation on the active-payment index means a
// concurrent payment won the race; a serialization failure is a conflict.
func translateStoreError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return util.ErrPaymentAlreadyExists
		case "serialization_failure":
			return util.ErrConflict
		}
	}
	return err
}
