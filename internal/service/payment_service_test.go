// internal/service/payment_service_test.go
package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"paycart/internal/domain"
	"paycart/internal/repository"
	"paycart/internal/util"
	"paycart/pkg/db" // Import pkg/db for interfaces and function types

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockDBExecutor is a mock implementation of repository.DBExecutor.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

func (m *MockDBExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	m.Called(ctx, query, args)
	return &sql.Row{}
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	args := m.Called(ctx, q, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByIDForUpdate(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, q repository.DBExecutor, username string) (*domain.User, error) {
	args := m.Called(ctx, q, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsernameNotID(ctx context.Context, q repository.DBExecutor, id int64, username string) (*domain.User, error) {
	args := m.Called(ctx, q, id, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, q repository.DBExecutor, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, q, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	args := m.Called(ctx, q, user)
	return args.Error(0)
}

func (m *MockUserRepository) AddToUserBalance(ctx context.Context, q repository.DBExecutor, userID int64, delta decimal.Decimal) error {
	args := m.Called(ctx, q, userID, delta)
	return args.Error(0)
}

func (m *MockUserRepository) TrashUser(ctx context.Context, q repository.DBExecutor, id int64) (bool, error) {
	args := m.Called(ctx, q, id)
	return args.Bool(0), args.Error(1)
}

// MockPaymentRepository is a mock implementation of repository.PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) CreatePayment(ctx context.Context, q repository.DBExecutor, payment *domain.Payment) error {
	args := m.Called(ctx, q, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetPaymentByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Payment, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetActivePaymentByUserID(ctx context.Context, q repository.DBExecutor, userID int64) (*domain.Payment, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, q repository.DBExecutor, limit, offset int) ([]domain.Payment, int64, error) {
	args := m.Called(ctx, q, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Payment), args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentRepository) UpdatePaymentAmount(ctx context.Context, q repository.DBExecutor, id int64, amount decimal.Decimal) error {
	args := m.Called(ctx, q, id, amount)
	return args.Error(0)
}

func (m *MockPaymentRepository) TrashPayment(ctx context.Context, q repository.DBExecutor, id int64) (bool, error) {
	args := m.Called(ctx, q, id)
	return args.Bool(0), args.Error(1)
}

// MockDBBeginner is a mock implementation of db.DBTxBeginner.
type MockDBBeginner struct {
	mock.Mock
}

func (m *MockDBBeginner) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	args := m.Called(ctx, opts)
	return &sqlx.Tx{}, args.Error(1)
}

// MockTxController is a mock implementation of db.TxController.
// It also implicitly implements repository.DBExecutor for testing purposes
// by embedding MockDBExecutor.
type MockTxController struct {
	mock.Mock
	MockDBExecutor // Embed MockDBExecutor to satisfy repository.DBExecutor interface
}

func (m *MockTxController) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTxController) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// paymentServiceWithMocks builds a PaymentService whose transaction hooks
// route through the given controller mock.
func paymentServiceWithMocks(
	mockDBBeginner *MockDBBeginner,
	mockDBExecutor *MockDBExecutor,
	mockUserRepo *MockUserRepository,
	mockPaymentRepo *MockPaymentRepository,
	mockTxController *MockTxController,
) PaymentService {
	return NewPaymentService(
		mockDBBeginner,
		mockDBExecutor,
		mockUserRepo,
		mockPaymentRepo,
		func(ctx context.Context, dbConn db.DBTxBeginner) (db.TxController, error) {
			return mockTxController, nil
		},
		func(tx db.TxController) error {
			return mockTxController.Commit()
		},
		func(tx db.TxController) {
			_ = mockTxController.Rollback()
		},
		nil, // no event publisher in unit tests
		util.GetLogger(),
	)
}

// TestCreatePayment tests the CreatePayment method of PaymentService.
func TestCreatePayment(t *testing.T) {
	userID := int64(1)
	amount := decimal.NewFromFloat(200.00)
	paymentDate := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	// Test Case 1: Successful Payment
	t.Run("SuccessfulPayment", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockPaymentRepo := new(MockPaymentRepository)
		mockDBBeginner := new(MockDBBeginner)
		mockDBExecutor := new(MockDBExecutor)
		mockTxController := new(MockTxController)

		service := paymentServiceWithMocks(mockDBBeginner, mockDBExecutor, mockUserRepo, mockPaymentRepo, mockTxController)

		user := &domain.User{
			ID:       userID,
			Fullname: "Jane Roe",
			Username: "jroe",
			Balance:  decimal.NewFromFloat(1000.00),
		}

		mockTxController.On("Commit").Return(nil).Once()
		mockTxController.On("Rollback").Return(nil).Maybe() // Deferred rollback runs after Commit.

		mockUserRepo.On("GetUserByIDForUpdate", ctx, mock.Anything, userID).Return(user, nil).Once()
		mockPaymentRepo.On("GetActivePaymentByUserID", ctx, mock.Anything, userID).Return(nil, util.ErrNotFound).Once()
		mockUserRepo.On("AddToUserBalance", ctx, mock.Anything, userID, amount.Neg()).Return(nil).Once()
		mockPaymentRepo.On("CreatePayment", ctx, mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil).Once()

		payment, err := service.CreatePayment(ctx, userID, amount, paymentDate)

		assert.NoError(t, err)
		assert.NotNil(t, payment)
		assert.Equal(t, userID, payment.UserID)
		assert.True(t, amount.Equal(payment.Amount))
		assert.Equal(t, paymentDate, payment.Date)
		assert.NotEmpty(t, payment.Reference)

		mock.AssertExpectationsForObjects(t, mockDBBeginner, mockDBExecutor, mockTxController, mockUserRepo, mockPaymentRepo)
	})

	// Test Case 2: Invalid Amount
	t.Run("InvalidAmount", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockPaymentRepo := new(MockPaymentRepository)
		mockDBBeginner := new(MockDBBeginner)
		mockDBExecutor := new(MockDBExecutor)
		mockTxController := new(MockTxController)

		service := paymentServiceWithMocks(mockDBBeginner, mockDBExecutor, mockUserRepo, mockPaymentRepo, mockTxController)

		payment, err := service.CreatePayment(ctx, userID, decimal.NewFromFloat(-10.00), paymentDate)

		assert.ErrorIs(t, err, util.ErrInvalidInput)
		assert.Nil(t, payment)

		// Early return: no transaction was begun.
		mockDBBeginner.AssertNotCalled(t, "BeginTxx", mock.Anything, mock.Anything)
		mockTxController.AssertNotCalled(t, "Commit")
		mockTxController.AssertNotCalled(t, "Rollback")

		mock.AssertExpectationsForObjects(t, mockDBBeginner, mockDBExecutor, mockTxController, mockUserRepo, mockPaymentRepo)
	})

	// Test Case 3: Zero Amount
	t.Run("ZeroAmount", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockPaymentRepo := new(MockPaymentRepository)
		mockDBBeginner := new(MockDBBeginner)
		mockDBExecutor := new(MockDBExecutor)
		mockTxController := new(MockTxController)

		service := paymentServiceWithMocks(mockDBBeginner, mockDBExecutor, mockUserRepo, mockPaymentRepo, mockTxController)

		payment, err := service.CreatePayment(ctx, userID, decimal.Zero, paymentDate)

		assert.ErrorIs(t, err, util.ErrInvalidInput)
		assert.Nil(t, payment)
		mockDBBeginner.AssertNotCalled(t, "BeginTxx", mock.Anything, mock.Anything)

		mock.AssertExpectationsForObjects(t, mockDBBeginner, mockDBExecutor, mockTxController, mockUserRepo, mockPaymentRepo)
	})

	// Test Case 4: User Not Found
	t.Run("UserNotFound", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockPaymentRepo := new(MockPaymentRepository)
		mockDBBeginner := new(MockDBBeginner)
		mockDBExecutor := new(MockDBExecutor)
		mockTxController := new(MockTxController)

		service := paymentServiceWithMocks(mockDBBeginner, mockDBExecutor, mockUserRepo, mockPaymentRepo, mockTxController)

		mockUserRepo.On("GetUserByIDForUpdate", ctx, mock.Anything, userID).Return(nil, util.ErrNotFound).Once()
		mockTxController.On("Rollback").Return(nil).Once()

		payment, err := service.CreatePayment(ctx, userID, amount, paymentDate)

		assert.ErrorIs(t, err, util.ErrUserNotFound)
		assert.Nil(t, payment)

		// The user check comes first; nothing else was consulted.
		mockPaymentRepo.AssertNotCalled(t, "GetActivePaymentByUserID", mock.Anything, mock.Anything, mock.Anything)
		mockUserRepo.AssertNotCalled(t, "AddToUserBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockTxController.AssertNotCalled(t, "Commit")

		mock.AssertExpectationsForObjects(t, mockDBBeginner, mockDBExecutor, mockTxController, mockUserRepo, mockPaymentRepo)
	})

	// Test Case 5: Payment Already Exists
	t.Run("PaymentAlreadyExists", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockPaymentRepo := new(MockPaymentRepository)
		mockDBBeginner := new(MockDBBeginner)
		mockDBExecutor := new(MockDBExecutor)
		mockTxController := new(MockTxController)

		service := paymentServiceWithMocks(mockDBBeginner, mockDBExecutor, mockUserRepo, mockPaymentRepo, mockTxController)

		user := &domain.User{
			ID:      userID,
			Balance: decimal.NewFromFloat(1000.00),
		}
		existing := &domain.Payment{
			ID:     42,
			UserID: userID,
			Amount: decimal.NewFromFloat(50.00),
		}

		mockUserRepo.On("GetUserByIDForUpdate", ctx, mock.Anything, userID).Return(user, nil).Once()
		mockPaymentRepo.On("GetActivePaymentByUserID", ctx, mock.Anything, userID).Return(existing, nil).Once()
		mockTxController.On("Rollback").Return(nil).Once()

		payment, err := service.CreatePayment(ctx, userID, amount, paymentDate)

		assert.ErrorIs(t, err, util.ErrPaymentAlreadyExists)
		assert.Nil(t, payment)

		// The existing-payment check fires before any balance check or debit.
		mockUserRepo.AssertNotCalled(t, "AddToUserBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockPaymentRepo.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything, mock.Anything)
		mockTxController.AssertNotCalled(t, "Commit")

		mock.AssertExpectationsForObjects(t, mockDBBeginner, mockDBExecutor, mockTxController, mockUserRepo, mockPaymentRepo)
	})

	// Test Case 6: Insufficient Balance
	t.Run("InsufficientBalance", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockPaymentRepo := new(MockPaymentRepository)
		mockDBBeginner := new(MockDBBeginner)
		mockDBExecutor := new(MockDBExecutor)
		mockTxController := new(MockTxController)

		service := paymentServiceWithMocks(mockDBBeginner, mockDBExecutor, mockUserRepo, mockPaymentRepo, mockTxController)

		user := &domain.User{
			ID:      userID,
			Balance: decimal.NewFromFloat(50.00),
		}

		mockUserRepo.On("GetUserByIDForUpdate", ctx, mock.Anything, userID).Return(user, nil).Once()
		mockPaymentRepo.On("GetActivePaymentByUserID", ctx, mock.Anything, userID).Return(nil, util.ErrNotFound).Once()
		mockTxController.On("Rollback").Return(nil).Once()

		payment, err := service.CreatePayment(ctx, userID, decimal.NewFromFloat(75.00), paymentDate)

		assert.ErrorIs(t, err, util.ErrInsufficientBalance)
		assert.Nil(t, payment)

		// Neither the debit nor the insert happened.
		mockUserRepo.AssertNotCalled(t, "AddToUserBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockPaymentRepo.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything, mock.Anything)
		mockTxController.AssertNotCalled(t, "Commit")

		mock.AssertExpectationsForObjects(t, mockDBBeginner, mockDBExecutor, mockTxController, mockUserRepo, mockPaymentRepo)
	})

	// Test Case 7: Unique Violation On Insert
	// A concurrent request inserted its payment between our existence check
	// and our insert; the partial unique index turns that into a duplicate.
	t.Run("UniqueViolationOnInsert", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockPaymentRepo := new(MockPaymentRepository)
		mockDBBeginner := new(MockDBBeginner)
		mockDBExecutor := new(MockDBExecutor)
		mockTxController := new(MockTxController)

		service := paymentServiceWithMocks(mockDBBeginner, mockDBExecutor, mockUserRepo, mockPaymentRepo, mockTxController)

		user := &domain.User{
			ID:      userID,
			Balance: decimal.NewFromFloat(1000.00),
		}
		uniqueViolation := &pq.Error{Code: "23505"}

		mockUserRepo.On("GetUserByIDForUpdate", ctx, mock.Anything, userID).Return(user, nil).Once()
		mockPaymentRepo.On("GetActivePaymentByUserID", ctx, mock.Anything, userID).Return(nil, util.ErrNotFound).Once()
		mockUserRepo.On("AddToUserBalance", ctx, mock.Anything, userID, amount.Neg()).Return(nil).Once()
		mockPaymentRepo.On("CreatePayment", ctx, mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(uniqueViolation).Once()
		mockTxController.On("Rollback").Return(nil).Once()

		payment, err := service.CreatePayment(ctx, userID, amount, paymentDate)

		assert.ErrorIs(t, err, util.ErrPaymentAlreadyExists)
		assert.Nil(t, payment)
		mockTxController.AssertNotCalled(t, "Commit")

		mock.AssertExpectationsForObjects(t, mockDBBeginner, mockDBExecutor, mockTxController, mockUserRepo, mockPaymentRepo)
	})

	// Test Case 8: Serialization Failure On Commit
	t.Run("ConflictOnCommit", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockPaymentRepo := new(MockPaymentRepository)
		mockDBBeginner := new(MockDBBeginner)
		mockDBExecutor := new(MockDBExecutor)
		mockTxController := new(MockTxController)

		service := paymentServiceWithMocks(mockDBBeginner, mockDBExecutor, mockUserRepo, mockPaymentRepo, mockTxController)

		user := &domain.User{
			ID:      userID,
			Balance: decimal.NewFromFloat(1000.00),
		}
		serializationFailure := &pq.Error{Code: "40001"}

		mockUserRepo.On("GetUserByIDForUpdate", ctx, mock.Anything, userID).Return(user, nil).Once()
		mockPaymentRepo.On("GetActivePaymentByUserID", ctx, mock.Anything, userID).Return(nil, util.ErrNotFound).Once()
		mockUserRepo.On("AddToUserBalance", ctx, mock.Anything, userID, amount.Neg()).Return(nil).Once()
		mockPaymentRepo.On("CreatePayment", ctx, mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil).Once()
		mockTxController.On("Commit").Return(serializationFailure).Once()
		mockTxController.On("Rollback").Return(nil).Once()

		payment, err := service.CreatePayment(ctx, userID, amount, paymentDate)

		assert.ErrorIs(t, err, util.ErrConflict)
		assert.Nil(t, payment)

		mock.AssertExpectationsForObjects(t, mockDBBeginner, mockDBExecutor, mockTxController, mockUserRepo, mockPaymentRepo)
	})
}

// TestUpdatePayment tests the UpdatePayment method of PaymentService.
func TestUpdatePayment(t *testing.T) {
	paymentID := int64(7)
	newAmount := decimal.NewFromFloat(300.00)

	// Updating the amount overwrites the record without touching the
	// user's balance or re-running the payment checks.
	t.Run("UpdateDoesNotTouchBalance", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockPaymentRepo := new(MockPaymentRepository)
		mockDBBeginner := new(MockDBBeginner)
		mockDBExecutor := new(MockDBExecutor)
		mockTxController := new(MockTxController)

		service := paymentServiceWithMocks(mockDBBeginner, mockDBExecutor, mockUserRepo, mockPaymentRepo, mockTxController)

		existing := &domain.Payment{
			ID:     paymentID,
			UserID: 1,
			Amount: decimal.NewFromFloat(200.00),
		}
		updated := &domain.Payment{
			ID:     paymentID,
			UserID: 1,
			Amount: newAmount,
		}

		mockPaymentRepo.On("GetPaymentByID", ctx, mock.Anything, paymentID).Return(existing, nil).Once()
		mockPaymentRepo.On("UpdatePaymentAmount", ctx, mock.Anything, paymentID, newAmount).Return(nil).Once()
		mockPaymentRepo.On("GetPaymentByID", ctx, mock.Anything, paymentID).Return(updated, nil).Once()

		payment, err := service.UpdatePayment(ctx, paymentID, newAmount)

		assert.NoError(t, err)
		assert.NotNil(t, payment)
		assert.True(t, newAmount.Equal(payment.Amount))

		mockUserRepo.AssertNotCalled(t, "AddToUserBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockUserRepo.AssertNotCalled(t, "GetUserByIDForUpdate", mock.Anything, mock.Anything, mock.Anything)
		mockDBBeginner.AssertNotCalled(t, "BeginTxx", mock.Anything, mock.Anything)

		mock.AssertExpectationsForObjects(t, mockDBBeginner, mockDBExecutor, mockTxController, mockUserRepo, mockPaymentRepo)
	})

	t.Run("PaymentNotFound", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockPaymentRepo := new(MockPaymentRepository)
		mockDBBeginner := new(MockDBBeginner)
		mockDBExecutor := new(MockDBExecutor)
		mockTxController := new(MockTxController)

		service := paymentServiceWithMocks(mockDBBeginner, mockDBExecutor, mockUserRepo, mockPaymentRepo, mockTxController)

		mockPaymentRepo.On("GetPaymentByID", ctx, mock.Anything, paymentID).Return(nil, util.ErrNotFound).Once()

		payment, err := service.UpdatePayment(ctx, paymentID, newAmount)

		assert.ErrorIs(t, err, util.ErrPaymentNotFound)
		assert.Nil(t, payment)

		mock.AssertExpectationsForObjects(t, mockDBBeginner, mockDBExecutor, mockTxController, mockUserRepo, mockPaymentRepo)
	})

	t.Run("InvalidAmount", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockPaymentRepo := new(MockPaymentRepository)
		mockDBBeginner := new(MockDBBeginner)
		mockDBExecutor := new(MockDBExecutor)
		mockTxController := new(MockTxController)

		service := paymentServiceWithMocks(mockDBBeginner, mockDBExecutor, mockUserRepo, mockPaymentRepo, mockTxController)

		payment, err := service.UpdatePayment(ctx, paymentID, decimal.NewFromFloat(-1.00))

		assert.ErrorIs(t, err, util.ErrInvalidInput)
		assert.Nil(t, payment)
		mockPaymentRepo.AssertNotCalled(t, "GetPaymentByID", mock.Anything, mock.Anything, mock.Anything)

		mock.AssertExpectationsForObjects(t, mockDBBeginner, mockDBExecutor, mockTxController, mockUserRepo, mockPaymentRepo)
	})
}

// TestDeletePayment tests the DeletePayment method of PaymentService.
func TestDeletePayment(t *testing.T) {
	paymentID := int64(7)

	t.Run("SuccessfulDelete", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockPaymentRepo := new(MockPaymentRepository)
		mockDBBeginner := new(MockDBBeginner)
		mockDBExecutor := new(MockDBExecutor)
		mockTxController := new(MockTxController)

		service := paymentServiceWithMocks(mockDBBeginner, mockDBExecutor, mockUserRepo, mockPaymentRepo, mockTxController)

		mockPaymentRepo.On("TrashPayment", ctx, mock.Anything, paymentID).Return(true, nil).Once()

		err := service.DeletePayment(ctx, paymentID)

		assert.NoError(t, err)
		// Soft-deleting a payment never credits the balance back.
		mockUserRepo.AssertNotCalled(t, "AddToUserBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

		mock.AssertExpectationsForObjects(t, mockDBBeginner, mockDBExecutor, mockTxController, mockUserRepo, mockPaymentRepo)
	})

	t.Run("AlreadyDeleted", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockPaymentRepo := new(MockPaymentRepository)
		mockDBBeginner := new(MockDBBeginner)
		mockDBExecutor := new(MockDBExecutor)
		mockTxController := new(MockTxController)

		service := paymentServiceWithMocks(mockDBBeginner, mockDBExecutor, mockUserRepo, mockPaymentRepo, mockTxController)

		mockPaymentRepo.On("TrashPayment", ctx, mock.Anything, paymentID).Return(false, nil).Once()

		err := service.DeletePayment(ctx, paymentID)

		assert.ErrorIs(t, err, util.ErrPaymentNotFound)

		mock.AssertExpectationsForObjects(t, mockDBBeginner, mockDBExecutor, mockTxController, mockUserRepo, mockPaymentRepo)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockPaymentRepo := new(MockPaymentRepository)
		mockDBBeginner := new(MockDBBeginner)
		mockDBExecutor := new(MockDBExecutor)
		mockTxController := new(MockTxController)

		service := paymentServiceWithMocks(mockDBBeginner, mockDBExecutor, mockUserRepo, mockPaymentRepo, mockTxController)

		mockPaymentRepo.On("TrashPayment", ctx, mock.Anything, paymentID).Return(false, errors.New("db error")).Once()

		err := service.DeletePayment(ctx, paymentID)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, util.ErrPaymentNotFound)

		mock.AssertExpectationsForObjects(t, mockDBBeginner, mockDBExecutor, mockTxController, mockUserRepo, mockPaymentRepo)
	})
}
